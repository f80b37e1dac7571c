package app

import (
	"github.com/Riaraujo/testecrud/docs"
	"github.com/Riaraujo/testecrud/pkg/monitoring"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/", c.status.Index)

	api := router.Group("/api")
	{
		api.GET("/status", c.status.Status)
		api.POST("/uploads", c.upload.Upload)
		api.GET("/conhecimentos", c.tags.ListTags)

		a.registerFolderRoutes(api, c)
		a.registerExamRoutes(api, c)
		a.registerQuestionRoutes(api, c)
	}
}

func (a *App) registerFolderRoutes(api *gin.RouterGroup, c *controllers) {
	pastas := api.Group("/pastas")
	{
		pastas.GET("", c.folder.List)
		pastas.POST("", c.folder.Create)
		pastas.GET("/:id", c.folder.Get)
		pastas.PUT("/:id", c.folder.Update)
		pastas.PUT("/:id/mover", c.folder.Move)
		pastas.DELETE("/:id", c.folder.Delete)
	}
}

func (a *App) registerExamRoutes(api *gin.RouterGroup, c *controllers) {
	provas := api.Group("/provas")
	{
		provas.GET("", c.exam.List)
		provas.POST("", c.exam.Create)
		provas.GET("/:id", c.exam.Get)
		provas.PUT("/:id", c.exam.Update)
		provas.DELETE("/:id", c.exam.Delete)
	}
}

func (a *App) registerQuestionRoutes(api *gin.RouterGroup, c *controllers) {
	questoes := api.Group("/questoes")
	{
		questoes.GET("", c.question.List)
		questoes.POST("", c.question.Create)
		questoes.GET("/:id", c.question.Get)
		questoes.PUT("/:id", c.question.Update)
		questoes.DELETE("/:id", c.question.Delete)
	}
}
