package controller

import (
	"github.com/Riaraujo/testecrud/internal/service"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/gin-gonic/gin"
)

// KnowledgeTagController exposes the conhecimentos index used by the
// front-end filters.
type KnowledgeTagController struct {
	Service *service.KnowledgeTagService
}

func NewKnowledgeTagController(s *service.KnowledgeTagService) *KnowledgeTagController {
	return &KnowledgeTagController{Service: s}
}

// @Summary Listar conhecimentos
// @Description Conhecimentos usados nas questões, com a quantidade de questões de cada um
// @Tags questoes
// @Produce json
// @Param disciplina query string false "Filtrar pela disciplina das questões"
// @Success 200 {array} model.Conhecimento
// @Failure 500 {object} util.ErrorResponse
// @Router /conhecimentos [get]
func (c *KnowledgeTagController) ListTags(ctx *gin.Context) {
	tags, err := c.Service.ListTags(ctx.Request.Context(), ctx.Query("disciplina"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, tags)
}
