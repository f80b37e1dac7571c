package controller

import (
	"net/http"

	"github.com/Riaraujo/testecrud/internal/service"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/gin-gonic/gin"
)

type StatusController struct {
	Service *service.StatusService
	Page    []byte
}

func NewStatusController(s *service.StatusService, page []byte) *StatusController {
	return &StatusController{Service: s, Page: page}
}

// @Summary Status do serviço
// @Description Informa se a API está no ar e o estado do banco de dados
// @Tags sistema
// @Produce json
// @Success 200 {object} service.Status
// @Router /status [get]
func (c *StatusController) Status(ctx *gin.Context) {
	util.Success(ctx, c.Service.Check(ctx.Request.Context()))
}

// Index serves the status page.
func (c *StatusController) Index(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", c.Page)
}
