package controller

import (
	"github.com/Riaraujo/testecrud/internal/service"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/gin-gonic/gin"
)

type ExamController struct {
	Service *service.ExamService
}

func NewExamController(s *service.ExamService) *ExamController {
	return &ExamController{Service: s}
}

// @Summary Listar provas
// @Tags provas
// @Produce json
// @Success 200 {array} model.ProvaDetalhe
// @Router /provas [get]
func (c *ExamController) List(ctx *gin.Context) {
	provas, err := c.Service.List(ctx.Request.Context())
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, provas)
}

// @Summary Buscar prova
// @Description Retorna a prova com suas questões, na ordem da prova, e a pasta
// @Tags provas
// @Produce json
// @Param id path string true "ID da prova"
// @Success 200 {object} model.ProvaDetalhe
// @Failure 404 {object} util.ErrorResponse
// @Router /provas/{id} [get]
func (c *ExamController) Get(ctx *gin.Context) {
	prova, err := c.Service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, prova)
}

// @Summary Criar prova
// @Tags provas
// @Accept json
// @Produce json
// @Param body body service.CreateProvaRequest true "Prova"
// @Success 201 {object} model.Prova
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse
// @Router /provas [post]
func (c *ExamController) Create(ctx *gin.Context) {
	var req service.CreateProvaRequest
	if !bindJSON(ctx, &req) {
		return
	}
	prova, err := c.Service.Create(ctx.Request.Context(), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, prova)
}

// @Summary Atualizar prova
// @Tags provas
// @Accept json
// @Produce json
// @Param id path string true "ID da prova"
// @Param body body service.UpdateProvaRequest true "Campos alterados"
// @Success 200 {object} model.Prova
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /provas/{id} [put]
func (c *ExamController) Update(ctx *gin.Context) {
	var req service.UpdateProvaRequest
	if !bindJSON(ctx, &req) {
		return
	}
	prova, err := c.Service.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, prova)
}

// @Summary Excluir prova
// @Description Exclui a prova e suas questões
// @Tags provas
// @Produce json
// @Param id path string true "ID da prova"
// @Success 200 {object} util.MessageResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /provas/{id} [delete]
func (c *ExamController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Message(ctx, "Prova excluída com sucesso")
}
