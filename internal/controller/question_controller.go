package controller

import (
	"github.com/Riaraujo/testecrud/internal/service"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Service *service.QuestionService
}

func NewQuestionController(s *service.QuestionService) *QuestionController {
	return &QuestionController{Service: s}
}

// @Summary Listar questões
// @Tags questoes
// @Produce json
// @Success 200 {array} model.QuestaoDetalhe
// @Router /questoes [get]
func (c *QuestionController) List(ctx *gin.Context) {
	questoes, err := c.Service.List(ctx.Request.Context())
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, questoes)
}

// @Summary Buscar questão
// @Tags questoes
// @Produce json
// @Param id path string true "ID da questão"
// @Success 200 {object} model.QuestaoDetalhe
// @Failure 404 {object} util.ErrorResponse
// @Router /questoes/{id} [get]
func (c *QuestionController) Get(ctx *gin.Context) {
	questao, err := c.Service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, questao)
}

// @Summary Criar questão
// @Description Sem prova, ano e indice localizam ou criam a pasta e a prova do ENEM correspondentes
// @Tags questoes
// @Accept json
// @Produce json
// @Param body body service.CreateQuestaoRequest true "Questão"
// @Success 201 {object} model.Questao
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /questoes [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.CreateQuestaoRequest
	if !bindJSON(ctx, &req) {
		return
	}
	questao, err := c.Service.Create(ctx.Request.Context(), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, questao)
}

// @Summary Atualizar questão
// @Tags questoes
// @Accept json
// @Produce json
// @Param id path string true "ID da questão"
// @Param body body service.UpdateQuestaoRequest true "Campos alterados"
// @Success 200 {object} model.Questao
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /questoes/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	var req service.UpdateQuestaoRequest
	if !bindJSON(ctx, &req) {
		return
	}
	questao, err := c.Service.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, questao)
}

// @Summary Excluir questão
// @Tags questoes
// @Produce json
// @Param id path string true "ID da questão"
// @Success 200 {object} util.MessageResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /questoes/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Message(ctx, "Questão excluída com sucesso")
}
