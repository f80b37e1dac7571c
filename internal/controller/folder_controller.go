package controller

import (
	"github.com/Riaraujo/testecrud/internal/service"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/gin-gonic/gin"
)

type FolderController struct {
	Service *service.FolderService
}

func NewFolderController(s *service.FolderService) *FolderController {
	return &FolderController{Service: s}
}

// @Summary Listar pastas
// @Description Lista as pastas com provas e subpastas, mais recentes primeiro
// @Tags pastas
// @Produce json
// @Success 200 {array} model.PastaDetalhe
// @Failure 500 {object} util.ErrorResponse
// @Router /pastas [get]
func (c *FolderController) List(ctx *gin.Context) {
	pastas, err := c.Service.List(ctx.Request.Context())
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, pastas)
}

// @Summary Buscar pasta
// @Tags pastas
// @Produce json
// @Param id path string true "ID da pasta"
// @Success 200 {object} model.PastaDetalhe
// @Failure 404 {object} util.ErrorResponse
// @Router /pastas/{id} [get]
func (c *FolderController) Get(ctx *gin.Context) {
	pasta, err := c.Service.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, pasta)
}

// @Summary Criar pasta
// @Tags pastas
// @Accept json
// @Produce json
// @Param body body service.CreatePastaRequest true "Pasta"
// @Success 201 {object} model.Pasta
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse
// @Router /pastas [post]
func (c *FolderController) Create(ctx *gin.Context) {
	var req service.CreatePastaRequest
	if !bindJSON(ctx, &req) {
		return
	}
	pasta, err := c.Service.Create(ctx.Request.Context(), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, pasta)
}

// @Summary Atualizar pasta
// @Tags pastas
// @Accept json
// @Produce json
// @Param id path string true "ID da pasta"
// @Param body body service.UpdatePastaRequest true "Campos alterados"
// @Success 200 {object} model.Pasta
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /pastas/{id} [put]
func (c *FolderController) Update(ctx *gin.Context) {
	var req service.UpdatePastaRequest
	if !bindJSON(ctx, &req) {
		return
	}
	pasta, err := c.Service.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, pasta)
}

// @Summary Mover pasta
// @Description Troca a pasta pai; pastaPai nulo torna a pasta raiz
// @Tags pastas
// @Accept json
// @Produce json
// @Param id path string true "ID da pasta"
// @Param body body service.MoverPastaRequest true "Nova pasta pai"
// @Success 200 {object} model.Pasta
// @Failure 400 {object} util.ErrorResponse
// @Failure 404 {object} util.ErrorResponse
// @Router /pastas/{id}/mover [put]
func (c *FolderController) Move(ctx *gin.Context) {
	var req service.MoverPastaRequest
	if !bindJSON(ctx, &req) {
		return
	}
	pasta, err := c.Service.Move(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, pasta)
}

// @Summary Excluir pasta
// @Description Exclui a pasta e suas provas; subpastas viram raiz
// @Tags pastas
// @Produce json
// @Param id path string true "ID da pasta"
// @Success 200 {object} util.MessageResponse
// @Failure 404 {object} util.ErrorResponse
// @Failure 409 {object} util.ErrorResponse
// @Router /pastas/{id} [delete]
func (c *FolderController) Delete(ctx *gin.Context) {
	if err := c.Service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Message(ctx, "Pasta excluída com sucesso")
}
