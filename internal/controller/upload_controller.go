package controller

import (
	"github.com/Riaraujo/testecrud/internal/service"
	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/gin-gonic/gin"
)

type UploadController struct {
	Storage *service.StorageService
}

func NewUploadController(s *service.StorageService) *UploadController {
	return &UploadController{Storage: s}
}

type UploadResponse struct {
	URL string `json:"url"`
}

// @Summary Enviar imagem
// @Description Armazena uma imagem de enunciado ou alternativa e devolve a URL
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Imagem"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} util.ErrorResponse
// @Router /uploads [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.ValidationFailed(ctx, "Erro de validação", []util.FieldError{
			{Field: "file", Message: "arquivo obrigatório"},
		})
		return
	}

	url, err := c.Storage.UploadImage(ctx.Request.Context(), file)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, UploadResponse{URL: url})
}
