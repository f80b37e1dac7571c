package controller

import (
	"errors"

	"github.com/Riaraujo/testecrud/internal/util"
	"github.com/gin-gonic/gin"
)

// bindJSON binds the request body into req and answers 400 with field
// details when it does not validate.
func bindJSON(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		verr := util.BindingError(err)
		util.ValidationFailed(ctx, verr.Message, verr.Details)
		return false
	}
	return true
}

// handleServiceError writes the response for an error returned by a service.
func handleServiceError(ctx *gin.Context, err error) {
	var (
		verr     *util.ValidationError
		notFound *util.NotFoundError
		conflict *util.ConflictError
	)
	switch {
	case errors.As(err, &verr):
		util.ValidationFailed(ctx, verr.Message, verr.Details)
	case errors.As(err, &notFound):
		util.NotFound(ctx, notFound.Message)
	case errors.As(err, &conflict):
		util.Conflict(ctx, conflict.Message)
	default:
		util.LogInternalError(ctx, err)
	}
}
