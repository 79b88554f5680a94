package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Valeria-CPaz/app-agendamento/internal/repository"
	apperrors "github.com/Valeria-CPaz/app-agendamento/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// RespondError maps service errors to HTTP statuses. Unclassified
// errors become 500s with the error text; nothing sensitive crosses
// the service boundary in error messages.
func RespondError(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, NewErrorResponse("not found"))
		return
	}

	if appErr, ok := apperrors.AsAppError(err); ok {
		switch appErr.Code {
		case apperrors.ErrNotFound:
			c.JSON(http.StatusNotFound, NewErrorResponse(appErr.Message))
		case apperrors.ErrBadRequest:
			c.JSON(http.StatusBadRequest, NewErrorResponse(appErr.Message))
		case apperrors.ErrUnauthorized:
			c.JSON(http.StatusUnauthorized, NewErrorResponse(appErr.Message))
		default:
			c.JSON(http.StatusInternalServerError, NewErrorResponse(appErr.Message))
		}
		return
	}

	c.JSON(http.StatusInternalServerError, NewErrorResponse(err.Error()))
}
