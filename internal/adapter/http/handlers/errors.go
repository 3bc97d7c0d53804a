package handlers

import (
	"errors"
	"net/http"
	"strings"

	"oficina_pro/internal/adapter/http/middleware"
	"oficina_pro/internal/usecase"
	"oficina_pro/internal/usecase/interfaces"
	"oficina_pro/pkg"
	"oficina_pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

// mapCommonError translates the error kinds shared by every use case. Handler
// specific mappers run first and fall back to it.
func mapCommonError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, interfaces.ErrDatasetVersionConflict):
		return pkg.NewDomainError("CONCURRENT_UPDATE", "The data changed while saving, please retry", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", kindMessage(err, usecase.ErrValidation), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", capitalize(err.Error()), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrConflict):
		return pkg.NewDomainError("CONFLICT", kindMessage(err, usecase.ErrConflict), err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// kindMessage drops the "<kind>: " prefix so the client only sees the detail.
func kindMessage(err, kind error) string {
	return capitalize(strings.TrimPrefix(err.Error(), kind.Error()+": "))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Errorf(c.Request.Context(), "[http][handler] %s %s failed: %v", c.Request.Method, c.FullPath(), appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeBindingError(c *gin.Context, code, message string, err error) {
	writeError(c, pkg.NewBindingError(code, message, err))
}

func currentUser(c *gin.Context) string {
	return middleware.UserID(c)
}
