package handlers

import (
	"errors"
	"net/http"

	"oficina_pro/internal/adapter/http/dto/request"
	"oficina_pro/internal/adapter/http/dto/response"
	"oficina_pro/internal/usecase"
	"oficina_pro/pkg"
	"oficina_pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAuthHandler(uc usecase.IAccountUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// SignUp godoc
// @Summary  Create a shop account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload body request.SignUpRequest true "Credentials"
// @Success  201 {object} response.AuthResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Router   /auth/signup [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, "INVALID_SIGNUP_INPUT", "Invalid sign-up payload", err)
		return
	}

	session, err := h.usecase.SignUp(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	logger.Infof(c.Request.Context(), "[auth][handler] signup user_id=%s", session.User.ID)

	c.JSON(http.StatusCreated, response.FromAuthSession(session))
}

// SignIn godoc
// @Summary  Exchange credentials for an access token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    payload body request.SignInRequest true "Credentials"
// @Success  200 {object} response.AuthResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/signin [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload request.SignInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindingError(c, "INVALID_SIGNIN_INPUT", "Invalid sign-in payload", err)
		return
	}

	session, err := h.usecase.SignIn(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromAuthSession(session))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password", err, http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrEmailAlreadyRegistered):
		return pkg.NewDomainError("EMAIL_ALREADY_REGISTERED", "Email already registered", err, http.StatusConflict)
	default:
		return mapCommonError(err)
	}
}
