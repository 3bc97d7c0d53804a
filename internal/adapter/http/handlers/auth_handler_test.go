package handlers

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"oficina_pro/internal/adapter/http/handlers/mocks"
	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(uc *mocks.MockIAccountUseCase) *gin.Engine {
		h := NewAuthHandler(uc)
		r := gin.New()
		r.POST("/v1/auth/signup", h.SignUp)
		r.POST("/v1/auth/signin", h.SignIn)
		return r
	}

	t.Run("signup rejects short password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)

		w := performRequest(newRouter(uc), http.MethodPost, "/v1/auth/signup", `{"email":"dono@oficina.com","password":"123"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "INVALID_SIGNUP_INPUT") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("signup duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		uc.EXPECT().SignUp(gomock.Any(), "dono@oficina.com", "segredo1").Return(usecase.AuthSession{}, usecase.ErrEmailAlreadyRegistered)

		w := performRequest(newRouter(uc), http.MethodPost, "/v1/auth/signup", `{"email":"dono@oficina.com","password":"segredo1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("signup success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		session := usecase.AuthSession{
			User:      entities.User{ID: "u1", Email: "dono@oficina.com"},
			Token:     "jwt",
			ExpiresAt: time.Now().Add(time.Hour),
		}
		uc.EXPECT().SignUp(gomock.Any(), "dono@oficina.com", "segredo1").Return(session, nil)

		w := performRequest(newRouter(uc), http.MethodPost, "/v1/auth/signup", `{"email":"dono@oficina.com","password":"segredo1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"token":"jwt"`) || strings.Contains(w.Body.String(), "password") {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("signin invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAccountUseCase(ctrl)
		uc.EXPECT().SignIn(gomock.Any(), "dono@oficina.com", "errada").Return(usecase.AuthSession{}, usecase.ErrInvalidCredentials)

		w := performRequest(newRouter(uc), http.MethodPost, "/v1/auth/signin", `{"email":"dono@oficina.com","password":"errada"}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
