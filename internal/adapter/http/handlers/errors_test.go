package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"oficina_pro/internal/adapter/http/middleware"
	"oficina_pro/internal/usecase"
	"oficina_pro/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const testUserID = "user-1"

// newTestRouter returns an engine whose requests are authenticated as testUserID.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, testUserID)
		c.Next()
	})
	return r
}

func performRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMapCommonError(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{name: "version conflict", err: fmt.Errorf("save: %w", interfaces.ErrDatasetVersionConflict), status: http.StatusConflict, code: "CONCURRENT_UPDATE"},
		{name: "validation", err: usecase.ErrInvalidItemQuantity, status: http.StatusBadRequest, code: "INVALID_REQUEST", message: "Item quantity must be positive"},
		{name: "not found", err: usecase.ErrUserNotFound, status: http.StatusNotFound, code: "NOT_FOUND", message: "User not found"},
		{name: "conflict", err: usecase.ErrChecklistAlreadySeeded, status: http.StatusConflict, code: "CONFLICT", message: "Checklist already seeded"},
		{name: "gateway rejection", err: usecase.ErrPaymentGatewayBadRequest, status: http.StatusBadRequest, code: "INVALID_REQUEST", message: "Payment gateway rejected the request"},
		{name: "unknown", err: errors.New("disk full"), status: http.StatusInternalServerError, code: "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			appErr := mapCommonError(tc.err)
			if appErr.HTTPStatus != tc.status || appErr.Code != tc.code {
				t.Fatalf("expected %d/%s, got %d/%s", tc.status, tc.code, appErr.HTTPStatus, appErr.Code)
			}
			if tc.message != "" && appErr.Message != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, appErr.Message)
			}
			if !errors.Is(appErr, tc.err) {
				t.Fatalf("expected cause to be kept")
			}
		})
	}
}
