package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"oficina_pro/internal/adapter/http/handlers/mocks"
	"oficina_pro/internal/domain/entities"
	"oficina_pro/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestClientHandler(t *testing.T) {
	t.Run("create client missing phone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := newTestRouter()
		r.POST("/v1/clients", h.CreateClient)

		w := performRequest(r, http.MethodPost, "/v1/clients", `{"nome":"Maria"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create client success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := newTestRouter()
		r.POST("/v1/clients", h.CreateClient)

		uc.EXPECT().
			CreateClient(gomock.Any(), testUserID, usecase.ClientInput{Name: "Maria", Phone: "(11) 98888-7777"}).
			Return(entities.Client{ID: "c1", Name: "Maria", Phone: "(11) 98888-7777", UserID: testUserID}, nil)

		w := performRequest(r, http.MethodPost, "/v1/clients", `{"nome":"Maria","telefone":"(11) 98888-7777"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list forwards search", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := newTestRouter()
		r.GET("/v1/clients", h.ListClients)

		uc.EXPECT().ListClients(gomock.Any(), testUserID, "mar").Return([]entities.Client{{ID: "c1", Name: "Maria"}}, nil)

		w := performRequest(r, http.MethodGet, "/v1/clients?q=mar", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(body) != 1 || body[0]["nome"] != "Maria" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := newTestRouter()
		r.GET("/v1/clients/:client_id", h.GetClient)

		uc.EXPECT().GetClient(gomock.Any(), testUserID, "c9").Return(usecase.ClientDetails{}, usecase.ErrClientNotFound)

		w := performRequest(r, http.MethodGet, "/v1/clients/c9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("create vehicle uses path client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientUseCase(ctrl)
		h := NewClientHandler(uc)

		r := newTestRouter()
		r.POST("/v1/clients/:client_id/vehicles", h.CreateVehicle)

		uc.EXPECT().
			CreateVehicle(gomock.Any(), testUserID, usecase.VehicleInput{ClientID: "c1", Plate: "ABC1D23", Make: "Fiat", Model: "Uno"}).
			Return(entities.Vehicle{ID: "v1", ClientID: "c1", Plate: "ABC1D23", Make: "Fiat", Model: "Uno"}, nil)

		w := performRequest(r, http.MethodPost, "/v1/clients/c1/vehicles", `{"placa":"ABC1D23","marca":"Fiat","modelo":"Uno"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}
