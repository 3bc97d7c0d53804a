package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"oficina_pro/internal/adapter/persistence/repository"
	"oficina_pro/internal/infrastructure/config"
	"oficina_pro/internal/infrastructure/payments"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		App:  config.AppConfig{GinMode: gin.TestMode, Timezone: "America/Sao_Paulo"},
		Auth: config.AuthConfig{JWTSecret: "test-secret", TokenTTL: time.Hour},
	}
	gateway, err := payments.NewMercadoPagoGateway("", true)
	require.NoError(t, err)

	router, err := NewRouter(cfg, repository.NewDatasetMemoryRepository(), gateway)
	require.NoError(t, err)
	return router
}

func call(t *testing.T, r http.Handler, method, path, token string, body any) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	out := map[string]any{}
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	}
	return w.Code, out
}

func TestRouter_ShopFlow(t *testing.T) {
	r := newTestServer(t)

	code, _ := call(t, r, http.MethodGet, "/v1/ping", "", nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = call(t, r, http.MethodGet, "/v1/clients", "", nil)
	require.Equal(t, http.StatusUnauthorized, code)

	code, session := call(t, r, http.MethodPost, "/v1/auth/signup", "", map[string]any{"email": "dono@oficina.com", "password": "segredo1"})
	require.Equal(t, http.StatusCreated, code)
	token, _ := session["token"].(string)
	require.NotEmpty(t, token)

	code, _ = call(t, r, http.MethodPost, "/v1/auth/signin", "", map[string]any{"email": "dono@oficina.com", "password": "errada"})
	require.Equal(t, http.StatusUnauthorized, code)

	code, client := call(t, r, http.MethodPost, "/v1/clients", token, map[string]any{"nome": "Maria", "telefone": "(11) 98888-7777", "email": "maria@x.com"})
	require.Equal(t, http.StatusCreated, code)
	clientID := client["id"].(string)

	code, vehicle := call(t, r, http.MethodPost, "/v1/clients/"+clientID+"/vehicles", token, map[string]any{"placa": "ABC1D23", "marca": "Fiat", "modelo": "Uno"})
	require.Equal(t, http.StatusCreated, code)

	code, order := call(t, r, http.MethodPost, "/v1/orders", token, map[string]any{
		"cliente_id":        clientID,
		"veiculo_id":        vehicle["id"],
		"problema_relatado": "Barulho no freio",
		"km":                42000,
		"combustivel":       50,
	})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, float64(1), order["numero"])
	orderID := order["id"].(string)

	code, _ = call(t, r, http.MethodPost, "/v1/orders/"+orderID+"/payments", token, map[string]any{"payment_method_id": "pix"})
	require.Equal(t, http.StatusBadRequest, code, "an order without value cannot be charged")

	code, priced := call(t, r, http.MethodPost, "/v1/orders/"+orderID+"/items", token, map[string]any{"tipo": "peca", "descricao": "Pastilha", "quantidade": 2, "valor_unitario": 50})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, float64(100), priced["ordem"].(map[string]any)["valor_total"])

	code, priced = call(t, r, http.MethodPut, "/v1/orders/"+orderID+"/labor", token, map[string]any{"mao_de_obra": 30})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(130), priced["ordem"].(map[string]any)["valor_total"])

	code, details := call(t, r, http.MethodGet, "/v1/orders/"+orderID, token, nil)
	require.Equal(t, http.StatusOK, code)
	totals := details["totais"].(map[string]any)
	assert.Equal(t, float64(100), totals["pecas"])
	assert.Equal(t, float64(30), totals["mao_de_obra"])
	assert.Equal(t, float64(130), totals["valor_total"])

	code, quote := call(t, r, http.MethodGet, "/v1/orders/"+orderID+"/quote", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "5511988887777", quote["whatsapp_phone"])

	code, charge := call(t, r, http.MethodPost, "/v1/orders/"+orderID+"/payments", token, map[string]any{"payment_method_id": "pix"})
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "aprovado", charge["pagamento"].(map[string]any)["status"])
	assert.Equal(t, "concluida", charge["ordem"].(map[string]any)["status"])

	code, _ = call(t, r, http.MethodPost, "/v1/orders/"+orderID+"/payments", token, map[string]any{"payment_method_id": "pix"})
	require.Equal(t, http.StatusConflict, code)

	code, revenue := call(t, r, http.MethodGet, "/v1/dashboard/revenue", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, float64(1), revenue["total_ordens"])
}

func TestRouter_OwnershipIsolation(t *testing.T) {
	r := newTestServer(t)

	_, first := call(t, r, http.MethodPost, "/v1/auth/signup", "", map[string]any{"email": "a@oficina.com", "password": "segredo1"})
	_, second := call(t, r, http.MethodPost, "/v1/auth/signup", "", map[string]any{"email": "b@oficina.com", "password": "segredo1"})
	tokenA := first["token"].(string)
	tokenB := second["token"].(string)

	code, client := call(t, r, http.MethodPost, "/v1/clients", tokenA, map[string]any{"nome": "Maria", "telefone": "11999990000"})
	require.Equal(t, http.StatusCreated, code)

	code, _ = call(t, r, http.MethodGet, "/v1/clients/"+client["id"].(string), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, code)
}
