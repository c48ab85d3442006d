package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zefilho/snack-pos/backend"
	"github.com/zefilho/snack-pos/config"
	"github.com/zefilho/snack-pos/models"
	"github.com/zefilho/snack-pos/services"
)

// fakeStore is the minimal remote store the warm-up and the exercised
// routes need.
func fakeStore(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /menu-items", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "mi-1", "name": "Coxinha", "price": 5.0, "category": "Salgados", "is_active": true},
		})
	})
	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{})
	})
	mux.HandleFunc("GET /annotations", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{})
	})
	mux.HandleFunc("GET /transactions", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{})
	})
	mux.HandleFunc("POST /transactions", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id":             "txn-1",
			"timestamp":      "2026-08-31T12:00:00Z",
			"total_amount":   body["total_amount"],
			"payment_method": body["payment_method"],
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := fakeStore(t)
	cfg := &config.Config{
		AllowedOrigins: []string{"http://localhost:3000"},
	}
	client := backend.NewClient(srv.URL, 5*time.Second)
	registry := services.New(cfg, client)
	registry.WarmUp(context.Background())
	return SetupRouter(cfg, registry)
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTabLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "POST", "/api/tabs", `{"name":"Mesa 1"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var tab struct {
		ID          string  `json:"id"`
		Status      string  `json:"status"`
		TotalAmount float64 `json:"totalAmount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tab))
	require.NotEmpty(t, tab.ID)
	assert.Equal(t, "open", tab.Status)

	w = do(t, r, "POST", "/api/tabs/"+tab.ID+"/items", `{"menuItemId":"mi-1","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, "POST", "/api/tabs/"+tab.ID+"/items", `{"menuItemId":"mi-1","quantity":1}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated struct {
		Items       []struct{ Quantity int }
		TotalAmount float64 `json:"totalAmount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 3, updated.Items[0].Quantity)
	assert.Equal(t, 15.00, updated.TotalAmount)

	w = do(t, r, "POST", "/api/tabs/"+tab.ID+"/close", `{"paymentMethod":"Dinheiro"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var closed struct {
		Tab struct {
			Status string `json:"status"`
		} `json:"tab"`
		Transaction struct {
			ID          string  `json:"id"`
			TotalAmount float64 `json:"totalAmount"`
		} `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &closed))
	assert.Equal(t, "paid", closed.Tab.Status)
	assert.Equal(t, "txn-1", closed.Transaction.ID)
	assert.Equal(t, 15.00, closed.Transaction.TotalAmount)

	// Settled tabs reject further mutations.
	w = do(t, r, "POST", "/api/tabs/"+tab.ID+"/items", `{"menuItemId":"mi-1","quantity":1}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCloseEmptyTabConflicts(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "POST", "/api/tabs", `{"name":"Mesa 2"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var tab struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tab))

	w = do(t, r, "POST", "/api/tabs/"+tab.ID+"/close", `{"paymentMethod":"Dinheiro"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteWalkInCustomerRejected(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "DELETE", "/api/customers/"+models.WalkInCustomerID, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddItemUnknownMenuItem(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "POST", "/api/tabs", `{"name":"Mesa 3"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var tab struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tab))

	w = do(t, r, "POST", "/api/tabs/"+tab.ID+"/items", `{"menuItemId":"ghost","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, "GET", "/healthz", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
