package services

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zefilho/snack-pos/models"
)

func TestMenuService_AddCommitsAfterAck(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /menu-items", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Coxinha", body["name"])
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id": "mi-1", "name": body["name"], "price": body["price"],
			"category": body["category"], "is_active": true,
		})
	})
	menu := NewMenuService(newTestBackend(t, mux))

	created, err := menu.Add(context.Background(), "Coxinha", 5.00, "Salgados")
	require.NoError(t, err)
	assert.Equal(t, "mi-1", created.ID)

	got, err := menu.Get("mi-1")
	require.NoError(t, err)
	assert.Equal(t, 5.00, got.Price)
	assert.Empty(t, menu.LastError())
}

func TestMenuService_AddValidatesLocally(t *testing.T) {
	menu := NewMenuService(unusedBackend(t))

	var validationErr *models.ValidationError
	_, err := menu.Add(context.Background(), "", 5.00, "Salgados")
	require.ErrorAs(t, err, &validationErr)

	_, err = menu.Add(context.Background(), "Coxinha", -1, "Salgados")
	require.ErrorAs(t, err, &validationErr)

	assert.Empty(t, menu.Items())
}

func TestMenuService_RemoveCommitsAfterAck(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /menu-items", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "mi-1", "name": "Coxinha", "price": 5.0, "category": "Salgados", "is_active": true},
			{"id": "mi-2", "name": "Pastel", "price": 7.5, "category": "Salgados", "is_active": true},
		})
	})
	mux.HandleFunc("DELETE /menu-items/mi-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "Menu item deleted successfully"})
	})
	menu := NewMenuService(newTestBackend(t, mux))
	require.NoError(t, menu.Refresh(context.Background()))

	require.NoError(t, menu.Remove(context.Background(), "mi-1"))
	items := menu.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Pastel", items[0].Name)
}

func TestMenuService_FailedRemoveKeepsCache(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /menu-items", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "mi-1", "name": "Coxinha", "price": 5.0, "category": "Salgados", "is_active": true},
		})
	})
	mux.HandleFunc("DELETE /menu-items/mi-1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"error": "store unavailable"})
	})
	menu := NewMenuService(newTestBackend(t, mux))
	require.NoError(t, menu.Refresh(context.Background()))

	require.Error(t, menu.Remove(context.Background(), "mi-1"))
	assert.Len(t, menu.Items(), 1)
	assert.Equal(t, "store unavailable", menu.LastError())
}

func TestMenuService_Categories(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /menu-items/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]string{"Salgados", "Bebidas"})
	})
	menu := NewMenuService(newTestBackend(t, mux))

	categories, err := menu.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Salgados", "Bebidas"}, categories)
}
