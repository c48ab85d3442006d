package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zefilho/snack-pos/backend"
	"github.com/zefilho/snack-pos/models"
)

func TestSalesService_RecordPrependsNewestFirst(t *testing.T) {
	seq := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /transactions", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		seq++
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id":             fmt.Sprintf("txn-%d", seq),
			"timestamp":      "2026-08-31T12:00:00Z",
			"total_amount":   body["total_amount"],
			"payment_method": body["payment_method"],
		})
	})
	sales := NewSalesService(newTestBackend(t, mux))

	items := []models.OrderItem{{MenuItem: coxinha(), Quantity: 1}}
	_, err := sales.Record(context.Background(), items, 5.00, "Dinheiro", "")
	require.NoError(t, err)
	_, err = sales.Record(context.Background(), items, 5.00, "Pix", "")
	require.NoError(t, err)

	transactions := sales.Transactions()
	require.Len(t, transactions, 2)
	assert.Equal(t, "txn-2", transactions[0].ID)
	assert.Equal(t, "txn-1", transactions[1].ID)
}

func TestSalesService_FailedRecordLeavesLedgerUntouched(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /transactions", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"error": "store unavailable"})
	})
	sales := NewSalesService(newTestBackend(t, mux))

	_, err := sales.Record(context.Background(), []models.OrderItem{{MenuItem: coxinha(), Quantity: 1}}, 5.00, "Dinheiro", "")
	require.Error(t, err)
	assert.Empty(t, sales.Transactions())
	assert.Equal(t, "store unavailable", sales.LastError())
}

func TestSalesService_MirrorPrepends(t *testing.T) {
	sales := NewSalesService(unusedBackend(t))

	sales.Mirror(models.Transaction{ID: "txn-1", Timestamp: time.Now()})
	sales.Mirror(models.Transaction{ID: "txn-2", Timestamp: time.Now()})

	transactions := sales.Transactions()
	require.Len(t, transactions, 2)
	assert.Equal(t, "txn-2", transactions[0].ID)
}

func TestSalesService_FilteredDoesNotDisturbCache(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /transactions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-08-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "Pix", r.URL.Query().Get("payment_method"))
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "txn-9", "timestamp": "2026-08-15T12:00:00Z", "total_amount": 12.5, "payment_method": "Pix"},
		})
	})
	sales := NewSalesService(newTestBackend(t, mux))
	sales.Mirror(models.Transaction{ID: "txn-local"})

	got, err := sales.Filtered(context.Background(), backend.TransactionFilter{
		StartDate:     "2026-08-01",
		PaymentMethod: "Pix",
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "txn-9", got[0].ID)

	cached := sales.Transactions()
	require.Len(t, cached, 1)
	assert.Equal(t, "txn-local", cached[0].ID)
}

func TestSalesService_DailyStatsComeFromStore(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /transactions/stats/daily", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"date":                "2026-08-31",
			"total_revenue":       150.0,
			"total_orders":        10,
			"average_order_value": 15.0,
		})
	})
	sales := NewSalesService(newTestBackend(t, mux))

	stats, err := sales.DailyStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 150.0, stats.TotalRevenue)
	assert.Equal(t, 10, stats.TotalOrders)
	assert.Equal(t, 15.0, stats.AverageOrderValue)
}
