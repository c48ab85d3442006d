package services

import (
	"context"
	"sync"

	"github.com/zefilho/snack-pos/backend"
	"github.com/zefilho/snack-pos/models"
)

// refreshLimit caps how much history is pulled into the local ledger cache.
const refreshLimit = 100

// SalesService owns the append-only ledger cache of finalized transactions,
// newest first. The remote store is the durable, authoritative ordering; the
// cache is for display.
type SalesService struct {
	mu           sync.Mutex
	client       *backend.Client
	transactions []models.Transaction
	lastErr      error
}

func NewSalesService(client *backend.Client) *SalesService {
	return &SalesService{client: client}
}

// Transactions returns a copy of the cached ledger, newest first.
func (s *SalesService) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Refresh reloads recent history from the remote store.
func (s *SalesService) Refresh(ctx context.Context) error {
	transactions, err := s.client.ListTransactions(ctx, backend.TransactionFilter{Limit: refreshLimit})
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return err
	}
	s.transactions = transactions
	s.lastErr = nil
	return nil
}

// Filtered fetches transactions matching the filter straight from the
// remote store without disturbing the cache.
func (s *SalesService) Filtered(ctx context.Context, filter backend.TransactionFilter) ([]models.Transaction, error) {
	transactions, err := s.client.ListTransactions(ctx, filter)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return nil, err
	}
	return transactions, nil
}

// Record persists a new transaction remotely and, only on acknowledgment,
// prepends it to the cache. A failed remote call leaves the ledger unchanged
// so a sale can never appear locally without a confirmed remote record.
func (s *SalesService) Record(ctx context.Context, items []models.OrderItem, total float64, paymentMethod, orderID string) (models.Transaction, error) {
	created, err := s.client.CreateTransaction(ctx, items, total, paymentMethod, orderID)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return models.Transaction{}, err
	}
	s.transactions = append([]models.Transaction{created}, s.transactions...)
	s.lastErr = nil
	return created, nil
}

// Mirror prepends a transaction the store already recorded on its own, such
// as the one emitted by an annotation close.
func (s *SalesService) Mirror(txn models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]models.Transaction{txn}, s.transactions...)
}

// DailyStats returns today's figures as reported by the remote store. They
// are never re-derived from the local cache, so "today" cannot skew across
// time zones.
func (s *SalesService) DailyStats(ctx context.Context) (models.DailyStats, error) {
	stats, err := s.client.DailyStats(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return models.DailyStats{}, err
	}
	s.lastErr = nil
	return stats, nil
}

// PeriodStats returns store-computed figures for a date range.
func (s *SalesService) PeriodStats(ctx context.Context, startDate, endDate string) (models.PeriodStats, error) {
	stats, err := s.client.PeriodStats(ctx, startDate, endDate)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return models.PeriodStats{}, err
	}
	s.lastErr = nil
	return stats, nil
}

// LastError exposes the ledger's most recent sync failure.
func (s *SalesService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastErr != nil {
		return s.lastErr.Error()
	}
	return ""
}
