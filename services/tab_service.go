package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zefilho/snack-pos/models"
)

// TabService owns the named-tab cache. Tabs live only in this process and
// never hit the remote store themselves; the one remote side effect is the
// transaction recorded when a tab is closed. The mutex serializes mutations
// so two concurrent add-item calls cannot lose an update.
type TabService struct {
	mu      sync.Mutex
	sales   *SalesService
	tabs    []*models.Order
	lastErr error
}

func NewTabService(sales *SalesService) *TabService {
	return &TabService{sales: sales}
}

// Tabs returns independent copies of every tab, open and settled.
func (s *TabService) Tabs() []*models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Order, 0, len(s.tabs))
	for _, tab := range s.tabs {
		out = append(out, tab.Clone())
	}
	return out
}

// Create opens a new tab under a free-text name. Tabs accumulate after
// settlement for the session's history; they are never deleted.
func (s *TabService) Create(name string) (*models.Order, error) {
	tab, err := models.NewOrder(uuid.NewString(), name, "", time.Now())
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tabs = append(s.tabs, tab)
	return tab.Clone(), nil
}

// Get returns a copy of the tab with the given identifier.
func (s *TabService) Get(id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tab := s.find(id)
	if tab == nil {
		return nil, &models.NotFoundError{Resource: "tab", ID: id}
	}
	return tab.Clone(), nil
}

// AddItem adds a quantity of a menu item to an open tab, merging with an
// existing line for the same item.
func (s *TabService) AddItem(id string, item models.MenuItem, quantity int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tab := s.find(id)
	if tab == nil {
		return nil, &models.NotFoundError{Resource: "tab", ID: id}
	}
	if err := tab.AddItem(item, quantity); err != nil {
		return nil, err
	}
	return tab.Clone(), nil
}

// RemoveItem drops a whole line from an open tab.
func (s *TabService) RemoveItem(id, menuItemID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tab := s.find(id)
	if tab == nil {
		return nil, &models.NotFoundError{Resource: "tab", ID: id}
	}
	if err := tab.RemoveItem(menuItemID); err != nil {
		return nil, err
	}
	return tab.Clone(), nil
}

// Close settles a tab. The transaction is recorded remotely first and the
// tab is marked paid only after the store acknowledges it, so a tab can
// never show paid without a confirmed ledger entry. A failed record leaves
// the tab open and untouched.
func (s *TabService) Close(ctx context.Context, id, paymentMethod string) (*models.Order, models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tab := s.find(id)
	if tab == nil {
		return nil, models.Transaction{}, &models.NotFoundError{Resource: "tab", ID: id}
	}
	if err := tab.CanClose(); err != nil {
		return nil, models.Transaction{}, err
	}
	txn, err := s.sales.Record(ctx, tab.ItemsSnapshot(), tab.TotalAmount(), paymentMethod, tab.ID)
	if err != nil {
		s.lastErr = err
		return nil, models.Transaction{}, err
	}
	if err := tab.Close(time.Now()); err != nil {
		return nil, models.Transaction{}, err
	}
	s.lastErr = nil
	return tab.Clone(), txn, nil
}

// LastError exposes the cache's most recent sync failure.
func (s *TabService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastErr != nil {
		return s.lastErr.Error()
	}
	return ""
}

func (s *TabService) find(id string) *models.Order {
	for _, tab := range s.tabs {
		if tab.ID == id {
			return tab
		}
	}
	return nil
}
