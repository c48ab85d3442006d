package services

import (
	"context"
	"sync"

	"github.com/zefilho/snack-pos/backend"
	"github.com/zefilho/snack-pos/models"
)

// MenuService owns the in-memory catalog cache. Every mutation goes to the
// remote store first; the cache only changes after a 2xx acknowledgment, so
// the local view is always a subset of confirmed remote state.
type MenuService struct {
	mu      sync.Mutex
	client  *backend.Client
	items   []models.MenuItem
	lastErr error
}

func NewMenuService(client *backend.Client) *MenuService {
	return &MenuService{client: client}
}

// Items returns a copy of the cached catalog.
func (s *MenuService) Items() []models.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

// Get looks up a cached menu item by identifier.
func (s *MenuService) Get(id string) (models.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.MenuItem{}, &models.NotFoundError{Resource: "menu item", ID: id}
}

// Refresh reloads the active catalog from the remote store.
func (s *MenuService) Refresh(ctx context.Context) error {
	items, err := s.client.ListMenuItems(ctx, true)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return err
	}
	s.items = items
	s.lastErr = nil
	return nil
}

// Add validates the item, creates it remotely and appends the stored copy
// (with its backend-assigned identifier) to the cache.
func (s *MenuService) Add(ctx context.Context, name string, price float64, category string) (models.MenuItem, error) {
	item, err := models.NewMenuItem(name, price, category)
	if err != nil {
		return models.MenuItem{}, err
	}
	created, err := s.client.CreateMenuItem(ctx, item)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return models.MenuItem{}, err
	}
	s.items = append(s.items, created)
	s.lastErr = nil
	return created, nil
}

// Remove deletes the item remotely, then drops it from the cache.
func (s *MenuService) Remove(ctx context.Context, id string) error {
	if err := s.client.DeleteMenuItem(ctx, id); err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.lastErr = nil
	return nil
}

// Categories asks the remote store for the known category labels.
func (s *MenuService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.client.ListCategories(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return nil, err
	}
	s.lastErr = nil
	return categories, nil
}

// LastError exposes the cache's most recent sync failure, empty when the
// last remote call succeeded.
func (s *MenuService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastErr != nil {
		return s.lastErr.Error()
	}
	return ""
}
