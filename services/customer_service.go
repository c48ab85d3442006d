package services

import (
	"context"
	"sync"

	"github.com/zefilho/snack-pos/backend"
	"github.com/zefilho/snack-pos/models"
)

// CustomerService owns the in-memory customer registry. Mutations commit
// remotely before touching the cache.
type CustomerService struct {
	mu        sync.Mutex
	client    *backend.Client
	customers []models.Customer
	lastErr   error
}

func NewCustomerService(client *backend.Client) *CustomerService {
	return &CustomerService{client: client, customers: []models.Customer{models.WalkInCustomer()}}
}

// Customers returns a copy of the cached registry.
func (s *CustomerService) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Get looks up a cached customer by identifier.
func (s *CustomerService) Get(id string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, customer := range s.customers {
		if customer.ID == id {
			return customer, nil
		}
	}
	return models.Customer{}, &models.NotFoundError{Resource: "customer", ID: id}
}

// Refresh reloads the registry from the remote store. The walk-in sentinel
// is re-seeded at the head when the store does not carry it.
func (s *CustomerService) Refresh(ctx context.Context) error {
	customers, err := s.client.ListCustomers(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return err
	}
	s.customers = ensureWalkIn(customers)
	s.lastErr = nil
	return nil
}

// Add validates the customer, creates it remotely and caches the stored copy.
func (s *CustomerService) Add(ctx context.Context, name, phone string) (models.Customer, error) {
	customer, err := models.NewCustomer(name, phone)
	if err != nil {
		return models.Customer{}, err
	}
	created, err := s.client.CreateCustomer(ctx, customer.Name, customer.Phone)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return models.Customer{}, err
	}
	s.customers = append(s.customers, created)
	s.lastErr = nil
	return created, nil
}

// Remove deletes a customer. The walk-in sentinel is rejected before any
// remote call.
func (s *CustomerService) Remove(ctx context.Context, id string) error {
	if id == models.WalkInCustomerID {
		return &models.ValidationError{Message: "the walk-in customer cannot be removed"}
	}
	if err := s.client.DeleteCustomer(ctx, id); err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			break
		}
	}
	s.lastErr = nil
	return nil
}

// LastError exposes the cache's most recent sync failure.
func (s *CustomerService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastErr != nil {
		return s.lastErr.Error()
	}
	return ""
}

func ensureWalkIn(customers []models.Customer) []models.Customer {
	for _, customer := range customers {
		if customer.IsWalkIn() {
			return customers
		}
	}
	return append([]models.Customer{models.WalkInCustomer()}, customers...)
}
