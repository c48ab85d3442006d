package services

import (
	"context"
	"sync"

	"github.com/zefilho/snack-pos/backend"
	"github.com/zefilho/snack-pos/models"
)

// AnnotationService owns the customer-annotation cache. Annotations are
// fully remote-synced: every mutation is a store call whose response is
// mirrored back into the cache, and a failed call leaves the cache in its
// last-known-good state. Validation and state checks run locally before any
// remote call and short-circuit immediately.
type AnnotationService struct {
	mu          sync.Mutex
	client      *backend.Client
	customers   *CustomerService
	sales       *SalesService
	annotations []*models.Order
	lastErr     error
}

func NewAnnotationService(client *backend.Client, customers *CustomerService, sales *SalesService) *AnnotationService {
	return &AnnotationService{client: client, customers: customers, sales: sales}
}

// Annotations returns independent copies of every cached annotation.
func (s *AnnotationService) Annotations() []*models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Order, 0, len(s.annotations))
	for _, annotation := range s.annotations {
		out = append(out, annotation.Clone())
	}
	return out
}

// Get returns a copy of the annotation with the given identifier.
func (s *AnnotationService) Get(id string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	annotation := s.find(id)
	if annotation == nil {
		return nil, &models.NotFoundError{Resource: "annotation", ID: id}
	}
	return annotation.Clone(), nil
}

// Refresh reloads annotations from the remote store.
func (s *AnnotationService) Refresh(ctx context.Context) error {
	annotations, err := s.client.ListAnnotations(ctx, "")
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return err
	}
	s.annotations = annotations
	s.lastErr = nil
	return nil
}

// Create opens an annotation for a registered customer. The customer name
// is resolved from the registry; the walk-in sentinel is a valid owner.
func (s *AnnotationService) Create(ctx context.Context, customerID string) (*models.Order, error) {
	customer, err := s.customers.Get(customerID)
	if err != nil {
		return nil, err
	}
	created, err := s.client.CreateAnnotation(ctx, customer.ID, customer.Name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.lastErr = err
		return nil, err
	}
	s.annotations = append(s.annotations, created)
	s.lastErr = nil
	return created.Clone(), nil
}

// AddItem adds a quantity of a menu item to an open annotation. The open
// check and quantity validation run locally first; the store's response is
// then mirrored over the cached annotation, picking up its merge of
// duplicate lines.
func (s *AnnotationService) AddItem(ctx context.Context, id, menuItemID string, quantity int) (*models.Order, error) {
	if quantity < 1 {
		return nil, &models.ValidationError{Field: "quantity", Message: "must be at least 1"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	annotation := s.find(id)
	if annotation == nil {
		return nil, &models.NotFoundError{Resource: "annotation", ID: id}
	}
	if annotation.Status != models.StatusOpen {
		return nil, &models.InvalidStateError{Op: "add item", Status: annotation.Status}
	}
	updated, err := s.client.AddAnnotationItem(ctx, id, menuItemID, quantity)
	if err != nil {
		s.lastErr = err
		return nil, err
	}
	*annotation = *updated
	s.lastErr = nil
	return annotation.Clone(), nil
}

// Close settles an annotation. The store closes the annotation and records
// its transaction in one call, so both commit together; the response is
// mirrored into the cache and the ledger.
func (s *AnnotationService) Close(ctx context.Context, id, paymentMethod string) (*models.Order, models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	annotation := s.find(id)
	if annotation == nil {
		return nil, models.Transaction{}, &models.NotFoundError{Resource: "annotation", ID: id}
	}
	if err := annotation.CanClose(); err != nil {
		return nil, models.Transaction{}, err
	}
	closed, txn, err := s.client.CloseAnnotation(ctx, id, paymentMethod)
	if err != nil {
		s.lastErr = err
		return nil, models.Transaction{}, err
	}
	// Close responses may omit the line items; the cached lines are kept in
	// that case, matching what was just settled.
	if len(closed.Items) == 0 {
		closed.Items = annotation.ItemsSnapshot()
	}
	if len(txn.Items) == 0 {
		txn.Items = annotation.ItemsSnapshot()
	}
	*annotation = *closed
	s.sales.Mirror(txn)
	s.lastErr = nil
	return annotation.Clone(), txn, nil
}

// LastError exposes the cache's most recent sync failure.
func (s *AnnotationService) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastErr != nil {
		return s.lastErr.Error()
	}
	return ""
}

func (s *AnnotationService) find(id string) *models.Order {
	for _, annotation := range s.annotations {
		if annotation.ID == id {
			return annotation
		}
	}
	return nil
}
