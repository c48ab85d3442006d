package services

import (
	"context"
	"log"

	"github.com/zefilho/snack-pos/backend"
	"github.com/zefilho/snack-pos/config"
)

// Registry holds one coordinating service per cache. It is built once at
// startup and handed to the HTTP layer; nothing reaches for globals. Each
// cache is mutated only by its own service.
type Registry struct {
	Menu        *MenuService
	Customers   *CustomerService
	Tabs        *TabService
	Annotations *AnnotationService
	Sales       *SalesService
	Summary     *SummaryService
}

func New(cfg *config.Config, client *backend.Client) *Registry {
	customers := NewCustomerService(client)
	sales := NewSalesService(client)
	return &Registry{
		Menu:        NewMenuService(client),
		Customers:   customers,
		Tabs:        NewTabService(sales),
		Annotations: NewAnnotationService(client, customers, sales),
		Sales:       sales,
		Summary:     NewSummaryService(cfg, sales),
	}
}

// WarmUp loads every remote-backed cache. Failures are recorded per cache
// and logged but do not abort startup; a cache that failed to load serves
// its last-known-good (possibly empty) state until refreshed.
func (r *Registry) WarmUp(ctx context.Context) {
	if err := r.Menu.Refresh(ctx); err != nil {
		log.Printf("Failed to load menu catalog: %v", err)
	}
	if err := r.Customers.Refresh(ctx); err != nil {
		log.Printf("Failed to load customer registry: %v", err)
	}
	if err := r.Annotations.Refresh(ctx); err != nil {
		log.Printf("Failed to load annotations: %v", err)
	}
	if err := r.Sales.Refresh(ctx); err != nil {
		log.Printf("Failed to load transaction history: %v", err)
	}
}
