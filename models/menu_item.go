package models

import "strings"

// MenuItem is one sellable catalog entry. Order lines snapshot it by value,
// so catalog edits never reprice lines that were already taken.
type MenuItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	IsActive bool    `json:"isActive"`
}

// NewMenuItem validates catalog input. The backend assigns the identifier.
func NewMenuItem(name string, price float64, category string) (MenuItem, error) {
	if strings.TrimSpace(name) == "" {
		return MenuItem{}, &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if price <= 0 {
		return MenuItem{}, &ValidationError{Field: "price", Message: "must be positive"}
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = "Geral"
	}
	return MenuItem{Name: strings.TrimSpace(name), Price: price, Category: category, IsActive: true}, nil
}
