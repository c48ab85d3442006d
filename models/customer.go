package models

import "strings"

// WalkInCustomerID identifies the sentinel walk-in customer used for counter
// sales. It always exists in the registry and can never be removed.
const WalkInCustomerID = "walk-in"

// WalkInCustomerName is the display name of the sentinel customer.
const WalkInCustomerName = "Cliente Avulso"

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// NewCustomer validates customer input. The backend assigns the identifier.
func NewCustomer(name, phone string) (Customer, error) {
	if strings.TrimSpace(name) == "" {
		return Customer{}, &ValidationError{Field: "name", Message: "must not be empty"}
	}
	return Customer{Name: strings.TrimSpace(name), Phone: strings.TrimSpace(phone)}, nil
}

// WalkInCustomer returns the sentinel counter-sale customer.
func WalkInCustomer() Customer {
	return Customer{ID: WalkInCustomerID, Name: WalkInCustomerName}
}

func (c Customer) IsWalkIn() bool {
	return c.ID == WalkInCustomerID
}
