package models

import (
	"strings"
	"time"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusPaid   Status = "paid"
	StatusClosed Status = "closed"
)

// OrderItem is a quantity of one menu item. The menu item is copied at add
// time; the line keeps the price it was sold at.
type OrderItem struct {
	MenuItem MenuItem `json:"menuItem"`
	Quantity int      `json:"quantity"`
}

// NewOrderItem rejects non-positive quantities at construction so no call
// site can slip a zero or negative line into an order.
func NewOrderItem(item MenuItem, quantity int) (OrderItem, error) {
	if quantity < 1 {
		return OrderItem{}, &ValidationError{Field: "quantity", Message: "must be at least 1"}
	}
	return OrderItem{MenuItem: item, Quantity: quantity}, nil
}

// TotalPrice is recomputed on every read and never stored, so it cannot
// drift from the snapshotted unit price and the quantity.
func (i OrderItem) TotalPrice() float64 {
	return i.MenuItem.Price * float64(i.Quantity)
}

// Order is an open running order. It covers both front-of-house variants:
// a named tab ("Mesa 1", CustomerID empty) and a customer annotation
// (CustomerID set, Label carries the customer name).
type Order struct {
	ID         string      `json:"id"`
	Label      string      `json:"label"`
	CustomerID string      `json:"customerId,omitempty"`
	Items      []OrderItem `json:"items"`
	Status     Status      `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
	ClosedAt   *time.Time  `json:"closedAt,omitempty"`
}

func NewOrder(id, label, customerID string, now time.Time) (*Order, error) {
	if strings.TrimSpace(label) == "" {
		return nil, &ValidationError{Field: "label", Message: "must not be empty"}
	}
	return &Order{
		ID:         id,
		Label:      strings.TrimSpace(label),
		CustomerID: customerID,
		Status:     StatusOpen,
		CreatedAt:  now,
	}, nil
}

// TotalAmount sums the line totals. It is derived on every call so the
// total can never disagree with the items.
func (o *Order) TotalAmount() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.TotalPrice()
	}
	return sum
}

// AddItem merges with an existing line for the same menu item by summing
// quantities; otherwise the line is appended, preserving insertion order.
func (o *Order) AddItem(item MenuItem, quantity int) error {
	if o.Status != StatusOpen {
		return &InvalidStateError{Op: "add item", Status: o.Status}
	}
	line, err := NewOrderItem(item, quantity)
	if err != nil {
		return err
	}
	for i := range o.Items {
		if o.Items[i].MenuItem.ID == item.ID {
			o.Items[i].Quantity += quantity
			return nil
		}
	}
	o.Items = append(o.Items, line)
	return nil
}

// RemoveItem drops the whole line for menuItemID, not a decrement.
// Removing an absent line is a no-op.
func (o *Order) RemoveItem(menuItemID string) error {
	if o.Status != StatusOpen {
		return &InvalidStateError{Op: "remove item", Status: o.Status}
	}
	for i := range o.Items {
		if o.Items[i].MenuItem.ID == menuItemID {
			o.Items = append(o.Items[:i], o.Items[i+1:]...)
			return nil
		}
	}
	return nil
}

// CanClose reports whether the order may be closed right now. Closing an
// empty order is rejected so a zero-value transaction can never be recorded.
func (o *Order) CanClose() error {
	if o.Status != StatusOpen {
		return &InvalidStateError{Op: "close", Status: o.Status}
	}
	if len(o.Items) == 0 {
		return &InvalidStateError{Op: "close", Status: o.Status, Reason: "order has no items"}
	}
	return nil
}

// Close transitions the order to paid. Paid is terminal.
func (o *Order) Close(now time.Time) error {
	if err := o.CanClose(); err != nil {
		return err
	}
	o.Status = StatusPaid
	o.ClosedAt = &now
	return nil
}

// ItemsSnapshot copies the current lines so the caller's view is decoupled
// from later mutation of the order.
func (o *Order) ItemsSnapshot() []OrderItem {
	snapshot := make([]OrderItem, len(o.Items))
	copy(snapshot, o.Items)
	return snapshot
}

// Clone returns an independent copy of the order.
func (o *Order) Clone() *Order {
	clone := *o
	clone.Items = o.ItemsSnapshot()
	if o.ClosedAt != nil {
		closedAt := *o.ClosedAt
		clone.ClosedAt = &closedAt
	}
	return &clone
}
