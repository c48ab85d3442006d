package controllers

import (
	"time"

	"github.com/zefilho/snack-pos/models"
)

// Response views add the derived totals that the domain model computes on
// read rather than storing.

type itemView struct {
	MenuItem   models.MenuItem `json:"menuItem"`
	Quantity   int             `json:"quantity"`
	TotalPrice float64         `json:"totalPrice"`
}

type orderView struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	CustomerID  string     `json:"customerId,omitempty"`
	Items       []itemView `json:"items"`
	Status      string     `json:"status"`
	TotalAmount float64    `json:"totalAmount"`
	CreatedAt   time.Time  `json:"createdAt"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
}

type transactionView struct {
	ID            string     `json:"id"`
	Timestamp     time.Time  `json:"timestamp"`
	Items         []itemView `json:"items"`
	TotalAmount   float64    `json:"totalAmount"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	OrderID       string     `json:"orderId,omitempty"`
}

func newItemViews(items []models.OrderItem) []itemView {
	views := make([]itemView, 0, len(items))
	for _, item := range items {
		views = append(views, itemView{
			MenuItem:   item.MenuItem,
			Quantity:   item.Quantity,
			TotalPrice: item.TotalPrice(),
		})
	}
	return views
}

func newOrderView(order *models.Order) orderView {
	return orderView{
		ID:          order.ID,
		Label:       order.Label,
		CustomerID:  order.CustomerID,
		Items:       newItemViews(order.Items),
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount(),
		CreatedAt:   order.CreatedAt,
		ClosedAt:    order.ClosedAt,
	}
}

func newOrderViews(orders []*models.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, newOrderView(order))
	}
	return views
}

func newTransactionView(txn models.Transaction) transactionView {
	return transactionView{
		ID:            txn.ID,
		Timestamp:     txn.Timestamp,
		Items:         newItemViews(txn.Items),
		TotalAmount:   txn.TotalAmount,
		PaymentMethod: txn.PaymentMethod,
		OrderID:       txn.OrderID,
	}
}

func newTransactionViews(txns []models.Transaction) []transactionView {
	views := make([]transactionView, 0, len(txns))
	for _, txn := range txns {
		views = append(views, newTransactionView(txn))
	}
	return views
}
