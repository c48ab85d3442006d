package models

import "time"

// Transaction is an immutable record of a completed sale. Items are a
// snapshot copied from the originating order, so later catalog or order
// changes never rewrite history.
type Transaction struct {
	ID            string      `json:"id"`
	Timestamp     time.Time   `json:"timestamp"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
	PaymentMethod string      `json:"paymentMethod,omitempty"`
	OrderID       string      `json:"orderId,omitempty"`
}

// DailyStats are the backend-computed figures for the current day. They are
// derived remotely, never recomputed from the local transaction cache, so
// "today" always means the store's definition of today.
type DailyStats struct {
	Date              string             `json:"date"`
	TotalRevenue      float64            `json:"totalRevenue"`
	TotalOrders       int                `json:"totalOrders"`
	AverageOrderValue float64            `json:"averageOrderValue"`
	PaymentMethods    map[string]float64 `json:"paymentMethods,omitempty"`
}

// PeriodStats are backend-computed figures for an arbitrary date range.
type PeriodStats struct {
	StartDate         string              `json:"startDate"`
	EndDate           string              `json:"endDate"`
	TotalRevenue      float64             `json:"totalRevenue"`
	TotalOrders       int                 `json:"totalOrders"`
	AverageOrderValue float64             `json:"averageOrderValue"`
	Days              map[string]DayStats `json:"days,omitempty"`
}

// DayStats is one day's bucket inside a period breakdown.
type DayStats struct {
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}
