package backend

import (
	"time"

	"github.com/zefilho/snack-pos/models"
)

// Wire payloads use the store's snake_case field naming. Translation to the
// camelCase domain model happens here and nowhere else.

type customerPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type createCustomerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type menuItemPayload struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	IsActive bool    `json:"is_active"`
}

type createMenuItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
}

// menuItemRef is the nested menu item inside an order line. The line's
// unit_price lives beside it, not inside it.
type menuItemRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type orderItemPayload struct {
	MenuItem  menuItemRef `json:"menu_item"`
	UnitPrice float64     `json:"unit_price"`
	Quantity  int         `json:"quantity"`
}

type annotationPayload struct {
	ID           string             `json:"id"`
	CustomerID   string             `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	ClosedAt     *time.Time         `json:"closed_at,omitempty"`
	Items        []orderItemPayload `json:"items"`
}

type createAnnotationRequest struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
}

type addItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type closeAnnotationRequest struct {
	PaymentMethod string `json:"payment_method"`
}

type closeAnnotationResponse struct {
	Annotation  annotationPayload  `json:"annotation"`
	Transaction transactionPayload `json:"transaction"`
}

type transactionPayload struct {
	ID            string             `json:"id"`
	Timestamp     time.Time          `json:"timestamp"`
	Items         []orderItemPayload `json:"items"`
	TotalAmount   float64            `json:"total_amount"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	AnnotationID  string             `json:"annotation_id,omitempty"`
}

type transactionItemRequest struct {
	MenuItemID string  `json:"menu_item_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
}

type createTransactionRequest struct {
	Items         []transactionItemRequest `json:"items"`
	TotalAmount   float64                  `json:"total_amount"`
	PaymentMethod string                   `json:"payment_method,omitempty"`
	AnnotationID  string                   `json:"annotation_id,omitempty"`
}

type dailyStatsPayload struct {
	Date              string             `json:"date"`
	TotalRevenue      float64            `json:"total_revenue"`
	TotalOrders       int                `json:"total_orders"`
	AverageOrderValue float64            `json:"average_order_value"`
	PaymentMethods    map[string]float64 `json:"payment_methods"`
}

type periodStatsPayload struct {
	StartDate         string                 `json:"start_date"`
	EndDate           string                 `json:"end_date"`
	TotalRevenue      float64                `json:"total_revenue"`
	TotalOrders       int                    `json:"total_orders"`
	AverageOrderValue float64                `json:"average_order_value"`
	DailyStats        map[string]dayPayload  `json:"daily_stats"`
}

type dayPayload struct {
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

func (p customerPayload) toDomain() models.Customer {
	return models.Customer{ID: p.ID, Name: p.Name, Phone: p.Phone}
}

func (p menuItemPayload) toDomain() models.MenuItem {
	return models.MenuItem{ID: p.ID, Name: p.Name, Price: p.Price, Category: p.Category, IsActive: p.IsActive}
}

func (p orderItemPayload) toDomain() models.OrderItem {
	return models.OrderItem{
		MenuItem: models.MenuItem{
			ID:       p.MenuItem.ID,
			Name:     p.MenuItem.Name,
			Price:    p.UnitPrice,
			Category: p.MenuItem.Category,
			IsActive: true,
		},
		Quantity: p.Quantity,
	}
}

func (p annotationPayload) toDomain() *models.Order {
	order := &models.Order{
		ID:         p.ID,
		Label:      p.CustomerName,
		CustomerID: p.CustomerID,
		Status:     models.Status(p.Status),
		CreatedAt:  p.CreatedAt,
		ClosedAt:   p.ClosedAt,
	}
	order.Items = make([]models.OrderItem, 0, len(p.Items))
	for _, item := range p.Items {
		order.Items = append(order.Items, item.toDomain())
	}
	return order
}

func (p transactionPayload) toDomain() models.Transaction {
	txn := models.Transaction{
		ID:            p.ID,
		Timestamp:     p.Timestamp,
		TotalAmount:   p.TotalAmount,
		PaymentMethod: p.PaymentMethod,
		OrderID:       p.AnnotationID,
	}
	txn.Items = make([]models.OrderItem, 0, len(p.Items))
	for _, item := range p.Items {
		txn.Items = append(txn.Items, item.toDomain())
	}
	return txn
}

func (p dailyStatsPayload) toDomain() models.DailyStats {
	return models.DailyStats{
		Date:              p.Date,
		TotalRevenue:      p.TotalRevenue,
		TotalOrders:       p.TotalOrders,
		AverageOrderValue: p.AverageOrderValue,
		PaymentMethods:    p.PaymentMethods,
	}
}

func (p periodStatsPayload) toDomain() models.PeriodStats {
	stats := models.PeriodStats{
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		TotalRevenue:      p.TotalRevenue,
		TotalOrders:       p.TotalOrders,
		AverageOrderValue: p.AverageOrderValue,
	}
	if len(p.DailyStats) > 0 {
		stats.Days = make(map[string]models.DayStats, len(p.DailyStats))
		for day, bucket := range p.DailyStats {
			stats.Days[day] = models.DayStats{Revenue: bucket.Revenue, Orders: bucket.Orders}
		}
	}
	return stats
}

func toTransactionItems(items []models.OrderItem) []transactionItemRequest {
	out := make([]transactionItemRequest, 0, len(items))
	for _, item := range items {
		out = append(out, transactionItemRequest{
			MenuItemID: item.MenuItem.ID,
			Quantity:   item.Quantity,
			UnitPrice:  item.MenuItem.Price,
		})
	}
	return out
}
