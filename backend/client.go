package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zefilho/snack-pos/models"
)

// APIError is a non-2xx reply from the remote store. Message carries the
// body's error field when the store sent one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the remote snack-bar store. It is the only place that
// knows the wire shape; everything past it speaks the domain model.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFrom(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func errorFrom(resp *http.Response) error {
	msg := fmt.Sprintf("HTTP error! status: %d", resp.StatusCode)
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error != "" {
		msg = payload.Error
	}
	return &APIError{StatusCode: resp.StatusCode, Message: msg}
}

// Customers

func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var payload []customerPayload
	if err := c.do(ctx, http.MethodGet, "/customers", nil, nil, &payload); err != nil {
		return nil, err
	}
	customers := make([]models.Customer, 0, len(payload))
	for _, p := range payload {
		customers = append(customers, p.toDomain())
	}
	return customers, nil
}

func (c *Client) CreateCustomer(ctx context.Context, name, phone string) (models.Customer, error) {
	var payload customerPayload
	req := createCustomerRequest{Name: name, Phone: phone}
	if err := c.do(ctx, http.MethodPost, "/customers", nil, req, &payload); err != nil {
		return models.Customer{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/customers/"+id, nil, nil, nil)
}

// Menu items

func (c *Client) ListMenuItems(ctx context.Context, activeOnly bool) ([]models.MenuItem, error) {
	query := url.Values{"active_only": []string{strconv.FormatBool(activeOnly)}}
	var payload []menuItemPayload
	if err := c.do(ctx, http.MethodGet, "/menu-items", query, nil, &payload); err != nil {
		return nil, err
	}
	items := make([]models.MenuItem, 0, len(payload))
	for _, p := range payload {
		items = append(items, p.toDomain())
	}
	return items, nil
}

func (c *Client) CreateMenuItem(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	var payload menuItemPayload
	req := createMenuItemRequest{Name: item.Name, Price: item.Price, Category: item.Category}
	if err := c.do(ctx, http.MethodPost, "/menu-items", nil, req, &payload); err != nil {
		return models.MenuItem{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) DeleteMenuItem(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/menu-items/"+id, nil, nil, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/menu-items/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Annotations

func (c *Client) ListAnnotations(ctx context.Context, status string) ([]*models.Order, error) {
	var query url.Values
	if status != "" {
		query = url.Values{"status": []string{status}}
	}
	var payload []annotationPayload
	if err := c.do(ctx, http.MethodGet, "/annotations", query, nil, &payload); err != nil {
		return nil, err
	}
	orders := make([]*models.Order, 0, len(payload))
	for _, p := range payload {
		orders = append(orders, p.toDomain())
	}
	return orders, nil
}

func (c *Client) CreateAnnotation(ctx context.Context, customerID, customerName string) (*models.Order, error) {
	var payload annotationPayload
	req := createAnnotationRequest{CustomerID: customerID, CustomerName: customerName}
	if err := c.do(ctx, http.MethodPost, "/annotations", nil, req, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

func (c *Client) GetAnnotation(ctx context.Context, id string) (*models.Order, error) {
	var payload annotationPayload
	if err := c.do(ctx, http.MethodGet, "/annotations/"+id, nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

func (c *Client) AddAnnotationItem(ctx context.Context, id, menuItemID string, quantity int) (*models.Order, error) {
	var payload annotationPayload
	req := addItemRequest{MenuItemID: menuItemID, Quantity: quantity}
	if err := c.do(ctx, http.MethodPost, "/annotations/"+id+"/items", nil, req, &payload); err != nil {
		return nil, err
	}
	return payload.toDomain(), nil
}

// CloseAnnotation closes the annotation and records its transaction in a
// single backend call, so the status transition and the ledger entry commit
// together or not at all.
func (c *Client) CloseAnnotation(ctx context.Context, id, paymentMethod string) (*models.Order, models.Transaction, error) {
	var payload closeAnnotationResponse
	req := closeAnnotationRequest{PaymentMethod: paymentMethod}
	if err := c.do(ctx, http.MethodPost, "/annotations/"+id+"/close", nil, req, &payload); err != nil {
		return nil, models.Transaction{}, err
	}
	return payload.Annotation.toDomain(), payload.Transaction.toDomain(), nil
}

// Transactions

// TransactionFilter narrows ListTransactions. Zero values are omitted.
type TransactionFilter struct {
	StartDate     string
	EndDate       string
	PaymentMethod string
	Limit         int
}

func (c *Client) ListTransactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error) {
	query := url.Values{}
	if filter.StartDate != "" {
		query.Set("start_date", filter.StartDate)
	}
	if filter.EndDate != "" {
		query.Set("end_date", filter.EndDate)
	}
	if filter.PaymentMethod != "" {
		query.Set("payment_method", filter.PaymentMethod)
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	var payload []transactionPayload
	if err := c.do(ctx, http.MethodGet, "/transactions", query, nil, &payload); err != nil {
		return nil, err
	}
	transactions := make([]models.Transaction, 0, len(payload))
	for _, p := range payload {
		transactions = append(transactions, p.toDomain())
	}
	return transactions, nil
}

func (c *Client) CreateTransaction(ctx context.Context, items []models.OrderItem, total float64, paymentMethod, orderID string) (models.Transaction, error) {
	req := createTransactionRequest{
		Items:         toTransactionItems(items),
		TotalAmount:   total,
		PaymentMethod: paymentMethod,
		AnnotationID:  orderID,
	}
	var payload transactionPayload
	if err := c.do(ctx, http.MethodPost, "/transactions", nil, req, &payload); err != nil {
		return models.Transaction{}, err
	}
	txn := payload.toDomain()
	// Some store versions echo the transaction without its lines; the local
	// snapshot is authoritative for display either way.
	if len(txn.Items) == 0 {
		txn.Items = items
	}
	if txn.OrderID == "" {
		txn.OrderID = orderID
	}
	return txn, nil
}

func (c *Client) DailyStats(ctx context.Context) (models.DailyStats, error) {
	var payload dailyStatsPayload
	if err := c.do(ctx, http.MethodGet, "/transactions/stats/daily", nil, nil, &payload); err != nil {
		return models.DailyStats{}, err
	}
	return payload.toDomain(), nil
}

func (c *Client) PeriodStats(ctx context.Context, startDate, endDate string) (models.PeriodStats, error) {
	query := url.Values{
		"start_date": []string{startDate},
		"end_date":   []string{endDate},
	}
	var payload periodStatsPayload
	if err := c.do(ctx, http.MethodGet, "/transactions/stats/period", query, nil, &payload); err != nil {
		return models.PeriodStats{}, err
	}
	return payload.toDomain(), nil
}
