package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zefilho/snack-pos/models"
	"github.com/zefilho/snack-pos/services"
)

// DashboardOverview is the landing-page summary: today's figures plus the
// current state of every cache.
type DashboardOverview struct {
	DailyRevenue      float64           `json:"dailyRevenue"`
	TotalOrdersToday  int               `json:"totalOrdersToday"`
	AverageOrderValue float64           `json:"averageOrderValue"`
	OpenTabs          int               `json:"openTabs"`
	OpenAnnotations   int               `json:"openAnnotations"`
	TotalCustomers    int               `json:"totalCustomers"`
	MenuItemCount     int               `json:"menuItemCount"`
	SyncErrors        map[string]string `json:"syncErrors,omitempty"`
}

// DashboardController aggregates the caches into a single overview.
type DashboardController struct {
	registry *services.Registry
}

func NewDashboardController(registry *services.Registry) *DashboardController {
	return &DashboardController{registry: registry}
}

// GetDashboardOverview returns the overview. A failing stats call does not
// fail the whole page; it is reported in syncErrors instead.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	overview := DashboardOverview{
		OpenTabs:        countOpen(dc.registry.Tabs.Tabs()),
		OpenAnnotations: countOpen(dc.registry.Annotations.Annotations()),
		TotalCustomers:  len(dc.registry.Customers.Customers()),
		MenuItemCount:   len(dc.registry.Menu.Items()),
	}

	if stats, err := dc.registry.Sales.DailyStats(c.Request.Context()); err == nil {
		overview.DailyRevenue = stats.TotalRevenue
		overview.TotalOrdersToday = stats.TotalOrders
		overview.AverageOrderValue = stats.AverageOrderValue
	}

	overview.SyncErrors = syncErrors(dc.registry)

	c.JSON(http.StatusOK, overview)
}

func countOpen(orders []*models.Order) int {
	count := 0
	for _, order := range orders {
		if order.Status == models.StatusOpen {
			count++
		}
	}
	return count
}

func syncErrors(registry *services.Registry) map[string]string {
	errs := map[string]string{}
	if msg := registry.Menu.LastError(); msg != "" {
		errs["menu"] = msg
	}
	if msg := registry.Customers.LastError(); msg != "" {
		errs["customers"] = msg
	}
	if msg := registry.Tabs.LastError(); msg != "" {
		errs["tabs"] = msg
	}
	if msg := registry.Annotations.LastError(); msg != "" {
		errs["annotations"] = msg
	}
	if msg := registry.Sales.LastError(); msg != "" {
		errs["sales"] = msg
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
