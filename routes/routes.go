package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/zefilho/snack-pos/config"
	"github.com/zefilho/snack-pos/controllers"
	"github.com/zefilho/snack-pos/services"
)

func SetupRouter(cfg *config.Config, registry *services.Registry) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	menuController := controllers.NewMenuController(registry.Menu)
	customerController := controllers.NewCustomerController(registry.Customers)
	tabController := controllers.NewTabController(registry.Tabs, registry.Menu)
	annotationController := controllers.NewAnnotationController(registry.Annotations)
	salesController := controllers.NewSalesController(registry.Sales)
	dashboardController := controllers.NewDashboardController(registry)

	api := r.Group("/api")
	{
		// Menu routes
		menu := api.Group("/menu-items")
		{
			menu.POST("", menuController.CreateMenuItem)
			menu.GET("", menuController.GetMenuItems)
			menu.GET("/categories", menuController.GetCategories)
			menu.DELETE("/:id", menuController.DeleteMenuItem)
		}

		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", customerController.CreateCustomer)
			customers.GET("", customerController.GetCustomers)
			customers.GET("/:id", customerController.GetCustomer)
			customers.DELETE("/:id", customerController.DeleteCustomer)
		}

		// Tab routes
		tabs := api.Group("/tabs")
		{
			tabs.POST("", tabController.CreateTab)
			tabs.GET("", tabController.GetTabs)
			tabs.GET("/:id", tabController.GetTab)
			tabs.POST("/:id/items", tabController.AddItem)
			tabs.DELETE("/:id/items/:menuItemId", tabController.RemoveItem)
			tabs.POST("/:id/close", tabController.CloseTab)
		}

		// Annotation routes
		annotations := api.Group("/annotations")
		{
			annotations.POST("", annotationController.CreateAnnotation)
			annotations.GET("", annotationController.GetAnnotations)
			annotations.GET("/:id", annotationController.GetAnnotation)
			annotations.POST("/:id/items", annotationController.AddItem)
			annotations.POST("/:id/close", annotationController.CloseAnnotation)
		}

		// Sales routes
		sales := api.Group("/sales")
		{
			sales.GET("", salesController.GetTransactions)
			sales.GET("/stats/daily", salesController.GetDailyStats)
			sales.GET("/stats/period", salesController.GetPeriodStats)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)
	}

	return r
}
