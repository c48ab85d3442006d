package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/zefilho/snack-pos/backend"
	"github.com/zefilho/snack-pos/config"
	"github.com/zefilho/snack-pos/routes"
	"github.com/zefilho/snack-pos/services"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	cfg := config.Load()
	client := backend.NewClient(cfg.BackendBaseURL, cfg.RequestTimeout)
	registry := services.New(cfg, client)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	registry.WarmUp(ctx)
	cancel()

	registry.Summary.StartScheduler()
	defer registry.Summary.Stop()

	r := routes.SetupRouter(cfg, registry)
	printRoutes(r)

	log.Printf("snack-pos listening on :%s (store at %s)", cfg.Port, cfg.BackendBaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
