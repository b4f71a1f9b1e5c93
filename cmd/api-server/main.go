package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"libraryhub/internal/config"
	"libraryhub/internal/ingestion/gemini"
	"libraryhub/internal/library/handler"
	"libraryhub/internal/library/models"
	"libraryhub/internal/library/repository"
	"libraryhub/internal/library/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	log.Printf("[INFO] mode:%s", cfg.GoEnv)

	// Application state lives for the lifetime of the process.
	var store *repository.Store
	if cfg.SeedDemoData {
		store = repository.NewSeededStore()
		log.Printf("[INFO] store seeded with demo data")
	} else {
		store = repository.NewStore()
	}

	gateway, err := gemini.NewClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AIRequestTimeout, cfg.AIRequestsPerMinute)
	if err != nil {
		log.Fatalf("could not create gemini client: %v", err)
	}
	log.Printf("[INFO] gemini gateway ready (model %s)", cfg.GeminiModel)

	books := service.NewBookService(store)
	students := service.NewStudentService(store)
	borrows := service.NewBorrowService(store, store, store)
	stats := service.NewStatsService(store, store, store)
	assistant := service.NewAssistantService(store, store, store)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	api := r.Group("/api/v1")
	// Shell navigation: the closed set of view identifiers.
	api.GET("/views", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"views": models.Views()})
	})
	handler.NewDashboardHandler(stats).RegisterRoutes(api.Group("/dashboard"))
	handler.NewBookHandler(books, gateway, gateway).RegisterRoutes(api.Group("/books"))
	handler.NewStudentHandler(students, gateway).RegisterRoutes(api.Group("/students"))
	handler.NewBorrowHandler(borrows).RegisterRoutes(api.Group("/borrowings"))
	handler.NewAssistantHandler(assistant, gateway).RegisterRoutes(api.Group("/assistant"))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: r,
	}

	go func() {
		log.Printf("[INFO] listening on http://0.0.0.0:%d", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
