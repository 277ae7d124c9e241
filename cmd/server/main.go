package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"sales-backend/internal/auth"
	"sales-backend/internal/cache"
	"sales-backend/internal/config"
	"sales-backend/internal/database"
	"sales-backend/internal/db"
	"sales-backend/internal/handlers"
	"sales-backend/internal/health"
	h "sales-backend/internal/http"
	"sales-backend/internal/live"
	"sales-backend/internal/middleware"
	"sales-backend/internal/monitoring"
	"sales-backend/internal/repositories"
	"sales-backend/internal/services"
	"sales-backend/internal/storage"
	"sales-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	// Load configuration
	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	// Connect to PostgreSQL
	pool := db.Connect(cfg)
	defer pool.Close()

	// Initialize Redis cache (optional - graceful fallback if unavailable)
	redisAddr := fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port)
	if err := cache.Init(redisAddr, cfg.Redis.Password); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (login will use bcrypt only)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run database migrations (embedded, standalone binary operation)
	migrator := database.NewMigrator(pool, migrations.Files)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize health checker
	healthChecker := health.NewHealthChecker(pool)

	// Start monitoring stats server in background
	go monitoring.NewMonitoringServer(pool, cfg.Server.MonitoringPort).Start()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(pool)
	saleRepo := repositories.NewSaleRepository(pool)

	// Payment-proof object storage (optional - uploads fail cleanly without it)
	var proofStore *storage.ProofStore
	if cfg.ObjectStore.Bucket != "" {
		var err error
		proofStore, err = storage.NewProofStore(ctx, cfg)
		if err != nil {
			log.Printf("[Storage] Proof store unavailable: %v", err)
		}
	} else {
		log.Println("[Storage] OBJECT_STORE_BUCKET not set, proof uploads disabled")
	}

	// Live feed hub
	hub := live.NewHub()

	// Initialize services
	saleService := services.NewSaleService(saleRepo, hub, proofStore)
	userService := services.NewUserService(userRepo, jwtManager)
	totpService := services.NewTOTPService(userRepo)
	dashboardService := services.NewDashboardService(saleService)
	reportService := services.NewReportService(saleService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, userRepo)
	corsMiddleware := middleware.NewCORS(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, totpService, jwtManager)
	userHandler := handlers.NewUserHandler(userService)
	saleHandler := handlers.NewSaleHandler(saleService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)
	liveHandler := handlers.NewLiveHandler(hub)
	totpHandler := handlers.NewTOTPHandler(totpService, userRepo)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Build router and middleware chain
	router := h.NewRouter(
		authHandler,
		userHandler,
		saleHandler,
		dashboardHandler,
		reportHandler,
		liveHandler,
		totpHandler,
		healthHandler,
		authMiddleware,
	)

	var handler http.Handler = router
	handler = corsMiddleware(handler)
	handler = middleware.MetricsMiddleware(handler)
	handler = middleware.PanicRecovery(handler)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
