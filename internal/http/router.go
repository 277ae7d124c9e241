package http

import (
	"net/http"

	"sales-backend/internal/handlers"
	"sales-backend/internal/middleware"
	"sales-backend/internal/models"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	saleHandler *handlers.SaleHandler,
	dashboardHandler *handlers.DashboardHandler,
	reportHandler *handlers.ReportHandler,
	liveHandler *handlers.LiveHandler,
	totpHandler *handlers.TOTPHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public API routes - Authentication
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/auth/2fa/verify", authHandler.Verify2FA).Methods("POST")

	// Health checks
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Protected API routes - Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.RequireRole(models.RoleAdmin))
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("", userHandler.CreateUser).Methods("POST")
	usersAPI.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.UpdateUser).Methods("PUT")
	usersAPI.HandleFunc("/{id}", userHandler.DeleteUser).Methods("DELETE")
	usersAPI.HandleFunc("/{id}/toggle-active", userHandler.ToggleStatus).Methods("PATCH")

	// Protected API routes - Sales
	salesAPI := r.PathPrefix("/api/sales").Subrouter()
	salesAPI.Use(authMiddleware.Authenticate)
	salesAPI.HandleFunc("", authMiddleware.RequireRole(models.RoleSeller, models.RoleAdmin)(http.HandlerFunc(saleHandler.CreateSale)).ServeHTTP).Methods("POST")
	salesAPI.HandleFunc("", authMiddleware.RequireRole(models.RoleAdmin, models.RoleOwner)(http.HandlerFunc(saleHandler.ListSales)).ServeHTTP).Methods("GET")
	salesAPI.HandleFunc("/mine", saleHandler.ListMySales).Methods("GET")
	salesAPI.HandleFunc("/{id}", saleHandler.GetSale).Methods("GET")
	salesAPI.HandleFunc("/{id}/review", authMiddleware.RequireAdmin(http.HandlerFunc(saleHandler.ReviewSale)).ServeHTTP).Methods("PATCH")
	salesAPI.HandleFunc("/{id}/proof", authMiddleware.RequireAdmin(http.HandlerFunc(saleHandler.UploadProof)).ServeHTTP).Methods("POST")

	// Protected API routes - Dashboard (all roles; sellers see a scoped view)
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("/summary", authMiddleware.RequireRole(models.RoleAdmin, models.RoleOwner)(http.HandlerFunc(dashboardHandler.Summary)).ServeHTTP).Methods("GET")
	dashboardAPI.HandleFunc("/history", dashboardHandler.History).Methods("GET")

	// Protected API routes - Reports (admin and owner)
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.RequireRole(models.RoleAdmin, models.RoleOwner))
	reportsAPI.HandleFunc("/sales.xlsx", reportHandler.DownloadXLSX).Methods("GET")
	reportsAPI.HandleFunc("/sales.csv", reportHandler.DownloadCSV).Methods("GET")
	reportsAPI.HandleFunc("/sales.pdf", reportHandler.DownloadPDF).Methods("GET")
	reportsAPI.HandleFunc("/statements.zip", reportHandler.DownloadStatementsZip).Methods("GET")

	// Live sales feed (WebSocket)
	liveAPI := r.PathPrefix("/api/live").Subrouter()
	liveAPI.Use(authMiddleware.Authenticate)
	liveAPI.HandleFunc("/sales", liveHandler.Stream).Methods("GET")

	// 2FA management (admin accounts)
	totpAPI := r.PathPrefix("/api/2fa").Subrouter()
	totpAPI.Use(authMiddleware.RequireAdmin)
	totpAPI.HandleFunc("/setup", totpHandler.SetupTOTP).Methods("POST")
	totpAPI.HandleFunc("/enable", totpHandler.EnableTOTP).Methods("POST")
	totpAPI.HandleFunc("/disable", totpHandler.DisableTOTP).Methods("POST")

	return r
}
