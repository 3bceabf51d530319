package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"ternakku/internal/model"
	"ternakku/internal/service"
	"ternakku/internal/transport/rest/handler"
	"ternakku/internal/transport/rest/middleware"
	"ternakku/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	AuthService       *service.AuthService
	UserService       *service.UserService
	GroupService      *service.GroupService
	ArticleService    *service.ArticleService
	LivestockService  *service.LivestockService
	SubmissionService *service.SubmissionService
	ReportService     *service.ReportService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	userHandler := handler.NewUserHandler(c.UserService)
	groupHandler := handler.NewGroupHandler(c.GroupService)
	articleHandler := handler.NewArticleHandler(c.ArticleService)
	livestockHandler := handler.NewLivestockHandler(c.LivestockService)
	submissionHandler := handler.NewSubmissionHandler(c.SubmissionService)
	reportHandler := handler.NewReportHandler(c.ReportService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware)

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/articles", articleHandler.List).Methods("GET", "OPTIONS")
	v1.HandleFunc("/articles/{articleId}", articleHandler.Get).Methods("GET", "OPTIONS")

	// WebSocket route (token in query param)
	v1.HandleFunc("/ws/dashboard", wsHandler.DashboardWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Routes for any signed-in account
	authed := v1.NewRoute().Subrouter()
	authed.Use(authMW.RequireAuth)

	authed.HandleFunc("/submissions", submissionHandler.Create).Methods("POST", "OPTIONS")
	authed.HandleFunc("/submissions", submissionHandler.List).Methods("GET", "OPTIONS")
	authed.HandleFunc("/submissions/{submissionId}", submissionHandler.Get).Methods("GET", "OPTIONS")
	authed.HandleFunc("/livestock", livestockHandler.Create).Methods("POST", "OPTIONS")
	authed.HandleFunc("/livestock", livestockHandler.List).Methods("GET", "OPTIONS")
	authed.HandleFunc("/livestock/{livestockId}", livestockHandler.Get).Methods("GET", "OPTIONS")
	authed.HandleFunc("/livestock/{livestockId}", livestockHandler.Update).Methods("PUT", "OPTIONS")
	authed.HandleFunc("/livestock/{livestockId}", livestockHandler.Delete).Methods("DELETE", "OPTIONS")
	authed.HandleFunc("/reports/dashboard", reportHandler.Dashboard).Methods("GET", "OPTIONS")
	authed.HandleFunc("/reports/leaderboard", reportHandler.Leaderboard).Methods("GET", "OPTIONS")
	authed.HandleFunc("/reports/leaderboard/top", reportHandler.Top).Methods("GET", "OPTIONS")
	authed.HandleFunc("/groups", groupHandler.List).Methods("GET", "OPTIONS")
	authed.HandleFunc("/groups/{groupId}", groupHandler.Get).Methods("GET", "OPTIONS")

	// Officer routes (admin or extension officer)
	officerRoutes := v1.NewRoute().Subrouter()
	officerRoutes.Use(authMW.RequireRole(model.RoleAdmin, model.RolePenyuluh))

	officerRoutes.HandleFunc("/groups/{groupId}/members", groupHandler.Members).Methods("GET", "OPTIONS")
	officerRoutes.HandleFunc("/articles", articleHandler.Create).Methods("POST", "OPTIONS")
	officerRoutes.HandleFunc("/articles/{articleId}", articleHandler.Update).Methods("PUT", "OPTIONS")
	officerRoutes.HandleFunc("/articles/{articleId}", articleHandler.Delete).Methods("DELETE", "OPTIONS")
	officerRoutes.HandleFunc("/reports/table", reportHandler.Tabular).Methods("GET", "OPTIONS")

	// Admin routes
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireRole(model.RoleAdmin))

	adminRoutes.HandleFunc("/groups", groupHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/groups/{groupId}", groupHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/groups/{groupId}", groupHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/users", userHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/users/{userId}", userHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/users/{userId}", userHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/users/{userId}", userHandler.Delete).Methods("DELETE", "OPTIONS")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
