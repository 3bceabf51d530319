package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ternakku/internal/cache"
	"ternakku/internal/config"
	"ternakku/internal/repository"
	"ternakku/internal/service"
	"ternakku/internal/transport/rest"
	"ternakku/internal/transport/ws"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)

	// Redis connection
	redisAddr := strings.TrimPrefix(cfg.RedisAddr, "redis://")
	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	groupRepo := repository.NewGroupRepo(db)
	articleRepo := repository.NewArticleRepo(db)
	livestockRepo := repository.NewLivestockRepo(db)
	submissionRepo := repository.NewSubmissionRepo(db)

	// Initialize caches
	leaderboard := cache.NewLeaderboardCache(rdb)
	reports := cache.NewReportCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg)
	userSvc := service.NewUserService(userRepo)
	groupSvc := service.NewGroupService(groupRepo, userRepo)
	articleSvc := service.NewArticleService(articleRepo)
	livestockSvc := service.NewLivestockService(livestockRepo)
	reportSvc := service.NewReportService(submissionRepo, groupRepo, leaderboard, reports)
	submissionSvc := service.NewSubmissionService(submissionRepo, groupRepo, reportSvc)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	reportSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:       authSvc,
		UserService:       userSvc,
		GroupService:      groupSvc,
		ArticleService:    articleSvc,
		LivestockService:  livestockSvc,
		SubmissionService: submissionSvc,
		ReportService:     reportSvc,
		WSHub:             wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/login")
		log.Println("  POST/GET /v1/submissions")
		log.Println("  POST/GET /v1/livestock")
		log.Println("  POST/GET /v1/groups")
		log.Println("  POST/GET /v1/articles")
		log.Println("  GET  /v1/reports/dashboard")
		log.Println("  GET  /v1/reports/leaderboard")
		log.Println("  GET  /v1/reports/table")
		log.Println("  WS   /v1/ws/dashboard")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
