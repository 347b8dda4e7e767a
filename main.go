package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/myjobmatch/recommender/config"
	_ "github.com/myjobmatch/recommender/docs"
	"github.com/myjobmatch/recommender/handlers"
	"github.com/myjobmatch/recommender/logger"
	"github.com/myjobmatch/recommender/mcp"
	"github.com/myjobmatch/recommender/recommender"
	"github.com/myjobmatch/recommender/service"
	"github.com/myjobmatch/recommender/storage"
	"github.com/myjobmatch/recommender/tools"
)

// @title MyJobMatch Recommender API
// @version 1.0
// @description KNN job recommendations for job seekers and similar-job lookups.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@myjobmatch.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /api

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	if err := cfg.Validate(); err != nil {
		zlog.Fatal("configuration error", zap.Error(err))
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	catalog, closeCatalog, err := openCatalog(ctx, cfg)
	if err != nil {
		zlog.Fatal("failed to initialize catalog", zap.String("backend", cfg.CatalogBackend), zap.Error(err))
	}
	defer closeCatalog.Close()
	if catalog != nil {
		zlog.Info("catalog initialized", zap.String("backend", cfg.CatalogBackend))
	}

	engine, err := recommender.NewEngine(recommender.Options{
		Weights: recommender.Weights{
			Distance: cfg.DistanceWeight,
			Skill:    cfg.SkillWeight,
			Salary:   cfg.SalaryWeight,
		},
		ExcludeSelf: cfg.SimilarExcludeSelf,
		Observer:    logger.NewRankingObserver(zlog.Named("engine")),
	})
	if err != nil {
		zlog.Fatal("invalid engine options", zap.Error(err))
	}

	rec := service.NewRecommender(cfg, engine, catalog, zlog)

	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewRecommendJobsTool(rec))
	toolRegistry.Register(tools.NewSimilarJobsTool(rec))

	mcpServer := mcp.NewServer(toolRegistry, handlers.Version, zlog)
	recommendHandler := handlers.NewRecommendHandler(rec, toolRegistry, zlog)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(handlers.RequestID())
	router.Use(handlers.RequestLogger(zlog))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", handlers.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", handlers.RequestIDHeader},
		AllowCredentials: !allowsAnyOrigin(cfg.CORSOrigins),
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		recommendHandler.RegisterRoutes(api)

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		zlog.Info("starting server", zap.String("port", cfg.Port), zap.String("version", handlers.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}

	zlog.Info("server exited gracefully")
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openCatalog connects the configured catalog backend. With no backend it
// returns a nil catalog and the catalog routes answer 501.
func openCatalog(ctx context.Context, cfg *config.Config) (storage.Catalog, io.Closer, error) {
	switch cfg.CatalogBackend {
	case config.CatalogPostgres:
		c, err := storage.NewPostgresCatalog(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return c, c, nil
	case config.CatalogFirestore:
		c, err := storage.NewFirestoreCatalog(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return c, c, nil
	case config.CatalogGCS:
		c, err := storage.NewCloudStorageCatalog(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return c, c, nil
	default:
		return nil, nopCloser{}, nil
	}
}

func allowsAnyOrigin(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
