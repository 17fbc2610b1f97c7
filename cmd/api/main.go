package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xelth-com/eckshop/internal/buildinfo"
	"github.com/xelth-com/eckshop/internal/config"
	"github.com/xelth-com/eckshop/internal/database"
	"github.com/xelth-com/eckshop/internal/handlers"
	"github.com/xelth-com/eckshop/internal/logger"
	"github.com/xelth-com/eckshop/internal/services/classifier"
	"github.com/xelth-com/eckshop/internal/services/labels"
	"github.com/xelth-com/eckshop/internal/websocket"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format, "eckshop-api")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	// 2. Initialize database (embedded when PG_EMBEDDED=true)
	db, err := database.Connect(cfg.Database, zl)
	if err != nil {
		zl.Fatal("Failed to connect to database", zap.Error(err))
	}

	// 3. Auto-Migrate Schema
	zl.Info("Synchronizing database schema")
	if err := db.Migrate(); err != nil {
		zl.Warn("Migration warning", zap.Error(err))
	} else {
		zl.Info("Schema synchronized successfully")
	}

	// 4. Keyword rules: database once seeded, otherwise rules file or built-in defaults
	ruleStore := database.NewRuleStore(db)
	rules, err := database.InitRules(context.Background(), ruleStore, fileOrDefaultRules(cfg, zl), zl)
	if err != nil {
		zl.Fatal("Failed to load keyword rules", zap.Error(err))
	}

	// 5. Station event feed
	hub := websocket.NewHub(zl)
	go hub.Run()

	// 6. Set up HTTP router
	router := handlers.NewRouter(handlers.Options{
		Logger:     zl,
		Classifier: classifier.New(rules),
		Extractor: labels.NewExtractor(labels.Options{
			PageBreak: cfg.Labels.PageBreak,
			CodeClass: cfg.Labels.CodeClass,
		}),
		Rules:     ruleStore,
		Orders:    database.NewWorkOrderStore(db),
		Hub:       hub,
		JWTSecret: cfg.JWTSecret,
	})

	// 7. Start server with graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		zl.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.String("env", cfg.NodeEnv),
			zap.String("version", buildinfo.Version),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	sig := <-shutdown
	zl.Info("Received signal, shutting down gracefully", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zl.Error("HTTP server shutdown error", zap.Error(err))
	}

	// Disconnect stations
	hub.Stop()

	// Close database (this also stops embedded PostgreSQL)
	zl.Info("Closing database connection")
	if err := db.Close(); err != nil {
		zl.Error("Database close error", zap.Error(err))
	}

	zl.Info("Shutdown complete")
}

// fileOrDefaultRules returns the rules of the configured rules file, or the
// built-in defaults when none is set
func fileOrDefaultRules(cfg *config.Config, zl *zap.Logger) func() (*classifier.KeywordRuleSet, error) {
	return func() (*classifier.KeywordRuleSet, error) {
		if cfg.Classifier.RulesFile == "" {
			return classifier.DefaultRules(), nil
		}
		file, err := config.LoadKeywordRules(cfg.Classifier.RulesFile)
		if err != nil {
			return nil, err
		}
		zl.Info("Keyword rules loaded from file", zap.String("path", cfg.Classifier.RulesFile))
		return classifier.RulesFromMap(file.Categories)
	}
}
