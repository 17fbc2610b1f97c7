package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xelth-com/eckshop/internal/config"
	"github.com/xelth-com/eckshop/internal/models"
	"github.com/xelth-com/eckshop/internal/services/classifier"
)

// embeddedPassword is the superuser password of the private instance.
// It only listens on localhost.
const embeddedPassword = "postgres"

// DB wraps gorm.DB and includes a reference to an embedded process if active
type DB struct {
	*gorm.DB
	embedded *embeddedpostgres.EmbeddedPostgres
	log      *zap.Logger
}

// Connect opens the configured database. In embedded mode a private
// PostgreSQL is started under cfg.EmbeddedPath first.
func Connect(cfg config.DatabaseConfig, log *zap.Logger) (*DB, error) {
	var embedded *embeddedpostgres.EmbeddedPostgres

	if cfg.Embedded {
		log.Info("starting embedded PostgreSQL",
			zap.String("data_path", cfg.EmbeddedPath),
			zap.Int("port", cfg.EmbeddedPort),
		)
		embedded = embeddedpostgres.NewDatabase(embeddedConfig(cfg, log))
		if err := embedded.Start(); err != nil {
			return nil, fmt.Errorf("failed to start embedded database on port %d: %w", cfg.EmbeddedPort, err)
		}
	} else {
		log.Info("connecting to external PostgreSQL", zap.String("host", cfg.Host), zap.String("port", cfg.Port))
	}

	db, err := gorm.Open(postgres.Open(dsn(cfg)), &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg)),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		if embedded != nil {
			_ = embedded.Stop()
		}
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	log.Info("database connection established", zap.String("database", cfg.Database))
	return &DB{DB: db, embedded: embedded, log: log}, nil
}

// embeddedConfig maps the database settings onto the embedded server.
// Server output goes to the application log.
func embeddedConfig(cfg config.DatabaseConfig, log *zap.Logger) embeddedpostgres.Config {
	return embeddedpostgres.DefaultConfig().
		DataPath(cfg.EmbeddedPath).
		Port(uint32(cfg.EmbeddedPort)).
		Database(cfg.Database).
		Username(cfg.Username).
		Password(embeddedPassword).
		Logger(zap.NewStdLog(log.Named("postgres")).Writer())
}

// dsn builds the connection string for cfg
func dsn(cfg config.DatabaseConfig) string {
	host, port, password := cfg.Host, cfg.Port, cfg.Password
	if cfg.Embedded {
		host, port, password = "localhost", strconv.Itoa(cfg.EmbeddedPort), embeddedPassword
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, cfg.Username, password, cfg.Database,
	)
}

// gormLogLevel silences SQL logging during schema alteration runs
func gormLogLevel(cfg config.DatabaseConfig) logger.LogLevel {
	if cfg.Alter {
		return logger.Silent
	}
	return logger.Warn
}

// Close ensures the database connection and embedded process are shut down
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err == nil {
		err = sqlDB.Close()
	}
	if db.embedded != nil {
		db.log.Info("stopping embedded PostgreSQL")
		if stopErr := db.embedded.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
	}
	return err
}

// Migrate synchronizes the schema of all application tables
func (db *DB) Migrate() error {
	return db.AutoMigrate(
		&models.WorkOrder{},
		&models.Part{},
		&models.HardwareItem{},
		&models.KeywordRule{},
		&models.Rack{},
		&models.Setting{},
	)
}

// RuleSeeder loads and seeds persisted keyword rules
type RuleSeeder interface {
	LoadRules(ctx context.Context) (*classifier.KeywordRuleSet, bool, error)
	SeedRules(ctx context.Context, rs *classifier.KeywordRuleSet) error
}

// InitRules returns the stored keyword rules. On first start the rule set
// returned by fallback is stored and marked as seeded, so later starts keep
// whatever the operators left in the table, even when it is empty.
func InitRules(ctx context.Context, store RuleSeeder, fallback func() (*classifier.KeywordRuleSet, error), log *zap.Logger) (*classifier.KeywordRuleSet, error) {
	rules, found, err := store.LoadRules(ctx)
	if err != nil {
		return nil, err
	}
	if found {
		log.Info("keyword rules loaded from database")
		return rules, nil
	}

	rules, err = fallback()
	if err != nil {
		return nil, err
	}
	if err := store.SeedRules(ctx, rules); err != nil {
		return nil, fmt.Errorf("failed to seed keyword rules: %w", err)
	}
	log.Info("keyword rules seeded")
	return rules, nil
}
