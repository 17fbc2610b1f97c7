package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	NodeEnv    string
	Port       string
	JWTSecret  string
	Database   DatabaseConfig
	Log        LogConfig
	Classifier ClassifierConfig
	Labels     LabelsConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Alter    bool

	// Embedded starts a private PostgreSQL under EmbeddedPath instead of
	// connecting to Host. Port and Password are ignored in that mode.
	Embedded     bool
	EmbeddedPath string
	EmbeddedPort int
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

// ClassifierConfig holds part classification configuration
type ClassifierConfig struct {
	// RulesFile is an optional YAML file with keyword rules per category.
	// Rules stored in the database take precedence.
	RulesFile string
}

// LabelsConfig describes the markup conventions of imported label sheets
type LabelsConfig struct {
	PageBreak string
	CodeClass string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	embeddedPort, err := strconv.Atoi(getEnv("PG_EMBEDDED_PORT", "5433"))
	if err != nil || embeddedPort <= 0 || embeddedPort > 65535 {
		return nil, fmt.Errorf("invalid PG_EMBEDDED_PORT %q", os.Getenv("PG_EMBEDDED_PORT"))
	}

	return &Config{
		NodeEnv:   getEnv("NODE_ENV", "development"),
		Port:      getEnv("PORT", "3210"),
		JWTSecret: jwtSecret,
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			Username: getEnv("PG_USERNAME", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DATABASE", "eckshop"),
			Alter:    getEnv("DB_ALTER", "false") == "true",

			Embedded:     getEnv("PG_EMBEDDED", "false") == "true",
			EmbeddedPath: getEnv("PG_EMBEDDED_PATH", "./db_data"),
			EmbeddedPort: embeddedPort,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Classifier: ClassifierConfig{
			RulesFile: os.Getenv("CLASSIFIER_RULES_FILE"),
		},
		Labels: LabelsConfig{
			PageBreak: os.Getenv("LABEL_PAGE_BREAK"),
			CodeClass: os.Getenv("LABEL_CODE_CLASS"),
		},
	}, nil
}

// IsProduction reports whether the node runs in production mode
func (c *Config) IsProduction() bool {
	return c.NodeEnv == "production"
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
