package config

import (
	"os"
	"strconv"
	"strings"
)

// Catalog backends
const (
	CatalogNone      = ""
	CatalogPostgres  = "postgres"
	CatalogFirestore = "firestore"
	CatalogGCS       = "gcs"
)

// Missing field policies
const (
	PolicyZero   = "zero"
	PolicyStrict = "strict"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	Debug       bool
	LogJSON     bool
	CORSOrigins []string

	// Timeouts
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int

	// Ranking
	DefaultK           int
	MaxK               int
	SimilarExcludeSelf bool
	MissingFieldPolicy string
	DistanceWeight     float64
	SkillWeight        float64
	SalaryWeight       float64
	BatchConcurrency   int

	// Catalog
	CatalogBackend string
	DatabaseURL    string
	DBMaxConns     int
	ProjectID      string
	CatalogBucket  string
	CatalogObject  string
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:        getEnv("PORT", "5000"),
		Debug:       getEnvBool("DEBUG", false),
		LogJSON:     getEnvBool("LOG_JSON", false),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),

		// Timeouts
		ReadTimeoutSeconds:  getEnvInt("READ_TIMEOUT_SECONDS", 30),
		WriteTimeoutSeconds: getEnvInt("WRITE_TIMEOUT_SECONDS", 60),

		// Ranking
		DefaultK:           getEnvInt("DEFAULT_K", 3),
		MaxK:               getEnvInt("MAX_K", 100),
		SimilarExcludeSelf: getEnvBool("SIMILAR_EXCLUDE_SELF", true),
		MissingFieldPolicy: strings.ToLower(getEnv("MISSING_FIELD_POLICY", PolicyZero)),
		DistanceWeight:     getEnvFloat("DISTANCE_WEIGHT", 0.5),
		SkillWeight:        getEnvFloat("SKILL_WEIGHT", 0.3),
		SalaryWeight:       getEnvFloat("SALARY_WEIGHT", 0.2),
		BatchConcurrency:   getEnvInt("BATCH_CONCURRENCY", 4),

		// Catalog
		CatalogBackend: strings.ToLower(getEnv("CATALOG_BACKEND", CatalogNone)),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DBMaxConns:     getEnvInt("DB_MAX_CONNS", 5),
		ProjectID:      getEnv("PROJECT_ID", ""),
		CatalogBucket:  getEnv("CATALOG_BUCKET", ""),
		CatalogObject:  getEnv("CATALOG_OBJECT", "catalog.json"),
	}

	return cfg
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DefaultK < 1 {
		return &ConfigError{Field: "DEFAULT_K", Message: "DEFAULT_K must be at least 1"}
	}
	if c.MaxK < c.DefaultK {
		return &ConfigError{Field: "MAX_K", Message: "MAX_K must not be lower than DEFAULT_K"}
	}
	if c.BatchConcurrency < 1 {
		return &ConfigError{Field: "BATCH_CONCURRENCY", Message: "BATCH_CONCURRENCY must be at least 1"}
	}

	switch c.MissingFieldPolicy {
	case PolicyZero, PolicyStrict:
	default:
		return &ConfigError{Field: "MISSING_FIELD_POLICY", Message: "MISSING_FIELD_POLICY must be 'zero' or 'strict'"}
	}

	switch c.CatalogBackend {
	case CatalogNone:
	case CatalogPostgres:
		if c.DatabaseURL == "" {
			return &ConfigError{Field: "DATABASE_URL", Message: "DATABASE_URL is required for the postgres catalog"}
		}
	case CatalogFirestore:
		if c.ProjectID == "" {
			return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for the firestore catalog"}
		}
	case CatalogGCS:
		if c.CatalogBucket == "" {
			return &ConfigError{Field: "CATALOG_BUCKET", Message: "CATALOG_BUCKET is required for the gcs catalog"}
		}
	default:
		return &ConfigError{Field: "CATALOG_BACKEND", Message: "CATALOG_BACKEND must be one of postgres, firestore, gcs or empty"}
	}

	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	items := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
