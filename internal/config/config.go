package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported store drivers
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Port           string
	StoreDriver    string
	MaxConnections int
	LogLevel       string
	Database       DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URI        string
	Host       string
	Port       string
	Name       string
	User       string
	Password   string
	AuthSource string
	Collection string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	driver := getEnv("STORE_DRIVER", DriverMongo)

	defaultDBPort := "27017"
	if driver == DriverPostgres {
		defaultDBPort = "5432"
	}

	maxConns, err := strconv.Atoi(getEnv("MAX_CONNECTIONS", "0"))
	if err != nil || maxConns < 0 {
		return nil, fmt.Errorf("MAX_CONNECTIONS must be a non-negative integer")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "5000"),
		StoreDriver:    driver,
		MaxConnections: maxConns,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Database: DatabaseConfig{
			URI:        os.Getenv("MONGODB_URI"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", defaultDBPort),
			Name:       getEnv("DB_NAME", "word_learning"),
			User:       getEnv("DB_USER", "word_learning"),
			Password:   os.Getenv("DB_PASSWORD"),
			AuthSource: getEnv("DB_AUTH_SOURCE", "admin"),
			Collection: getEnv("WORDS_COLLECTION", "words"),
		},
	}

	// Validate required fields
	switch cfg.StoreDriver {
	case DriverMongo:
		if cfg.Database.URI == "" && cfg.Database.Password == "" {
			return nil, fmt.Errorf("MONGODB_URI or DB_PASSWORD is required")
		}
	case DriverPostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required")
		}
	default:
		return nil, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverMongo, DriverPostgres, cfg.StoreDriver)
	}

	return cfg, nil
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return ":" + c.Port
}

// MongoURI returns MongoDB connection string.
// Credentials are checked against AuthSource rather than the data database.
func (c *Config) MongoURI() string {
	if c.Database.URI != "" {
		return c.Database.URI
	}
	u := url.URL{
		Scheme: "mongodb",
		User:   url.UserPassword(c.Database.User, c.Database.Password),
		Host:   c.Database.Host + ":" + c.Database.Port,
		Path:   "/" + c.Database.Name,
	}
	if c.Database.AuthSource != "" {
		u.RawQuery = url.Values{"authSource": {c.Database.AuthSource}}.Encode()
	}
	return u.String()
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
