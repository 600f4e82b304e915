package config

import (
	"os"
	"strconv"
	"time"
)

const (
	// DriverSQLite selects the embedded store
	DriverSQLite = "sqlite"
	// DriverPostgres selects the hosted store
	DriverPostgres = "postgres"

	// DefaultDatabasePath is used when GLG_DB_PATH is not set
	DefaultDatabasePath = "./data/glg-capital.db"
)

// Config holds all configuration values
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Security  SecurityConfig
	Bootstrap BootstrapConfig
	KYC       KYCConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver string
	Path   string
	Debug  bool

	// Postgres only
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the postgres connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool
	URL      string
	Password string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// SecurityConfig holds security encryption keys
type SecurityConfig struct {
	SessionEncryptionKey string
}

// BootstrapConfig holds the seeded admin account.
// The defaults are for local development only; override them anywhere else.
type BootstrapConfig struct {
	Enabled       bool
	AdminEmail    string
	AdminPassword string
}

// KYCConfig holds email verification settings for the onboarding KYC flow
type KYCConfig struct {
	VerificationCodeTTL time.Duration
	MaxVerifyAttempts   int
	AttemptWindow       time.Duration
	CodeSweepInterval   time.Duration
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", DriverSQLite),
			Path:     getEnv("GLG_DB_PATH", DefaultDatabasePath),
			Debug:    getEnvAsBool("DB_DEBUG", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "glg_capital"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_ENABLED", false),
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Security: SecurityConfig{
			SessionEncryptionKey: getEnv("SESSION_ENCRYPTION_KEY", "0000000000000000000000000000000000000000000000000000000000000000"), // 32-bytes hex string
		},
		Bootstrap: BootstrapConfig{
			Enabled:       getEnvAsBool("ADMIN_BOOTSTRAP", true),
			AdminEmail:    getEnv("ADMIN_EMAIL", "admin@glgcapitalgroupllc.com"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "GLGAdmin2024!Secure"),
		},
		KYC: KYCConfig{
			VerificationCodeTTL: getEnvAsDuration("KYC_CODE_TTL", 15*time.Minute),
			MaxVerifyAttempts:   getEnvAsInt("KYC_MAX_VERIFY_ATTEMPTS", 5),
			AttemptWindow:       getEnvAsDuration("KYC_ATTEMPT_WINDOW", 15*time.Minute),
			CodeSweepInterval:   getEnvAsDuration("KYC_CODE_SWEEP_INTERVAL", time.Minute),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
