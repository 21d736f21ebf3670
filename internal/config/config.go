package config

import (
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the configuration settings for the route API and the summarize command.
//
// Fields:
// - Env: The current environment (e.g., local, development, production).
// - Port: The port the HTTP API listens on.
// - ReadTimeout, WriteTimeout: Per-request limits for the HTTP server.
// - ShutdownTimeout: How long in-flight requests may take once shutdown starts.
// - DefaultLimit, MaxLimit: Page size bounds for planned route listings.
// - Database: Configuration settings for the PostgreSQL database.
type Config struct {
	Env             string         `yaml:"env"`                  // Env is the current environment: local, dev, prod.
	Port            int            `yaml:"api.port"`             // Port is the HTTP API port.
	ReadTimeout     time.Duration  `yaml:"api.read_timeout"`     // ReadTimeout bounds reading a request.
	WriteTimeout    time.Duration  `yaml:"api.write_timeout"`    // WriteTimeout bounds writing a response.
	ShutdownTimeout time.Duration  `yaml:"api.shutdown_timeout"` // ShutdownTimeout bounds graceful shutdown.
	DefaultLimit    int            `yaml:"routes.default_limit"` // DefaultLimit is used when no limit is requested.
	MaxLimit        int            `yaml:"routes.max_limit"`     // MaxLimit is the largest accepted limit.
	Database        PostgresConfig `yaml:"postgres"`             // Database holds the postgres database configuration
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `yaml:"host"`                        // Host is the database server address.
	Port     string `yaml:"port"     env-default:"5432"` // Port is the database server port.
	User     string `yaml:"user"`                        // User is the database user.
	Password string `yaml:"password"`                    // Password is the database user's password.
	Name     string `yaml:"db_name"`                     // Name is the name of the database.
}

// MustLoad reads the configuration from the environment (and an optional .env file)
// and returns a Config struct. It panics when a value cannot be parsed.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("RUTAS_ENV", "production")
	v.SetDefault("RUTAS_PORT", "8000")
	v.SetDefault("RUTAS_READ_TIMEOUT", "5s")
	v.SetDefault("RUTAS_WRITE_TIMEOUT", "10s")
	v.SetDefault("RUTAS_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("RUTAS_DEFAULT_LIMIT", "100")
	v.SetDefault("RUTAS_MAX_LIMIT", "1000")
	v.SetDefault("DB_PORT", "5432")
	v.AutomaticEnv()

	port, err := strconv.Atoi(v.GetString("RUTAS_PORT"))
	if err != nil {
		panic("failed to parse port for API server from configuration")
	}

	readTimeout := mustDuration(v, "RUTAS_READ_TIMEOUT")
	writeTimeout := mustDuration(v, "RUTAS_WRITE_TIMEOUT")
	shutdownTimeout := mustDuration(v, "RUTAS_SHUTDOWN_TIMEOUT")

	defaultLimit, err := strconv.Atoi(v.GetString("RUTAS_DEFAULT_LIMIT"))
	if err != nil {
		panic("failed to parse default limit from configuration, must be an integer types")
	}

	maxLimit, err := strconv.Atoi(v.GetString("RUTAS_MAX_LIMIT"))
	if err != nil {
		panic("failed to parse max limit from configuration, must be an integer types")
	}

	if defaultLimit < 1 || defaultLimit > maxLimit {
		panic("default limit must be between 1 and max limit")
	}

	return &Config{
		Env:             v.GetString("RUTAS_ENV"),
		Port:            port,
		ReadTimeout:     readTimeout,
		WriteTimeout:    writeTimeout,
		ShutdownTimeout: shutdownTimeout,
		DefaultLimit:    defaultLimit,
		MaxLimit:        maxLimit,
		Database: PostgresConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USERNAME"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
	}
}

func mustDuration(v *viper.Viper, key string) time.Duration {
	value, err := time.ParseDuration(v.GetString(key))
	if err != nil {
		panic("failed to parse " + key + " from configuration")
	}

	return value
}

// LoadEnv returns only the RUTAS_ENV setting (default "production").
// It reads no API or database settings and never panics.
func LoadEnv() string {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("RUTAS_ENV", "production")
	v.AutomaticEnv()

	return v.GetString("RUTAS_ENV")
}
