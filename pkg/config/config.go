package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	InitEager = "eager"
	InitLazy  = "lazy"

	DriverSqlite   = "sqlite"
	DriverPostgres = "postgres"
)

type AppConfig struct {
	Debug       bool
	Silent      bool
	LogFilePath string
	Env         string

	ServerConfig   ServerConfig
	DatabaseConfig DatabaseConfig
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

type ServerConfig struct {
	Port            int
	ShutdownTimeout time.Duration
	CorsOrigin      string
	RateLimitRPS    float64
	RateLimitBurst  int
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

type DatabaseConfig struct {
	Driver      string
	Init        string
	DatabaseURL string
	DbPath      string
	Host        string
	Port        int
	Name        string
	User        string
	Password    string
	SSLMode     string
}

// DSN returns the connection string for the configured driver.
// DATABASE_URL wins over the individual postgres parameters.
func (c DatabaseConfig) DSN() string {
	if c.Driver == DriverSqlite {
		if strings.Contains(c.DbPath, "?") {
			return c.DbPath + "&_foreign_keys=on"
		}

		return c.DbPath + "?_foreign_keys=on"
	}

	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

func NewAppConfig(debug bool, silent bool, env string, serverConfig ServerConfig, databaseConfig DatabaseConfig) AppConfig {
	return AppConfig{
		Debug:          debug,
		Silent:         silent,
		Env:            env,
		ServerConfig:   serverConfig,
		DatabaseConfig: databaseConfig,
	}
}

// LoadAppConfig builds an AppConfig from the process environment.
// Call godotenv.Load beforehand to pick up a .env file.
func LoadAppConfig() (AppConfig, error) {
	port, err := intEnv("PORT", 3000)
	if err != nil {
		return AppConfig{}, err
	}

	shutdownTimeout, err := durationEnv("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return AppConfig{}, err
	}

	rps, err := floatEnv("RATE_LIMIT_RPS", 0)
	if err != nil {
		return AppConfig{}, err
	}

	burst, err := intEnv("RATE_LIMIT_BURST", 20)
	if err != nil {
		return AppConfig{}, err
	}

	dbPort, err := intEnv("DB_PORT", 5432)
	if err != nil {
		return AppConfig{}, err
	}

	databaseURL := os.Getenv("DATABASE_URL")

	driver := strings.ToLower(os.Getenv("DB_DRIVER"))
	if driver == "" {
		driver = DriverSqlite
		if databaseURL != "" {
			driver = DriverPostgres
		}
	}

	if driver != DriverSqlite && driver != DriverPostgres {
		return AppConfig{}, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	dbInit := strings.ToLower(stringEnv("DB_INIT", InitEager))
	if dbInit != InitEager && dbInit != InitLazy {
		return AppConfig{}, fmt.Errorf("unsupported DB_INIT %q", dbInit)
	}

	serverConfig := ServerConfig{
		Port:            port,
		ShutdownTimeout: shutdownTimeout,
		CorsOrigin:      stringEnv("CORS_ORIGIN", "*"),
		RateLimitRPS:    rps,
		RateLimitBurst:  burst,
	}

	databaseConfig := DatabaseConfig{
		Driver:      driver,
		Init:        dbInit,
		DatabaseURL: databaseURL,
		DbPath:      stringEnv("DB_PATH", "movies.db"),
		Host:        stringEnv("DB_HOST", "localhost"),
		Port:        dbPort,
		Name:        stringEnv("DB_NAME", "movies_db"),
		User:        stringEnv("DB_USER", "postgres"),
		Password:    stringEnv("DB_PASSWORD", "password"),
		SSLMode:     stringEnv("DB_SSLMODE", "disable"),
	}

	cfg := NewAppConfig(
		os.Getenv("DEBUG") == "TRUE",
		os.Getenv("SILENT") == "TRUE",
		stringEnv("APP_ENV", EnvDevelopment),
		serverConfig,
		databaseConfig,
	)
	cfg.LogFilePath = stringEnv("LOG_FILE_PATH", "/tmp/movie_lens_api.log")

	return cfg, nil
}

func stringEnv(key string, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}

	return n, nil
}

func floatEnv(key string, fallback float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}

	return f, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}

	return d, nil
}
