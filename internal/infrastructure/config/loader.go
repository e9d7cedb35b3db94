package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override, e.g. PW_DATABASE_HOST
const EnvPrefix = "PW"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win over it
	loadDotEnvFile()

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.Environment = env

	processDurations(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func loadDotEnvFile() {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.slowQuery", 200)      // milliseconds
	v.SetDefault("database.monitorInterval", 60) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")

	v.SetDefault("auth.jwtSecret", "")
	v.SetDefault("auth.tokenTTL", 60) // minutes
	v.SetDefault("auth.openingBalance", "10000.00")
	v.SetDefault("auth.bcryptCost", 10)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.analyticsTTL", 300) // seconds
	v.SetDefault("redis.streamMaxLen", 10000)

	v.SetDefault("scheduler.reconcileSpec", "@daily")

	v.SetDefault("cors.allowedOrigins", []string{"*"})
}

// bindEnv registers the short environment names operators already use
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("database.host", EnvPrefix+"_DB_HOST", EnvPrefix+"_DATABASE_HOST")
	_ = v.BindEnv("database.port", EnvPrefix+"_DB_PORT", EnvPrefix+"_DATABASE_PORT")
	_ = v.BindEnv("database.username", EnvPrefix+"_DB_USERNAME", EnvPrefix+"_DATABASE_USERNAME")
	_ = v.BindEnv("database.password", EnvPrefix+"_DB_PASSWORD", EnvPrefix+"_DATABASE_PASSWORD")
	_ = v.BindEnv("database.database", EnvPrefix+"_DB_NAME", EnvPrefix+"_DATABASE_DATABASE")
	_ = v.BindEnv("auth.jwtSecret", EnvPrefix+"_JWT_SECRET", EnvPrefix+"_AUTH_JWTSECRET")
	_ = v.BindEnv("redis.addr", EnvPrefix+"_REDIS_ADDR")
	_ = v.BindEnv("redis.password", EnvPrefix+"_REDIS_PASSWORD")
}

// getEnvironment determines the environment from PW_ENV, defaulting to development
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout *= time.Second
	config.Server.WriteTimeout *= time.Second
	config.Server.IdleTimeout *= time.Second
	config.Server.ReadHeaderTimeout *= time.Second
	config.Server.ShutdownTimeout *= time.Second

	config.Database.ConnMaxLifetime *= time.Minute
	config.Database.ConnMaxIdleTime *= time.Minute
	config.Database.QueryTimeout *= time.Second
	config.Database.SlowQuery *= time.Millisecond
	config.Database.MonitorInterval *= time.Second

	config.Auth.TokenTTL *= time.Minute
	config.Redis.AnalyticsTTL *= time.Second
}

// validateConfig reports every missing or invalid required setting at once
func validateConfig(config *Config) error {
	var problems []string

	required := map[string]string{
		"database.host":     config.Database.Host,
		"database.username": config.Database.Username,
		"database.database": config.Database.Database,
		"auth.jwtSecret":    config.Auth.JWTSecret,
	}
	for _, key := range []string{"database.host", "database.username", "database.database", "auth.jwtSecret"} {
		if strings.TrimSpace(required[key]) == "" {
			problems = append(problems, key+" is required")
		}
	}

	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d is out of range", config.Server.Port))
	}
	if config.Auth.TokenTTL <= 0 {
		problems = append(problems, "auth.tokenTTL must be positive")
	}
	if config.Redis.Enabled && config.Redis.Addr == "" {
		problems = append(problems, "redis.addr is required when redis is enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
