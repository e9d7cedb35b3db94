package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Auth        AuthConfig      `mapstructure:"auth"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Scheduler   SchedulerConfig `mapstructure:"scheduler"`
	CORS        CORSConfig      `mapstructure:"cors"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowQuery       time.Duration `mapstructure:"slowQuery"`       // milliseconds
	MonitorInterval time.Duration `mapstructure:"monitorInterval"` // seconds, 0 disables
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AuthConfig contains token and password settings
type AuthConfig struct {
	JWTSecret      string        `mapstructure:"jwtSecret"`
	TokenTTL       time.Duration `mapstructure:"tokenTTL"` // minutes
	OpeningBalance string        `mapstructure:"openingBalance"`
	BcryptCost     int           `mapstructure:"bcryptCost"`
}

// RedisConfig contains cache and event stream settings
type RedisConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	AnalyticsTTL time.Duration `mapstructure:"analyticsTTL"` // seconds
	StreamMaxLen int64         `mapstructure:"streamMaxLen"`
}

// SchedulerConfig contains background job settings
type SchedulerConfig struct {
	// ReconcileSpec is a cron expression; empty disables the job
	ReconcileSpec string `mapstructure:"reconcileSpec"`
}

// CORSConfig contains cross-origin settings
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowedOrigins"`
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
