package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Email  EmailConfig
	CORS   CORSConfig
	Log    LogConfig
	Report ReportConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings for product images.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ReportConfig holds reporting window and list limits.
type ReportConfig struct {
	WindowMonths      int `mapstructure:"window_months"`
	RecentOrdersLimit int `mapstructure:"recent_orders_limit"`
	TopVendorsLimit   int `mapstructure:"top_vendors_limit"`
}

// Load reads configuration from environment variables with the PRORENT_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PRORENT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "prorent")
	v.SetDefault("db.password", "prorent_secret")
	v.SetDefault("db.name", "prorent_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "prorent")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "prorent-product-images")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 3600)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "ap-south-1")
	v.SetDefault("email.from_address", "noreply@prorent.example")
	v.SetDefault("email.from_name", "ProRent")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Report defaults
	v.SetDefault("report.window_months", 6)
	v.SetDefault("report.recent_orders_limit", 5)
	v.SetDefault("report.top_vendors_limit", 5)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                "PRORENT_SERVER_PORT",
		"server.read_timeout":        "PRORENT_SERVER_READ_TIMEOUT",
		"server.write_timeout":       "PRORENT_SERVER_WRITE_TIMEOUT",
		"server.environment":         "PRORENT_SERVER_ENVIRONMENT",
		"db.host":                    "PRORENT_DB_HOST",
		"db.port":                    "PRORENT_DB_PORT",
		"db.user":                    "PRORENT_DB_USER",
		"db.password":                "PRORENT_DB_PASSWORD",
		"db.name":                    "PRORENT_DB_NAME",
		"db.sslmode":                 "PRORENT_DB_SSLMODE",
		"db.max_open":                "PRORENT_DB_MAX_OPEN",
		"db.max_idle":                "PRORENT_DB_MAX_IDLE",
		"jwt.secret":                 "PRORENT_JWT_SECRET",
		"jwt.access_expiry":          "PRORENT_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":         "PRORENT_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                 "PRORENT_JWT_ISSUER",
		"s3.region":                  "PRORENT_S3_REGION",
		"s3.bucket":                  "PRORENT_S3_BUCKET",
		"s3.endpoint":                "PRORENT_S3_ENDPOINT",
		"s3.access_key":              "PRORENT_S3_ACCESS_KEY",
		"s3.secret_key":              "PRORENT_S3_SECRET_KEY",
		"s3.max_file_size_mb":        "PRORENT_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":          "PRORENT_S3_PRESIGN_EXPIRY",
		"email.provider":             "PRORENT_EMAIL_PROVIDER",
		"email.region":               "PRORENT_EMAIL_REGION",
		"email.from_address":         "PRORENT_EMAIL_FROM_ADDRESS",
		"email.from_name":            "PRORENT_EMAIL_FROM_NAME",
		"cors.allowed_origins":       "PRORENT_CORS_ALLOWED_ORIGINS",
		"log.level":                  "PRORENT_LOG_LEVEL",
		"log.format":                 "PRORENT_LOG_FORMAT",
		"report.window_months":       "PRORENT_REPORT_WINDOW_MONTHS",
		"report.recent_orders_limit": "PRORENT_REPORT_RECENT_ORDERS_LIMIT",
		"report.top_vendors_limit":   "PRORENT_REPORT_TOP_VENDORS_LIMIT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if PRORENT_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PRORENT_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Report = ReportConfig{
		WindowMonths:      v.GetInt("report.window_months"),
		RecentOrdersLimit: v.GetInt("report.recent_orders_limit"),
		TopVendorsLimit:   v.GetInt("report.top_vendors_limit"),
	}

	return cfg, nil
}
