package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Identity  IdentityConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
	Upload    UploadConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Colombo"`
	// Capped below the backing store's connection limit.
	MaxConns int32 `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-RateLimit-Limit,X-RateLimit-Remaining,X-RateLimit-Reset"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Colombo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"19800"` // 5*60*60 + 30*60
}

// IdentityConfig points at the external identity provider. Access tokens are
// HS256 JWTs signed with JWTSecret; credential checks never happen locally.
type IdentityConfig struct {
	URL       string        `envconfig:"IDENTITY_URL" required:"true"`
	APIKey    string        `envconfig:"IDENTITY_API_KEY" required:"true"`
	JWTSecret string        `envconfig:"IDENTITY_JWT_SECRET" required:"true"`
	Timeout   time.Duration `envconfig:"IDENTITY_TIMEOUT" default:"10s"`
}

// SecurityConfig feeds the origin allow-list of the request perimeter.
type SecurityConfig struct {
	AppURL     string   `envconfig:"APP_URL" required:"true"`
	DeployURL  string   `envconfig:"DEPLOY_URL" default:""`
	DevOrigins []string `envconfig:"DEV_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`
}

type RateLimitConfig struct {
	LoginLimit  int           `envconfig:"RATE_LIMIT_LOGIN_MAX" default:"10"`
	LoginWindow time.Duration `envconfig:"RATE_LIMIT_LOGIN_WINDOW" default:"15m"`
}

type UploadConfig struct {
	Dir      string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	BaseURL  string `envconfig:"UPLOAD_BASE_URL" default:"/uploads"`
	MaxBytes int64  `envconfig:"UPLOAD_MAX_BYTES" default:"5242880"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Colombo",
			MaxConns: 4,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Colombo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 19800,
		},
		Identity: IdentityConfig{
			URL:       "http://localhost:9999",
			APIKey:    "test-api-key",
			JWTSecret: "test-jwt-secret-test-jwt-secret!",
			Timeout:   2 * time.Second,
		},
		Security: SecurityConfig{
			AppURL:     "http://localhost:3000",
			DevOrigins: []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		},
		RateLimit: RateLimitConfig{
			LoginLimit:  10,
			LoginWindow: 15 * time.Minute,
		},
		Upload: UploadConfig{
			Dir:      "./testdata/uploads",
			BaseURL:  "/uploads",
			MaxBytes: 1 << 20,
		},
	}
}
