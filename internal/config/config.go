package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev development staging prod test"`
	Version     string `env:"VERSION" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"vespr-inventory"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn warning error DEBUG INFO WARN WARNING ERROR"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=json text"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	Port        int    `env:"PORT" envDefault:"8080" validate:"min=1,max=65535"`

	// TrustedProxies lists peer addresses whose X-Forwarded-For is believed
	TrustedProxies  []string `env:"TRUSTED_PROXIES" envSeparator:","`
	MaxRequestBytes int64    `env:"MAX_REQUEST_BYTES" envDefault:"1048576" validate:"min=1024"`

	DBUser            string        `env:"DB_USER" envDefault:"postgres" validate:"required"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost" validate:"required"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432" validate:"required,numeric"`
	DBName            string        `env:"DB_NAME" envDefault:"vespr" validate:"required"`
	DBSSLMode         string        `env:"DB_SSLMODE" envDefault:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"20" validate:"min=1"`
	DBMinConns        int           `env:"DB_MIN_CONNS" envDefault:"2" validate:"min=0,ltefield=DBMaxConns"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	JWTSecret string        `env:"JWT_SECRET" validate:"required,min=32"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"vespr"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"15m"`

	CatalogFile   string `env:"CATALOG_FILE" envDefault:"configs/items/items.yaml"`
	CatalogSchema string `env:"CATALOG_SCHEMA" envDefault:"configs/schemas/items.schema.json"`

	// ForceUnequipOnDelete applies the unequip branch on every delete, whether or
	// not the entry was equipped.
	ForceUnequipOnDelete    bool `env:"FORCE_UNEQUIP_ON_DELETE" envDefault:"false"`
	SerializationMaxRetries int  `env:"SERIALIZATION_MAX_RETRIES" envDefault:"5" validate:"min=0,max=50"`

	// EventLogRetention is how long audit events are kept
	EventLogRetention       time.Duration `env:"EVENT_LOG_RETENTION" envDefault:"720h" validate:"min=1h"`
	EventLogCleanupInterval time.Duration `env:"EVENT_LOG_CLEANUP_INTERVAL" envDefault:"1h" validate:"min=1m"`

	OTelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"false"`
	OTelEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load loads the configuration from the environment, reading .env first when present
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     c.DBName,
		RawQuery: "sslmode=" + c.DBSSLMode,
	}
	return u.String()
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
