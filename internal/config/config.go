package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration
type Config struct {
	EnvSchemaVersion string `envconfig:"ENV_SCHEMA_VERSION" default:"1.0"`
	Environment      string `envconfig:"ENVIRONMENT" default:"dev"`
	Port             int    `envconfig:"PORT" default:"8080"`
	DevMode          bool   `envconfig:"DEV_MODE" default:"false"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogDir    string `envconfig:"LOG_DIR" default:"logs"`

	DatabaseURL       string        `envconfig:"DATABASE_URL"`
	DBUser            string        `envconfig:"DB_USER" default:"postgres"`
	DBPassword        string        `envconfig:"DB_PASSWORD" default:"postgres"`
	DBHost            string        `envconfig:"DB_HOST" default:"localhost"`
	DBPort            string        `envconfig:"DB_PORT" default:"5432"`
	DBName            string        `envconfig:"DB_NAME" default:"coinquest"`
	DBSSLMode         string        `envconfig:"DB_SSLMODE" default:"disable"`
	DBMaxConns        int           `envconfig:"DB_MAX_CONNS" default:"20"`
	DBMaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"5m"`
	DBMaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"30m"`
	AutoMigrate       bool          `envconfig:"AUTO_MIGRATE" default:"true"`

	// APIKey guards the admin endpoints
	APIKey      string `envconfig:"API_KEY"`
	JWTSecret   string `envconfig:"JWT_SECRET"`
	JWTIssuer   string `envconfig:"JWT_ISSUER"`
	JWTAudience string `envconfig:"JWT_AUDIENCE"`

	// TrustedProxies may set X-Forwarded-For
	TrustedProxies []string `envconfig:"TRUSTED_PROXIES"`

	DailyRewardCooldown time.Duration `envconfig:"COOLDOWN_DAILY_REWARD" default:"24h"`
	SpinCooldown        time.Duration `envconfig:"COOLDOWN_SPIN" default:"24h"`
	AdCooldown          time.Duration `envconfig:"COOLDOWN_AD" default:"5m"`
	VideoMinWatch       time.Duration `envconfig:"VIDEO_MIN_WATCH" default:"30s"`

	RedeemStepDuration   time.Duration `envconfig:"REDEEM_STEP_DURATION" default:"10s"`
	RedeemRefundOnCancel bool          `envconfig:"REDEEM_REFUND_ON_CANCEL" default:"false"`
	RedeemSessionTTL     time.Duration `envconfig:"REDEEM_SESSION_TTL" default:"24h"`

	StreakExpirySchedule string `envconfig:"JOB_STREAK_EXPIRY_SCHEDULE" default:"@every 1h"`
	SessionSweepSchedule string `envconfig:"JOB_SESSION_SWEEP_SCHEDULE" default:"@every 10m"`

	ShopCatalogPath  string        `envconfig:"SHOP_CATALOG_PATH"`
	ProfileCacheSize int           `envconfig:"PROFILE_CACHE_SIZE" default:"1000"`
	ProfileCacheTTL  time.Duration `envconfig:"PROFILE_CACHE_TTL" default:"30s"`
	SSEKeepAlive     time.Duration `envconfig:"SSE_KEEPALIVE" default:"15s"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidEnv, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetDBConnString returns the PostgreSQL connection string.
// DATABASE_URL wins over the individual DB_* settings.
func (c *Config) GetDBConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	sslMode := c.DBSSLMode
	if sslMode == "" {
		sslMode = DefaultSSLMode
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		sslMode,
	)
}

// IsProduction reports whether the service runs in a production environment
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction || c.Environment == EnvProductionShort
}
