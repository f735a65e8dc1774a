package config

// Environments
const (
	EnvDevelopment     = "dev"
	EnvProduction      = "production"
	EnvProductionShort = "prod"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

const DefaultSSLMode = "disable"

// Insecure example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
	ExampleJWTSecret  = "change_this_jwt_secret"
)

// Error messages
const (
	ErrMsgInvalidEnv          = "invalid environment configuration"
	ErrMsgSchemaMismatch      = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated"
	ErrMsgAPIKeyRequired      = "API_KEY environment variable must be set for security"
	ErrMsgJWTSecretRequired   = "JWT_SECRET environment variable must be set"
	ErrMsgInvalidPort         = "invalid PORT value %d: must be between 1 and 65535"
	ErrMsgInvalidLogLevel     = "invalid LOG_LEVEL %q: must be one of debug, info, warn, error"
	ErrMsgInvalidLogFormat    = "invalid LOG_FORMAT %q: must be text or json"
	ErrMsgNonPositiveDuration = "%s must be positive, got %s"
	ErrMsgNegativeDuration    = "%s must not be negative, got %s"
	ErrMsgInvalidSchedule     = "invalid %s %q: %w"
	ErrMsgInvalidCacheSize    = "PROFILE_CACHE_SIZE must be positive, got %d"
)

// Warning messages
const (
	WarnMsgExampleDBPassword = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgExampleAPIKey     = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgExampleJWTSecret  = "JWT_SECRET appears to be using the example value"
	WarnMsgDevModeInProd     = "DEV_MODE is enabled in production - all cooldowns are bypassed"
)
