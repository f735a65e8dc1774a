package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Validate checks values envconfig cannot check on its own
func (c *Config) Validate() error {
	var errs []error

	if c.EnvSchemaVersion != ExpectedEnvSchemaVersion {
		errs = append(errs, fmt.Errorf(ErrMsgSchemaMismatch, ExpectedEnvSchemaVersion, c.EnvSchemaVersion))
	}
	if c.APIKey == "" {
		errs = append(errs, errors.New(ErrMsgAPIKeyRequired))
	}
	if c.JWTSecret == "" {
		errs = append(errs, errors.New(ErrMsgJWTSecretRequired))
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidPort, c.Port))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf(ErrMsgInvalidLogLevel, c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf(ErrMsgInvalidLogFormat, c.LogFormat))
	}

	positive := map[string]time.Duration{
		"REDEEM_STEP_DURATION": c.RedeemStepDuration,
		"REDEEM_SESSION_TTL":   c.RedeemSessionTTL,
		"PROFILE_CACHE_TTL":    c.ProfileCacheTTL,
		"SSE_KEEPALIVE":        c.SSEKeepAlive,
		"SHUTDOWN_TIMEOUT":     c.ShutdownTimeout,
	}
	for name, d := range positive {
		if d <= 0 {
			errs = append(errs, fmt.Errorf(ErrMsgNonPositiveDuration, name, d))
		}
	}

	nonNegative := map[string]time.Duration{
		"COOLDOWN_DAILY_REWARD": c.DailyRewardCooldown,
		"COOLDOWN_SPIN":         c.SpinCooldown,
		"COOLDOWN_AD":           c.AdCooldown,
		"VIDEO_MIN_WATCH":       c.VideoMinWatch,
	}
	for name, d := range nonNegative {
		if d < 0 {
			errs = append(errs, fmt.Errorf(ErrMsgNegativeDuration, name, d))
		}
	}

	if c.ProfileCacheSize <= 0 {
		errs = append(errs, fmt.Errorf(ErrMsgInvalidCacheSize, c.ProfileCacheSize))
	}

	schedules := map[string]string{
		"JOB_STREAK_EXPIRY_SCHEDULE": c.StreakExpirySchedule,
		"JOB_SESSION_SWEEP_SCHEDULE": c.SessionSweepSchedule,
	}
	for name, spec := range schedules {
		if _, err := cron.ParseStandard(spec); err != nil {
			errs = append(errs, fmt.Errorf(ErrMsgInvalidSchedule, name, spec, err))
		}
	}

	return errors.Join(errs...)
}

// Warnings returns non-fatal issues, such as example secrets left in place
func (c *Config) Warnings() []string {
	var warnings []string

	if c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, WarnMsgExampleDBPassword)
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, WarnMsgExampleAPIKey)
	}
	if c.JWTSecret == ExampleJWTSecret {
		warnings = append(warnings, WarnMsgExampleJWTSecret)
	}
	if c.DevMode && c.IsProduction() {
		warnings = append(warnings, WarnMsgDevModeInProd)
	}

	return warnings
}
