package config

import "time"

// RateLimitConfig tunes the fixed-window limiter applied to the
// authentication endpoints. Limit counts requests per window per client IP.
type RateLimitConfig struct {
	Enabled bool          `env:"RATE_LIMIT_ENABLED" envDefault:"true"`
	Limit   int           `env:"RATE_LIMIT_REQUESTS" envDefault:"30"`
	Window  time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	Prefix  string        `env:"RATE_LIMIT_PREFIX" envDefault:"rl"`
}
