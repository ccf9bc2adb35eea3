package jwt

import "time"

// Config holds the token service settings loaded from the environment.
type Config struct {
	SigningKey string        `env:"AUTH_JWT_SECRET,required"` // SigningKey signs and verifies all issued tokens. At least 32 bytes recommended.
	Issuer     string        `env:"AUTH_JWT_ISSUER" envDefault:"shield"`
	TTL        time.Duration `env:"AUTH_JWT_TTL" envDefault:"1h"`    // TTL is the default token lifetime.
	Leeway     time.Duration `env:"AUTH_JWT_LEEWAY" envDefault:"1m"` // Leeway is the clock-skew allowance for temporal checks.
}

// NewFromConfig creates a token service from a Config.
func NewFromConfig(cfg Config, opts ...Option) (*Service, error) {
	base := []Option{
		WithIssuer(cfg.Issuer),
		WithTTL(cfg.TTL),
		WithLeeway(cfg.Leeway),
	}
	return NewFromString(cfg.SigningKey, append(base, opts...)...)
}
