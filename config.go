package goSession

import (
	"time"

	"github.com/joeshaw/envdecode"
)

// Config defines the session engine configuration.
//
// Config instances are intended to be populated during initialization and then
// treated as immutable; the engine copies the Config at Build time.
type Config struct {
	// CookieName is the name of the cookie that carries the session
	// identifier. ENV: SESSION_COOKIE_NAME
	CookieName string `env:"SESSION_COOKIE_NAME,default=session"`
	// CookieDomain and CookiePath scope both cookie writes and cookie
	// deletions; a deletion must match the attributes of the original write.
	CookieDomain string `env:"SESSION_COOKIE_DOMAIN"`
	CookiePath   string `env:"SESSION_COOKIE_PATH,default=/"`
	// CookieHTTPOnly keeps the identifier out of reach of client-side
	// scripts. ENV: SESSION_COOKIE_HTTPONLY
	CookieHTTPOnly bool `env:"SESSION_COOKIE_HTTPONLY,default=true"`
	// CookieSecure restricts the cookie to TLS transports.
	CookieSecure bool `env:"SESSION_COOKIE_SECURE"`

	// SecretKey feeds the [Signer] key derivation. Required when UseSigner
	// is true; Build fails with [ErrMissingSecretKey] otherwise.
	SecretKey string `env:"SESSION_SECRET_KEY"`
	// UseSigner enables HMAC signing of the identifier cookie value.
	UseSigner bool `env:"SESSION_USE_SIGNER"`

	// KeyPrefix is prepended to the session identifier to form the backend
	// key. ENV: SESSION_KEY_PREFIX
	KeyPrefix string `env:"SESSION_KEY_PREFIX,default=session:"`

	// Permanent is the default permanence flag for freshly minted sessions.
	// Permanent sessions get a cookie expiration; browser-scoped sessions do
	// not. Backend TTL is PermanentLifetime either way.
	Permanent bool `env:"SESSION_PERMANENT,default=true"`
	// PermanentLifetime is both the cookie lifetime of permanent sessions
	// and the backend TTL of every session. Sub-second precision is
	// truncated on the way to the backend.
	PermanentLifetime time.Duration `env:"SESSION_PERMANENT_LIFETIME,default=744h"`

	// HijackProtection binds each session to the client address observed at
	// creation and rejects later requests from a different address.
	HijackProtection bool `env:"SESSION_HIJACK_PROTECTION"`
	// HijackReverseProxy makes the hijack comparison trust the
	// X-Forwarded-For header. Enable only when the deployment actually sits
	// behind a proxy that overwrites the header.
	HijackReverseProxy bool `env:"SESSION_HIJACK_REVERSE_PROXY"`

	// Explicit switches the engine to opt-in persistence: Save only touches
	// the backend for sessions marked via [Session.Dirty].
	Explicit bool `env:"SESSION_EXPLICIT"`
	// StaticFile controls whether static-file responses participate in
	// session handling. Off by default to avoid a backend write per asset.
	StaticFile bool `env:"SESSION_STATIC_FILE"`
}

func defaultConfig() Config {
	return Config{
		CookieName:        "session",
		CookiePath:        "/",
		CookieHTTPOnly:    true,
		KeyPrefix:         "session:",
		Permanent:         true,
		PermanentLifetime: 31 * 24 * time.Hour,
	}
}

// ConfigFromEnv populates a Config from SESSION_* environment variables,
// falling back to the documented defaults for unset variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first configuration error, if any.
func (c Config) Validate() error {
	if c.CookieName == "" {
		return ErrMissingCookieName
	}
	if c.PermanentLifetime <= 0 {
		return ErrInvalidLifetime
	}
	if c.UseSigner && c.SecretKey == "" {
		return ErrMissingSecretKey
	}
	return nil
}
