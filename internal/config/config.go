// Package config reads server settings from flags with CARDER_* environment
// fallbacks.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

// Session backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

const envPrefix = "CARDER_"

// Config is the validated server configuration.
type Config struct {
	Addr     string // gRPC listen address
	HTTPAddr string // payment callbacks, metrics and health
	DSN      string

	SigningKey string // HS256 key for session tokens
	JWTTTL     time.Duration
	TLSCert    string
	TLSKey     string

	UICTTL          time.Duration
	IdleTTL         time.Duration
	JanitorInterval time.Duration
	SessionBackend  string

	LimiterWindow   time.Duration
	LimiterMaxFails int
	LimiterBlock    time.Duration

	RateLimit float64 // requests per second per peer
	RateBurst int

	CallbackBaseURL string
	PaymentBaseURL  string
	Dev             bool
}

// Load parses args (without the program name). Flags left unset on the
// command line take CARDER_<FLAG_NAME> from getenv when present. Every
// problem found is reported in one error.
func Load(args []string, getenv func(string) string) (*Config, error) {
	c := &Config{}
	fs := flag.NewFlagSet("carder-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&c.Addr, "addr", ":8443", "gRPC listen address")
	fs.StringVar(&c.HTTPAddr, "http-addr", ":8080", "HTTP listen address for callbacks, /metrics and /healthz")
	fs.StringVar(&c.DSN, "dsn", "", "PostgreSQL DSN (required)")
	fs.StringVar(&c.SigningKey, "jwt-key", "", "HS256 session token signing key (required)")
	fs.DurationVar(&c.JWTTTL, "jwt-ttl", 24*time.Hour, "session token TTL")
	fs.StringVar(&c.TLSCert, "tls-cert", "", "TLS certificate (PEM); plaintext when empty")
	fs.StringVar(&c.TLSKey, "tls-key", "", "TLS private key (PEM)")
	fs.DurationVar(&c.UICTTL, "uic-ttl", 5*time.Minute, "continuity token and one-time code TTL")
	fs.DurationVar(&c.IdleTTL, "idle-ttl", 7*24*time.Hour, "idle session TTL")
	fs.DurationVar(&c.JanitorInterval, "janitor-interval", 10*time.Minute, "idle session sweep interval")
	fs.StringVar(&c.SessionBackend, "session-backend", BackendPostgres, "session store: memory or postgres")
	fs.DurationVar(&c.LimiterWindow, "limiter-window", 15*time.Minute, "login failure counting window")
	fs.IntVar(&c.LimiterMaxFails, "limiter-max-fails", 5, "login failures before blocking")
	fs.DurationVar(&c.LimiterBlock, "limiter-block", 15*time.Minute, "login block duration")
	fs.Float64Var(&c.RateLimit, "rate", 20, "requests per second per peer")
	fs.IntVar(&c.RateBurst, "burst", 40, "request burst per peer")
	fs.StringVar(&c.CallbackBaseURL, "callback-base-url", "http://localhost:8080", "public base URL of the payment callbacks")
	fs.StringVar(&c.PaymentBaseURL, "payment-base-url", "http://localhost:8080", "base URL of the sandbox payment pages")
	fs.BoolVar(&c.Dev, "dev", false, "development mode: reflection, sandbox pay page, debug logs")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var problems []error
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	fs.VisitAll(func(f *flag.Flag) {
		if set[f.Name] {
			return
		}
		key := EnvName(f.Name)
		v := getenv(key)
		if v == "" {
			return
		}
		if err := fs.Set(f.Name, v); err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", key, err))
		}
	})

	problems = append(problems, c.validate()...)
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return c, nil
}

// EnvName is the environment variable backing a flag.
func EnvName(flagName string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

func (c *Config) validate() []error {
	var out []error
	bad := func(name, format string, args ...any) {
		out = append(out, fmt.Errorf("-%s: "+format, append([]any{name}, args...)...))
	}
	if c.DSN == "" {
		bad("dsn", "required")
	}
	if c.SigningKey == "" {
		bad("jwt-key", "required")
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		bad("tls-cert", "tls-cert and tls-key must be set together")
	}
	for name, d := range map[string]time.Duration{
		"jwt-ttl":          c.JWTTTL,
		"uic-ttl":          c.UICTTL,
		"idle-ttl":         c.IdleTTL,
		"janitor-interval": c.JanitorInterval,
		"limiter-window":   c.LimiterWindow,
		"limiter-block":    c.LimiterBlock,
	} {
		if d <= 0 {
			bad(name, "must be positive, got %s", d)
		}
	}
	switch c.SessionBackend {
	case BackendMemory, BackendPostgres:
	default:
		bad("session-backend", "must be %s or %s, got %q", BackendMemory, BackendPostgres, c.SessionBackend)
	}
	if c.LimiterMaxFails < 1 {
		bad("limiter-max-fails", "must be at least 1")
	}
	if c.RateLimit <= 0 {
		bad("rate", "must be positive")
	}
	if c.RateBurst < 1 {
		bad("burst", "must be at least 1")
	}
	for name, raw := range map[string]string{"callback-base-url": c.CallbackBaseURL, "payment-base-url": c.PaymentBaseURL} {
		u, err := url.Parse(raw)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			bad(name, "must be an absolute http(s) URL, got %q", raw)
		}
	}
	return out
}
