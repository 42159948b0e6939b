// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Defaults used when neither a flag nor an environment variable is set.
const (
	DefaultListenPort     = 3000
	DefaultBackendBaseURL = "http://localhost:5000"
	DefaultBackendTimeout = 10 * time.Second
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
)

// ErrInvalid is wrapped by every validation failure returned from New.
var ErrInvalid = errors.New("invalid configuration")

// Config is resolved once at startup and handed by value to the server.
// Nothing reads the environment after it has been built.
type Config struct {
	ListenPort     int
	BackendBaseURL string        // as configured; see DataURL
	BackendTimeout time.Duration // bound on a single outbound call
	LogLevel       string
	LogFormat      string // "text" or "json"
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		ListenPort:     DefaultListenPort,
		BackendBaseURL: DefaultBackendBaseURL,
		BackendTimeout: DefaultBackendTimeout,
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
	}
}

// New validates and normalizes cfg.
func New(cfg Config) (Config, error) {
	if cfg.ListenPort < 1 || cfg.ListenPort > 65535 {
		return Config{}, fmt.Errorf("%w: listen port %d out of range", ErrInvalid, cfg.ListenPort)
	}

	// blank means unset, like an empty BACKEND_URL= line in a .env file
	if strings.TrimSpace(cfg.BackendBaseURL) == "" {
		cfg.BackendBaseURL = DefaultBackendBaseURL
	}

	if cfg.BackendTimeout <= 0 {
		return Config{}, fmt.Errorf("%w: backend timeout must be positive, got %s", ErrInvalid, cfg.BackendTimeout)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = DefaultLogFormat
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("%w: unknown log format %q", ErrInvalid, cfg.LogFormat)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	return cfg, nil
}

// ListenAddr is the address handed to http.Server.
func (c Config) ListenAddr() string {
	return ":" + strconv.Itoa(c.ListenPort)
}

// ValidateBackendURL reports whether the backend URL is an absolute
// http(s) URL. A bad URL is not fatal: /api/data fails with the usual 500
// while /health and / keep working.
func (c Config) ValidateBackendURL() error {
	raw := strings.TrimSpace(c.BackendBaseURL)
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: backend url: %v", ErrInvalid, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: backend url %q must be an absolute http(s) url", ErrInvalid, c.BackendBaseURL)
	}
	return nil
}

// DataURL is the backend endpoint proxied by /api/data.
func (c Config) DataURL() string {
	return strings.TrimRight(strings.TrimSpace(c.BackendBaseURL), "/") + "/api/data"
}
