package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"userdeck/internal/domain"
	"userdeck/internal/logging"
	"userdeck/internal/repository"
	"userdeck/internal/store"
)

const (
	DefaultBaseURL = "https://dummyapi.io/data/v1"
	DefaultTimeout = 30 * time.Second

	defaultHomeDir  = ".userdeck"
	defaultLogLevel = "warn"
	defaultLogFmt   = "text"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string        // local state directory, e.g. $HOME/.userdeck
	BaseURL  string        // user service base URL, e.g. https://dummyapi.io/data/v1
	AppID    string        // value of the app-id header; may be filled from the credential store
	PageSize int           // rows per list page
	Timeout  time.Duration // connect/read/write timeout
	Logging  logging.Config
	HTTP     *http.Client // optional; defaults to userapi.NewHTTPClient(Timeout)
}

// LoadConfig reads configuration in increasing precedence: built-in
// defaults, the settings file under the home directory, then environment
// variables (a .env file in the working directory is loaded first if
// present).
func LoadConfig() (Config, error) { return LoadConfigIn("") }

// LoadConfigIn is LoadConfig with an explicit home directory; empty home
// falls back to USERDECK_HOME and then ~/.userdeck.
func LoadConfigIn(home string) (Config, error) {
	_ = godotenv.Load()

	if home == "" {
		home = valueOrDefault("USERDECK_HOME", defaultHome())
	}
	cfg := Config{
		Home:     home,
		BaseURL:  DefaultBaseURL,
		PageSize: repository.DefaultPageSize,
		Timeout:  DefaultTimeout,
		Logging: logging.Config{
			Level:         valueOrDefault("LOG_LEVEL", defaultLogLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLogFmt),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
			Component:     "userdeck",
		},
	}

	settings, ok, err := store.NewSettingsFileStore(cfg.Home).LoadSettings()
	if err != nil {
		return Config{}, err
	}
	if ok {
		cfg.ApplySettings(settings)
	}

	if v := os.Getenv("USERDECK_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	cfg.AppID = strings.TrimSpace(os.Getenv("USERDECK_APP_ID"))
	if v := os.Getenv("USERDECK_PAGE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid USERDECK_PAGE_SIZE value %q: %w", v, err)
		}
		cfg.PageSize = n
	}
	if v := os.Getenv("USERDECK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid USERDECK_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	return cfg, cfg.Validate()
}

// ApplySettings overrides the fields that settings set.
func (c *Config) ApplySettings(s domain.Settings) {
	if s.BaseURL != "" {
		c.BaseURL = s.BaseURL
	}
	if s.PageSize > 0 {
		c.PageSize = s.PageSize
	}
}

// Settings returns the persistable part of c.
func (c Config) Settings() domain.Settings {
	return domain.Settings{BaseURL: c.BaseURL, PageSize: c.PageSize}
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("invalid base URL %q: want http(s)://host/...", c.BaseURL)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size %d must be positive", c.PageSize)
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.Home == "" {
		return errors.New("home directory is not set")
	}
	return nil
}

func defaultHome() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return defaultHomeDir
	}
	return filepath.Join(dir, defaultHomeDir)
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}
