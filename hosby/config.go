package hosby

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultTimeout is the HTTP client timeout applied when Config.Timeout
// is zero.
const DefaultTimeout = 30 * time.Second

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds the per-client credentials and connection settings.
//
// The five identity fields (PrivateKey, APIKeyID, ProjectID, ProjectName,
// UserID) and BaseURL are required; validation happens once, inside New.
type Config struct {
	// BaseURL is the API origin, e.g. https://api.hosby.io.
	BaseURL string `validate:"required"`

	// PrivateKey is the project RSA private key: PEM, raw base64, or a
	// base64 string carrying an "sk_" prefix.
	PrivateKey string `validate:"required"`

	APIKeyID    string `validate:"required"`
	ProjectID   string `validate:"required"`
	ProjectName string `validate:"required"`
	UserID      string `validate:"required"`

	// HTTPSMode selects the HTTPS enforcement policy. Defaults to
	// ModeStrict. The legacy value "warn" maps to ModeWarnThrow.
	HTTPSMode PolicyMode

	// HTTPSExemptHosts lists hostnames excluded from HTTPS enforcement,
	// matched exactly or by dot-suffix wildcard (".local").
	HTTPSExemptHosts []string

	// Timeout bounds each request, enforced by the underlying HTTP
	// client. Defaults to DefaultTimeout.
	Timeout time.Duration

	// RetryAttempts is accepted for configuration compatibility. The
	// client performs no retries itself; layer retries in the injected
	// HTTP client if needed.
	RetryAttempts int

	// CSRFCookieName overrides the cookie used to mirror the CSRF
	// token. Defaults to DefaultCSRFCookieName.
	CSRFCookieName string

	// UseSameToken pins the first fetched CSRF token for the whole
	// session, ignoring rotation headers on responses.
	UseSameToken bool
}

// fileConfig is the YAML shape of Config. Timeout is a string so the
// file can say "10s" instead of nanoseconds.
type fileConfig struct {
	BaseURL          string     `yaml:"base_url"`
	PrivateKey       string     `yaml:"private_key"`
	APIKeyID         string     `yaml:"api_key_id"`
	ProjectID        string     `yaml:"project_id"`
	ProjectName      string     `yaml:"project_name"`
	UserID           string     `yaml:"user_id"`
	HTTPSMode        PolicyMode `yaml:"https_mode"`
	HTTPSExemptHosts []string   `yaml:"https_exempt_hosts"`
	Timeout          string     `yaml:"timeout"`
	RetryAttempts    int        `yaml:"retry_attempts"`
	CSRFCookieName   string     `yaml:"csrf_cookie_name"`
	UseSameToken     bool       `yaml:"use_same_token"`
}

// LoadConfig reads a YAML configuration file and applies environment
// overrides (HOSBY_BASE_URL, HOSBY_PRIVATE_KEY, HOSBY_API_KEY_ID,
// HOSBY_PROJECT_ID, HOSBY_PROJECT_NAME, HOSBY_USER_ID).
func LoadConfig(path string) (Config, error) {
	var cfg Config

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("%w: read config file: %v", ErrConfig, err)
	}

	var file fileConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("%w: parse config file: %v", ErrConfig, err)
	}

	cfg = Config{
		BaseURL:          file.BaseURL,
		PrivateKey:       file.PrivateKey,
		APIKeyID:         file.APIKeyID,
		ProjectID:        file.ProjectID,
		ProjectName:      file.ProjectName,
		UserID:           file.UserID,
		HTTPSMode:        file.HTTPSMode,
		HTTPSExemptHosts: file.HTTPSExemptHosts,
		RetryAttempts:    file.RetryAttempts,
		CSRFCookieName:   file.CSRFCookieName,
		UseSameToken:     file.UseSameToken,
	}

	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return cfg, fmt.Errorf("%w: parse timeout: %v", ErrConfig, err)
		}

		cfg.Timeout = timeout
	}

	cfg.applyEnv()

	return cfg, nil
}

func (c *Config) applyEnv() {
	c.BaseURL = getenv("HOSBY_BASE_URL", c.BaseURL)
	c.PrivateKey = getenv("HOSBY_PRIVATE_KEY", c.PrivateKey)
	c.APIKeyID = getenv("HOSBY_API_KEY_ID", c.APIKeyID)
	c.ProjectID = getenv("HOSBY_PROJECT_ID", c.ProjectID)
	c.ProjectName = getenv("HOSBY_PROJECT_NAME", c.ProjectName)
	c.UserID = getenv("HOSBY_USER_ID", c.UserID)
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

func (c *Config) validateConfig() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return nil
}
