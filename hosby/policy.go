package hosby

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// PolicyMode controls HTTPS enforcement for the configured base URL.
// The policy is evaluated exactly once, at construction time.
type PolicyMode string

const (
	// ModeStrict fails construction when the base URL is not HTTPS and
	// the host is not exempt.
	ModeStrict PolicyMode = "strict"

	// ModeWarnThrow behaves like ModeStrict. It exists so deployments
	// that configured "warn" historically get the hardened behavior by
	// an explicit name.
	ModeWarnThrow PolicyMode = "warn-throw"

	// ModeWarnLog logs a warning for a non-HTTPS base URL but allows
	// construction to proceed.
	ModeWarnLog PolicyMode = "warn-log"

	// ModeNone disables HTTPS enforcement.
	ModeNone PolicyMode = "none"

	// legacyWarn is accepted for configuration compatibility and maps
	// to ModeWarnThrow.
	legacyWarn PolicyMode = "warn"
)

// checkPolicy validates the base URL against the enforcement mode and
// exemption list. A malformed URL yields an empty host, which is never
// exempt.
func checkPolicy(baseURL string, mode PolicyMode, exemptHosts []string, logger zerolog.Logger) error {
	switch mode {
	case ModeStrict, ModeWarnThrow, ModeWarnLog, ModeNone, legacyWarn:
	default:
		return fmt.Errorf("%w: unknown https mode %q", ErrConfig, mode)
	}

	if mode == ModeNone {
		return nil
	}

	if strings.HasPrefix(baseURL, "https://") {
		return nil
	}

	host := ""
	if u, err := url.Parse(baseURL); err == nil {
		host = u.Hostname()
	}

	if hostExempt(host, exemptHosts) {
		return nil
	}

	if mode == ModeWarnLog {
		logger.Warn().
			Str("base_url", baseURL).
			Msg("HTTPS protocol is required for production use")

		return nil
	}

	return fmt.Errorf("%w: HTTPS protocol is required (base URL %q, host %q is not exempt)", ErrConfig, baseURL, host)
}

// hostExempt reports whether host matches an exemption entry, either
// exactly or by dot-suffix wildcard (".local" matches "dev.local").
func hostExempt(host string, exemptHosts []string) bool {
	if host == "" {
		return false
	}

	for _, exempt := range exemptHosts {
		if exempt == "" {
			continue
		}

		if host == exempt {
			return true
		}

		if strings.HasPrefix(exempt, ".") && strings.HasSuffix(host, exempt) {
			return true
		}
	}

	return false
}
