package gate

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes route configuration environment overrides, e.g.
// PORTFOLIO_SPACE_ROUTES_PROTECTED_PREFIXES=/dashboard,/portfolio.
const EnvPrefix = "PORTFOLIO_SPACE_ROUTES_"

// Config describes which paths the gate guards and where it sends visitors.
type Config struct {
	// ProtectedPrefixes require a session. Each matches itself and any
	// path below it.
	ProtectedPrefixes []string `koanf:"protected_prefixes"`
	// AuthPrefix marks the authentication section that signed-in visitors
	// are sent away from.
	AuthPrefix string `koanf:"auth_prefix"`
	// LoginPath receives anonymous visitors of protected paths.
	LoginPath string `koanf:"login_path"`
	// LandingPath receives signed-in visitors of the auth section.
	LandingPath string `koanf:"landing_path"`
	// FromParam names the login query parameter carrying the original
	// destination.
	FromParam string `koanf:"from_param"`
}

// DefaultConfig returns the compiled-in route table.
func DefaultConfig() Config {
	return Config{
		ProtectedPrefixes: []string{"/dashboard", "/portfolio", "/transactions", "/settings"},
		AuthPrefix:        "/auth",
		LoginPath:         "/auth/login",
		LandingPath:       "/dashboard",
		FromParam:         "from",
	}
}

// Validate rejects tables that could redirect in a loop or never match.
func (c Config) Validate() error {
	if err := validatePrefix(c.AuthPrefix); err != nil {
		return fmt.Errorf("auth prefix %q: %w", c.AuthPrefix, err)
	}
	if len(c.ProtectedPrefixes) == 0 {
		return errors.New("at least one protected prefix is required")
	}
	seen := make(map[string]struct{}, len(c.ProtectedPrefixes))
	for _, prefix := range c.ProtectedPrefixes {
		if err := validatePrefix(prefix); err != nil {
			return fmt.Errorf("protected prefix %q: %w", prefix, err)
		}
		if _, dup := seen[prefix]; dup {
			return fmt.Errorf("protected prefix %q is listed twice", prefix)
		}
		seen[prefix] = struct{}{}
		if hasSegmentPrefix(prefix, c.AuthPrefix) || hasSegmentPrefix(c.AuthPrefix, prefix) {
			return fmt.Errorf("protected prefix %q overlaps auth prefix %q", prefix, c.AuthPrefix)
		}
	}
	if err := validatePath(c.LoginPath); err != nil {
		return fmt.Errorf("login path %q: %w", c.LoginPath, err)
	}
	if !hasSegmentPrefix(c.LoginPath, c.AuthPrefix) {
		return fmt.Errorf("login path %q must be under auth prefix %q", c.LoginPath, c.AuthPrefix)
	}
	if err := validatePath(c.LandingPath); err != nil {
		return fmt.Errorf("landing path %q: %w", c.LandingPath, err)
	}
	if hasSegmentPrefix(c.LandingPath, c.AuthPrefix) {
		return fmt.Errorf("landing path %q must not be under auth prefix %q", c.LandingPath, c.AuthPrefix)
	}
	if c.FromParam == "" || strings.ContainsAny(c.FromParam, "&=?#/ ") {
		return fmt.Errorf("from param %q is not a plain query key", c.FromParam)
	}
	return nil
}

// LoadConfig layers an optional YAML file and PORTFOLIO_SPACE_ROUTES_*
// environment variables over DefaultConfig, then validates the result.
// Slice values from the environment are comma separated.
func LoadConfig(filePath string) (Config, error) {
	k := koanf.New(".")
	if strings.TrimSpace(filePath) != "" {
		if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load routes file %s: %w", filePath, err)
		}
	}
	envKey := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load routes env: %w", err)
	}

	var loaded Config
	if err := k.Unmarshal("", &loaded); err != nil {
		return Config{}, fmt.Errorf("unmarshal routes config: %w", err)
	}
	cfg := merge(DefaultConfig(), loaded)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid routes config: %w", err)
	}
	return cfg, nil
}

// merge replaces each base field that override sets. Slices are replaced
// whole rather than merged element-wise.
func merge(base, override Config) Config {
	if prefixes := trimAll(override.ProtectedPrefixes); len(prefixes) > 0 {
		base.ProtectedPrefixes = prefixes
	}
	if v := strings.TrimSpace(override.AuthPrefix); v != "" {
		base.AuthPrefix = v
	}
	if v := strings.TrimSpace(override.LoginPath); v != "" {
		base.LoginPath = v
	}
	if v := strings.TrimSpace(override.LandingPath); v != "" {
		base.LandingPath = v
	}
	if v := strings.TrimSpace(override.FromParam); v != "" {
		base.FromParam = v
	}
	return base
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func validatePath(p string) error {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return errors.New("must be an absolute local path")
	}
	if strings.ContainsAny(p, "?#") {
		return errors.New("must not carry a query or fragment")
	}
	if path.Clean(p) != p {
		return errors.New("must be a clean path")
	}
	return nil
}

func validatePrefix(p string) error {
	if err := validatePath(p); err != nil {
		return err
	}
	if p == "/" {
		return errors.New("must not be the root path")
	}
	return nil
}

// hasSegmentPrefix reports whether p equals prefix or lies below it.
func hasSegmentPrefix(p, prefix string) bool {
	return p == prefix || strings.HasPrefix(p, prefix+"/")
}
