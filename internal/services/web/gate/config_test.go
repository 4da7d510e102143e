package gate

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateRejectsLoopingTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{name: "landing under auth", mutate: func(c *Config) { c.LandingPath = "/auth/home" }, want: "landing path"},
		{name: "landing is auth prefix", mutate: func(c *Config) { c.LandingPath = "/auth" }, want: "landing path"},
		{name: "login outside auth", mutate: func(c *Config) { c.LoginPath = "/login" }, want: "login path"},
		{name: "protected overlaps auth", mutate: func(c *Config) { c.ProtectedPrefixes = append(c.ProtectedPrefixes, "/auth/admin") }, want: "overlaps"},
		{name: "auth inside protected", mutate: func(c *Config) { c.AuthPrefix = "/settings/auth"; c.LoginPath = "/settings/auth/login" }, want: "overlaps"},
		{name: "protected root", mutate: func(c *Config) { c.ProtectedPrefixes = []string{"/"} }, want: "root"},
		{name: "trailing slash", mutate: func(c *Config) { c.ProtectedPrefixes = []string{"/dashboard/"} }, want: "clean"},
		{name: "relative prefix", mutate: func(c *Config) { c.ProtectedPrefixes = []string{"dashboard"} }, want: "absolute"},
		{name: "protocol relative", mutate: func(c *Config) { c.LandingPath = "//evil.test" }, want: "absolute"},
		{name: "duplicate prefix", mutate: func(c *Config) { c.ProtectedPrefixes = []string{"/a", "/a"} }, want: "twice"},
		{name: "no protected prefixes", mutate: func(c *Config) { c.ProtectedPrefixes = nil }, want: "at least one"},
		{name: "query in login", mutate: func(c *Config) { c.LoginPath = "/auth/login?x=1" }, want: "query"},
		{name: "bad from param", mutate: func(c *Config) { c.FromParam = "a=b" }, want: "from param"},
		{name: "empty auth prefix", mutate: func(c *Config) { c.AuthPrefix = "" }, want: "auth prefix"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Validate() error = %q, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	body := "protected_prefixes:\n  - /dashboard\n  - /reports\nlanding_path: /reports\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write routes file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if want := []string{"/dashboard", "/reports"}; !reflect.DeepEqual(cfg.ProtectedPrefixes, want) {
		t.Fatalf("ProtectedPrefixes = %v, want %v", cfg.ProtectedPrefixes, want)
	}
	if cfg.LandingPath != "/reports" {
		t.Fatalf("LandingPath = %q, want %q", cfg.LandingPath, "/reports")
	}
	if cfg.LoginPath != "/auth/login" {
		t.Fatalf("LoginPath = %q, want default", cfg.LoginPath)
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "routes.yaml")
	if err := os.WriteFile(path, []byte("from_param: next\n"), 0o600); err != nil {
		t.Fatalf("write routes file: %v", err)
	}
	t.Setenv(EnvPrefix+"FROM_PARAM", "return_to")
	t.Setenv(EnvPrefix+"PROTECTED_PREFIXES", "/dashboard,/watchlist")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.FromParam != "return_to" {
		t.Fatalf("FromParam = %q, want %q", cfg.FromParam, "return_to")
	}
	if want := []string{"/dashboard", "/watchlist"}; !reflect.DeepEqual(cfg.ProtectedPrefixes, want) {
		t.Fatalf("ProtectedPrefixes = %v, want %v", cfg.ProtectedPrefixes, want)
	}
}

func TestLoadConfigRejectsInvalidOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"LANDING_PATH", "/auth/welcome")

	if _, err := LoadConfig(""); err == nil {
		t.Fatal("LoadConfig() error = nil, want validation error")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("LoadConfig() error = nil, want missing file error")
	}
}
