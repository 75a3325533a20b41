package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != "8000" {
		t.Errorf("port = %q", cfg.Port)
	}
	if cfg.DefaultLanguage != "en" {
		t.Errorf("default language = %q", cfg.DefaultLanguage)
	}
	if cfg.ModelName == "" {
		t.Error("model name default missing")
	}
}

func TestResolvedAuthMode(t *testing.T) {
	cases := []struct {
		env, mode, want string
	}{
		{"development", "", "development"},
		{"production", "", "jwt"},
		{"staging", "", "jwt"},
		{"development", "jwt", "jwt"},
	}
	for _, tc := range cases {
		c := &Config{Env: tc.env, AuthMode: tc.mode}
		if got := c.ResolvedAuthMode(); got != tc.want {
			t.Errorf("env=%q mode=%q: got %q, want %q", tc.env, tc.mode, got, tc.want)
		}
	}
}

func TestValidateProductionRequirements(t *testing.T) {
	c := &Config{Env: "production"}
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("err = %v", err)
	}

	c.JWTSecret = "secret"
	err = c.Validate()
	if err == nil || !strings.Contains(err.Error(), "PHI_ENCRYPTION_KEY") {
		t.Errorf("err = %v", err)
	}

	c.PHIEncryptionKey = strings.Repeat("ab", 32)
	if err := c.Validate(); err != nil {
		t.Errorf("valid production config rejected: %v", err)
	}
}

func TestValidateRejectsDevAuthInProduction(t *testing.T) {
	c := &Config{
		Env:              "production",
		AuthMode:         "development",
		JWTSecret:        "secret",
		PHIEncryptionKey: strings.Repeat("ab", 32),
	}
	if err := c.Validate(); err == nil {
		t.Error("dev auth accepted in production")
	}
}

func TestValidateEncryptionKeyShape(t *testing.T) {
	base := Config{Env: "development"}

	c := base
	c.PHIEncryptionKey = "not-hex"
	if err := c.Validate(); err == nil {
		t.Error("non-hex key accepted")
	}

	c = base
	c.PHIEncryptionKey = "abcd"
	if err := c.Validate(); err == nil {
		t.Error("short key accepted")
	}
}

func TestValidateDatabaseNeedsKey(t *testing.T) {
	c := &Config{Env: "development", DatabaseURL: "postgres://localhost/scribe"}
	if err := c.Validate(); err == nil {
		t.Error("database without encryption key accepted")
	}
	c.PHIEncryptionKey = strings.Repeat("cd", 32)
	if err := c.Validate(); err != nil {
		t.Errorf("err = %v", err)
	}
}
