package config

import (
	"strings"
	"testing"
)

func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := New()
	if err := cfg.SetOperPassword([]byte("hunter2")); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestValidateDefaults(t *testing.T) {
	cfg := validConfig(t)
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestValidatePortRange(t *testing.T) {
	for _, port := range []int{0, -1, MaxRegisteredPort + 1, 65536} {
		cfg := validConfig(t)
		cfg.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d: expected error", port)
		}
	}
	cfg := validConfig(t)
	cfg.Port = MaxRegisteredPort
	if err := cfg.Validate(); err != nil {
		t.Errorf("port %d should validate: %v", MaxRegisteredPort, err)
	}
}

func TestValidateRequiresOperPassword(t *testing.T) {
	cfg := New()
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "operator password") {
		t.Errorf("expected operator password error, got %v", err)
	}
}

func TestValidateNetworkFileNeedsServerName(t *testing.T) {
	cfg := validConfig(t)
	cfg.NetworkFile = "network.toml"
	cfg.ServerName = ""
	if err := cfg.Validate(); err == nil {
		t.Error("network file without server name should not validate")
	}
	cfg.ServerName = "irc.example.com"
	if err := cfg.Validate(); err != nil {
		t.Errorf("network file with server name should validate: %v", err)
	}
}

func TestOperPasswordHashing(t *testing.T) {
	cfg := New()
	cfg.OperPasswd = "hunter2"
	if err := cfg.SetOperPassword([]byte(cfg.OperPasswd)); err != nil {
		t.Fatal(err)
	}
	if cfg.OperPasswd != "" {
		t.Error("plaintext retained after hashing")
	}
	if !cfg.HasOperPassword() {
		t.Error("HasOperPassword = false after SetOperPassword")
	}
	if !cfg.CheckOperPassword([]byte("hunter2")) {
		t.Error("correct password rejected")
	}
	if cfg.CheckOperPassword([]byte("wrong")) {
		t.Error("wrong password accepted")
	}
}

func TestSetOperPasswordEmpty(t *testing.T) {
	cfg := New()
	if err := cfg.SetOperPassword(nil); err == nil {
		t.Error("empty password should be rejected")
	}
	if cfg.CheckOperPassword([]byte("")) {
		t.Error("CheckOperPassword should fail with no hash set")
	}
}

func TestVerbosity(t *testing.T) {
	tests := []struct {
		verbose int
		quiet   bool
		want    int
	}{
		{0, false, 0},
		{2, false, 2},
		{0, true, -1},
		{3, true, -1}, // quiet wins
	}
	for _, tt := range tests {
		cfg := &Config{Verbose: tt.verbose, Quiet: tt.quiet}
		if got := cfg.Verbosity(); got != tt.want {
			t.Errorf("Verbosity(v=%d q=%v) = %d, want %d", tt.verbose, tt.quiet, got, tt.want)
		}
	}
}
