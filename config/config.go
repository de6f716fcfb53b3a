// Package config defines the runtime configuration for ircd.
package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Config holds every tuneable for a single ircd process.
type Config struct {
	// ── Connection ───────────────────────────────────────────────────
	Port int `env:"IRCD_PORT"`

	// ── Identity ─────────────────────────────────────────────────────
	ServerName string `env:"IRCD_SERVERNAME"`

	// OperPasswd is the operator password as supplied on the command
	// line or environment. SetOperPassword hashes it and clears this
	// field; only the hash is retained for the process lifetime.
	OperPasswd string `env:"IRCD_OPER_PASSWD"`

	// ── Network ──────────────────────────────────────────────────────
	NetworkFile string `env:"IRCD_NETWORK_FILE"`
	Network     *Network

	// ── Output ───────────────────────────────────────────────────────
	Verbose int  `env:"IRCD_VERBOSE"`
	Quiet   bool `env:"IRCD_QUIET"`

	operHash []byte
}

// SetOperPassword hashes the operator password with bcrypt and drops
// the plaintext.
func (c *Config) SetOperPassword(plain []byte) error {
	if len(plain) == 0 {
		return fmt.Errorf("operator password must not be empty")
	}
	hash, err := bcrypt.GenerateFromPassword(plain, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing operator password: %w", err)
	}
	c.operHash = hash
	c.OperPasswd = ""
	return nil
}

// CheckOperPassword reports whether plain matches the configured
// operator password.
func (c *Config) CheckOperPassword(plain []byte) bool {
	if len(c.operHash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(c.operHash, plain) == nil
}

// HasOperPassword reports whether an operator password was configured.
func (c *Config) HasOperPassword() bool { return len(c.operHash) > 0 }

// Verbosity collapses the -q / -v flags into a single level for the
// logger: -1 when quiet, otherwise the -v count.
func (c *Config) Verbosity() int {
	if c.Quiet {
		return -1
	}
	return c.Verbose
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > MaxRegisteredPort {
		return fmt.Errorf("port %d out of range 1-%d", c.Port, MaxRegisteredPort)
	}
	if !c.HasOperPassword() {
		return fmt.Errorf("an operator password is required (use -o)")
	}
	if c.NetworkFile != "" && c.ServerName == "" {
		return fmt.Errorf("a network file requires a server name (use -s)")
	}
	return nil
}
