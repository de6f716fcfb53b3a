package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// DefaultPort is the standard IRC port.
	DefaultPort = 6667

	// DefaultServerName is used in reply prefixes when -s is not given.
	DefaultServerName = "localhost"

	// MaxRegisteredPort is the upper bound of the IANA registered port
	// range; ephemeral ports above it are rejected.
	MaxRegisteredPort = 49151
)

// New returns a Config populated with defaults. Environment variables
// and CLI flags overlay it afterwards.
func New() *Config {
	return &Config{
		Port:       DefaultPort,
		ServerName: DefaultServerName,
	}
}
