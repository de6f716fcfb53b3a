package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Network describes the IRC network this server belongs to, as read
// from the -n file. Server linking is not implemented; the file is
// parsed and validated so a misconfigured deployment fails at startup
// rather than at link time.
type Network struct {
	Servers []NetworkServer `toml:"servers"`
}

// NetworkServer is one peer server entry in the network file.
type NetworkServer struct {
	Name string `toml:"name"`
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LoadNetworkFile parses a TOML network specification file.
func LoadNetworkFile(path string) (*Network, error) {
	var nw Network
	if _, err := toml.DecodeFile(path, &nw); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	for i, s := range nw.Servers {
		if s.Name == "" {
			return nil, fmt.Errorf("%s: server %d has no name", path, i)
		}
		if s.Host == "" {
			return nil, fmt.Errorf("%s: server %q has no host", path, s.Name)
		}
		if s.Port < 1 || s.Port > 65535 {
			return nil, fmt.Errorf("%s: server %q has invalid port %d", path, s.Name, s.Port)
		}
	}
	return &nw, nil
}
