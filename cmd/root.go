// Package cmd wires up the CLI flags and starts the server.
package cmd

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"golang.org/x/term"

	"ircd/config"
	"ircd/irc"
	"ircd/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X ircd/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the server.
func Execute(ctx context.Context, args []string) error {
	cfg := config.New()
	if err := config.LoadFromEnv(cfg); err != nil {
		return err
	}

	fs := flag.NewFlagSet("ircd", flag.ContinueOnError)

	// ── server ───────────────────────────────────────────────────
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "Port to listen on")
	fs.StringVarP(&cfg.ServerName, "servername", "s", cfg.ServerName, "Server name used in reply prefixes")
	fs.StringVarP(&cfg.OperPasswd, "oper-passwd", "o", cfg.OperPasswd, "Operator password (prompted if omitted on a terminal)")
	fs.StringVarP(&cfg.NetworkFile, "network-file", "n", cfg.NetworkFile, "IRC network specification file (TOML)")

	// ── output ───────────────────────────────────────────────────
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Log errors only")

	var showVersion, showHelp bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(fs) }

	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(fs)
		return nil
	}
	if showVersion {
		fmt.Printf("ircd %s\n", version)
		return nil
	}

	if err := resolveOperPassword(cfg); err != nil {
		return err
	}

	if cfg.NetworkFile != "" {
		nw, err := config.LoadNetworkFile(cfg.NetworkFile)
		if err != nil {
			return fmt.Errorf("network file: %w", err)
		}
		cfg.Network = nw
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// ── build components ─────────────────────────────────────────
	logger := util.NewLogger(cfg.Verbosity())
	if cfg.Network != nil {
		logger.Info().Int("servers", len(cfg.Network.Servers)).Msg("loaded network file")
	}

	return irc.New(cfg, logger).ListenAndServe(ctx)
}

// ── helpers ──────────────────────────────────────────────────────────

// resolveOperPassword hashes the password from -o / IRCD_OPER_PASSWD,
// prompting interactively when none was supplied and stdin is a
// terminal.
func resolveOperPassword(cfg *config.Config) error {
	pass := []byte(cfg.OperPasswd)
	if len(pass) == 0 && term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, "Operator password: ")
		p, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		pass = p
	}
	if len(pass) == 0 {
		return fmt.Errorf("an operator password is required (use -o)")
	}
	return cfg.SetOperPassword(pass)
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, `ircd – a minimal IRC server v%s

Usage:
  ircd -o OPER_PASSWD [-p PORT] [-s SERVERNAME] [-n NETWORK_FILE] [(-q|-v|-vv)]

Options:
`, version)
	fs.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Examples:
  ircd -o secret                              Listen on 6667
  ircd -o secret -p 6697 -s irc.example.com   Custom port and name
  ircd -o secret -vv                          Trace-level logging
`)
}
