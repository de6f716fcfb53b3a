// Package irc implements the wire core of the server: CRLF framing
// over a fixed receive buffer, the two-pass message parser, and the
// per-connection registration state machine.
package irc

import (
	"context"
	"fmt"
	"net"

	"github.com/rs/zerolog"

	"ircd/config"
	"ircd/util"
)

// Server accepts connections and runs one connection loop per client.
type Server struct {
	cfg *config.Config
	log zerolog.Logger
}

// New returns a ready-to-run Server.
func New(cfg *config.Config, log zerolog.Logger) *Server {
	return &Server{cfg: cfg, log: log}
}

// ListenAndServe accepts connections until the context is cancelled or
// the listener fails. Each accepted connection gets its own goroutine;
// a failure on one connection never propagates to the others or to
// this loop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := util.FormatAddr("", s.cfg.Port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	defer ln.Close()

	s.log.Info().Int("port", s.cfg.Port).Str("server", s.cfg.ServerName).Msg("listening")

	// Shut the listener down when the context expires.
	go func() {
		<-ctx.Done()
		ln.Close()
	}()

	for {
		nc, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
				return fmt.Errorf("accept: %w", err)
			}
		}
		s.log.Debug().Stringer("remote", nc.RemoteAddr()).Msg("connection accepted")
		go s.newConn(nc).serve()
	}
}
