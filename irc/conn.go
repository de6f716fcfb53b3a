package irc

import (
	"io"
	"net"

	"github.com/rs/zerolog"

	"ircd/util"
)

// conn drives the read → split → parse → dispatch loop for one
// accepted connection. The receive buffer and session are confined to
// this goroutine; no locking is needed for either.
type conn struct {
	srv     *Server
	nc      net.Conn
	log     zerolog.Logger
	sess    session
	closing bool // set by QUIT; ends the loop after the current pass
}

func (s *Server) newConn(nc net.Conn) *conn {
	return &conn{
		srv: s,
		nc:  nc,
		log: s.log.With().Str("remote", nc.RemoteAddr().String()).Logger(),
	}
}

// serve runs until the socket reports an error or the client quits.
// A read failure tears down this connection only; the rest of the
// server keeps running.
func (c *conn) serve() {
	defer c.nc.Close()

	bufp := util.GetRecvBuf()
	defer util.PutRecvBuf(bufp)
	buf := recvBuffer{data: *bufp}

	for {
		n, err := c.nc.Read(buf.free())
		if err != nil {
			if util.IsDisconnect(err) {
				c.log.Info().Msg("client disconnected")
			} else {
				c.log.Error().Err(err).Msg("read failed, closing connection")
			}
			return
		}
		buf.advance(n)

		frames, consumed, overflow := buf.split()
		if overflow {
			c.log.Warn().Msg("receive buffer full with no message terminator, dropping buffered data")
		}
		for _, frame := range frames {
			c.handleFrame(frame)
			if c.closing {
				return
			}
		}
		buf.compact(consumed)
	}
}

// handleFrame parses one frame and dispatches it. Unparseable frames
// (no command token) are skipped without disturbing buffer state.
func (c *conn) handleFrame(frame []byte) {
	m, err := parseMessage(frame)
	if err != nil {
		c.log.Debug().Err(err).Msg("skipping unparseable frame")
		return
	}
	c.log.Trace().Str("command", m.command).Int("args", m.numArgs()).Msg("dispatching")
	c.handleMessage(m)
}

// send writes a reply line to the client. Delivery is fire-and-forget:
// a write failure is logged and the read loop discovers the dead
// socket on its next pass.
func (c *conn) send(line string) {
	if _, err := io.WriteString(c.nc, line); err != nil {
		c.log.Error().Err(err).Msg("write failed")
	}
}

// remoteHost is the client's address as used in the welcome reply.
// No reverse lookup is attempted; the raw IP stands in for the
// client's hostname.
func (c *conn) remoteHost() string {
	host, _, err := net.SplitHostPort(c.nc.RemoteAddr().String())
	if err != nil {
		return c.nc.RemoteAddr().String()
	}
	return host
}
