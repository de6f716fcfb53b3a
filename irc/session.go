package irc

// session is the per-connection registration state. It is owned by
// exactly one connection goroutine and never shared.
type session struct {
	nick       string // set by NICK
	username   string // set by USER
	fullName   string // set by USER
	registered bool   // true once the welcome has been sent
}

// handleMessage dispatches one parsed message against the session.
//
// Commands with too few arguments are logged at warning level and
// ignored; the connection stays up. Unknown commands are logged and
// ignored. After every message the registration condition is
// re-checked, and the welcome is emitted at most once.
func (c *conn) handleMessage(m *message) {
	switch m.command {
	case "NICK":
		if m.numArgs() < 1 {
			c.log.Warn().Msg("NICK with no nickname, ignoring")
			break
		}
		c.sess.nick = m.takeArg(0)
		c.log.Info().Str("nick", c.sess.nick).Msg("nickname set")
	case "USER":
		if m.numArgs() < 4 {
			c.log.Warn().Int("args", m.numArgs()).Msg("USER needs 4 arguments, ignoring")
			break
		}
		c.sess.username = m.takeArg(0)
		// Arguments 1-2 are the mode and unused fields; discard them.
		c.sess.fullName = m.takeArg(3)
		c.log.Info().
			Str("username", c.sess.username).
			Str("full_name", c.sess.fullName).
			Msg("user details set")
	case "PING":
		c.send(pongReply(c.srv.cfg.ServerName, m.takeArg(0)))
	case "QUIT":
		c.log.Info().Str("reason", m.takeArg(0)).Msg("client quit")
		c.closing = true
	default:
		c.log.Warn().Str("command", m.command).Msg("unexpected command")
	}

	c.maybeWelcome()
}

// maybeWelcome completes registration once nick and username are both
// known. The registered flag guarantees a single welcome no matter how
// often the condition holds afterwards.
func (c *conn) maybeWelcome() {
	if c.sess.registered || c.sess.nick == "" || c.sess.username == "" {
		return
	}
	c.sess.registered = true
	c.send(welcomeReply(c.srv.cfg.ServerName, c.sess.nick, c.sess.username, c.remoteHost()))
	c.log.Info().Str("nick", c.sess.nick).Msg("registration complete")
}
