package irc

import "fmt"

// Numeric replies sent by this server.
const rplWelcome = "001"

// welcomeReply formats the RPL_WELCOME line sent exactly once when a
// connection completes the NICK+USER handshake.
func welcomeReply(server, nick, username, host string) string {
	return fmt.Sprintf(":%s %s %s :Welcome to the Internet Relay Network %s!%s@%s\r\n",
		server, rplWelcome, nick, nick, username, host)
}

// pongReply answers a PING. The token is echoed as the trailing
// parameter when present.
func pongReply(server, token string) string {
	if token == "" {
		return fmt.Sprintf(":%s PONG %s\r\n", server, server)
	}
	return fmt.Sprintf(":%s PONG %s :%s\r\n", server, server, token)
}
