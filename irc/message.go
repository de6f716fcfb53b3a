package irc

import (
	"errors"
	"fmt"
)

var errEmptyCommand = errors.New("message has no command token")

// message is one parsed protocol message: a command plus its ordered
// arguments. Arguments are retrieved with takeArg, which consumes
// them; the struct is built from one frame and discarded after
// dispatch.
type message struct {
	command string
	args    []string
}

// parseMessage decodes a single frame (terminator already stripped)
// into a message.
//
// Tokens are delimited by single ASCII spaces; consecutive spaces
// therefore yield empty middle arguments. An argument token starting
// with ':' absorbs the rest of the frame, spaces included (the
// trailing parameter). An empty frame, or one starting with a space,
// has no command token and is rejected.
//
// All tokens are copied into independently owned strings: the frame
// aliases the receive buffer, which is overwritten by the next read.
func parseMessage(frame []byte) (*message, error) {
	if len(frame) == 0 {
		return nil, fmt.Errorf("empty frame: %w", errEmptyCommand)
	}

	// First pass: the spaces before the first colon bound the number
	// of space-delimited arguments, so the argument list can be sized
	// up front.
	n := 0
	for _, c := range frame {
		if c == ':' {
			break
		}
		if c == ' ' {
			n++
		}
	}

	// Second pass: extract the command and arguments.
	m := &message{args: make([]string, 0, n)}
	for i := 0; ; {
		if i > 0 && i < len(frame) && frame[i] == ':' {
			// Trailing parameter: everything to the end of the
			// frame, embedded spaces included.
			m.args = append(m.args, string(frame[i+1:]))
			break
		}
		j := i
		for j < len(frame) && frame[j] != ' ' {
			j++
		}
		if i == 0 {
			if j == 0 {
				return nil, errEmptyCommand
			}
			m.command = string(frame[:j])
		} else {
			m.args = append(m.args, string(frame[i:j]))
		}
		if j == len(frame) {
			break
		}
		i = j + 1
	}
	return m, nil
}

// numArgs returns how many arguments the message carries, consumed or
// not. Handlers check it before taking required arguments.
func (m *message) numArgs() int {
	return len(m.args)
}

// takeArg returns argument i and consumes it: a second retrieval of
// the same index, like an out-of-range index, observes the empty
// string. This transfers ownership of the value out of the message and
// into whichever session field keeps it.
func (m *message) takeArg(i int) string {
	if i < 0 || i >= len(m.args) {
		return ""
	}
	arg := m.args[i]
	m.args[i] = ""
	return arg
}
