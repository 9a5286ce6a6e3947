// Package wire builds the raw CRLF-terminated command lines an IRC client
// sends to a server. Every encoder is a pure function from its parameters to
// a finished byte slice; writing the bytes anywhere is the transport's job.
//
// Parameter content is emitted exactly as supplied: no length limits, no
// character-set checks, and no guard against embedded CR or LF. Callers are
// responsible for protocol-safe values.
package wire

import "fmt"

// DefaultQuitMessage is used by Quit when no message is given.
const DefaultQuitMessage = "Leaving"

// Pass encodes a PASS command for connection registration.
func Pass(password string) []byte {
	return line("PASS " + password)
}

// Nick encodes a NICK command.
func Nick(nick string) []byte {
	return line("NICK " + nick)
}

// User encodes a USER command. The mode and unused fields are fixed at
// "0 *"; realname is sent as the trailing parameter and may contain spaces.
func User(username, realname string) []byte {
	return line(fmt.Sprintf("USER %s 0 * :%s", username, realname))
}

// Pong encodes a PONG command. An empty target produces the untargeted
// form "PONG <nick>"; otherwise the target server is appended.
func Pong(nick, target string) []byte {
	if target == "" {
		return line("PONG " + nick)
	}
	return line(fmt.Sprintf("PONG %s %s", nick, target))
}

// Privmsg encodes a PRIVMSG to a channel or nick. The message is the
// trailing parameter and may contain spaces.
func Privmsg(target, message string) []byte {
	return line(fmt.Sprintf("PRIVMSG %s :%s", target, message))
}

// Notice encodes a NOTICE to a channel or nick.
func Notice(target, message string) []byte {
	return line(fmt.Sprintf("NOTICE %s :%s", target, message))
}

// Join encodes a JOIN command. The separating space is emitted even when
// key is empty, leaving a trailing space before the terminator. Servers
// accept this layout and some deployments depend on it, so it is kept
// as-is rather than collapsed.
func Join(channel, key string) []byte {
	return line(fmt.Sprintf("JOIN %s %s", channel, key))
}

// Part encodes a PART command.
func Part(channel string) []byte {
	return line("PART " + channel)
}

// Quit encodes a QUIT command. An empty message falls back to
// DefaultQuitMessage.
func Quit(message string) []byte {
	if message == "" {
		message = DefaultQuitMessage
	}
	return line("QUIT :" + message)
}

// Kick encodes a KICK command. The reason, when given, is sent as the
// trailing parameter; unlike Join, an absent tail is omitted entirely.
func Kick(channel, nick, message string) []byte {
	if message == "" {
		return line(fmt.Sprintf("KICK %s %s", channel, nick))
	}
	return line(fmt.Sprintf("KICK %s %s :%s", channel, nick, message))
}

// Mode encodes a MODE command for a channel or nick. Empty args are
// omitted.
func Mode(target, flags, args string) []byte {
	if args == "" {
		return line(fmt.Sprintf("MODE %s %s", target, flags))
	}
	return line(fmt.Sprintf("MODE %s %s %s", target, flags, args))
}

// Invite encodes an INVITE command.
func Invite(nick, channel string) []byte {
	return line(fmt.Sprintf("INVITE %s %s", nick, channel))
}

// line frames a finished command with the CRLF terminator.
func line(s string) []byte {
	b := make([]byte, 0, len(s)+2)
	b = append(b, s...)
	return append(b, '\r', '\n')
}
