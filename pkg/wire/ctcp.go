package wire

import "fmt"

// ctcpDelim frames CTCP messages inside a PRIVMSG or NOTICE payload.
const ctcpDelim = '\x01'

// CTCP wraps a payload in the CTCP delimiter bytes. No line terminator is
// added; the result belongs inside a Privmsg or Notice trailing parameter.
func CTCP(payload string) []byte {
	b := make([]byte, 0, len(payload)+2)
	b = append(b, ctcpDelim)
	b = append(b, payload...)
	return append(b, ctcpDelim)
}

// Me encodes a CTCP ACTION ("/me") as a PRIVMSG to the target.
func Me(target, message string) []byte {
	return Privmsg(target, fmt.Sprintf("%cACTION %s%c", ctcpDelim, message, ctcpDelim))
}
