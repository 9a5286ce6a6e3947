package wire

import (
	"bytes"
	"testing"
)

func TestCommandLayouts(t *testing.T) {
	tests := []struct {
		name string
		got  []byte
		want string
	}{
		{"pass", Pass("hunter2"), "PASS hunter2\r\n"},
		{"nick", Nick("guest"), "NICK guest\r\n"},
		{"user", User("guest", "Real Name"), "USER guest 0 * :Real Name\r\n"},
		{"pong", Pong("guest", ""), "PONG guest\r\n"},
		{"pong targeted", Pong("guest", "irc.example.com"), "PONG guest irc.example.com\r\n"},
		{"privmsg", Privmsg("#chan", "hello"), "PRIVMSG #chan :hello\r\n"},
		{"privmsg to nick", Privmsg("guest", "hello there"), "PRIVMSG guest :hello there\r\n"},
		{"notice", Notice("#chan", "heads up"), "NOTICE #chan :heads up\r\n"},
		{"join with key", Join("#chan", "sekrit"), "JOIN #chan sekrit\r\n"},
		{"part", Part("#chan"), "PART #chan\r\n"},
		{"quit", Quit("bye"), "QUIT :bye\r\n"},
		{"kick", Kick("#chan", "guest", ""), "KICK #chan guest\r\n"},
		{"kick with reason", Kick("#chan", "guest", "flooding"), "KICK #chan guest :flooding\r\n"},
		{"mode", Mode("#chan", "+m", ""), "MODE #chan +m\r\n"},
		{"mode with args", Mode("#chan", "+o", "guest"), "MODE #chan +o guest\r\n"},
		{"invite", Invite("guest", "#chan"), "INVITE guest #chan\r\n"},
		{"me", Me("#chan", "waves"), "PRIVMSG #chan :\x01ACTION waves\x01\r\n"},
	}
	for _, tt := range tests {
		if string(tt.got) != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

// The separating space in JOIN is emitted even without a key. Some server
// deployments depend on this exact byte layout, so it must not be
// collapsed.
func TestJoinWithoutKeyKeepsSeparator(t *testing.T) {
	got := Join("#chan", "")
	if string(got) != "JOIN #chan \r\n" {
		t.Fatalf("got %q", got)
	}
}

func TestQuitDefaultMessage(t *testing.T) {
	got := Quit("")
	if string(got) != "QUIT :Leaving\r\n" {
		t.Fatalf("got %q", got)
	}
}

func TestLinesTerminateWithSingleCRLF(t *testing.T) {
	lines := [][]byte{
		Pass("x"),
		Nick("n"),
		User("u", "r"),
		Pong("n", ""),
		Privmsg("#c", "m"),
		Notice("#c", "m"),
		Join("#c", ""),
		Part("#c"),
		Quit(""),
	}
	for _, line := range lines {
		if !bytes.HasSuffix(line, []byte("\r\n")) {
			t.Errorf("%q does not end with CRLF", line)
		}
		if bytes.Count(line, []byte("\r\n")) != 1 {
			t.Errorf("%q contains more than one CRLF", line)
		}
	}
}

// Parameter content is passed through untouched; the encoder performs no
// validation of its own.
func TestNoContentValidation(t *testing.T) {
	got := Privmsg("#chan", "")
	if string(got) != "PRIVMSG #chan :\r\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEncodingIsIdempotent(t *testing.T) {
	first := Privmsg("#chan", "hello")
	second := Privmsg("#chan", "hello")
	if !bytes.Equal(first, second) {
		t.Fatalf("got %q and %q for identical inputs", first, second)
	}

	// Mutating one result must not affect a later encoding.
	first[0] = 'X'
	third := Privmsg("#chan", "hello")
	if !bytes.Equal(second, third) {
		t.Fatalf("encoding changed after mutating an earlier result: %q", third)
	}
}
