package transport

import (
	"net"
	"testing"
)

func TestSendWritesLineUnmodified(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	conn := NewConn(client)
	defer conn.Close()

	done := make(chan error, 1)
	go func() {
		done <- conn.Send([]byte("NICK guest\r\n"))
	}()

	buf := make([]byte, 64)
	n, err := server.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := string(buf[:n]); got != "NICK guest\r\n" {
		t.Fatalf("got %q", got)
	}
	if err := <-done; err != nil {
		t.Fatal(err)
	}
}

func TestReadLineStripsTerminator(t *testing.T) {
	client, server := net.Pipe()
	defer server.Close()

	conn := NewConn(client)
	defer conn.Close()

	go func() {
		server.Write([]byte("PING :irc.example.com\r\n"))
	}()

	line, err := conn.ReadLine()
	if err != nil {
		t.Fatal(err)
	}
	if line != "PING :irc.example.com" {
		t.Fatalf("got %q", line)
	}
}
