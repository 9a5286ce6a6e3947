// Package transport carries finished IRC lines over a TCP connection. It
// is the reference implementation of the wire.Sink contract; the encoders
// in pkg/wire never touch a socket themselves.
package transport

import (
	"bufio"
	"context"
	"net"
	"strings"
	"sync"
	"time"

	"ircwire/pkg/wire"
)

var _ wire.Sink = (*Conn)(nil)

// Conn is a TCP connection to an IRC server. Send may be called from
// multiple goroutines; writes are serialized so lines never interleave.
type Conn struct {
	conn net.Conn
	r    *bufio.Reader

	mu sync.Mutex
}

// Dial connects to the IRC server at addr (host:port). Dialing can be
// canceled through ctx and is bounded by timeout.
func Dial(ctx context.Context, addr string, timeout time.Duration) (*Conn, error) {
	connectCtx, connectCancel := context.WithTimeout(ctx, timeout)
	defer connectCancel()

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(connectCtx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	return NewConn(conn), nil
}

// NewConn wraps an established connection.
func NewConn(conn net.Conn) *Conn {
	return &Conn{
		conn: conn,
		r:    bufio.NewReader(conn),
	}
}

// Send writes one finished line to the connection.
func (c *Conn) Send(line []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := c.conn.Write(line)
	return err
}

// ReadLine reads the next line from the server with the CRLF terminator
// stripped.
func (c *Conn) ReadLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close closes the underlying connection.
func (c *Conn) Close() error {
	return c.conn.Close()
}
