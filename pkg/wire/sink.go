package wire

// Sink is the single capability the encoders need from their environment:
// accept a finished line and transmit it. Blocking behavior, retries, and
// connection state are entirely the implementation's concern.
type Sink interface {
	Send(line []byte) error
}
