// Package server provides the single-client TCP front end for the
// adventure game protocol.
package server

import (
	"bytes"
	"fmt"
	"net"
	"strings"
	"sync"
)

// ResponsePrefix starts every reply the server puts on the wire.
const ResponsePrefix = "OK! "

// readChunkSize is the number of bytes pulled from the socket per read.
const readChunkSize = 16

// Conn wraps a TCP connection with the newline-delimited game protocol:
// ASCII command lines in, "OK! "-prefixed response lines out.
type Conn struct {
	raw net.Conn
	mu  sync.Mutex
}

// NewConn wraps a raw TCP connection.
//
// Precondition: raw must be a valid, open network connection.
// Postcondition: Returns a Conn ready for reading and writing.
func NewConn(raw net.Conn) *Conn {
	return &Conn{raw: raw}
}

// ReadCommand accumulates socket reads in 16-byte chunks until the
// buffer contains a newline, then returns the buffer trimmed of
// surrounding whitespace. A command is everything that arrived up to
// the end of the chunk carrying the first newline, interior newlines
// included; bytes beyond that chunk stay on the socket for the next
// call. Clients must wait for each response before sending the next
// command.
//
// Postcondition: Returns the accumulated text, or an error (including io.EOF).
func (c *Conn) ReadCommand() (string, error) {
	var buf bytes.Buffer
	chunk := make([]byte, readChunkSize)
	for {
		n, err := c.raw.Read(chunk)
		if n > 0 {
			buf.Write(chunk[:n])
		}
		if bytes.IndexByte(buf.Bytes(), '\n') >= 0 {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

// WriteResponse sends a single response line to the client.
//
// Precondition: text must not contain a newline.
// Postcondition: ResponsePrefix + text + "\n" is written to the connection.
func (c *Conn) WriteResponse(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, err := fmt.Fprintf(c.raw, "%s%s\n", ResponsePrefix, text)
	return err
}

// Close closes the underlying TCP connection.
//
// Postcondition: The connection is closed and no longer usable.
func (c *Conn) Close() error {
	return c.raw.Close()
}

// RemoteAddr returns the remote network address of the client.
func (c *Conn) RemoteAddr() net.Addr {
	return c.raw.RemoteAddr()
}
