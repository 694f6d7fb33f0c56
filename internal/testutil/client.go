// Package testutil provides helpers for integration testing against a
// live game server.
package testutil

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"testing"
	"time"
)

// LineClient is a line-oriented TCP test client for the game protocol.
type LineClient struct {
	conn   net.Conn
	reader *bufio.Reader
	t      *testing.T
}

// Dial connects to the given address and returns a test client.
//
// Precondition: addr must be a valid "host:port" string with a listening server.
// Postcondition: Returns a connected LineClient or fails the test.
func Dial(t *testing.T, addr string) *LineClient {
	t.Helper()
	start := time.Now()

	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		t.Fatalf("connecting to %s: %v [%s]", addr, err, time.Since(start))
	}

	t.Cleanup(func() {
		conn.Close()
	})

	client := &LineClient{
		conn:   conn,
		reader: bufio.NewReader(conn),
		t:      t,
	}

	t.Logf("line client connected to %s [%s]", addr, time.Since(start))
	return client
}

// ReadLine reads one newline-terminated response from the server.
// The returned string includes the trailing newline.
//
// Postcondition: Returns the next line, or fails on error or timeout.
func (c *LineClient) ReadLine(timeout time.Duration) string {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(timeout))

	line, err := c.reader.ReadString('\n')
	if err != nil {
		c.t.Fatalf("reading line: got %q, error: %v", line, err)
	}
	return line
}

// Send writes a command line to the server, appending \n.
//
// Precondition: text should not contain trailing newline characters.
// Postcondition: text + \n is written to the connection.
func (c *LineClient) Send(text string) {
	c.t.Helper()
	_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	_, err := fmt.Fprintf(c.conn, "%s\n", text)
	if err != nil {
		c.t.Fatalf("sending %q: %v", text, err)
	}
}

// SendRaw writes bytes to the server exactly as given.
//
// Postcondition: data is written to the connection.
func (c *LineClient) SendRaw(data []byte) {
	c.t.Helper()
	_ = c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	if _, err := c.conn.Write(data); err != nil {
		c.t.Fatalf("sending %d raw bytes: %v", len(data), err)
	}
}

// ExpectClosed asserts that the server closes the connection within
// the timeout.
//
// Postcondition: The connection has reached EOF, or the test fails.
func (c *LineClient) ExpectClosed(timeout time.Duration) {
	c.t.Helper()
	_ = c.conn.SetReadDeadline(time.Now().Add(timeout))

	buf := make([]byte, 64)
	for {
		_, err := c.conn.Read(buf)
		if err == io.EOF {
			return
		}
		if err != nil {
			c.t.Fatalf("waiting for close: %v", err)
		}
	}
}

// Close closes the underlying connection.
func (c *LineClient) Close() {
	c.conn.Close()
}
