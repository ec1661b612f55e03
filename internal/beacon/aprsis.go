package beacon

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"time"
)

const softwareName = "adsb2aprs"
const softwareVersion = "1.1"

// ISClient is a Sink backed by an APRS-IS connection. Login happens once in
// DialIS; Submit writes one report line per call, synchronously, with a
// bounded write deadline.
type ISClient struct {
	conn         net.Conn
	r            *bufio.Reader
	w            *bufio.Writer
	writeTimeout time.Duration
}

// DialIS connects to an APRS-IS server and performs the login handshake with
// the given identity. A server response that leaves the identity unverified,
// or that reports the callsign already in use, is a delivery rejection.
func DialIS(addr, callsign, passcode string, writeTimeout time.Duration) (*ISClient, error) {
	conn, err := net.DialTimeout("tcp", addr, 10*time.Second)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to delivery %s: %w", addr, err)
	}

	c := &ISClient{
		conn:         conn,
		r:            bufio.NewReader(conn),
		w:            bufio.NewWriter(conn),
		writeTimeout: writeTimeout,
	}
	if err := c.login(callsign, passcode); err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

func (c *ISClient) login(callsign, passcode string) error {
	c.conn.SetDeadline(time.Now().Add(30 * time.Second))
	defer c.conn.SetDeadline(time.Time{})

	// Server banner arrives first, then our login, then the login response.
	if _, err := c.r.ReadString('\n'); err != nil {
		return fmt.Errorf("reading server banner: %w", err)
	}

	login := fmt.Sprintf("user %s pass %s vers %s %s\r\n",
		callsign, passcode, softwareName, softwareVersion)
	if _, err := c.w.WriteString(login); err != nil {
		return fmt.Errorf("sending login: %w", err)
	}
	if err := c.w.Flush(); err != nil {
		return fmt.Errorf("sending login: %w", err)
	}

	resp, err := c.r.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading login response: %w", err)
	}
	resp = strings.TrimSpace(resp)

	switch {
	case strings.Contains(resp, "unverified"):
		return fmt.Errorf("%w: identity %s unverified: %s", ErrRejected, callsign, resp)
	case strings.Contains(strings.ToLower(resp), "in use"):
		return fmt.Errorf("%w: identity %s already in use: %s", ErrRejected, callsign, resp)
	}
	return nil
}

// Submit writes one report line. Any failure to hand the report to the
// server is a rejection.
func (c *ISClient) Submit(report string) error {
	if c.writeTimeout > 0 {
		c.conn.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	if _, err := c.w.WriteString(report + "\r\n"); err != nil {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	if err := c.w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrRejected, err)
	}
	return nil
}

func (c *ISClient) Close() error {
	return c.conn.Close()
}
