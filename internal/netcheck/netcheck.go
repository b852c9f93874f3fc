// Package netcheck answers "is the network reachable" with a cheap TCP probe.
package netcheck

import (
	"context"
	"net"
	"time"
)

const (
	// DefaultProbeAddr answers on 443 from anywhere with a route out.
	DefaultProbeAddr = "1.1.1.1:443"

	defaultTimeout = 2 * time.Second
)

// Checker probes a fixed address to decide reachability.
type Checker struct {
	addr    string
	timeout time.Duration
	dialer  net.Dialer
}

// New creates a Checker probing addr. Empty addr and zero timeout fall back
// to the defaults.
func New(addr string, timeout time.Duration) *Checker {
	if addr == "" {
		addr = DefaultProbeAddr
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Checker{addr: addr, timeout: timeout}
}

// Reachable reports whether the probe address accepts a TCP connection
// within the timeout.
func (c *Checker) Reachable(ctx context.Context) bool {
	dialCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	conn, err := c.dialer.DialContext(dialCtx, "tcp", c.addr)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
