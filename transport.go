package statsd

/*

Copyright (c) 2018 Zencoder

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

*/

import (
	"errors"
	"math/rand"
	"net"
	"strconv"
	"time"
)

// send delivers a single message as one datagram with a bounded wait
//
// send never fails visibly: dial errors, write errors and deadline expiry
// are logged at error level and swallowed, so instrumentation call sites
// never observe a network problem. There is no retry and no queueing; a
// failed datagram is dropped and the socket is redialed on the next send.
//
// Caller must hold c.mu.
func (c *Client) send(msg []byte) {
	c.options.Logger.Debugf("statsd: %s", msg)

	if c.conn == nil {
		conn, err := dialTimeout("udp", c.addr(), c.options.SendTimeout)
		if err != nil {
			c.options.Logger.Errorf("statsd: %s error connecting to %s: %s", errKind(err), c.addr(), err)
			return
		}

		c.conn = conn
	}

	_ = c.conn.SetWriteDeadline(now().Add(c.options.SendTimeout))

	if _, err := c.conn.Write(msg); err != nil {
		c.options.Logger.Errorf("statsd: %s error writing to %s: %s", errKind(err), c.addr(), err)
		c.dropConn()
	}
}

// addr renders the configured daemon address. Caller must hold c.mu.
func (c *Client) addr() string {
	return net.JoinHostPort(c.options.Host, strconv.Itoa(c.options.Port))
}

// dropConn closes the cached socket so the next send redials. Caller must
// hold c.mu.
func (c *Client) dropConn() {
	if c.conn != nil {
		_ = c.conn.Close()
		c.conn = nil
	}
}

// errKind classifies a delivery failure for the error log line
func errKind(err error) string {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "resolution"
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}

	return "write"
}

// Stubbed out for testing.
var (
	dialTimeout = net.DialTimeout
	now         = time.Now
	randFloat   = rand.Float64
)
