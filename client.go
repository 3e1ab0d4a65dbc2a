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
	"net"
	"strconv"
	"sync"
	"time"
)

// Client implements statsd client
//
// Client is safe for concurrent use: operations serialize on an internal
// mutex guarding the message buffer and the socket.
type Client struct {
	mu      sync.Mutex
	options ClientOptions
	prefix  string
	conn    net.Conn
	buf     []byte
}

// NewClient creates new statsd client
//
// Client sends one UDP datagram per metric to the statsd daemon at
// host:port (127.0.0.1:8125 unless configured otherwise)
//
// Client settings could be controlled via functions of type Option
func NewClient(options ...Option) *Client {
	opts := ClientOptions{
		Host:        DefaultHost,
		Port:        DefaultPort,
		SendTimeout: DefaultSendTimeout,
		Logger:      DiscardLogger{},
	}

	for _, option := range options {
		option(&opts)
	}

	opts.Namespace = sanitize(opts.Namespace)

	return newClient(opts)
}

func newClient(opts ClientOptions) *Client {
	return &Client{
		options: opts,
		prefix:  makePrefix(opts.Namespace),
		buf:     make([]byte, 0, 256),
	}
}

// makePrefix renders the namespace as the per-message prefix
func makePrefix(namespace string) string {
	if namespace == "" {
		return ""
	}

	return namespace + "."
}

// Close releases the client's socket
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil

	return err
}

// Count adds delta to a counter metric
func (c *Client) Count(stat string, delta int64, rate float64) {
	c.imetric(stat, delta, "c", rate)
}

// Incr increments a counter metric by one
//
// Often used to note a particular event
func (c *Client) Incr(stat string, rate float64) {
	c.Count(stat, 1, rate)
}

// Decr decrements a counter metric by one
func (c *Client) Decr(stat string, rate float64) {
	c.Count(stat, -1, rate)
}

// Gauge sets constant value for the interval
//
// Gauges are a constant data type. They are not subject to averaging,
// and they don’t change unless you change them. That is, once you set a
// gauge value, it will be a flat line on the graph until you change it
// again. The value is sent exactly as given, without rounding.
func (c *Client) Gauge(stat string, value float64, rate float64) {
	c.fmetric(stat, value, "g", rate)
}

// Timing tracks a duration event, the time delta must be given in milliseconds
func (c *Client) Timing(stat string, delta int64, rate float64) {
	c.imetric(stat, delta, "ms", rate)
}

// TimingBetween tracks the duration between two points in time, rounded to
// whole milliseconds
//
// Argument order does not matter: the value sent is the absolute distance
// between from and to
func (c *Client) TimingBetween(stat string, from, to time.Time, rate float64) {
	c.Timing(stat, millisecondsBetween(from, to), rate)
}

// Time runs fn and tracks its wall-clock duration under stat, returning
// fn's error unchanged
//
// A failed fn is not timed: its error propagates to the caller and no
// message is sent, since no complete measurement exists
func (c *Client) Time(stat string, rate float64, fn func() error) error {
	start := now()

	if err := fn(); err != nil {
		return err
	}

	c.TimingBetween(stat, start, now(), rate)

	return nil
}

// WithNamespace returns an independent client whose namespace is the
// client's namespace extended with suffix ("a" + "b" gives "a.b")
//
// The copy carries its own socket and configuration; using or
// reconfiguring it never mutates the original client
func (c *Client) WithNamespace(suffix string) Statter {
	c.mu.Lock()
	opts := c.options
	c.mu.Unlock()

	suffix = sanitize(suffix)
	if suffix != "" {
		if opts.Namespace != "" {
			opts.Namespace += "." + suffix
		} else {
			opts.Namespace = suffix
		}
	}

	return newClient(opts)
}

// Namespace returns the dotted prefix applied to every stat name
func (c *Client) Namespace() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.options.Namespace
}

// SetNamespace replaces the namespace; the value goes through the same
// escaping as stat names
func (c *Client) SetNamespace(namespace string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.options.Namespace = sanitize(namespace)
	c.prefix = makePrefix(c.options.Namespace)
}

// Host returns the statsd daemon host
func (c *Client) Host() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.options.Host
}

// SetHost changes the statsd daemon host, falling back to DefaultHost when
// given an empty value; the next send dials the new address
func (c *Client) SetHost(host string) {
	if host == "" {
		host = DefaultHost
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.options.Host = host
	c.dropConn()
}

// Port returns the statsd daemon port
func (c *Client) Port() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.options.Port
}

// SetPort changes the statsd daemon port, falling back to DefaultPort when
// given a zero value; the next send dials the new address
func (c *Client) SetPort(port int) {
	if port == 0 {
		port = DefaultPort
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.options.Port = port
	c.dropConn()
}

// imetric serializes and sends a metric with an integer value
func (c *Client) imetric(stat string, value int64, typ string, rate float64) {
	if !sampled(rate) {
		return
	}

	c.mu.Lock()

	c.buf = c.buf[:0]
	c.buf = append(c.buf, c.prefix...)
	c.buf = appendSanitized(c.buf, stat)
	c.buf = append(c.buf, ':')
	c.buf = strconv.AppendInt(c.buf, value, 10)
	c.buf = append(c.buf, '|')
	c.buf = append(c.buf, typ...)
	c.buf = appendRate(c.buf, rate)

	c.send(c.buf)
	c.mu.Unlock()
}

// fmetric serializes and sends a metric with a floating point value
func (c *Client) fmetric(stat string, value float64, typ string, rate float64) {
	if !sampled(rate) {
		return
	}

	c.mu.Lock()

	c.buf = c.buf[:0]
	c.buf = append(c.buf, c.prefix...)
	c.buf = appendSanitized(c.buf, stat)
	c.buf = append(c.buf, ':')
	c.buf = strconv.AppendFloat(c.buf, value, 'f', -1, 64)
	c.buf = append(c.buf, '|')
	c.buf = append(c.buf, typ...)
	c.buf = appendRate(c.buf, rate)

	c.send(c.buf)
	c.mu.Unlock()
}

// sampled is the single sampling gate for all metric operations: rate 1
// always passes without consuming randomness, otherwise a uniform draw in
// [0,1) admits the call with probability rate
func sampled(rate float64) bool {
	return rate == 1 || randFloat() < rate
}

// appendRate appends the "|@<rate>" suffix for sub-1 sample rates so the
// daemon can scale the observation back up; full-rate messages carry no
// suffix
func appendRate(buf []byte, rate float64) []byte {
	if rate >= 1 {
		return buf
	}

	buf = append(buf, "|@"...)

	return strconv.AppendFloat(buf, rate, 'f', -1, 64)
}

// millisecondsBetween is the absolute distance between two points in time,
// rounded to whole milliseconds
func millisecondsBetween(from, to time.Time) int64 {
	d := to.Sub(from)
	if d < 0 {
		d = -d
	}

	return int64((d + time.Millisecond/2) / time.Millisecond)
}
