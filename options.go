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

import "time"

// Default settings
const (
	// DefaultHost is the address of a statsd daemon running on the local machine
	DefaultHost = "127.0.0.1"
	// DefaultPort is the conventional statsd listening port
	DefaultPort = 8125
	// DefaultSendTimeout bounds the wait on a single datagram delivery
	DefaultSendTimeout = 100 * time.Millisecond
)

// ClientOptions are statsd client settings
type ClientOptions struct {
	// Host is the statsd daemon host name or IP address
	Host string

	// Port is the statsd daemon UDP port
	Port int

	// Namespace is a dotted prefix applied to every stat name; empty means
	// no prefix
	Namespace string

	// SendTimeout is the upper bound on a single datagram send; a send not
	// completing within the bound is abandoned
	SendTimeout time.Duration

	// Logger receives a debug line per outgoing message and an error line
	// per delivery failure
	Logger Logger
}

// Option is a function that sets statsd client option
type Option func(*ClientOptions)

// Host sets the statsd daemon host, falling back to DefaultHost when empty
func Host(host string) Option {
	return func(o *ClientOptions) {
		if host == "" {
			host = DefaultHost
		}
		o.Host = host
	}
}

// Port sets the statsd daemon port, falling back to DefaultPort when zero
func Port(port int) Option {
	return func(o *ClientOptions) {
		if port == 0 {
			port = DefaultPort
		}
		o.Port = port
	}
}

// Namespace sets the dotted prefix applied to every stat name
//
// The value goes through the same escaping as stat names, so protocol
// delimiters in it cannot corrupt message framing
func Namespace(namespace string) Option {
	return func(o *ClientOptions) {
		o.Namespace = namespace
	}
}

// SendTimeout sets the bound on a single datagram send
func SendTimeout(timeout time.Duration) Option {
	return func(o *ClientOptions) {
		o.SendTimeout = timeout
	}
}

// WithLogger sets the log sink; *logrus.Logger satisfies Logger directly
func WithLogger(logger Logger) Option {
	return func(o *ClientOptions) {
		o.Logger = logger
	}
}
