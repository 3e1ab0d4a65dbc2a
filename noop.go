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

// Statter is the metric operation surface shared by Client and NoopClient.
//
// Host applications pick the implementation at construction time: a Client
// wired to a real daemon in production, a NoopClient in tests and in
// environments with no statsd daemon. Instrumentation code written against
// Statter needs no changes between the two.
type Statter interface {
	Count(stat string, delta int64, rate float64)
	Incr(stat string, rate float64)
	Decr(stat string, rate float64)
	Gauge(stat string, value float64, rate float64)
	Timing(stat string, delta int64, rate float64)
	TimingBetween(stat string, from, to time.Time, rate float64)
	Time(stat string, rate float64, fn func() error) error
	WithNamespace(suffix string) Statter
	Close() error
}

var (
	_ Statter = (*Client)(nil)
	_ Statter = NoopClient{}
)

// NoopClient is a no-op Statter: it opens no socket and sends no bytes
type NoopClient struct{}

// NewNoopClient creates a client that discards every metric
func NewNoopClient() NoopClient {
	return NoopClient{}
}

// Count does nothing
func (NoopClient) Count(stat string, delta int64, rate float64) {}

// Incr does nothing
func (NoopClient) Incr(stat string, rate float64) {}

// Decr does nothing
func (NoopClient) Decr(stat string, rate float64) {}

// Gauge does nothing
func (NoopClient) Gauge(stat string, value float64, rate float64) {}

// Timing does nothing
func (NoopClient) Timing(stat string, delta int64, rate float64) {}

// TimingBetween does nothing
func (NoopClient) TimingBetween(stat string, from, to time.Time, rate float64) {}

// Time runs fn and returns its error, so wrapped business logic still
// executes; no duration is measured or reported
func (NoopClient) Time(stat string, rate float64, fn func() error) error {
	return fn()
}

// WithNamespace returns the same no-op client
func (n NoopClient) WithNamespace(suffix string) Statter {
	return n
}

// Close does nothing
func (NoopClient) Close() error {
	return nil
}
