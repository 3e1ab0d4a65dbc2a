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
	"io"
	"net"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

type fakeConn struct {
	writeErr error
	written  [][]byte
	deadline time.Time
	closed   bool
}

func (f *fakeConn) Write(b []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}

	f.written = append(f.written, append([]byte(nil), b...))

	return len(b), nil
}

func (f *fakeConn) Read(b []byte) (int, error)      { return 0, io.EOF }
func (f *fakeConn) Close() error                    { f.closed = true; return nil }
func (f *fakeConn) LocalAddr() net.Addr             { return &net.UDPAddr{} }
func (f *fakeConn) RemoteAddr() net.Addr            { return &net.UDPAddr{} }
func (f *fakeConn) SetDeadline(time.Time) error     { return nil }
func (f *fakeConn) SetReadDeadline(time.Time) error { return nil }

func (f *fakeConn) SetWriteDeadline(t time.Time) error {
	f.deadline = t
	return nil
}

func setupLogger() (*logrus.Logger, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	return logger, hook
}

func entriesByLevel(hook *test.Hook, level logrus.Level) []*logrus.Entry {
	var entries []*logrus.Entry
	for _, entry := range hook.AllEntries() {
		if entry.Level == level {
			entries = append(entries, entry)
		}
	}

	return entries
}

func TestWriteFailureIsolated(t *testing.T) {
	conn := &fakeConn{writeErr: errors.New("sendto: operation not permitted")}
	dials := 0
	dialTimeout = func(network, addr string, timeout time.Duration) (net.Conn, error) {
		dials++
		return conn, nil
	}
	defer func() { dialTimeout = net.DialTimeout }()

	logger, hook := setupLogger()
	client := NewClient(WithLogger(logger))

	client.Incr("gorets", 1)

	if errs := entriesByLevel(hook, logrus.ErrorLevel); len(errs) != 1 {
		t.Fatalf("expected exactly one error line, got %d", len(errs))
	} else if !strings.Contains(errs[0].Message, "write error") {
		t.Errorf("unexpected failure kind in log line: %#v", errs[0].Message)
	}

	if !conn.closed {
		t.Error("failed socket must be closed")
	}

	// a failed socket is dropped, the next send dials fresh
	client.Incr("gorets", 1)

	if dials != 2 {
		t.Errorf("expected redial after failure, got %d dials", dials)
	}
}

func TestTimeoutFailureIsolated(t *testing.T) {
	dialTimeout = func(network, addr string, timeout time.Duration) (net.Conn, error) {
		return &fakeConn{writeErr: os.ErrDeadlineExceeded}, nil
	}
	defer func() { dialTimeout = net.DialTimeout }()

	logger, hook := setupLogger()
	client := NewClient(WithLogger(logger))

	client.Timing("glork", 320, 1)

	errs := entriesByLevel(hook, logrus.ErrorLevel)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error line, got %d", len(errs))
	}

	if !strings.Contains(errs[0].Message, "timeout error") {
		t.Errorf("unexpected failure kind in log line: %#v", errs[0].Message)
	}
}

func TestResolutionFailureIsolated(t *testing.T) {
	dialTimeout = func(network, addr string, timeout time.Duration) (net.Conn, error) {
		return nil, &net.DNSError{Err: "no such host", Name: "statsd.bogus"}
	}
	defer func() { dialTimeout = net.DialTimeout }()

	logger, hook := setupLogger()
	client := NewClient(Host("statsd.bogus"), WithLogger(logger))

	client.Gauge("bork", 110, 1)

	if errs := entriesByLevel(hook, logrus.ErrorLevel); len(errs) != 1 {
		t.Fatalf("expected exactly one error line, got %d", len(errs))
	} else if !strings.Contains(errs[0].Message, "resolution error") {
		t.Errorf("unexpected failure kind in log line: %#v", errs[0].Message)
	}

	// the debug line is emitted before the attempt, even when it fails
	debugs := entriesByLevel(hook, logrus.DebugLevel)
	if len(debugs) != 1 {
		t.Fatalf("expected exactly one debug line, got %d", len(debugs))
	}

	if !strings.Contains(debugs[0].Message, "bork:110|g") {
		t.Errorf("debug line must carry the message: %#v", debugs[0].Message)
	}
}

func TestWrongAddress(t *testing.T) {
	logger, hook := setupLogger()
	client := NewClient(Host("BOOM:BOOM"), WithLogger(logger))

	// must not panic or block past the bound
	client.Incr("gorets", 1)

	if errs := entriesByLevel(hook, logrus.ErrorLevel); len(errs) != 1 {
		t.Errorf("expected exactly one error line, got %d", len(errs))
	}

	if err := client.Close(); err != nil {
		t.Errorf("error from close: %v", err)
	}
}

func TestSendDeadline(t *testing.T) {
	conn := &fakeConn{}
	dialTimeout = func(network, addr string, timeout time.Duration) (net.Conn, error) {
		return conn, nil
	}
	t0 := time.Date(2018, 4, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return t0 }
	defer func() {
		dialTimeout = net.DialTimeout
		now = time.Now
	}()

	client := NewClient(SendTimeout(250 * time.Millisecond))
	client.Incr("gorets", 1)

	if !conn.deadline.Equal(t0.Add(250 * time.Millisecond)) {
		t.Errorf("unexpected write deadline: %v", conn.deadline)
	}

	if len(conn.written) != 1 || string(conn.written[0]) != "gorets:1|c" {
		t.Errorf("unexpected writes: %v", conn.written)
	}
}

func TestErrKind(t *testing.T) {
	compare := func(err error, expected string) func(*testing.T) {
		return func(t *testing.T) {
			if got := errKind(err); got != expected {
				t.Errorf("unexpected kind: %#v != %#v", got, expected)
			}
		}
	}

	t.Run("DNS", compare(&net.DNSError{Err: "no such host"}, "resolution"))
	t.Run("Timeout", compare(os.ErrDeadlineExceeded, "timeout"))
	t.Run("WrappedTimeout", compare(&net.OpError{Op: "write", Err: os.ErrDeadlineExceeded}, "timeout"))
	t.Run("Plain", compare(errors.New("sendto: broken"), "write"))
}
