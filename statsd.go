/*
Package statsd implements a simple, bounded-latency statsd client.

The client formats counter, gauge and timing events into the statsd wire
protocol and delivers each one as a single UDP datagram to a statsd daemon.
Delivery is fire-and-forget: every send is bounded by a write deadline
(100ms by default) and any network failure is caught and logged, never
returned to the instrumentation call site. Metrics must not crash, block or
slow down the host application.

Initialize one client per destination, usually once per application:

	client := statsd.NewClient(
		statsd.Host("statsd.example.com"),
		statsd.Namespace("billing"))

Send metrics as events happen in the application:

	client.Incr("requests.http", 1)
	client.Gauge("queue.depth", 42, 1)
	client.Timing("render", 320, 1)

High-frequency events can be sampled to cut traffic; the sample rate is
carried on the wire so the daemon scales observations back up:

	client.Incr("cache.hit", 0.1)

Derive namespaced clients cheaply for subsystems:

	sub := client.WithNamespace("workers")
	sub.Incr("jobs.done", 1) // billing.workers.jobs.done:1|c

Code paths exercised without a statsd daemon (tests, CI) take a NoopClient
through the Statter interface and keep their instrumentation calls intact.

The client does no aggregation, batching or retrying; with statsd
architecture aggregation is performed on the daemon side, and a lost
datagram is an accepted cost of never blocking the caller.
*/
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
