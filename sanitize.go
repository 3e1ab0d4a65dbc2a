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

// appendSanitized appends stat to buf with wire-protocol delimiters escaped:
// "::" becomes ".", each remaining ':', '|' and '@' becomes '_'.
//
// ':', '|' and '@' frame the statsd message; a stat name carrying them raw
// would corrupt the protocol.
func appendSanitized(buf []byte, stat string) []byte {
	for i := 0; i < len(stat); i++ {
		switch stat[i] {
		case ':':
			if i+1 < len(stat) && stat[i+1] == ':' {
				buf = append(buf, '.')
				i++
			} else {
				buf = append(buf, '_')
			}
		case '|', '@':
			buf = append(buf, '_')
		default:
			buf = append(buf, stat[i])
		}
	}

	return buf
}

// sanitize returns stat with wire-protocol delimiters escaped
func sanitize(stat string) string {
	return string(appendSanitized(make([]byte, 0, len(stat)), stat))
}
