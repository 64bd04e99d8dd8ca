// Package formatter renders log lines into a fixed-capacity buffer.
package formatter

import (
	"fmt"
	"strconv"

	"github.com/davecgh/go-spew/spew"

	"github.com/lixenwraith/tinylog/sanitizer"
)

// Compact single-line dumper for RenderValue
var dumper = &spew.ConfigState{
	Indent:                  " ",
	MaxDepth:                10,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Renderer composes timestamp, tag, message and terminator into one buffer allocated at construction.
// It is not safe for concurrent use; callers serialize access.
type Renderer struct {
	buf       []byte // len(buf) is the capacity, never grows
	scratch   []byte // Message staging for sanitization, nil when passthrough
	newline   string
	sanitizer *sanitizer.Sanitizer
	truncated bool
}

// New creates a renderer with a buffer of the given capacity
func New(capacity int, newline string, s ...*sanitizer.Sanitizer) *Renderer {
	if capacity < 0 {
		capacity = 0
	}
	r := &Renderer{
		buf:     make([]byte, capacity),
		newline: newline,
	}
	if len(s) > 0 && s[0] != nil && !s[0].Passthrough() {
		r.sanitizer = s[0]
		r.scratch = make([]byte, capacity)
	}
	return r
}

// Capacity returns the fixed buffer size
func (r *Renderer) Capacity() int {
	return len(r.buf)
}

// Truncated reports whether the last render dropped bytes
func (r *Renderer) Truncated() bool {
	return r.truncated
}

// Render formats one line. The returned slice aliases the internal buffer and is valid until the next call.
// A lone "%s" with a string or []byte argument is copied directly, so its size never matters.
// Other formats go through fmt, whose internal scratch grows with the expanded message before it is cut.
func (r *Renderer) Render(tag string, showTimestamp bool, ms uint64, format string, args []any) []byte {
	n := r.header(tag, showTimestamp, ms)

	w := r.messageWriter(n)
	if !writeVerbatim(w, format, args) {
		fmt.Fprintf(w, format, args...)
	}

	return r.finish(w)
}

// RenderValue formats "label=<value>" using a compact single-line dump of v
func (r *Renderer) RenderValue(tag string, showTimestamp bool, ms uint64, label string, v any) []byte {
	n := r.header(tag, showTimestamp, ms)

	w := r.messageWriter(n)
	if label != "" {
		w.WriteString(label)
		w.WriteString("=")
	}
	dumper.Fprintf(w, "%+v", v)

	return r.finish(w)
}

// writeVerbatim copies the single argument of a "%s" format without expanding it through fmt
func writeVerbatim(w *boundedWriter, format string, args []any) bool {
	if format != "%s" || len(args) != 1 {
		return false
	}
	switch v := args[0].(type) {
	case string:
		w.WriteString(v)
	case []byte:
		w.Write(v)
	default:
		return false
	}
	return true
}

// header writes the timestamp prefix and the tag, returning the written length
func (r *Renderer) header(tag string, showTimestamp bool, ms uint64) int {
	r.truncated = false
	n := 0

	if showTimestamp {
		var stamp [32]byte
		ts := AppendElapsed(stamp[:0], ms)
		n += r.put(n, ts)
	}
	n += r.putString(n, tag)
	return n
}

// messageWriter returns a bounded writer for the message segment starting at offset n
func (r *Renderer) messageWriter(n int) *boundedWriter {
	if r.sanitizer != nil {
		return &boundedWriter{buf: r.scratch[:len(r.buf)-n], base: n}
	}
	return &boundedWriter{buf: r.buf, n: n}
}

// finish moves a sanitized message into place, appends the terminator and returns the line
func (r *Renderer) finish(w *boundedWriter) []byte {
	var n int
	if r.sanitizer != nil {
		// Staged message, w.n is relative to the message start
		n = w.base + r.sanitizer.Copy(r.buf[w.base:], w.buf[:w.n])
	} else {
		n = w.n
	}
	if w.dropped {
		r.truncated = true
	}

	n += r.putString(n, r.newline)
	return r.buf[:n]
}

// put copies b at offset n, bounded by capacity
func (r *Renderer) put(n int, b []byte) int {
	if n >= len(r.buf) {
		if len(b) > 0 {
			r.truncated = true
		}
		return 0
	}
	c := copy(r.buf[n:], b)
	if c < len(b) {
		r.truncated = true
	}
	return c
}

// putString copies s at offset n, bounded by capacity
func (r *Renderer) putString(n int, s string) int {
	if n >= len(r.buf) {
		if len(s) > 0 {
			r.truncated = true
		}
		return 0
	}
	c := copy(r.buf[n:], s)
	if c < len(s) {
		r.truncated = true
	}
	return c
}

// AppendElapsed appends "[H:MM:SS.mmm] " for a millisecond counter; hours are unbounded
func AppendElapsed(dst []byte, ms uint64) []byte {
	hours := ms / 3_600_000
	minutes := (ms / 60_000) % 60
	seconds := (ms % 60_000) / 1000
	millis := ms % 1000

	dst = append(dst, '[')
	dst = strconv.AppendUint(dst, hours, 10)
	dst = append(dst, ':')
	dst = appendPadded(dst, minutes, 2)
	dst = append(dst, ':')
	dst = appendPadded(dst, seconds, 2)
	dst = append(dst, '.')
	dst = appendPadded(dst, millis, 3)
	return append(dst, ']', ' ')
}

// appendPadded appends v zero-padded to width digits
func appendPadded(dst []byte, v uint64, width int) []byte {
	var digits [20]byte
	s := strconv.AppendUint(digits[:0], v, 10)
	for i := len(s); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, s...)
}

// boundedWriter copies into a fixed slice and silently drops what does not fit.
// Writes always report full success so fmt does not stop early.
type boundedWriter struct {
	buf     []byte
	n       int
	base    int // Offset of buf[0] in the line, used when staging
	dropped bool
}

func (w *boundedWriter) Write(p []byte) (int, error) {
	c := copy(w.buf[w.n:], p)
	w.n += c
	if c < len(p) {
		w.dropped = true
	}
	return len(p), nil
}

func (w *boundedWriter) WriteString(s string) (int, error) {
	c := copy(w.buf[w.n:], s)
	w.n += c
	if c < len(s) {
		w.dropped = true
	}
	return len(s), nil
}
