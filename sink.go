package printf

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// A Sink receives rendered output one codepoint at a time.
type Sink interface {
	PutChar(c rune)
}

var (
	_ Sink = (*WriterSink)(nil)
	_ Sink = (*Capture)(nil)
	_ Sink = (*Buffer)(nil)
)

// WriterSink writes each codepoint to an io.Writer as UTF-8.
//
// The first write error is kept and reported by Err;
// everything after it is dropped.
type WriterSink struct {
	w   io.Writer
	err error
}

// NewWriterSink returns a sink that writes to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// PutChar implements [Sink].
func (s *WriterSink) PutChar(c rune) {
	if s.err != nil {
		return
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], c)
	if _, err := s.w.Write(buf[:n]); err != nil {
		s.err = fmt.Errorf("printf: write: %w", err)
	}
}

// Err returns the first error returned by the underlying writer.
func (s *WriterSink) Err() error {
	return s.err
}

// Capture stores output in a fixed-size buffer.
// Characters that do not fit are silently dropped.
type Capture struct {
	buf     []rune
	n       int
	dropped int
}

// NewCapture returns a sink that captures into buf.
// The capacity of the capture is len(buf).
func NewCapture(buf []rune) *Capture {
	return &Capture{buf: buf}
}

// PutChar implements [Sink].
func (c *Capture) PutChar(r rune) {
	if c.n >= len(c.buf) {
		c.dropped++
		return
	}
	c.buf[c.n] = r
	c.n++
}

// Reset rewinds the write cursor to the start of the buffer.
func (c *Capture) Reset() {
	c.n = 0
	c.dropped = 0
}

// Len returns the number of captured characters.
func (c *Capture) Len() int {
	return c.n
}

// Dropped returns the number of characters that did not fit.
func (c *Capture) Dropped() int {
	return c.dropped
}

// Runes returns the captured characters.
// It aliases the buffer passed to NewCapture.
func (c *Capture) Runes() []rune {
	return c.buf[:c.n]
}

func (c *Capture) String() string {
	return string(c.buf[:c.n])
}

// Buffer is an unbounded sink.
// The zero value is ready to use.
type Buffer struct {
	b strings.Builder
	n int
}

// PutChar implements [Sink].
func (b *Buffer) PutChar(c rune) {
	b.b.WriteRune(c)
	b.n++
}

// Len returns the number of characters written.
func (b *Buffer) Len() int {
	return b.n
}

func (b *Buffer) String() string {
	return b.b.String()
}
