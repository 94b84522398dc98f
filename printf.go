// Package printf implements a small formatted-output engine that renders
// into a caller-supplied [Sink] without allocating.
//
// The format is a cut-down printf. Supported directives:
//
//	%s  string
//	%c  character
//	%d  signed integer, decimal
//	%u  unsigned integer, decimal
//	%b  unsigned integer, binary with 0b prefix
//	%o  unsigned integer, octal with 0o prefix
//	%h  unsigned integer, hexadecimal with 0x prefix
//	%f  float, positional notation
//	%e  float, scientific notation
//	%%  a literal percent sign
//
// An l between the % and the verb selects the 64-bit argument kinds
// (Int64, Uint64, Float64) instead of the 32-bit ones. %ls, %lc and %l%
// are illegal and print '?'.
//
// Floats are printed with at most 5 significant digits: the shortest
// round-trip decimal form is cut down and its last kept digit is rounded
// to nearest even.
//
// The engine never fails. Problems show up in the output: invalid UTF-8
// and bad or missing arguments print '?', unknown directives print '%'.
// Use [Check] to find them before rendering.
package printf

import (
	"bufio"
	"os"
	"unicode/utf8"
)

// printer renders one formatting call and counts what it emits.
type printer struct {
	sink   Sink
	n      int
	args   []Arg
	argNum int
}

func (p *printer) putChar(c rune) {
	p.sink.PutChar(c)
	p.n++
}

func (p *printer) putBytes(b []byte) {
	for _, c := range b {
		p.putChar(rune(c))
	}
}

// putString prints an ASCII string.
func (p *printer) putString(s string) {
	for i := 0; i < len(s); i++ {
		p.putChar(rune(s[i]))
	}
}

func (p *printer) putZeros(n int) {
	for ; n > 0; n-- {
		p.putChar('0')
	}
}

// decodeRune decodes the first UTF-8 sequence of s.
// An invalid or truncated sequence decodes to '?' with size 1.
func decodeRune(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return '?', 1
	}
	return r, size
}

// putText prints the UTF-8 string s.
func (p *printer) putText(s string) {
	for len(s) > 0 {
		r, size := decodeRune(s)
		p.putChar(r)
		s = s[size:]
	}
}

// nextArg consumes the next argument.
// ok is false if there is none or it is not of the kind want.
func (p *printer) nextArg(want Kind) (a Arg, ok bool) {
	if p.argNum >= len(p.args) {
		return Arg{}, false
	}
	a = p.args[p.argNum]
	p.argNum++
	return a, a.kind == want
}

// skipArg consumes the next argument if it is of the kind want.
func (p *printer) skipArg(want Kind) {
	if p.argNum < len(p.args) && p.args[p.argNum].kind == want {
		p.argNum++
	}
}

func (p *printer) doPrintf(format string) {
	for i := 0; i < len(format); {
		if format[i] != '%' {
			r, size := decodeRune(format[i:])
			p.putChar(r)
			i += size
			continue
		}

		d := parseDirective(format, i)
		switch d.act {
		case actConvert:
			p.printArg(d)
		case actPercent:
			p.putChar('%')
		case actIllegal:
			p.putChar('?')
			if d.kind != KindInvalid {
				p.skipArg(d.kind)
			}
		case actUnknown:
			p.putChar('%')
		}
		i = d.next
	}
}

func (p *printer) printArg(d directive) {
	a, ok := p.nextArg(d.kind)
	if !ok {
		p.putChar('?')
		return
	}

	switch d.verb {
	case 's':
		p.putText(a.str)
	case 'c':
		p.putChar(rune(a.bits))
	case 'd':
		p.printInt(int64(a.bits))
	case 'u':
		p.printUint(a.bits)
	case 'b':
		p.printBin(a.bits)
	case 'o':
		p.printOct(a.bits)
	case 'h':
		p.printHex(a.bits)
	case 'f':
		p.printFixed(a.float64bits())
	case 'e':
		p.printSci(a.float64bits())
	}
}

// Fprintf renders format with args into s and returns the number of
// characters produced. Characters a bounded sink drops are counted too.
func Fprintf(s Sink, format string, args ...Arg) int {
	p := printer{
		sink: s,
		args: args,
	}
	p.doPrintf(format)
	return p.n
}

// Printf renders format with args to standard output.
func Printf(format string, args ...Arg) int {
	w := bufio.NewWriter(os.Stdout)
	n := Fprintf(NewWriterSink(w), format, args...)
	w.Flush()
	return n
}

// Sprintf renders format with args and returns the result.
func Sprintf(format string, args ...Arg) string {
	var b Buffer
	Fprintf(&b, format, args...)
	return b.String()
}
