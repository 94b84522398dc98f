package printf

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the type of an argument.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindChar
	KindInt32
	KindInt64
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindString:  "string",
	KindChar:    "char",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// An Arg is one argument of a formatting call.
// Build it with String, Char, Int32, Int64, Uint32, Uint64, Float32 or Float64.
type Arg struct {
	kind Kind

	// bits holds integers (sign-extended for signed kinds),
	// characters, and the IEEE 754 bit pattern of floats.
	bits uint64
	str  string
}

func String(s string) Arg   { return Arg{kind: KindString, str: s} }
func Char(c rune) Arg       { return Arg{kind: KindChar, bits: uint64(c)} }
func Int32(v int32) Arg     { return Arg{kind: KindInt32, bits: uint64(int64(v))} }
func Int64(v int64) Arg     { return Arg{kind: KindInt64, bits: uint64(v)} }
func Uint32(v uint32) Arg   { return Arg{kind: KindUint32, bits: uint64(v)} }
func Uint64(v uint64) Arg   { return Arg{kind: KindUint64, bits: v} }
func Float32(v float32) Arg { return Arg{kind: KindFloat32, bits: uint64(math.Float32bits(v))} }
func Float64(v float64) Arg { return Arg{kind: KindFloat64, bits: math.Float64bits(v)} }

// Kind returns the kind of a.
func (a Arg) Kind() Kind {
	return a.kind
}

// float64bits returns the binary64 pattern of a float argument.
// float32 arguments are widened.
func (a Arg) float64bits() uint64 {
	if a.kind == KindFloat32 {
		return widen(uint32(a.bits))
	}
	return a.bits
}

var _ fmt.Formatter = Arg{}

// Format implements [fmt.Formatter].
//
// %v prints the kind and the value, e.g. int64(-5) or float32(0.10000).
// %s prints the value alone, rendered the way Fprintf renders it.
func (a Arg) Format(s fmt.State, verb rune) {
	var b Buffer
	p := printer{sink: &b}
	switch a.kind {
	case KindString:
		p.putText(a.str)
	case KindChar:
		p.putChar(rune(a.bits))
	case KindInt32, KindInt64:
		p.printInt(int64(a.bits))
	case KindUint32, KindUint64:
		p.printUint(a.bits)
	case KindFloat32, KindFloat64:
		p.printFixed(a.float64bits())
	default:
		p.putChar('?')
	}

	switch verb {
	case 'v':
		fmt.Fprintf(s, "%s(%s)", a.kind, b.String())
	case 's':
		fmt.Fprint(s, b.String())
	default:
		fmt.Fprintf(s, "%%!%c(%s)", verb, a.kind)
	}
}
