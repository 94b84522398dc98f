package printf

import (
	"errors"
	"fmt"
)

var (
	ErrMissingArg       = errors.New("printf: missing argument")
	ErrExtraArgs        = errors.New("printf: too many arguments")
	ErrIllegalModifier  = errors.New("printf: illegal length modifier")
	ErrUnknownDirective = errors.New("printf: unknown directive")
)

// MismatchError reports an argument whose kind does not match its directive.
type MismatchError struct {
	Offset    int    // byte offset of the '%' in the format
	Directive string // e.g. "%ld"
	Want      Kind
	Got       Kind
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("printf: %s at offset %d wants %s argument, got %s", e.Directive, e.Offset, e.Want, e.Got)
}

type action uint8

const (
	// convert an argument of the directive's kind.
	actConvert action = iota

	// "%%"
	actPercent

	// the l modifier does not apply to the verb.
	// emits '?' and leaves the verb in the format.
	actIllegal

	// not a directive we know.
	// emits '%' and leaves the verb in the format.
	actUnknown
)

type directive struct {
	act  action
	kind Kind
	verb byte // 0 at the end of the format
	long bool
	next int // where scanning resumes
}

// parseDirective parses the directive whose '%' is at format[start].
func parseDirective(format string, start int) directive {
	var d directive
	i := start + 1
	if i < len(format) && format[i] == 'l' {
		d.long = true
		i++
	}
	if i < len(format) {
		d.verb = format[i]
	}
	d.next = i

	switch d.verb {
	case 's', 'c', '%':
		if d.long {
			d.act = actIllegal
			// the argument a %ls or %lc would have taken.
			switch d.verb {
			case 's':
				d.kind = KindString
			case 'c':
				d.kind = KindChar
			}
			return d
		}
		switch d.verb {
		case 's':
			d.kind = KindString
		case 'c':
			d.kind = KindChar
		case '%':
			d.act = actPercent
		}
	case 'd':
		d.kind = KindInt32
		if d.long {
			d.kind = KindInt64
		}
	case 'u', 'b', 'o', 'h':
		d.kind = KindUint32
		if d.long {
			d.kind = KindUint64
		}
	case 'f', 'e':
		d.kind = KindFloat32
		if d.long {
			d.kind = KindFloat64
		}
	default:
		if d.long {
			d.act = actIllegal
		} else {
			d.act = actUnknown
		}
		return d
	}
	d.next++
	return d
}

func (d directive) String() string {
	s := "%"
	if d.long {
		s += "l"
	}
	if d.verb != 0 {
		s += string(rune(d.verb))
	}
	return s
}

// Kinds returns the kinds of the arguments format converts, in order.
func Kinds(format string) []Kind {
	var kinds []Kind
	for i := 0; i < len(format); {
		if format[i] != '%' {
			i++
			continue
		}
		d := parseDirective(format, i)
		if d.act == actConvert {
			kinds = append(kinds, d.kind)
		}
		i = d.next
	}
	return kinds
}

// Check reports every problem Fprintf would paper over when rendering
// format with args: mismatched and missing arguments, leftover arguments,
// illegal l modifiers and unknown directives.
func Check(format string, args ...Arg) error {
	var errs []error
	argNum := 0
	for i := 0; i < len(format); {
		if format[i] != '%' {
			i++
			continue
		}
		d := parseDirective(format, i)
		switch d.act {
		case actConvert:
			if argNum >= len(args) {
				errs = append(errs, fmt.Errorf("%w for %s at offset %d", ErrMissingArg, d, i))
				break
			}
			if got := args[argNum].kind; got != d.kind {
				errs = append(errs, &MismatchError{Offset: i, Directive: d.String(), Want: d.kind, Got: got})
			}
			argNum++
		case actIllegal:
			errs = append(errs, fmt.Errorf("%w: %s at offset %d", ErrIllegalModifier, d, i))
			if d.kind != KindInvalid && argNum < len(args) && args[argNum].kind == d.kind {
				argNum++
			}
		case actUnknown:
			errs = append(errs, fmt.Errorf("%w: %s at offset %d", ErrUnknownDirective, d, i))
		}
		i = d.next
	}
	if argNum < len(args) {
		errs = append(errs, fmt.Errorf("%w: %d unused", ErrExtraArgs, len(args)-argNum))
	}
	return errors.Join(errs...)
}
