// convert float64 to text

package printf

import (
	"math/bits"

	"github.com/shogo82148/printf/internal/ryu"
)

const (
	shift64    = 52
	mask64     = 0x7ff
	bias64     = 1023
	signMask64 = 1 << 63
	fracMask64 = 1<<shift64 - 1

	shift32    = 23
	mask32     = 0xff
	bias32     = 127
	signMask32 = 1 << 31
	fracMask32 = 1<<shift32 - 1
)

// sigFigs is the number of significant digits floats are printed with.
const sigFigs = 5

// maxMantissa is the smallest integer with more than sigFigs digits.
const maxMantissa = 100000

// widen converts the binary32 pattern b into the binary64 pattern
// of the same value. NaN payloads and signs are kept.
func widen(b uint32) uint64 {
	sign := uint64(b&signMask32) << 32
	exp := uint64(b>>shift32) & mask32
	frac := uint64(b & fracMask32)

	switch exp {
	case 0:
		if frac == 0 {
			// ±0
			return sign
		}
		// subnormal number
		l := bits.Len64(frac)
		frac = (frac << (shift32 - l + 1)) & fracMask32
		exp = uint64(bias64 - bias32 - shift32 + l)
	case mask32:
		// infinity or NaN
		exp = mask64
	default:
		// normal number
		exp += bias64 - bias32
	}
	return sign | exp<<shift64 | frac<<(shift64-shift32)
}

// decodeFloat prints the sign of the binary64 value b.
// Infinities, NaNs and zeros are printed in full and ok is false;
// otherwise d holds the shortest decimal form of |b|.
func (p *printer) decodeFloat(b uint64) (d ryu.Decimal, ok bool) {
	exp := uint32(b>>shift64) & mask64
	frac := b & fracMask64

	if b&signMask64 != 0 {
		p.putChar('-')
	}

	switch {
	case exp == mask64 && frac != 0:
		p.putString("NaN")
		return d, false
	case exp == mask64:
		p.putString("INF")
		return d, false
	case exp == 0 && frac == 0:
		p.putChar('0')
		return d, false
	}
	return ryu.D2D(frac, exp), true
}

// roundDecimal reduces d to at most sigFigs digits.
// The last digit is rounded to nearest even; the digits before it are
// dropped. Rounding up may leave sigFigs+1 digits, e.g. 99999|5 -> 100000.
func roundDecimal(d *ryu.Decimal) {
	for d.Mantissa >= maxMantissa*10 {
		d.Mantissa /= 10
		d.Exponent++
	}
	if d.Mantissa >= maxMantissa {
		rem := d.Mantissa % 10
		d.Mantissa /= 10
		d.Exponent++
		// round to nearest even
		if rem > 5 || (rem == 5 && d.Mantissa&1 == 1) {
			d.Mantissa++
		}
	}
}

// printFixed prints the binary64 value b in positional notation.
func (p *printer) printFixed(b uint64) {
	d, ok := p.decodeFloat(b)
	if !ok {
		return
	}
	roundDecimal(&d)

	if d.Exponent > 0 {
		// integer with trailing zeros
		p.printUint(d.Mantissa)
		p.putZeros(int(d.Exponent))
		return
	}

	var buf [decDigits]byte
	digits := buf[formatMag(buf[:], d.Mantissa, 10):]

	// index of the units digit.
	index := len(digits) + int(d.Exponent) - 1
	if index < 0 {
		// no integer part
		p.putChar('0')
		p.putChar('.')
		p.putZeros(-index - 1)
		p.putBytes(digits)
		return
	}

	p.putBytes(digits[:index+1])
	if index+1 < len(digits) {
		p.putChar('.')
		p.putBytes(digits[index+1:])
	}
}

// printSci prints the binary64 value b in scientific notation.
func (p *printer) printSci(b uint64) {
	d, ok := p.decodeFloat(b)
	if !ok {
		if b&^signMask64 == 0 {
			// zero has no exponent of its own
			p.putChar('e')
			p.putChar('0')
		}
		return
	}
	roundDecimal(&d)

	var buf [decDigits]byte
	digits := buf[formatMag(buf[:], d.Mantissa, 10):]

	// exponent of the leading digit
	exp := int64(d.Exponent) + int64(len(digits)) - 1

	p.putChar(rune(digits[0]))
	if len(digits) > 1 {
		p.putChar('.')
		p.putBytes(digits[1:])
	}
	p.putChar('e')
	p.printInt(exp)
}
