package printf

import "math/bits"

// bitSize is the widest integer the renderers accept.
const bitSize = 64

// capacities of the scratch buffers, one digit per array element.
const (
	binDigits = bitSize           // 1 bit per digit
	octDigits = (bitSize + 2) / 3 // 3 bits per digit
	hexDigits = (bitSize + 3) / 4 // 4 bits per digit
	decDigits = 20                // len("18446744073709551615")
)

const lowerDigits = "0123456789abcdef"

// formatMag writes the digits of v in the given base into the tail of buf
// and returns the index of the most significant digit.
// v must be positive and buf must hold all of its digits.
func formatMag(buf []byte, v uint64, base uint) int {
	i := len(buf)
	if base&(base-1) == 0 {
		// base is power of 2: use shifts and masks instead of / and %
		shift := uint(bits.TrailingZeros(base))
		mask := uint64(base) - 1
		for v > 0 {
			i--
			buf[i] = lowerDigits[v&mask]
			v >>= shift
		}
		return i
	}

	b := uint64(base)
	for v > 0 {
		i--
		q := v / b
		buf[i] = lowerDigits[v-q*b]
		v = q
	}
	return i
}

// printInt prints v in decimal.
func (p *printer) printInt(v int64) {
	u := uint64(v)
	if v < 0 {
		p.putChar('-')
		u = -u // math.MinInt64 negates to itself, which is the right magnitude
	}
	p.printUint(u)
}

// printUint prints v in decimal.
func (p *printer) printUint(v uint64) {
	if v == 0 {
		p.putChar('0')
		return
	}
	var buf [decDigits]byte
	i := formatMag(buf[:], v, 10)
	p.putBytes(buf[i:])
}

// printBin prints v in binary with a 0b prefix.
func (p *printer) printBin(v uint64) {
	var buf [binDigits]byte
	p.printPrefixed('b', v, 2, buf[:])
}

// printOct prints v in octal with a 0o prefix.
func (p *printer) printOct(v uint64) {
	var buf [octDigits]byte
	p.printPrefixed('o', v, 8, buf[:])
}

// printHex prints v in lower case hexadecimal with a 0x prefix.
func (p *printer) printHex(v uint64) {
	var buf [hexDigits]byte
	p.printPrefixed('x', v, 16, buf[:])
}

func (p *printer) printPrefixed(prefix byte, v uint64, base uint, buf []byte) {
	p.putChar('0')
	p.putChar(rune(prefix))
	if v == 0 {
		p.putChar('0')
		return
	}
	i := formatMag(buf, v, base)
	p.putBytes(buf[i:])
}
