// Package ryu converts IEEE 754 binary64 values into their shortest
// round-trip decimal form.
//
// See Ulf Adams, "Ryū: Fast Float-to-String Conversion" (doi:10.1145/3192366.3192369)
package ryu

import (
	"math/bits"

	"github.com/shogo82148/int128"
)

const (
	mantissaBits = 52
	bias         = 1023

	pow5InvBitCount = 125
	pow5BitCount    = 125
)

// A Decimal represents Mantissa * 10^Exponent.
type Decimal struct {
	Mantissa uint64

	// Exponent ranges from -324 to 308.
	Exponent int32
}

// D2D returns the shortest decimal that rounds back to the double
// with the given raw mantissa and biased exponent fields.
// The value must be finite and non-zero.
func D2D(ieeeMantissa uint64, ieeeExponent uint32) Decimal {
	var e2 int32
	var m2 uint64
	if ieeeExponent == 0 {
		// subnormal number
		// subtract 2 so that the bounds computation has 2 additional bits.
		e2 = 1 - bias - mantissaBits - 2
		m2 = ieeeMantissa
	} else {
		// normal number
		e2 = int32(ieeeExponent) - bias - mantissaBits - 2
		m2 = (1 << mantissaBits) | ieeeMantissa
	}
	acceptBounds := m2&1 == 0

	// find the interval of valid decimal representations.
	mv := 4 * m2
	var mmShift uint64
	if ieeeMantissa != 0 || ieeeExponent <= 1 {
		mmShift = 1
	}

	// convert to a decimal power base.
	var vr, vp, vm uint64
	var e10 int32
	var vmIsTrailingZeros, vrIsTrailingZeros bool
	if e2 >= 0 {
		q := log10Pow2(e2)
		if e2 > 3 {
			q--
		}
		e10 = q
		k := pow5InvBitCount + pow5bits(q) - 1
		i := -e2 + q + k
		vr, vp, vm = mulShiftAll64(m2, pow5InvSplit[q], i, mmShift)
		if q <= 21 {
			// only one of mp, mv, and mm can be a multiple of 5, if any.
			switch {
			case mv%5 == 0:
				vrIsTrailingZeros = multipleOfPowerOf5(mv, q)
			case acceptBounds:
				vmIsTrailingZeros = multipleOfPowerOf5(mv-1-mmShift, q)
			case multipleOfPowerOf5(mv+2, q):
				vp--
			}
		}
	} else {
		q := log10Pow5(-e2)
		if -e2 > 1 {
			q--
		}
		e10 = q + e2
		i := -e2 - q
		k := pow5bits(i) - pow5BitCount
		j := q - k
		vr, vp, vm = mulShiftAll64(m2, pow5Split[i], j, mmShift)
		if q <= 1 {
			// mv has at least q trailing zero bits; so are mp and mm.
			vrIsTrailingZeros = true
			if acceptBounds {
				vmIsTrailingZeros = mmShift == 1
			} else {
				vp--
			}
		} else if q < 63 {
			vrIsTrailingZeros = multipleOfPowerOf2(mv, q)
		}
	}

	// find the shortest decimal in the interval.
	var removed int32
	var lastRemovedDigit uint64
	var output uint64
	if vmIsTrailingZeros || vrIsTrailingZeros {
		for vp/10 > vm/10 {
			vmIsTrailingZeros = vmIsTrailingZeros && vm%10 == 0
			vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
			lastRemovedDigit = vr % 10
			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}
		if vmIsTrailingZeros {
			for vm%10 == 0 {
				vrIsTrailingZeros = vrIsTrailingZeros && lastRemovedDigit == 0
				lastRemovedDigit = vr % 10
				vr /= 10
				vp /= 10
				vm /= 10
				removed++
			}
		}
		if vrIsTrailingZeros && lastRemovedDigit == 5 && vr%2 == 0 {
			// round to even if the exact number is .....50..0.
			lastRemovedDigit = 4
		}
		output = vr
		if (vr == vm && (!acceptBounds || !vmIsTrailingZeros)) || lastRemovedDigit >= 5 {
			output++
		}
	} else {
		roundUp := false
		for vp/10 > vm/10 {
			roundUp = vr%10 >= 5
			vr /= 10
			vp /= 10
			vm /= 10
			removed++
		}
		output = vr
		if vr == vm || roundUp {
			output++
		}
	}

	return Decimal{
		Mantissa: output,
		Exponent: e10 + removed,
	}
}

// pow5bits returns ceil(log2(5^e)), or 1 when e is 0.
func pow5bits(e int32) int32 {
	return int32((uint32(e)*1217359)>>19) + 1
}

// log10Pow2 returns floor(log10(2^e)).
func log10Pow2(e int32) int32 {
	return int32((uint32(e) * 78913) >> 18)
}

// log10Pow5 returns floor(log10(5^e)).
func log10Pow5(e int32) int32 {
	return int32((uint32(e) * 732923) >> 20)
}

func pow5Factor(v uint64) int32 {
	var count int32
	for v%5 == 0 {
		v /= 5
		count++
	}
	return count
}

// multipleOfPowerOf5 reports whether v is divisible by 5^p.
func multipleOfPowerOf5(v uint64, p int32) bool {
	return pow5Factor(v) >= p
}

// multipleOfPowerOf2 reports whether v is divisible by 2^p.
func multipleOfPowerOf2(v uint64, p int32) bool {
	return v&(1<<uint(p)-1) == 0
}

// mulShift64 returns (m * mul) >> j, where 64 < j < 128.
func mulShift64(m uint64, mul int128.Uint128, j int32) uint64 {
	high1, low1 := bits.Mul64(m, mul.H)
	high0, _ := bits.Mul64(m, mul.L)
	sum := int128.Uint128{H: high1, L: low1}.Add(int128.Uint128{L: high0})
	dist := uint(j - 64)
	return sum.H<<(64-dist) | sum.L>>dist
}

func mulShiftAll64(m uint64, mul int128.Uint128, j int32, mmShift uint64) (vr, vp, vm uint64) {
	vr = mulShift64(4*m, mul, j)
	vp = mulShift64(4*m+2, mul, j)
	vm = mulShift64(4*m-1-mmShift, mul, j)
	return
}
