package ryu

import (
	"math/big"

	"github.com/shogo82148/int128"
)

const (
	pow5InvTableSize = 342
	pow5TableSize    = 326
)

var (
	// pow5Split[i] holds the top pow5BitCount bits of 5^i.
	pow5Split [pow5TableSize]int128.Uint128

	// pow5InvSplit[i] holds floor(2^(bitlen(5^i)-1+pow5InvBitCount) / 5^i) + 1.
	pow5InvSplit [pow5InvTableSize]int128.Uint128
)

func init() {
	one := big.NewInt(1)
	five := big.NewInt(5)
	pow := big.NewInt(1)
	tmp := new(big.Int)
	for i := 0; i < pow5InvTableSize; i++ {
		l := pow.BitLen()
		if i < pow5TableSize {
			if shift := l - pow5BitCount; shift >= 0 {
				tmp.Rsh(pow, uint(shift))
			} else {
				tmp.Lsh(pow, uint(-shift))
			}
			pow5Split[i] = toUint128(tmp)
		}

		tmp.Lsh(one, uint(l-1+pow5InvBitCount))
		tmp.Quo(tmp, pow)
		tmp.Add(tmp, one)
		pow5InvSplit[i] = toUint128(tmp)

		pow.Mul(pow, five)
	}
}

func toUint128(x *big.Int) int128.Uint128 {
	var hi big.Int
	hi.Rsh(x, 64)
	lo := new(big.Int).Sub(x, new(big.Int).Lsh(&hi, 64))
	return int128.Uint128{H: hi.Uint64(), L: lo.Uint64()}
}
