package printf

import (
	"errors"
	"math"
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/shogo82148/printf/internal/ryu"
)

var negZero = math.Copysign(0, -1)

func TestFixed(t *testing.T) {
	tests := []struct {
		x    Arg
		want string
	}{
		{Float64(0.1), "0.1"},
		{Float32(0.1), "0.10000"},
		{Float32(11), "11"},
		{Float64(5), "5"},
		{Float64(100), "100"},
		{Float64(0.5), "0.5"},
		{Float64(1.5), "1.5"},
		{Float64(12.5), "12.5"},
		{Float64(-2.5), "-2.5"},
		{Float64(2.675), "2.675"},
		{Float64(3.14159265), "3.1416"},
		{Float64(123456), "123460"},
		{Float64(1234567), "1234600"},
		{Float64(0.000123), "0.000123"},
		{Float64(1e-7), "0.0000001"},
		{Float64(1e21), "1" + strings.Repeat("0", 21)},

		// round to nearest even at the fifth digit
		{Float64(999995), "1000000"},
		{Float64(999985), "999980"},
		{Float64(123455), "123460"},
		{Float64(123445), "123440"},

		// smallest float32, widened
		{Float32(math.SmallestNonzeroFloat32), "0." + strings.Repeat("0", 44) + "14013"},
		{Float64(math.SmallestNonzeroFloat64), "0." + strings.Repeat("0", 323) + "5"},
		{Float64(math.MaxFloat64), "17977" + strings.Repeat("0", 304)},
		{Float32(math.MaxFloat32), "34028" + strings.Repeat("0", 34)},
	}

	for _, tt := range tests {
		format := "%f"
		if tt.x.Kind() == KindFloat64 {
			format = "%lf"
		}
		got := Sprintf(format, tt.x)
		if got != tt.want {
			t.Errorf("%v: expected %s, got %s", tt.x, tt.want, got)
		}
	}
}

func TestScientific(t *testing.T) {
	tests := []struct {
		x    Arg
		want string
	}{
		{Float64(0.1), "1e-1"},
		{Float32(0.1), "1.0000e-1"},
		{Float64(1), "1e0"},
		{Float64(1.5), "1.5e0"},
		{Float64(123456), "1.2346e5"},
		{Float64(-1234.5), "-1.2345e3"},
		{Float64(999995), "1.00000e6"},
		{Float64(math.SmallestNonzeroFloat64), "5e-324"},
		{Float64(math.MaxFloat64), "1.7977e308"},
		{Float32(math.SmallestNonzeroFloat32), "1.4013e-45"},
		{Float64(0), "0e0"},
		{Float64(negZero), "-0e0"},
		{Float32(0), "0e0"},
		{Float64(math.Inf(1)), "INF"},
		{Float64(math.NaN()), "NaN"},
	}

	for _, tt := range tests {
		format := "%e"
		if tt.x.Kind() == KindFloat64 {
			format = "%le"
		}
		got := Sprintf(format, tt.x)
		if got != tt.want {
			t.Errorf("%v: expected %s, got %s", tt.x, tt.want, got)
		}
	}
}

func TestScientificZeroCount(t *testing.T) {
	var b Buffer
	n := Fprintf(&b, "%le", Float64(negZero))
	if n != 4 || b.Len() != 4 {
		t.Errorf("expected 4 characters, got %d (sink has %d)", n, b.Len())
	}
}

func TestSpecialValues(t *testing.T) {
	tests := []struct {
		x    Arg
		want string
	}{
		// binary64
		{Float64(math.NaN()), "NaN"},
		{Float64(math.Float64frombits(0xfff8000000000000)), "-NaN"},
		{Float64(math.Float64frombits(0x7ff0000000000001)), "NaN"},
		{Float64(math.Inf(1)), "INF"},
		{Float64(math.Inf(-1)), "-INF"},
		{Float64(0), "0"},
		{Float64(negZero), "-0"},

		// binary32
		{Float32(math.Float32frombits(0x7fc00000)), "NaN"},
		{Float32(math.Float32frombits(0xffc00000)), "-NaN"},
		{Float32(math.Float32frombits(0x7f800001)), "NaN"},
		{Float32(float32(math.Inf(1))), "INF"},
		{Float32(float32(math.Inf(-1))), "-INF"},
		{Float32(0), "0"},
		{Float32(float32(negZero)), "-0"},
	}

	for _, tt := range tests {
		format := "%f"
		if tt.x.Kind() == KindFloat64 {
			format = "%lf"
		}
		got := Sprintf(format, tt.x)
		if got != tt.want {
			t.Errorf("%x: expected %s, got %s", tt.x.bits, tt.want, got)
		}
	}
}

func TestRoundDecimal(t *testing.T) {
	tests := []struct {
		in   ryu.Decimal
		want ryu.Decimal
	}{
		{ryu.Decimal{Mantissa: 1, Exponent: -1}, ryu.Decimal{Mantissa: 1, Exponent: -1}},
		{ryu.Decimal{Mantissa: 99999, Exponent: 0}, ryu.Decimal{Mantissa: 99999, Exponent: 0}},
		{ryu.Decimal{Mantissa: 999995, Exponent: 0}, ryu.Decimal{Mantissa: 100000, Exponent: 1}},
		{ryu.Decimal{Mantissa: 999985, Exponent: 0}, ryu.Decimal{Mantissa: 99998, Exponent: 1}},
		{ryu.Decimal{Mantissa: 123455, Exponent: -3}, ryu.Decimal{Mantissa: 12346, Exponent: -2}},
		{ryu.Decimal{Mantissa: 123456, Exponent: 0}, ryu.Decimal{Mantissa: 12346, Exponent: 1}},
		{ryu.Decimal{Mantissa: 123454, Exponent: 0}, ryu.Decimal{Mantissa: 12345, Exponent: 1}},
		{ryu.Decimal{Mantissa: 1234567, Exponent: 0}, ryu.Decimal{Mantissa: 12346, Exponent: 2}},

		// only the last removed digit is looked at
		{ryu.Decimal{Mantissa: 1234551, Exponent: 0}, ryu.Decimal{Mantissa: 12346, Exponent: 2}},
		{ryu.Decimal{Mantissa: 1234451, Exponent: 0}, ryu.Decimal{Mantissa: 12344, Exponent: 2}},

		{ryu.Decimal{Mantissa: 17976931348623157, Exponent: 292}, ryu.Decimal{Mantissa: 17977, Exponent: 304}},
	}

	for _, tt := range tests {
		got := tt.in
		roundDecimal(&got)
		if got != tt.want {
			t.Errorf("%v: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestWiden(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	check := func(b uint32) {
		f := math.Float32frombits(b)
		want := math.Float64bits(float64(f))
		if got := widen(b); got != want {
			t.Errorf("%08x: expected %016x, got %016x", b, want, got)
		}
	}

	for _, b := range []uint32{0, 1, 0x7fffff, 0x800000, 0x3f800000, 0x7f7fffff, 0x7f800000, 0x80000000, 0x80000001, 0xff800000} {
		check(b)
	}
	for i := 0; i < 100000; i++ {
		b := r.Uint32()
		if b&0x7f800000 == 0x7f800000 && b&0x7fffff != 0 {
			// NaN payloads are checked below
			continue
		}
		check(b)
	}

	// NaN keeps its sign and payload
	if got := widen(0xffc00001); got != 0xfff8000020000000 {
		t.Errorf("expected fff8000020000000, got %016x", got)
	}
}

// parseFloat is strconv.ParseFloat, except that values rounded past
// math.MaxFloat64 parse as infinities without an error.
func parseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		err = nil
	}
	return f, err
}

// The fixed rendering is a function of the rounded decimal alone.
func TestFixedRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		b := r.Uint64()
		exp := (b >> shift64) & mask64
		if exp == mask64 || b&^signMask64 == 0 {
			continue
		}

		d := ryu.D2D(b&fracMask64, uint32(exp))
		roundDecimal(&d)
		want, err := parseFloat(strconv.FormatUint(d.Mantissa, 10) + "e" + strconv.Itoa(int(d.Exponent)))
		if err != nil {
			t.Fatal(err)
		}
		if b&signMask64 != 0 {
			want = -want
		}

		s := Sprintf("%lf", Float64(math.Float64frombits(b)))
		got, err := parseFloat(s)
		if err != nil {
			t.Errorf("%x: %v", b, err)
			continue
		}
		if got != want {
			t.Errorf("%x: expected %v, got %v (%s)", b, want, got, s)
		}
	}
}

var sciPattern = regexp.MustCompile(`^-?[0-9](\.[0-9]+)?e-?[1-9]?[0-9]*$`)

func TestScientificLayout(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		b := r.Uint64()
		if (b>>shift64)&mask64 == mask64 {
			continue
		}
		f := math.Float64frombits(b)
		sci := Sprintf("%le", Float64(f))
		if !sciPattern.MatchString(sci) {
			t.Errorf("%x: unexpected layout %s", b, sci)
			continue
		}

		// both layouts print the same decimal
		fixed := Sprintf("%lf", Float64(f))
		x, err1 := parseFloat(sci)
		y, err2 := parseFloat(fixed)
		if err1 != nil || err2 != nil || x != y {
			t.Errorf("%x: %s and %s differ", b, sci, fixed)
		}
	}
}

func BenchmarkFixed(b *testing.B) {
	c := NewCapture(make([]rune, 64))
	for i := 0; i < b.N; i++ {
		c.Reset()
		Fprintf(c, "%lf", Float64(3.14159265))
	}
}

func BenchmarkScientific(b *testing.B) {
	c := NewCapture(make([]rune, 64))
	for i := 0; i < b.N; i++ {
		c.Reset()
		Fprintf(c, "%le", Float64(6.02214076e23))
	}
}
