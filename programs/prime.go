package programs

import "github.com/reglet-dev/swiprint/format"

// wheel holds the gaps between successive candidates coprime to 30,
// starting from 7: 7 11 13 17 19 23 29 31 37 ...
var wheel = [8]int32{4, 2, 4, 2, 4, 6, 2, 6}

// smallestFactor returns the smallest prime factor of p, which is p itself
// when p is prime. p must be at least 2.
func smallestFactor(p int32) int32 {
	for _, i := range [3]int32{2, 3, 5} {
		if p%i == 0 {
			return i
		}
	}
	for i, k := int32(7), 0; p/i >= i; i, k = i+wheel[k], (k+1)%len(wheel) {
		if p%i == 0 {
			return i
		}
	}
	return p
}

// Factor returns the prime factors of p in ascending order, with
// repetition. Values below 2 have no factors.
func Factor(p int32) []int32 {
	var factors []int32
	for p >= 2 {
		f := smallestFactor(p)
		factors = append(factors, f)
		p /= f
	}
	return factors
}

// Prime prints whether p is prime or lists its factors.
func Prime(e format.Emitter, p int32) {
	factors := Factor(p)
	if len(factors) == 1 {
		format.Printf(e, "%d is prime\n", p)
		return
	}
	format.Printf(e, "%d has factors:", p)
	for _, f := range factors {
		format.Printf(e, " %d", f)
	}
	format.Printf(e, "\n")
}

// Primes runs Prime for every value from lo to hi inclusive.
func Primes(e format.Emitter, lo, hi int32) {
	for i := lo; i <= hi; i++ {
		Prime(e, i)
		if i == hi {
			break // hi may be MaxInt32
		}
	}
}

// PrimeDemo prints 2 through 50 and the neighbourhoods of 7*11*13*17*19 and
// 23*29*31*37.
func PrimeDemo(e format.Emitter) {
	Primes(e, 2, 50)
	for _, j := range []int32{7 * 11 * 13 * 17 * 19, 23 * 29 * 31 * 37} {
		Primes(e, j-15, j+15)
	}
}

// Atod parses an optionally negative decimal prefix of s, stopping at the
// first character that is not a digit. Overflow wraps.
func Atod(s string) int32 {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var d int32
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d = d*10 + int32(s[i]-'0')
	}
	if neg {
		return -d
	}
	return d
}
