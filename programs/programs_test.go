package programs

import (
	"crypto/rc4"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/swiprint/format"
)

func golden(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func run(fn func(format.Emitter)) string {
	var sb strings.Builder
	fn(format.NewWriterEmitter(&sb))
	return sb.String()
}

func TestHello(t *testing.T) {
	got := run(Hello)
	if diff := cmp.Diff(golden(t, "hello.golden"), got); diff != "" {
		t.Errorf("Hello() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrimeDemo(t *testing.T) {
	got := run(PrimeDemo)
	if diff := cmp.Diff(golden(t, "primes.golden"), got); diff != "" {
		t.Errorf("PrimeDemo() mismatch (-want +got):\n%s", diff)
	}
}

func TestFactor(t *testing.T) {
	tests := []struct {
		p    int32
		want []int32
	}{
		{p: -7, want: nil},
		{p: 0, want: nil},
		{p: 1, want: nil},
		{p: 2, want: []int32{2}},
		{p: 49, want: []int32{7, 7}},
		{p: 60, want: []int32{2, 2, 3, 5}},
		{p: 7 * 11 * 13 * 17 * 19, want: []int32{7, 11, 13, 17, 19}},
		{p: 23 * 29 * 31 * 37, want: []int32{23, 29, 31, 37}},
		{p: 2147483647, want: []int32{2147483647}},
		{p: 2147483646, want: []int32{2, 3, 3, 7, 11, 31, 151, 331}},
		{p: 46337 * 46337, want: []int32{46337, 46337}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, Factor(tt.p)); diff != "" {
			t.Errorf("Factor(%d) mismatch (-want +got):\n%s", tt.p, diff)
		}
	}
}

func TestFactorProductProperty(t *testing.T) {
	for p := int32(2); p < 5000; p++ {
		product := int32(1)
		prev := int32(0)
		for _, f := range Factor(p) {
			require.GreaterOrEqual(t, f, prev, "factors of %d not ascending", p)
			require.Len(t, Factor(f), 1, "factor %d of %d is not prime", f, p)
			product *= f
			prev = f
		}
		require.Equal(t, p, product)
	}
}

func TestPrime(t *testing.T) {
	assert.Equal(t, "97 is prime\n", run(func(e format.Emitter) { Prime(e, 97) }))
	assert.Equal(t, "1 has factors:\n", run(func(e format.Emitter) { Prime(e, 1) }))
	assert.Equal(t,
		"2147483646 has factors: 2 3 3 7 11 31 151 331\n2147483647 is prime\n",
		run(func(e format.Emitter) { Primes(e, 2147483646, 2147483647) }))
}

func TestAtod(t *testing.T) {
	tests := map[string]int32{
		"":            0,
		"0":           0,
		"1982":        1982,
		"-42":         -42,
		"12ab":        12,
		"x1":          0,
		"4294967297":  1,
		"-2147483648": -2147483648,
	}
	for in, want := range tests {
		assert.Equal(t, want, Atod(in), in)
	}
}

func TestRC4SelfTest(t *testing.T) {
	require.NoError(t, RC4SelfTest())
	require.Len(t, rc4LongPlain, len(rc4LongCipher))
}

func TestRC4MatchesStandardLibrary(t *testing.T) {
	for n, v := range RC4Vectors {
		std, err := rc4.NewCipher(v.Key)
		require.NoError(t, err)
		want := make([]byte, 512)
		std.XORKeyStream(want, want)

		c := NewRC4()
		c.Key(v.Key)
		got := make([]byte, 512)
		c.XORKeyStream(got, got)

		assert.Equal(t, want, got, "vector %d", n+1)
	}
}

func TestRC4EmptyKeyIsIdentity(t *testing.T) {
	c := NewRC4()
	c.Key(nil)
	assert.Equal(t, NewRC4(), c)
}

func TestRC4Hash(t *testing.T) {
	var sb strings.Builder
	digest := RC4Hash(format.NewWriterEmitter(&sb), "foo")

	assert.Equal(t, "c080028c0465ad97e13898205ac13a4d2635ce87", hex.EncodeToString(digest))
	assert.Equal(t, "Hash of 'foo' is c080028c0465ad97e13898205ac13a4d2635ce87\n", sb.String())
}

func TestRC4Demo(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, RC4Demo(format.NewWriterEmitter(&sb)))
	assert.Equal(t, "Hash of 'foo' is c080028c0465ad97e13898205ac13a4d2635ce87\n", sb.String())
}

func TestRC4SelfTestDetectsMismatch(t *testing.T) {
	saved := RC4Vectors
	t.Cleanup(func() { RC4Vectors = saved })

	RC4Vectors = []RC4Vector{{
		Key:    []byte{1, 2, 3},
		Plain:  []byte{0},
		Cipher: []byte{0},
	}}
	err := RC4SelfTest()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rc4 vector 1: byte 0")
}
