package programs

import (
	"fmt"

	"github.com/reglet-dev/swiprint/format"
)

// RC4 is the RC4 stream cipher state. Besides keying and keystream output
// it supports feeding key bytes one at a time and rewinding the counters,
// which turns it into a simple hash.
type RC4 struct {
	s    [256]byte
	i, j uint8
}

// NewRC4 returns a cipher in the identity state.
func NewRC4() *RC4 {
	c := &RC4{}
	c.InitState()
	return c
}

// InitState resets the permutation to the identity and the counters to
// zero.
func (c *RC4) InitState() {
	for x := range c.s {
		c.s[x] = byte(x)
	}
	c.i, c.j = 0, 0
}

// Reset zeroes the counters and keeps the permutation.
func (c *RC4) Reset() {
	c.i, c.j = 0, 0
}

// Key runs the standard key schedule over key. An empty key leaves the
// identity state.
func (c *RC4) Key(key []byte) {
	c.InitState()
	if len(key) == 0 {
		return
	}
	var y uint8
	for x := 0; x < 256; x++ {
		t := c.s[x]
		y += t + key[x%len(key)]
		c.s[x] = c.s[y]
		c.s[y] = t
	}
	c.i, c.j = 0, 0
}

// KeyByte mixes one more key byte into the state.
func (c *RC4) KeyByte(k byte) {
	t := c.s[c.i]
	c.j += t + k
	c.s[c.i] = c.s[c.j]
	c.s[c.j] = t
	c.i++
}

// Byte returns the next keystream byte.
func (c *RC4) Byte() byte {
	c.i++
	ti := c.s[c.i]
	c.j += ti
	tj := c.s[c.j]
	c.s[c.i] = tj
	c.s[c.j] = ti
	return c.s[ti+tj]
}

// XORKeyStream sets dst[i] = src[i] ^ keystream byte i.
func (c *RC4) XORKeyStream(dst, src []byte) {
	for i, b := range src {
		dst[i] = b ^ c.Byte()
	}
}

// RC4Vector is a published key, plaintext and ciphertext triple.
type RC4Vector struct {
	Key, Plain, Cipher []byte
}

// RC4Vectors are the vectors RC4SelfTest checks.
var RC4Vectors = []RC4Vector{
	{
		Key:    []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF},
		Plain:  []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		Cipher: []byte{0x74, 0x94, 0xC2, 0xE7, 0x10, 0x4B, 0x08, 0x79},
	},
	{
		Key:    []byte{0x61, 0x8a, 0x63, 0xd2, 0xfb},
		Plain:  []byte{0xdc, 0xee, 0x4c, 0xf9, 0x2c},
		Cipher: []byte{0xf1, 0x38, 0x29, 0xc9, 0xde},
	},
	{
		Key: []byte{
			0x29, 0x04, 0x19, 0x72, 0xfb, 0x42, 0xba, 0x5f,
			0xc7, 0x12, 0x77, 0x12, 0xf1, 0x38, 0x29, 0xc9,
		},
		Plain:  rc4LongPlain,
		Cipher: rc4LongCipher,
	},
}

// RC4SelfTest checks the cipher against RC4Vectors and reports the first
// mismatch.
func RC4SelfTest() error {
	for n, v := range RC4Vectors {
		c := NewRC4()
		c.Key(v.Key)
		for i, p := range v.Plain {
			if got := c.Byte() ^ p; got != v.Cipher[i] {
				return fmt.Errorf("rc4 vector %d: byte %d is %#02x, want %#02x", n+1, i, got, v.Cipher[i])
			}
		}
	}
	return nil
}

// HashSize is the length of an RC4Hash digest.
const HashSize = 20

// RC4Hash digests s: each byte of s is keyed into an identity state, the
// state is stirred for 256 rounds, the counters are rewound and HashSize
// keystream bytes form the digest. It prints
//
//	Hash of 's' is <hex digest>
//
// and returns the digest.
func RC4Hash(e format.Emitter, s string) []byte {
	c := NewRC4()
	for i := 0; i < len(s); i++ {
		c.KeyByte(s[i])
	}
	for i := 0; i < 256; i++ {
		c.Byte()
	}
	c.Reset()

	format.Printf(e, "Hash of '%s' is ", s)
	digest := make([]byte, HashSize)
	for i := range digest {
		digest[i] = c.Byte()
		format.Printf(e, "%02x", digest[i])
	}
	format.Printf(e, "\n")
	return digest
}

// RC4Demo runs the self-test and prints the hash of "foo".
func RC4Demo(e format.Emitter) error {
	if err := RC4SelfTest(); err != nil {
		format.Printf(e, "self-test failed: %s\n", err.Error())
		return err
	}
	RC4Hash(e, "foo")
	return nil
}
