// Package fr implements arithmetic modulo l = 2^252 +
// 27742317777372353535851937790883648493, the order of the prime-order
// subgroup of edwards25519. Signature scalars and Ristretto255 exponents
// live in this ring.
package fr

import (
	"errors"
	"math/big"
)

// Bytes is the size of a serialized scalar.
const Bytes = 32

// WideBytes is the size of a SHA-512 digest reduced into the ring.
const WideBytes = 64

var q *big.Int // group order l

var (
	ErrInvalidLength = errors.New("fr: unexpected input length")
	ErrNonCanonical  = errors.New("fr: non-canonical scalar encoding")
)

func init() {
	c, _ := new(big.Int).SetString("27742317777372353535851937790883648493", 10)
	q = new(big.Int).Lsh(big.NewInt(1), 252)
	q.Add(q, c)
}

// Modulus returns the group order l.
func Modulus() *big.Int {
	return new(big.Int).Set(q)
}

// Element is an integer mod l. The zero value is the scalar 0. Methods
// follow the set-receiver convention of package fp.
type Element struct {
	v big.Int
}

// Set sets z to x and returns z.
func (z *Element) Set(x *Element) *Element {
	z.v.Set(&x.v)
	return z
}

// SetZero sets z to 0 and returns z.
func (z *Element) SetZero() *Element {
	z.v.SetInt64(0)
	return z
}

// SetBigInt sets z to x mod l and returns z.
func (z *Element) SetBigInt(x *big.Int) *Element {
	z.v.Mod(x, q)
	return z
}

// SetBytesCanonical interprets b as a 32-byte little-endian integer and sets
// z to it, failing on values >= l. This is the strict decoding used for the
// s component of signatures.
func (z *Element) SetBytesCanonical(b []byte) error {
	if len(b) != Bytes {
		return ErrInvalidLength
	}
	setLE(&z.v, b)
	if z.v.Cmp(q) >= 0 {
		return ErrNonCanonical
	}
	return nil
}

// SetBytesWide interprets b as a 64-byte little-endian integer, typically a
// SHA-512 digest, and sets z to its reduction mod l.
func (z *Element) SetBytesWide(b []byte) error {
	if len(b) != WideBytes {
		return ErrInvalidLength
	}
	setLE(&z.v, b)
	z.v.Mod(&z.v, q)
	return nil
}

// Bytes returns the canonical 32-byte little-endian encoding of z.
func (z *Element) Bytes() [Bytes]byte {
	var be, le [Bytes]byte
	z.v.FillBytes(be[:])
	for i := 0; i < Bytes; i++ {
		le[i] = be[Bytes-1-i]
	}
	return le
}

// BigInt writes z into res and returns res.
func (z *Element) BigInt(res *big.Int) *big.Int {
	return res.Set(&z.v)
}

// Add sets z = x + y mod l.
func (z *Element) Add(x, y *Element) *Element {
	z.v.Add(&x.v, &y.v)
	z.v.Mod(&z.v, q)
	return z
}

// Mul sets z = x * y mod l.
func (z *Element) Mul(x, y *Element) *Element {
	z.v.Mul(&x.v, &y.v)
	z.v.Mod(&z.v, q)
	return z
}

// Equal reports whether z == x.
func (z *Element) Equal(x *Element) bool {
	return z.v.Cmp(&x.v) == 0
}

// IsZero reports whether z == 0.
func (z *Element) IsZero() bool {
	return z.v.Sign() == 0
}

func (z *Element) String() string {
	return z.v.String()
}

func setLE(v *big.Int, b []byte) {
	be := make([]byte, len(b))
	for i := range b {
		be[i] = b[len(b)-1-i]
	}
	v.SetBytes(be)
}
