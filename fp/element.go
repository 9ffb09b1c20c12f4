// Package fp implements arithmetic in GF(q), q = 2^255 - 19, the base field
// of the twisted Edwards curve edwards25519.
//
// Elements are held as arbitrary-precision integers reduced to [0, q). The
// arithmetic is variable-time; nothing in this package is safe against
// timing side channels.
package fp

import (
	"errors"
	"math/big"
)

// Bytes is the size of a serialized field element.
const Bytes = 32

var (
	q       *big.Int // 2^255 - 19
	qMinus2 *big.Int // exponent for inversion
	sqrtExp *big.Int // (q - 5) / 8, exponent of the square root candidate
	sqrtM1  Element  // square root of -1, even representative
)

var (
	ErrInvalidLength = errors.New("fp: 32 bytes expected")
	ErrNonCanonical  = errors.New("fp: non-canonical encoding")
	ErrNotASquare    = errors.New("fp: element is not a square")
)

func init() {
	q = new(big.Int).Lsh(big.NewInt(1), 255)
	q.Sub(q, big.NewInt(19))
	qMinus2 = new(big.Int).Sub(q, big.NewInt(2))
	sqrtExp = new(big.Int).Sub(q, big.NewInt(5))
	sqrtExp.Rsh(sqrtExp, 3)

	// 2 is a non-residue (q = 5 mod 8), so 2^((q-1)/4) squares to -1.
	e := new(big.Int).Sub(q, big.NewInt(1))
	e.Rsh(e, 2)
	sqrtM1.v.Exp(big.NewInt(2), e, q)
	if sqrtM1.IsNegative() {
		sqrtM1.Neg(&sqrtM1)
	}
}

// Modulus returns q = 2^255 - 19.
func Modulus() *big.Int {
	return new(big.Int).Set(q)
}

// SqrtMinusOne returns the even square root of -1.
func SqrtMinusOne() *Element {
	var z Element
	return z.Set(&sqrtM1)
}

// Element is an integer mod 2^255 - 19. The zero value is the element 0.
// Methods follow the set-receiver convention: z.Add(x, y) sets z to x + y
// and returns z. Receivers may alias operands.
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

// SetOne sets z to 1 and returns z.
func (z *Element) SetOne() *Element {
	z.v.SetInt64(1)
	return z
}

// SetUint64 sets z to u and returns z.
func (z *Element) SetUint64(u uint64) *Element {
	z.v.SetUint64(u)
	z.v.Mod(&z.v, q)
	return z
}

// SetBigInt sets z to x mod q and returns z. Negative inputs reduce to the
// representative in [0, q).
func (z *Element) SetBigInt(x *big.Int) *Element {
	z.v.Mod(x, q)
	return z
}

// SetBytesCanonical interprets b as a 32-byte little-endian integer and sets
// z to it. It fails if b does not hold exactly 32 bytes or encodes a value
// >= q.
func (z *Element) SetBytesCanonical(b []byte) error {
	if len(b) != Bytes {
		return ErrInvalidLength
	}
	var be [Bytes]byte
	for i := 0; i < Bytes; i++ {
		be[i] = b[Bytes-1-i]
	}
	z.v.SetBytes(be[:])
	if z.v.Cmp(q) >= 0 {
		return ErrNonCanonical
	}
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

// Add sets z = x + y mod q.
func (z *Element) Add(x, y *Element) *Element {
	z.v.Add(&x.v, &y.v)
	z.v.Mod(&z.v, q)
	return z
}

// Sub sets z = x - y mod q.
func (z *Element) Sub(x, y *Element) *Element {
	z.v.Sub(&x.v, &y.v)
	z.v.Mod(&z.v, q)
	return z
}

// Mul sets z = x * y mod q.
func (z *Element) Mul(x, y *Element) *Element {
	z.v.Mul(&x.v, &y.v)
	z.v.Mod(&z.v, q)
	return z
}

// Square sets z = x * x mod q.
func (z *Element) Square(x *Element) *Element {
	z.v.Mul(&x.v, &x.v)
	z.v.Mod(&z.v, q)
	return z
}

// Double sets z = 2 * x mod q.
func (z *Element) Double(x *Element) *Element {
	z.v.Add(&x.v, &x.v)
	z.v.Mod(&z.v, q)
	return z
}

// Neg sets z = -x mod q.
func (z *Element) Neg(x *Element) *Element {
	z.v.Neg(&x.v)
	z.v.Mod(&z.v, q)
	return z
}

// Abs sets z to x if x is non-negative and to -x otherwise.
func (z *Element) Abs(x *Element) *Element {
	if x.IsNegative() {
		return z.Neg(x)
	}
	return z.Set(x)
}

// Exp sets z = x^e mod q. e must be non-negative.
func (z *Element) Exp(x *Element, e *big.Int) *Element {
	z.v.Exp(&x.v, e, q)
	return z
}

// Inverse sets z = x^(q-2), the inverse of x when x != 0. Callers must not
// pass zero.
func (z *Element) Inverse(x *Element) *Element {
	z.v.Exp(&x.v, qMinus2, q)
	return z
}

// SqrtRatio sets z to a square root of u/v when one exists, computed from
// the candidate u * v^3 * (u * v^7)^((q-5)/8). With check = v * r^2, the
// candidate r is kept when check == u and multiplied by sqrt(-1) when
// check == -u; any other outcome means u/v is not a square and z is left
// untouched. The returned root is not sign-normalized.
func (z *Element) SqrtRatio(u, v *Element) (*Element, error) {
	var v3, v7, r, check, negU Element
	v3.Square(v)
	v3.Mul(&v3, v)
	v7.Square(&v3)
	v7.Mul(&v7, v)
	r.Mul(u, &v7)
	r.Exp(&r, sqrtExp)
	r.Mul(&r, &v3)
	r.Mul(&r, u)
	check.Square(&r)
	check.Mul(&check, v)
	negU.Neg(u)
	switch {
	case check.Equal(u):
	case check.Equal(&negU):
		r.Mul(&r, &sqrtM1)
	default:
		return nil, ErrNotASquare
	}
	return z.Set(&r), nil
}

// Equal reports whether z == x.
func (z *Element) Equal(x *Element) bool {
	return z.v.Cmp(&x.v) == 0
}

// IsZero reports whether z == 0.
func (z *Element) IsZero() bool {
	return z.v.Sign() == 0
}

// IsOne reports whether z == 1.
func (z *Element) IsOne() bool {
	return z.v.Cmp(bigOne) == 0
}

// IsNegative reports whether z is negative, i.e. whether the low bit of its
// canonical encoding is set.
func (z *Element) IsNegative() bool {
	return z.v.Bit(0) == 1
}

func (z *Element) String() string {
	return z.v.String()
}

var bigOne = big.NewInt(1)
