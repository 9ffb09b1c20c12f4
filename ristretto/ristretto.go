// Package ristretto implements the Ristretto255 prime-order group on top of
// the edwards25519 group: the quotient of the curve by its 8-torsion,
// together with a canonical 32-byte encoding. Group elements are
// represented by edwards25519 points; the encoding and decoding maps are
// the only Ristretto-specific logic, the group law is inherited.
package ristretto

import (
	"errors"
	"math/big"

	"github.com/ecliptic-labs/ed25519/fp"
	"github.com/ecliptic-labs/ed25519/fr"
	"github.com/ecliptic-labs/ed25519/twistededwards"
)

// Bytes is the size of a canonical element encoding.
const Bytes = 32

var ErrInvalidEncoding = errors.New("ristretto: invalid element encoding")

var (
	feOne          fp.Element
	curveD         fp.Element
	sqrtM1         fp.Element // sqrt(-1), even representative
	invSqrtAMinusD fp.Element // 1/sqrt(a - d), a = -1
)

func init() {
	feOne.SetOne()
	curveD.Set(twistededwards.D())
	sqrtM1.Set(fp.SqrtMinusOne())

	var aMinusD fp.Element
	aMinusD.Neg(&feOne)
	aMinusD.Sub(&aMinusD, &curveD)
	if _, err := invSqrtAMinusD.SqrtRatio(&feOne, &aMinusD); err != nil {
		panic("ristretto: a - d is not a square: " + err.Error())
	}
	invSqrtAMinusD.Abs(&invSqrtAMinusD)
}

// Element is a Ristretto255 group element: an equivalence class of
// edwards25519 points. The zero value is not a valid element; initialize
// with SetIdentity, SetBase, SetBytes or the arithmetic methods.
type Element struct {
	p twistededwards.Point
}

// Identity returns the neutral element.
func Identity() *Element {
	var e Element
	return e.SetIdentity()
}

// Base returns the canonical generator, the class of the edwards25519 base
// point.
func Base() *Element {
	var e Element
	return e.SetBase()
}

// SetIdentity sets e to the neutral element and returns e.
func (e *Element) SetIdentity() *Element {
	e.p.SetIdentity()
	return e
}

// SetBase sets e to the canonical generator and returns e.
func (e *Element) SetBase() *Element {
	e.p.Set(twistededwards.Base())
	return e
}

// Set sets e to a and returns e.
func (e *Element) Set(a *Element) *Element {
	e.p.Set(&a.p)
	return e
}

// Add sets e = a + b.
func (e *Element) Add(a, b *Element) *Element {
	e.p.Add(&a.p, &b.p)
	return e
}

// Sub sets e = a - b.
func (e *Element) Sub(a, b *Element) *Element {
	e.p.Sub(&a.p, &b.p)
	return e
}

// Neg sets e = -a.
func (e *Element) Neg(a *Element) *Element {
	e.p.Neg(&a.p)
	return e
}

// ScalarMul sets e = [k]a. The group has prime order, so k is reduced mod
// the order before multiplying; negative scalars reduce like any other.
func (e *Element) ScalarMul(a *Element, k *big.Int) *Element {
	var red fr.Element
	red.SetBigInt(k)
	var kr big.Int
	red.BigInt(&kr)
	if _, err := e.p.ScalarMul(&a.p, &kr); err != nil {
		panic("ristretto: reduced scalar rejected: " + err.Error())
	}
	return e
}

// Equal reports whether e and a are the same class: X1*Y2 == X2*Y1 or, for
// representatives rotated by the 4-torsion, X1*X2 == Y1*Y2.
func (e *Element) Equal(a *Element) bool {
	var l, r fp.Element
	l.Mul(&e.p.X, &a.p.Y)
	r.Mul(&a.p.X, &e.p.Y)
	if l.Equal(&r) {
		return true
	}
	l.Mul(&e.p.X, &a.p.X)
	r.Mul(&e.p.Y, &a.p.Y)
	return l.Equal(&r)
}

// SetBytes sets e to the element with canonical encoding buf. It rejects
// any buffer that is not the canonical encoding of an element: a field
// element >= 2^255-19, a negative s, a non-square witness, a negative
// recovered t, or a zero y.
func (e *Element) SetBytes(buf []byte) (*Element, error) {
	if len(buf) != Bytes {
		return nil, ErrInvalidEncoding
	}
	var s fp.Element
	if err := s.SetBytesCanonical(buf); err != nil {
		return nil, ErrInvalidEncoding
	}
	if s.IsNegative() {
		return nil, ErrInvalidEncoding
	}

	var ss, u1, u2, u2Sqr, v, arg, invSqrt fp.Element
	ss.Square(&s)
	u1.Sub(&feOne, &ss)
	u2.Add(&feOne, &ss)
	u2Sqr.Square(&u2)

	// v = -(d * u1^2) - u2^2
	v.Square(&u1)
	v.Mul(&v, &curveD)
	v.Neg(&v)
	v.Sub(&v, &u2Sqr)

	arg.Mul(&v, &u2Sqr)
	if _, err := invSqrt.SqrtRatio(&feOne, &arg); err != nil {
		return nil, ErrInvalidEncoding
	}
	invSqrt.Abs(&invSqrt)

	var denX, denY, x, y, t fp.Element
	denX.Mul(&invSqrt, &u2)
	denY.Mul(&invSqrt, &denX)
	denY.Mul(&denY, &v)

	x.Mul(&s, &denX)
	x.Double(&x)
	x.Abs(&x)
	y.Mul(&u1, &denY)
	t.Mul(&x, &y)

	if t.IsNegative() || y.IsZero() {
		return nil, ErrInvalidEncoding
	}
	e.p.X.Set(&x)
	e.p.Y.Set(&y)
	e.p.Z.SetOne()
	e.p.T.Set(&t)
	return e, nil
}

// Bytes returns the canonical 32-byte encoding of e. Two elements encode
// identically iff they are equal.
func (e *Element) Bytes() [Bytes]byte {
	var u1, u2, arg, invSqrt, den1, den2, zInv fp.Element
	u1.Add(&e.p.Z, &e.p.Y)
	var zMinusY fp.Element
	zMinusY.Sub(&e.p.Z, &e.p.Y)
	u1.Mul(&u1, &zMinusY)
	u2.Mul(&e.p.X, &e.p.Y)

	arg.Square(&u2)
	arg.Mul(&arg, &u1)
	// arg is zero exactly for the 4-torsion classes; their encoding is all
	// zeros, which falls out of continuing with 1/sqrt(0) = 0.
	if arg.IsZero() {
		invSqrt.SetZero()
	} else {
		if _, err := invSqrt.SqrtRatio(&feOne, &arg); err != nil {
			panic("ristretto: u1*u2^2 is not a square for a group element")
		}
		invSqrt.Abs(&invSqrt)
	}
	den1.Mul(&invSqrt, &u1)
	den2.Mul(&invSqrt, &u2)
	zInv.Mul(&den1, &den2)
	zInv.Mul(&zInv, &e.p.T)

	var x, y, denInv, rot fp.Element
	rot.Mul(&e.p.T, &zInv)
	if rot.IsNegative() {
		// rotate the representative by the 4-torsion point (i, 0)
		x.Mul(&e.p.Y, &sqrtM1)
		y.Mul(&e.p.X, &sqrtM1)
		denInv.Mul(&den1, &invSqrtAMinusD)
	} else {
		x.Set(&e.p.X)
		y.Set(&e.p.Y)
		denInv.Set(&den2)
	}

	var xzInv fp.Element
	xzInv.Mul(&x, &zInv)
	if xzInv.IsNegative() {
		y.Neg(&y)
	}

	var s fp.Element
	s.Sub(&e.p.Z, &y)
	s.Mul(&s, &denInv)
	s.Abs(&s)
	return s.Bytes()
}
