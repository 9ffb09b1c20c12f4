package twistededwards

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ecliptic-labs/ed25519/fp"
)

// Bytes is the size of a compressed point encoding.
const Bytes = 32

var ErrInvalidEncoding = errors.New("twistededwards: invalid point encoding")

// Affine returns the affine coordinates (x, y) = (X/Z, Y/Z) of p.
func (p *Point) Affine() (x, y fp.Element) {
	var zInv fp.Element
	zInv.Inverse(&p.Z)
	x.Mul(&p.X, &zInv)
	y.Mul(&p.Y, &zInv)
	return x, y
}

// Bytes returns the 32-byte compressed encoding of p: the little-endian y
// coordinate with the high bit of the last byte carrying the parity of x.
func (p *Point) Bytes() [Bytes]byte {
	x, y := p.Affine()
	out := y.Bytes()
	if x.IsNegative() {
		out[Bytes-1] |= 0x80
	}
	return out
}

// Hex returns the compressed encoding of p as 64 hex characters.
func (p *Point) Hex() string {
	b := p.Bytes()
	return hex.EncodeToString(b[:])
}

// SetBytes sets p to the point encoded in buf, recovering x from y through
// the square root of (y^2 - 1)/(d*y^2 + 1). It fails on a non-canonical y,
// a non-square recovered x^2, a sign bit inconsistent with x = 0 or y = 0,
// or an off-curve result.
func (p *Point) SetBytes(buf []byte) (*Point, error) {
	if len(buf) != Bytes {
		return nil, ErrInvalidEncoding
	}
	var enc [Bytes]byte
	copy(enc[:], buf)
	sign := enc[Bytes-1] >> 7
	enc[Bytes-1] &= 0x7f

	var y fp.Element
	if err := y.SetBytesCanonical(enc[:]); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}

	var one, y2, u, v, x fp.Element
	one.SetOne()
	y2.Square(&y)
	u.Sub(&y2, &one)
	v.Mul(&y2, &curveD)
	v.Add(&v, &one)
	if _, err := x.SqrtRatio(&u, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	if sign == 1 && (x.IsZero() || y.IsZero()) {
		return nil, ErrInvalidEncoding
	}
	if x.IsNegative() != (sign == 1) {
		x.Neg(&x)
	}

	if _, err := p.SetAffine(&x, &y); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return p, nil
}

// SetY sets p to the point with the given y coordinate and the x whose
// parity matches odd. It fails exactly where SetBytes would.
func (p *Point) SetY(y *fp.Element, odd bool) (*Point, error) {
	enc := y.Bytes()
	if odd {
		enc[Bytes-1] |= 0x80
	}
	return p.SetBytes(enc[:])
}

// SetHex sets p to the point encoded in the 64-character hex string s.
func (p *Point) SetHex(s string) (*Point, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEncoding, err)
	}
	return p.SetBytes(b)
}

// ErrNoMontgomeryImage is returned by MontgomeryU for y = 1, the only
// Edwards y without a finite Montgomery counterpart.
var ErrNoMontgomeryImage = errors.New("twistededwards: y = 1 has no Montgomery u")

// MontgomeryU returns the Montgomery u coordinate (1 + y)/(1 - y) of p
// under the birational map to Curve25519.
func (p *Point) MontgomeryU() (fp.Element, error) {
	_, y := p.Affine()
	var one, num, den, u fp.Element
	one.SetOne()
	den.Sub(&one, &y)
	if den.IsZero() {
		return u, ErrNoMontgomeryImage
	}
	num.Add(&one, &y)
	den.Inverse(&den)
	u.Mul(&num, &den)
	return u, nil
}
