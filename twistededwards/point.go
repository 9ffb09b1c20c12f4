package twistededwards

import (
	"errors"

	"github.com/ecliptic-labs/ed25519/fp"
)

var (
	ErrNotOnCurve     = errors.New("twistededwards: point not on curve")
	ErrNegativeScalar = errors.New("twistededwards: negative scalar")
)

// Point is a point of E(GF(2^255-19)) in extended coordinates. The zero
// value is not a valid point; use SetIdentity, SetAffine, SetBytes or the
// arithmetic methods to initialize one. All methods treat points as values
// and never retain references to their operands.
type Point struct {
	X, Y, Z, T fp.Element
}

// Identity returns the neutral element (0, 1).
func Identity() *Point {
	var p Point
	return p.SetIdentity()
}

// SetIdentity sets p to the neutral element and returns p.
func (p *Point) SetIdentity() *Point {
	p.X.SetZero()
	p.Y.SetOne()
	p.Z.SetOne()
	p.T.SetZero()
	return p
}

// Set sets p to a and returns p.
func (p *Point) Set(a *Point) *Point {
	p.X.Set(&a.X)
	p.Y.Set(&a.Y)
	p.Z.Set(&a.Z)
	p.T.Set(&a.T)
	return p
}

// SetAffine sets p to the point with the given affine coordinates, failing
// if (x, y) does not satisfy the curve equation.
func (p *Point) SetAffine(x, y *fp.Element) (*Point, error) {
	var lhs, rhs, x2, y2 fp.Element
	x2.Square(x)
	y2.Square(y)
	lhs.Sub(&y2, &x2)
	rhs.Mul(&x2, &y2)
	rhs.Mul(&rhs, &curveD)
	var one fp.Element
	rhs.Add(&rhs, one.SetOne())
	if !lhs.Equal(&rhs) {
		return nil, ErrNotOnCurve
	}
	p.X.Set(x)
	p.Y.Set(y)
	p.Z.SetOne()
	p.T.Mul(x, y)
	return p, nil
}

// Add sets p = a + b using the unified extended-coordinate formula, which
// is complete on this curve: no special case for a == b or the identity.
func (p *Point) Add(a, b *Point) *Point {
	var ta, tb, A, B, C, D, E, F, G, H fp.Element
	ta.Sub(&a.Y, &a.X)
	tb.Sub(&b.Y, &b.X)
	A.Mul(&ta, &tb)
	ta.Add(&a.Y, &a.X)
	tb.Add(&b.Y, &b.X)
	B.Mul(&ta, &tb)
	C.Mul(&a.T, &curveD2)
	C.Mul(&C, &b.T)
	D.Mul(&a.Z, &b.Z)
	D.Double(&D)
	E.Sub(&B, &A)
	F.Sub(&D, &C)
	G.Add(&D, &C)
	H.Add(&B, &A)
	p.X.Mul(&E, &F)
	p.Y.Mul(&G, &H)
	p.T.Mul(&E, &H)
	p.Z.Mul(&F, &G)
	return p
}

// Double sets p = 2*a. The addition formula is unified, so doubling reuses
// it with both operands equal.
func (p *Point) Double(a *Point) *Point {
	return p.Add(a, a)
}

// Neg sets p = -a, the point (-x, y).
func (p *Point) Neg(a *Point) *Point {
	p.X.Neg(&a.X)
	p.Y.Set(&a.Y)
	p.Z.Set(&a.Z)
	p.T.Neg(&a.T)
	return p
}

// Sub sets p = a - b.
func (p *Point) Sub(a, b *Point) *Point {
	var nb Point
	nb.Neg(b)
	return p.Add(a, &nb)
}

// Equal reports whether p and a represent the same affine point, comparing
// cross products to avoid inversions.
func (p *Point) Equal(a *Point) bool {
	var l, r fp.Element
	l.Mul(&p.X, &a.Z)
	r.Mul(&a.X, &p.Z)
	if !l.Equal(&r) {
		return false
	}
	l.Mul(&p.Y, &a.Z)
	r.Mul(&a.Y, &p.Z)
	return l.Equal(&r)
}

// IsIdentity reports whether p is the neutral element.
func (p *Point) IsIdentity() bool {
	return p.X.IsZero() && p.Y.Equal(&p.Z)
}

// IsOnCurve reports whether p satisfies the projective curve equation
// (Y^2 - X^2) * Z^2 = Z^4 + d * X^2 * Y^2 and the extended-coordinate
// invariant T*Z = X*Y.
func (p *Point) IsOnCurve() bool {
	if p.Z.IsZero() {
		return false
	}
	var x2, y2, z2, lhs, rhs, tz, xy fp.Element
	x2.Square(&p.X)
	y2.Square(&p.Y)
	z2.Square(&p.Z)
	lhs.Sub(&y2, &x2)
	lhs.Mul(&lhs, &z2)
	rhs.Mul(&x2, &y2)
	rhs.Mul(&rhs, &curveD)
	z2.Square(&z2)
	rhs.Add(&rhs, &z2)
	if !lhs.Equal(&rhs) {
		return false
	}
	tz.Mul(&p.T, &p.Z)
	xy.Mul(&p.X, &p.Y)
	return tz.Equal(&xy)
}

// IsSmallOrder reports whether p lies in the 8-torsion subgroup.
func (p *Point) IsSmallOrder() bool {
	var e Point
	e.Double(p)
	e.Double(&e)
	e.Double(&e)
	return e.IsIdentity()
}
