// Package twistededwards implements the group of the twisted Edwards curve
// edwards25519, -x^2 + y^2 = 1 + d*x^2*y^2 over GF(2^255-19), with
// d = -121665/121666. Points are held in extended homogeneous coordinates
// (X, Y, Z, T) with x = X/Z, y = Y/Z and T*Z = X*Y.
package twistededwards

import (
	"math/big"

	"github.com/ecliptic-labs/ed25519/fp"
)

var (
	curveD  fp.Element // -121665/121666
	curveD2 fp.Element // 2*d, as used by the unified addition formula
	base    Point      // generator with y = 4/5 and even x
)

var cofactor = big.NewInt(8)

func init() {
	var num, den fp.Element
	num.SetBigInt(big.NewInt(-121665))
	den.SetBigInt(big.NewInt(121666))
	den.Inverse(&den)
	curveD.Mul(&num, &den)
	curveD2.Double(&curveD)

	// The generator is the point with y = 4/5 whose x coordinate is even;
	// recovering it through SetBytes keeps a single decoding path.
	var four, five, y fp.Element
	four.SetUint64(4)
	five.SetUint64(5)
	five.Inverse(&five)
	y.Mul(&four, &five)
	enc := y.Bytes()
	if _, err := base.SetBytes(enc[:]); err != nil {
		panic("twistededwards: base point derivation: " + err.Error())
	}
}

// Base returns a copy of the group generator.
func Base() *Point {
	var p Point
	return p.Set(&base)
}

// D returns a copy of the curve constant d.
func D() *fp.Element {
	var d fp.Element
	return d.Set(&curveD)
}

// Cofactor returns the curve cofactor, 8.
func Cofactor() *big.Int {
	return new(big.Int).Set(cofactor)
}
