// Package ed25519 implements the Ed25519 signature scheme of RFC 8032 over
// the twisted Edwards curve edwards25519, together with the Ristretto255
// prime-order group built on the same curve.
//
// The package exposes three signature operations:
//   - derive a public key from a private key
//   - sign a message
//   - verify a signature
//
// plus the group-level primitives underneath them in the subpackages:
//   - fp: the base field GF(2^255 - 19)
//   - fr: scalars modulo the group order
//   - twistededwards: the curve group, point encoding and scalar multiplication
//   - ristretto: the Ristretto255 prime-order group
//
// Private keys, public keys and signatures are accepted as raw bytes, hex
// strings, or structured values; use the constructor matching the surface
// form at hand. All arithmetic is variable-time: this implementation is not
// hardened against timing side channels.
package ed25519

import (
	"math/big"

	"github.com/blang/semver/v4"

	"github.com/ecliptic-labs/ed25519/fp"
	"github.com/ecliptic-labs/ed25519/fr"
	"github.com/ecliptic-labs/ed25519/twistededwards"
)

// Version of the library.
var Version = semver.MustParse("0.3.0")

// FieldModulus returns the base field prime 2^255 - 19.
func FieldModulus() *big.Int {
	return fp.Modulus()
}

// GroupOrder returns the order of the prime-order subgroup,
// 2^252 + 27742317777372353535851937790883648493.
func GroupOrder() *big.Int {
	return fr.Modulus()
}

// BasePoint returns the group generator, the point with y = 4/5 and even x.
func BasePoint() twistededwards.Point {
	return *twistededwards.Base()
}
