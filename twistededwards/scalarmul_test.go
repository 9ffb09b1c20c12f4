package twistededwards

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/curve25519"
)

func TestScalarMulSmall(t *testing.T) {
	assert := require.New(t)

	// compare double-and-add against repeated addition
	var acc Point
	acc.SetIdentity()
	for k := int64(0); k < 32; k++ {
		var p Point
		_, err := p.ScalarMul(Base(), big.NewInt(k))
		assert.NoError(err)
		assert.True(p.Equal(&acc), "mismatch at k = %d", k)

		var pb Point
		_, err = pb.ScalarMulBase(big.NewInt(k))
		assert.NoError(err)
		assert.True(pb.Equal(&acc), "base ladder mismatch at k = %d", k)

		acc.Add(&acc, Base())
	}
}

func TestScalarMulNegative(t *testing.T) {
	assert := require.New(t)

	var p Point
	_, err := p.ScalarMul(Base(), big.NewInt(-1))
	assert.ErrorIs(err, ErrNegativeScalar)
	_, err = p.ScalarMulBase(big.NewInt(-1))
	assert.ErrorIs(err, ErrNegativeScalar)
}

func TestScalarMulBaseMatchesGeneric(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	properties.Property("ladder and generic path agree", prop.ForAll(
		func(k *big.Int) bool {
			var a, b Point
			if _, err := a.ScalarMulBase(k); err != nil {
				return false
			}
			if _, err := b.ScalarMul(Base(), k); err != nil {
				return false
			}
			return a.Equal(&b)
		},
		genScalar(),
	))

	properties.Property("scalars above the ladder width take the generic path", prop.ForAll(
		func(k *big.Int) bool {
			wide := new(big.Int).Lsh(k, 300)
			wide.Add(wide, k)
			var a, b Point
			if _, err := a.ScalarMulBase(wide); err != nil {
				return false
			}
			if _, err := b.ScalarMul(Base(), wide); err != nil {
				return false
			}
			return a.Equal(&b)
		},
		genScalar(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// TestMontgomeryLadderAgreement cross-checks the Edwards-to-Montgomery
// projection against the X25519 implementation: for a clamped scalar a,
// u([a]B) must equal X25519(a, 9).
func TestMontgomeryLadderAgreement(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 10

	properties := gopter.NewProperties(parameters)

	properties.Property("u([a]B) == X25519(a, basepoint)", prop.ForAll(
		func(raw []uint8) bool {
			scalar := make([]byte, 32)
			copy(scalar, raw)
			scalar[0] &= 248
			scalar[31] &= 127
			scalar[31] |= 64

			be := make([]byte, 32)
			for i := range scalar {
				be[i] = scalar[31-i]
			}
			a := new(big.Int).SetBytes(be)

			var A Point
			if _, err := A.ScalarMulBase(a); err != nil {
				return false
			}
			u, err := A.MontgomeryU()
			if err != nil {
				return false
			}
			got := u.Bytes()

			want, err := curve25519.X25519(scalar, curve25519.Basepoint)
			if err != nil {
				return false
			}
			for i := range want {
				if got[i] != want[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(32, gen.UInt8()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
