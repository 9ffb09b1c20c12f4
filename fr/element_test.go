package fr

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestCanonicalBounds(t *testing.T) {
	assert := require.New(t)

	var z Element

	// l itself must be rejected
	enc := make([]byte, Bytes)
	qBE := Modulus().Bytes()
	for i := range qBE {
		enc[i] = qBE[len(qBE)-1-i]
	}
	assert.ErrorIs(z.SetBytesCanonical(enc), ErrNonCanonical)

	// l - 1 is the largest canonical scalar
	lm1 := new(big.Int).Sub(Modulus(), big.NewInt(1))
	be := lm1.FillBytes(make([]byte, Bytes))
	for i := range enc {
		enc[i] = be[Bytes-1-i]
	}
	assert.NoError(z.SetBytesCanonical(enc))

	var want Element
	want.SetBigInt(lm1)
	assert.True(z.Equal(&want))
}

func TestWideReduction(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("wide decoding reduces like big.Int mod l", prop.ForAll(
		func(b []uint8) bool {
			var z Element
			if err := z.SetBytesWide(b); err != nil {
				return false
			}
			be := make([]byte, len(b))
			for i := range b {
				be[i] = b[len(b)-1-i]
			}
			want := new(big.Int).SetBytes(be)
			want.Mod(want, Modulus())
			var got big.Int
			z.BigInt(&got)
			return got.Cmp(want) == 0
		},
		gen.SliceOfN(WideBytes, gen.UInt8()),
	))

	properties.Property("encode(decode) round trips canonical scalars", prop.ForAll(
		func(b []uint8) bool {
			var z Element
			if err := z.SetBytesWide(b); err != nil {
				return false
			}
			enc := z.Bytes()
			var back Element
			if err := back.SetBytesCanonical(enc[:]); err != nil {
				return false
			}
			return back.Equal(&z)
		},
		gen.SliceOfN(WideBytes, gen.UInt8()),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
