package twistededwards

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/ecliptic-labs/ed25519/fr"
)

// genScalar yields scalars below the group order.
func genScalar() gopter.Gen {
	return gen.SliceOfN(32, gen.UInt8()).Map(func(b []uint8) *big.Int {
		var s fr.Element
		wide := make([]byte, 64)
		copy(wide, b)
		_ = s.SetBytesWide(wide)
		var k big.Int
		return s.BigInt(&k)
	})
}

// genPoint yields uniform multiples of the base point.
func genPoint() gopter.Gen {
	return genScalar().Map(func(k *big.Int) *Point {
		var p Point
		if _, err := p.ScalarMulBase(k); err != nil {
			panic(err)
		}
		return &p
	})
}

func TestIdentity(t *testing.T) {
	assert := require.New(t)

	id := Identity()
	assert.True(id.IsIdentity())
	assert.True(id.IsOnCurve())

	b := Base()
	assert.True(b.IsOnCurve())
	assert.False(b.IsIdentity())

	var s Point
	s.Add(b, id)
	assert.True(s.Equal(b), "P + identity should be P")
}

func TestSubgroupOrder(t *testing.T) {
	assert := require.New(t)

	var p Point
	_, err := p.ScalarMulBase(fr.Modulus())
	assert.NoError(err)
	assert.True(p.IsIdentity(), "[l]B should be the identity")
}

func TestGroupLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)

	properties.Property("(P + Q) + R == P + (Q + R)", prop.ForAll(
		func(p, q, r *Point) bool {
			var l, rr Point
			l.Add(p, q)
			l.Add(&l, r)
			rr.Add(q, r)
			rr.Add(p, &rr)
			return l.Equal(&rr) && l.IsOnCurve()
		},
		genPoint(), genPoint(), genPoint(),
	))

	properties.Property("P - P == identity", prop.ForAll(
		func(p *Point) bool {
			var d Point
			d.Sub(p, p)
			return d.IsIdentity()
		},
		genPoint(),
	))

	properties.Property("P + (-P) == identity", prop.ForAll(
		func(p *Point) bool {
			var n, s Point
			n.Neg(p)
			s.Add(p, &n)
			return s.IsIdentity()
		},
		genPoint(),
	))

	properties.Property("doubling matches addition", prop.ForAll(
		func(p *Point) bool {
			var d, s Point
			d.Double(p)
			s.Add(p, p)
			return d.Equal(&s)
		},
		genPoint(),
	))

	properties.Property("[k](P + Q) == [k]P + [k]Q", prop.ForAll(
		func(k *big.Int, p, q *Point) bool {
			var s, l, kp, kq, r Point
			s.Add(p, q)
			if _, err := l.ScalarMul(&s, k); err != nil {
				return false
			}
			if _, err := kp.ScalarMul(p, k); err != nil {
				return false
			}
			if _, err := kq.ScalarMul(q, k); err != nil {
				return false
			}
			r.Add(&kp, &kq)
			return l.Equal(&r)
		},
		genScalar(), genPoint(), genPoint(),
	))

	properties.Property("[k + m]P == [k]P + [m]P", prop.ForAll(
		func(k, m *big.Int, p *Point) bool {
			sum := new(big.Int).Add(k, m)
			var l, kp, mp, r Point
			if _, err := l.ScalarMul(p, sum); err != nil {
				return false
			}
			if _, err := kp.ScalarMul(p, k); err != nil {
				return false
			}
			if _, err := mp.ScalarMul(p, m); err != nil {
				return false
			}
			r.Add(&kp, &mp)
			return l.Equal(&r)
		},
		genScalar(), genScalar(), genPoint(),
	))

	properties.Property("[k][m]P == [k*m]P", prop.ForAll(
		func(k, m *big.Int, p *Point) bool {
			prod := new(big.Int).Mul(k, m)
			var mp, l, r Point
			if _, err := mp.ScalarMul(p, m); err != nil {
				return false
			}
			if _, err := l.ScalarMul(&mp, k); err != nil {
				return false
			}
			if _, err := r.ScalarMul(p, prod); err != nil {
				return false
			}
			return l.Equal(&r)
		},
		genScalar(), genScalar(), genPoint(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestSmallOrder(t *testing.T) {
	assert := require.New(t)

	assert.True(Identity().IsSmallOrder())
	assert.False(Base().IsSmallOrder())
}
