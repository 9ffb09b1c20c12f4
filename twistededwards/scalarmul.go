package twistededwards

import (
	"math/big"
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/ecliptic-labs/ed25519/debug"
	"github.com/ecliptic-labs/ed25519/logger"
)

// ScalarMul sets p = [k]a by left-to-right double-and-add over the binary
// expansion of k. The scalar is used as-is: callers multiplying by ring
// scalars reduce mod the group order themselves. Negative scalars are
// rejected.
func (p *Point) ScalarMul(a *Point, k *big.Int) (*Point, error) {
	if k.Sign() < 0 {
		return nil, ErrNegativeScalar
	}
	bits := scalarBits(k)
	var q, acc Point
	q.Set(a)
	acc.SetIdentity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc.Double(&acc)
		if bits.Test(uint(i)) {
			acc.Add(&acc, &q)
		}
	}
	if debug.Debug {
		debug.Assert(acc.IsOnCurve(), "scalar multiple left the curve")
	}
	return p.Set(&acc), nil
}

// ScalarMulBase sets p = [k]B. Scalars below 2^253 are assembled from a
// precomputed ladder of base point doublings; anything wider falls back to
// the generic path. Behavior is identical either way.
func (p *Point) ScalarMulBase(k *big.Int) (*Point, error) {
	if k.Sign() < 0 {
		return nil, ErrNegativeScalar
	}
	if k.BitLen() > baseTableSize {
		return p.ScalarMul(&base, k)
	}
	table := baseMultiples()
	bits := scalarBits(k)
	var acc Point
	acc.SetIdentity()
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		acc.Add(&acc, &table[i])
	}
	return p.Set(&acc), nil
}

// scalarBits collects the binary expansion of k.
func scalarBits(k *big.Int) *bitset.BitSet {
	n := uint(k.BitLen())
	bits := bitset.New(n)
	for i := uint(0); i < n; i++ {
		if k.Bit(int(i)) == 1 {
			bits.Set(i)
		}
	}
	return bits
}

// The ladder covers every scalar below the group order.
const baseTableSize = 253

var (
	baseTableOnce sync.Once
	baseTable     []Point
)

// baseMultiples returns the process-lifetime table with baseMultiples()[i]
// holding [2^i]B. Computed once, read-only afterwards.
func baseMultiples() []Point {
	baseTableOnce.Do(func() {
		baseTable = make([]Point, baseTableSize)
		baseTable[0].Set(&base)
		for i := 1; i < baseTableSize; i++ {
			baseTable[i].Double(&baseTable[i-1])
		}
		log := logger.Logger()
		log.Debug().Int("doublings", baseTableSize).Msg("precomputed base point ladder")
	})
	return baseTable
}
