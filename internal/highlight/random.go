package highlight

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Rand is the randomness a highlight selection draws from.
type Rand interface {
	// Intn returns a uniform value in [0, n).
	Intn(n int) int
}

// NewRand returns a generator for highlight selection. A zero seed draws from
// system entropy; any other seed gives a reproducible sequence.
func NewRand(seed uint64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// ChooseRandom picks k distinct items uniformly without replacement, in draw
// order. items is not modified. When k >= len(items) every item is returned
// in shuffled order.
func ChooseRandom[T any](items []T, k int, rng Rand) []T {
	pool := append([]T(nil), items...)
	if k > len(pool) {
		k = len(pool)
	}
	if k <= 0 {
		return []T{}
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
