package handdrawn

import (
	"encoding/binary"
	"hash/fnv"
)

// rng is a small xorshift64* generator. Sketch output must be reproducible
// for a given seed and element ID, so math/rand's global state is avoided.
type rng struct {
	state uint64
}

func newRNG(seed uint64) *rng {
	if seed == 0 {
		seed = 0x9e3779b97f4a7c15
	}
	return &rng{state: seed}
}

// next returns a value in [0, 1).
func (r *rng) next() float64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	v := r.state * 0x2545f4914f6cdd1d
	return float64(v>>11) / (1 << 53)
}

// between returns a value in [-amp, amp).
func (r *rng) between(amp float64) float64 {
	return (r.next()*2 - 1) * amp
}

// hash mixes s with seed into a generator seed.
func hash(s string, seed uint64) uint64 {
	h := fnv.New64a()
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], seed)
	h.Write(b[:])
	h.Write([]byte(s))
	return h.Sum64()
}
