package round

import (
	"math/rand/v2"

	"hexdrill/internal/radix"
)

// Sampler draws operands uniformly from the 16 four-bit values, never
// repeating the previous operand of the same round.
type Sampler struct {
	rng   *rand.Rand
	prev  uint8
	fresh bool
}

func NewSampler(seed uint64) *Sampler {
	return &Sampler{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		fresh: true,
	}
}

// Reset forgets the previous operand, so the next draw is unconstrained.
func (s *Sampler) Reset() {
	s.fresh = true
}

func (s *Sampler) Next() uint8 {
	var v uint8
	if s.fresh {
		v = uint8(s.rng.IntN(radix.MaxValue + 1))
	} else {
		v = uint8(s.rng.IntN(radix.MaxValue))
		if v >= s.prev {
			v++
		}
	}
	s.prev = v
	s.fresh = false
	return v
}
