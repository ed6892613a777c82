package rough

import "math/rand/v2"

// random is a Park-Miller generator. It reproduces the same sequence for the
// same seed on every platform, which math/rand does not promise across Go
// releases.
type random struct {
	seed int32
}

func newRandom(seed int64) *random {
	s := int32(seed % (1<<31 - 1))
	if s == 0 {
		s = rand.Int32N(1<<31-2) + 1
	}
	return &random{seed: s}
}

func (r *random) next() float64 {
	r.seed *= 48271
	return float64(r.seed&(1<<31-1)) / (1 << 31)
}
