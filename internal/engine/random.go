package engine

import "math/rand"

// Random is the session's only source of randomness. Every spawn decision,
// lane choice and shuffle goes through it, so a seed reproduces a round.
type Random interface {
	Float64() float64
	Intn(n int) int
	Pick(n int) int
	WeightedPick(weights []float64) int
	Shuffle(n int, swap func(i, j int))
}

type seeded struct {
	rng *rand.Rand
}

// NewRandom returns a deterministic Random for the given seed.
func NewRandom(seed int64) Random {
	return &seeded{rng: rand.New(rand.NewSource(seed))}
}

func (s *seeded) Float64() float64 { return s.rng.Float64() }

func (s *seeded) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Pick returns a uniform index in [0, n), or -1 when n is zero.
func (s *seeded) Pick(n int) int {
	if n <= 0 {
		return -1
	}
	return s.rng.Intn(n)
}

// WeightedPick returns index i with probability weights[i]/sum(weights).
// Negative weights count as zero; -1 means nothing could be picked.
func (s *seeded) WeightedPick(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}
	r := s.rng.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i
		}
		r -= w
	}
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return -1
}

func (s *seeded) Shuffle(n int, swap func(i, j int)) {
	if n > 1 {
		s.rng.Shuffle(n, swap)
	}
}
