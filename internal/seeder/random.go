package seeder

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource is the only source of randomness generators may use. Sharing
// one seeded source keeps a run reproducible.
type RandomSource interface {
	Intn(n int) int
	Int63n(n int64) int64
	Float64() float64
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomSource returns a goroutine-safe source. A zero seed picks one from the clock.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedSource{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *lockedSource) Int63n(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Int63n(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// chance returns true with a given percent chance.
func chance(r RandomSource, percent int) bool {
	if percent <= 0 {
		return false
	}
	if percent >= 100 {
		return true
	}
	return r.Intn(100) < percent
}

// between returns a uniform integer in [lo, hi].
func between(r RandomSource, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

func pick[T any](r RandomSource, items []T) T {
	return items[r.Intn(len(items))]
}

// pickDistinct draws up to k distinct elements by partial Fisher-Yates.
func pickDistinct[T any](r RandomSource, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		j := i + r.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out = append(out, items[idx[i]])
	}
	return out
}
