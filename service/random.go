package service

import "math/rand/v2"

// NewRand returns a generator fully determined by seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// intBetween draws uniformly from [lo, hi].
func intBetween(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

func floatBetween(r *rand.Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

func chance(r *rand.Rand, p float64) bool {
	return r.Float64() < p
}

func pick[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}

// sampleIndices returns k distinct indices from [0, n) using a partial
// Fisher-Yates shuffle. k is capped at n.
func sampleIndices(r *rand.Rand, n, k int) []int {
	if k > n {
		k = n
	}
	if k <= 0 {
		return nil
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + r.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	return idx[:k]
}

// sampleWithoutReplacement returns k distinct items in draw order.
func sampleWithoutReplacement[T any](r *rand.Rand, items []T, k int) []T {
	picked := sampleIndices(r, len(items), k)
	out := make([]T, 0, len(picked))
	for _, i := range picked {
		out = append(out, items[i])
	}
	return out
}

// randReader adapts the generator to io.Reader so ids can be drawn from the
// same seeded stream.
type randReader struct {
	r *rand.Rand
}

func (rr randReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := rr.r.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}
