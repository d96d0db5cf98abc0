package simulate

import (
	"math/rand"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Rand bundles the two seeded random streams used by the generator: a
// general-purpose stream for uniform/Bernoulli/weighted draws and a
// numeric-distribution stream feeding the gonum samplers.
//
// # Determinism
//
// Both streams are seeded from the same seed value at construction.
// Given the same seed, every draw is a deterministic function of call
// order within its stream; the single-threaded pipeline fixes that
// order, so regeneration with the same seed and parameters reproduces
// the dataset exactly.
type Rand struct {
	general *rand.Rand
	numeric exprand.Source
}

// NewRand creates the seeded stream pair.
func NewRand(seed int64) *Rand {
	return &Rand{
		general: rand.New(rand.NewSource(seed)),
		numeric: exprand.NewSource(uint64(seed)),
	}
}

// Float64 draws a uniform value in [0,1) from the general stream.
func (r *Rand) Float64() float64 {
	return r.general.Float64()
}

// Intn draws a uniform integer in [0,n) from the general stream.
func (r *Rand) Intn(n int) int {
	return r.general.Intn(n)
}

// IntBetween draws a uniform integer in [lo, hi] inclusive.
func (r *Rand) IntBetween(lo, hi int) int {
	if lo >= hi {
		return lo
	}
	return lo + r.general.Intn(hi-lo+1)
}

// Bernoulli draws true with probability p from the general stream.
func (r *Rand) Bernoulli(p float64) bool {
	return r.general.Float64() < p
}

// Beta draws from a Beta(alpha, beta) distribution on the numeric
// stream.
func (r *Rand) Beta(alpha, beta float64) float64 {
	return distuv.Beta{Alpha: alpha, Beta: beta, Src: r.numeric}.Rand()
}

// Normal draws from a Normal(mu, sigma) distribution on the numeric
// stream.
func (r *Rand) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: r.numeric}.Rand()
}

// Weighted draws an index in [0,len(weights)) with probability
// proportional to the weights. A weight vector that sums to zero (or
// negative) falls back to a uniform draw rather than dividing by zero.
func (r *Rand) Weighted(weights []float64) int {
	if len(weights) == 0 {
		return 0
	}
	var sum float64
	for _, w := range weights {
		if w > 0 {
			sum += w
		}
	}
	if sum <= 0 {
		return r.Intn(len(weights))
	}

	target := r.general.Float64() * sum
	var acc float64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if target < acc {
			return i
		}
	}
	return len(weights) - 1
}
