package ptw

import (
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// expRandSource adapts *rand.Rand to the golang.org/x/exp/rand.Source
// interface expected by gonum's distuv package.
type expRandSource struct {
	rng *rand.Rand
}

func (s expRandSource) Uint64() uint64   { return s.rng.Uint64() }
func (s expRandSource) Seed(seed uint64) { s.rng.Seed(int64(seed)) }

// SampleBeta draws a sample from Beta(alpha, beta) via X/(X+Y) where
// X ~ Gamma(alpha, 1) and Y ~ Gamma(beta, 1). Both Gamma draws are
// regenerated on a NaN result, which only happens when both draws
// underflow to zero.
func SampleBeta(rng *rand.Rand, alpha, beta float64) float64 {
	src := expRandSource{rng: rng}
	xDist := distuv.Gamma{Alpha: alpha, Beta: 1.0, Src: src}
	yDist := distuv.Gamma{Alpha: beta, Beta: 1.0, Src: src}

	for {
		x := xDist.Rand()
		y := yDist.Rand()
		z := x / (x + y)
		if z == z { // NaN check
			return z
		}
	}
}
