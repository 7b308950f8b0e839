package environment

import "math/rand"

// ChangeSchedule decides when a BernoulliEnvironment's arm probabilities
// change, and optionally supplies the specific values they should change
// to.
type ChangeSchedule interface {
	// Changepoint reports whether the environment should change right
	// after trial t (1-based).
	Changepoint(t int) bool
	// CustomArmInitialisation optionally supplies the exact arm
	// probabilities to switch to at trial t. A nil/empty result tells the
	// environment to fall back to its default mechanism (resampling arm
	// probabilities uniformly at random).
	CustomArmInitialisation(t int) []float64
}

// NoChange never triggers a change: the environment stays stationary.
type NoChange struct{}

func (NoChange) Changepoint(t int) bool                  { return false }
func (NoChange) CustomArmInitialisation(t int) []float64 { return nil }

// Geometric triggers changepoints at a pre-sampled sequence of times whose
// gaps are drawn from a Geometric(p) distribution, up to maxTrials.
type Geometric struct {
	cpts map[int]bool
}

// NewGeometric builds a Geometric change schedule with success probability
// p, over a horizon of maxTrials steps.
func NewGeometric(p float64, maxTrials int, seed int64) *Geometric {
	rng := rand.New(rand.NewSource(seed))
	cpts := make(map[int]bool)

	upto := 0
	for {
		inc := geometricSample(rng, p)
		upto += inc
		if upto < maxTrials {
			cpts[upto] = true
		}
		if upto >= maxTrials {
			break
		}
	}

	return &Geometric{cpts: cpts}
}

func (g *Geometric) Changepoint(t int) bool                 { return g.cpts[t] }
func (g *Geometric) CustomArmInitialisation(t int) []float64 { return nil }

// geometricSample draws the number of failures before the first success of
// a Bernoulli(p) trial, matching C++'s std::geometric_distribution.
func geometricSample(rng *rand.Rand, p float64) int {
	if p <= 0.0 || p >= 1.0 {
		panic("environment: geometric parameter must be in (0, 1)")
	}
	n := 0
	for rng.Float64() >= p {
		n++
	}
	return n
}

// Vector triggers changepoints at an explicit, unordered set of trial
// indices.
type Vector struct {
	cpts map[int]bool
}

// NewVector builds a change schedule that fires at exactly the given
// trial indices.
func NewVector(times []int) *Vector {
	cpts := make(map[int]bool, len(times))
	for _, t := range times {
		cpts[t] = true
	}
	return &Vector{cpts: cpts}
}

func (v *Vector) Changepoint(t int) bool                 { return v.cpts[t] }
func (v *Vector) CustomArmInitialisation(t int) []float64 { return nil }

// TwoPhase is an adversarial two-segment schedule: the best arm of the
// first half keeps its value into the second half, but is no longer
// optimal there. This construction is inspired by Theorem 31.2 of Bandit
// Algorithms (Lattimore & Szepesvari): it penalises policies that commit
// too early to what looks like a stationary problem.
type TwoPhase struct {
	halfway int
	theta1  []float64
	theta2  []float64
}

// NewTwoPhase builds a TwoPhase schedule over maxTrials steps, switching
// from theta1 to theta2 at the halfway point.
func NewTwoPhase(maxTrials int, theta1, theta2 []float64) *TwoPhase {
	return &TwoPhase{halfway: maxTrials / 2, theta1: theta1, theta2: theta2}
}

func (tp *TwoPhase) Changepoint(t int) bool {
	return t == tp.halfway || t == 1
}

func (tp *TwoPhase) CustomArmInitialisation(t int) []float64 {
	if t < tp.halfway {
		return tp.theta1
	}
	return tp.theta2
}
