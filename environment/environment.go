// Package environment implements the non-stationary Bernoulli bandit that
// policies are evaluated against.
package environment

import "math/rand"

// BernoulliEnvironment is a Bernoulli multi-armed bandit whose per-arm
// success probabilities can change over time according to a
// ChangeSchedule.
type BernoulliEnvironment struct {
	rng      *rand.Rand
	schedule ChangeSchedule

	thetas []float64

	trials        int
	cummReward    float64
	expCummReward float64
}

// NewBernoulliEnvironment builds a Bernoulli bandit over the given number
// of arms, with probabilities resampled uniformly at random and changing
// according to schedule. A nil schedule defaults to NoChange.
func NewBernoulliEnvironment(arms int, seed int64, schedule ChangeSchedule) *BernoulliEnvironment {
	if arms <= 0 {
		panic("environment: arms must be positive")
	}
	if schedule == nil {
		schedule = NoChange{}
	}

	e := &BernoulliEnvironment{
		rng:      rand.New(rand.NewSource(seed)),
		schedule: schedule,
		thetas:   make([]float64, arms),
	}
	e.Reset()
	return e
}

// Pull draws a Bernoulli(theta[arm]) reward, updates cumulative and
// best-hindsight statistics, and applies any changepoint scheduled for
// this step.
func (e *BernoulliEnvironment) Pull(arm int) float64 {
	if arm < 0 || arm >= len(e.thetas) {
		panic("environment: invalid arm index")
	}

	e.trials++

	r := 0.0
	if e.rng.Float64() < e.thetas[arm] {
		r = 1.0
	}
	e.cummReward += r

	e.expCummReward += e.thetas[e.BestArm()]

	if e.schedule.Changepoint(e.trials) {
		newThetas := e.schedule.CustomArmInitialisation(e.trials)
		if len(newThetas) == 0 {
			e.Reset()
		} else {
			if len(newThetas) != len(e.thetas) {
				panic("environment: custom arm initialisation has the wrong arity")
			}
			copy(e.thetas, newThetas)
		}
	}

	return r
}

// Reset resamples every arm's success probability uniformly at random from
// [0, 1], without resetting the trial/reward counters.
func (e *BernoulliEnvironment) Reset() {
	for i := range e.thetas {
		e.thetas[i] = e.rng.Float64()
	}
}

// Trials returns the total number of arm pulls so far.
func (e *BernoulliEnvironment) Trials() int { return e.trials }

// Arms returns the number of arms in the environment.
func (e *BernoulliEnvironment) Arms() int { return len(e.thetas) }

// CumulativeReward returns the total reward accumulated so far.
func (e *BernoulliEnvironment) CumulativeReward() float64 { return e.cummReward }

// BestArm returns the arm with the highest current success probability.
func (e *BernoulliEnvironment) BestArm() int {
	best := 0
	for i, theta := range e.thetas {
		if theta > e.thetas[best] {
			best = i
		}
	}
	return best
}

// BestHindsightExpectedReturn is the expected reward of always having
// played the best arm at every step so far; the gap between this and
// CumulativeReward is the policy's regret.
func (e *BernoulliEnvironment) BestHindsightExpectedReturn() float64 {
	return e.expCummReward
}

// Changepoint reports whether a change is scheduled to occur right after
// the current trial count.
func (e *BernoulliEnvironment) Changepoint() bool {
	return e.schedule.Changepoint(e.trials)
}
