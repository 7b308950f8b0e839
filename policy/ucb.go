package policy

import (
	"math"
	"math/rand"
)

// UCB1 plays every arm once, then maximises mean reward plus a confidence
// term that shrinks as an arm accumulates visits.
type UCB1 struct {
	rng  *rand.Rand
	arms int

	cummReward  []float64
	visits      []float64
	totalVisits float64
}

// NewUCB1 builds a UCB1 policy over the given number of arms.
func NewUCB1(seed int64, arms int) *UCB1 {
	if arms <= 0 {
		panic("policy: arms must be positive")
	}
	return &UCB1{
		rng:        rand.New(rand.NewSource(seed)),
		arms:       arms,
		cummReward: make([]float64, arms),
		visits:     make([]float64, arms),
	}
}

// Reset clears all mean/visit statistics, returning the policy to its
// initial state without rebuilding it.
func (u *UCB1) Reset() {
	u.totalVisits = 0.0
	for i := range u.visits {
		u.visits[i] = 0.0
		u.cummReward[i] = 0.0
	}
}

func (u *UCB1) GetAction() int {
	unvisited := u.unvisitedArms()
	if len(unvisited) > 0 {
		return unvisited[u.rng.Intn(len(unvisited))]
	}

	best := math.Inf(-1)
	bestIdx := 0
	for i := 0; i < u.arms; i++ {
		score := u.score(i)
		if score > best {
			best = score
			bestIdx = i
		}
	}
	return bestIdx
}

func (u *UCB1) Update(arm, reward int) {
	u.cummReward[arm] += float64(reward)
	u.visits[arm]++
	u.totalVisits++
}

func (u *UCB1) Name() string { return "UCB" }

func (u *UCB1) unvisitedArms() []int {
	var rval []int
	for arm := 0; arm < u.arms; arm++ {
		if u.visits[arm] == 0.0 {
			rval = append(rval, arm)
		}
	}
	return rval
}

func (u *UCB1) score(arm int) float64 {
	mean := u.cummReward[arm] / u.visits[arm]
	ci := math.Sqrt((2.0 * math.Log(u.totalVisits)) / u.visits[arm])
	return mean + ci
}
