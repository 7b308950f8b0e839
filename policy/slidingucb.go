package policy

import (
	"math"
	"math/rand"
)

// slidingPlay is one entry in SlidingUCB's fixed-capacity play history.
type slidingPlay struct {
	arm    int
	reward float64
}

// SlidingUCB is the Sliding-Window UCB policy of Garivier & Moulines
// (https://arxiv.org/pdf/0805.3415): a UCB1 score computed only from the
// most recent `window` plays, which lets it track a slowly drifting
// environment instead of averaging over its entire unbounded history.
type SlidingUCB struct {
	rng    *rand.Rand
	arms   int
	window int

	plays []slidingPlay // FIFO ring of the window's most recent plays
	head  int           // index of the oldest entry once the ring is full
	size  int           // number of valid entries currently in plays

	cummReward []float64
	visits     []float64
}

// NewSlidingUCB builds a Sliding-Window UCB policy with the given window
// capacity. A window at least as large as the number of trials run behaves
// identically to UCB1, since it never evicts a play.
func NewSlidingUCB(seed int64, arms, window int) *SlidingUCB {
	if arms <= 0 {
		panic("policy: arms must be positive")
	}
	if window <= 0 {
		panic("policy: window must be positive")
	}
	return &SlidingUCB{
		rng:        rand.New(rand.NewSource(seed)),
		arms:       arms,
		window:     window,
		plays:      make([]slidingPlay, window),
		cummReward: make([]float64, arms),
		visits:     make([]float64, arms),
	}
}

// Reset clears the play history and all mean/visit statistics.
func (s *SlidingUCB) Reset() {
	s.head = 0
	s.size = 0
	for i := range s.visits {
		s.visits[i] = 0.0
		s.cummReward[i] = 0.0
	}
}

func (s *SlidingUCB) GetAction() int {
	unvisited := s.unvisitedArms()
	if len(unvisited) > 0 {
		return unvisited[s.rng.Intn(len(unvisited))]
	}

	best := math.Inf(-1)
	bestIdx := 0
	for i := 0; i < s.arms; i++ {
		score := s.score(i)
		if score > best {
			best = score
			bestIdx = i
		}
	}
	return bestIdx
}

func (s *SlidingUCB) Update(arm, reward int) {
	s.cummReward[arm] += float64(reward)
	s.visits[arm]++

	if s.size < s.window {
		s.plays[s.size] = slidingPlay{arm: arm, reward: float64(reward)}
		s.size++
		return
	}

	evicted := s.plays[s.head]
	s.visits[evicted.arm]--
	s.cummReward[evicted.arm] -= evicted.reward

	s.plays[s.head] = slidingPlay{arm: arm, reward: float64(reward)}
	s.head = (s.head + 1) % s.window
}

func (s *SlidingUCB) Name() string { return "SlidingUCB" }

func (s *SlidingUCB) unvisitedArms() []int {
	var rval []int
	for arm := 0; arm < s.arms; arm++ {
		if s.visits[arm] == 0.0 {
			rval = append(rval, arm)
		}
	}
	return rval
}

func (s *SlidingUCB) score(arm int) float64 {
	mean := s.cummReward[arm] / s.visits[arm]
	ci := math.Sqrt((2.0 * math.Log(float64(s.size))) / s.visits[arm])
	return mean + ci
}
