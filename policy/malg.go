package policy

import (
	"math"
	"math/rand"
)

// malgInstance is one of MALG's restarting UCB1 sub-algorithms, active
// over the inclusive window [start, end].
type malgInstance struct {
	alg   *UCB1
	start int
	end   int
}

func (i *malgInstance) length() int { return i.end - i.start + 1 }

// MALG is a meta-algorithm over restarting UCB1 instances with exponentially
// spaced window lengths 2^0 .. 2^depth, following the MALG construction of
// https://arxiv.org/pdf/2102.05406.pdf. At every step it randomly decides,
// for each window length whose boundary falls on the current step, whether
// to (re)install a fresh UCB1 instance over that window; the active
// instance at any step is the smallest installed window containing it.
type MALG struct {
	rng  *rand.Rand
	seed int64
	arms int
	n    int // depth: windows range over 2^0 .. 2^n
	tau  int // 1-based step counter

	instances []*malgInstance
}

// NewMALG builds a MALG policy whose sub-instances span windows of length
// 2^0 up to 2^depth steps.
func NewMALG(seed int64, arms, depth int) *MALG {
	if arms <= 0 {
		panic("policy: arms must be positive")
	}
	return &MALG{
		rng:       rand.New(rand.NewSource(seed)),
		seed:      seed,
		arms:      arms,
		n:         depth,
		tau:       1,
		instances: make([]*malgInstance, depth+1),
	}
}

func (m *MALG) GetAction() int {
	for off := 0; off <= m.n; off++ {
		level := m.n - off

		if (m.tau-1)%(1<<uint(level)) != 0 {
			continue
		}

		threshold := rho(m.arms, math.Pow(2.0, float64(m.n))) / rho(m.arms, math.Pow(2.0, float64(level)))
		if m.rng.Float64() >= threshold {
			continue
		}

		start := m.tau
		end := m.tau + (1 << uint(level)) - 1

		if m.instances[level] == nil {
			m.instances[level] = &malgInstance{
				alg:   NewUCB1(m.seed+int64(level), m.arms),
				start: start,
				end:   end,
			}
		} else {
			m.instances[level].start = start
			m.instances[level].end = end
			m.instances[level].alg.Reset()
		}
	}

	active := m.activeInstance()
	return m.instances[active].alg.GetAction()
}

func (m *MALG) Update(arm, reward int) {
	active := m.activeInstance()
	m.instances[active].alg.Update(arm, reward)
	m.tau++
}

func (m *MALG) Name() string { return "MALG" }

// rho is the average-regret bound used to schedule UCB instances.
func rho(arms int, t float64) float64 {
	a := float64(arms)
	return math.Sqrt(a/t) + a/t
}

func (m *MALG) activeInstance() int {
	best := math.MaxInt64
	bestIdx := -1

	for i, inst := range m.instances {
		if inst == nil {
			continue
		}
		if m.tau >= inst.start && m.tau <= inst.end {
			if inst.length() < best {
				best = inst.length()
				bestIdx = i
			}
		}
	}

	if bestIdx < 0 {
		panic("policy: MALG has no active instance covering the current step")
	}
	return bestIdx
}
