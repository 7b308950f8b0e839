package policy

import (
	"math"
	"math/rand"

	"github.com/avli/activeptw-bandits/ptw"
)

// klucbEps is the bisection precision used by maxRelEntropy.
const klucbEps = 1.0e-8

// KLUCB implements the Bandit Algorithms (Lattimore & Szepesvari) variant
// of KL-UCB, which bounds the index by log(f(t))/visits with f(x) = 1 +
// x*log(x)^2 rather than the tunable-c form from Garivier & Cappe.
type KLUCB struct {
	rng  *rand.Rand
	arms int

	successes   []float64
	visits      []float64
	totalVisits float64
}

// NewKLUCB builds a KL-UCB policy over the given number of arms.
func NewKLUCB(seed int64, arms int) *KLUCB {
	if arms <= 0 {
		panic("policy: arms must be positive")
	}
	return &KLUCB{
		rng:       rand.New(rand.NewSource(seed)),
		arms:      arms,
		successes: make([]float64, arms),
		visits:    make([]float64, arms),
	}
}

// Reset clears all mean/visit statistics.
func (k *KLUCB) Reset() {
	k.totalVisits = 0.0
	for i := range k.visits {
		k.visits[i] = 0.0
		k.successes[i] = 0.0
	}
}

func (k *KLUCB) GetAction() int {
	unvisited := k.unvisitedArms()
	if len(unvisited) > 0 {
		return unvisited[k.rng.Intn(len(unvisited))]
	}

	best := math.Inf(-1)
	bestIdx := 0
	for i := 0; i < k.arms; i++ {
		score := k.score(i)
		if score > best {
			best = score
			bestIdx = i
		}
	}
	return bestIdx
}

func (k *KLUCB) Update(arm, reward int) {
	k.successes[arm] += float64(reward)
	k.visits[arm]++
	k.totalVisits++
}

func (k *KLUCB) Name() string { return "KL-UCB" }

func (k *KLUCB) unvisitedArms() []int {
	var rval []int
	for arm := 0; arm < k.arms; arm++ {
		if k.visits[arm] == 0.0 {
			rval = append(rval, arm)
		}
	}
	return rval
}

func (k *KLUCB) score(arm int) float64 {
	if k.visits[arm] < 1.0 {
		panic("policy: klUCB score requested for an unvisited arm")
	}

	t := k.totalVisits + 1.0
	f := func(x float64) float64 {
		lx := math.Log(x)
		return 1.0 + x*lx*lx
	}

	ub := math.Log(f(t)) / k.visits[arm]
	p := k.successes[arm] / k.visits[arm]

	return maxRelEntropy(p, ub)
}

// maxRelEntropy finds the largest q >= p such that bernoulliKL(p, q) <= ub,
// by bisection. The lower bound p always satisfies the constraint since
// bernoulliKL(p, p) == 0.
func maxRelEntropy(p, ub float64) float64 {
	if ub <= 0.0 {
		panic("policy: maxRelEntropy requires a positive upper bound")
	}

	low, high := p, 1.0
	for high-low > klucbEps {
		q := low + (high-low)/2.0
		if ptw.BernoulliKL(p, q) > ub {
			high = q
		} else {
			low = q
		}
	}
	return low
}
