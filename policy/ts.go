package policy

import (
	"math"
	"math/rand"

	"github.com/avli/activeptw-bandits/ptw"
)

// activePTWDepth fixes the Active PTW horizon to 2^30 steps, far beyond
// any realistic trial count a single run of this lab would exhaust.
const activePTWDepth = 30

// ThompsonSampling maintains an independent Beta posterior per arm via a
// flat KT estimator and samples from each to pick the arm to pull next,
// with no notion of non-stationarity.
type ThompsonSampling struct {
	rng   *rand.Rand
	model []ptw.KTEstimator
}

// NewThompsonSampling builds a flat Thompson Sampling policy over the
// given number of arms.
func NewThompsonSampling(seed int64, arms int) *ThompsonSampling {
	if arms <= 0 {
		panic("policy: arms must be positive")
	}
	return &ThompsonSampling{
		rng:   rand.New(rand.NewSource(seed)),
		model: make([]ptw.KTEstimator, arms),
	}
}

func (t *ThompsonSampling) GetAction() int {
	best := math.Inf(-1)
	bestIdx := 0

	for i := range t.model {
		post := t.model[i].Posterior()
		r := ptw.SampleBeta(t.rng, post.Alpha, post.Beta)
		if r > best {
			best = r
			bestIdx = i
		}
	}
	return bestIdx
}

func (t *ThompsonSampling) Update(arm, reward int) {
	t.model[arm].Update(reward)
}

func (t *ThompsonSampling) Name() string { return "TS" }

// ActivePTWPolicy is Thompson Sampling driven by an Active PTW mixture
// model instead of a single flat estimator: it first samples a
// segmentation level from the model's level posterior, then samples each
// arm's Beta posterior conditioned on that level.
type ActivePTWPolicy struct {
	rng   *rand.Rand
	model *ptw.ActivePTW
	arms  int
}

// NewActivePTWPolicy builds an Active-PTW-driven Thompson Sampling policy.
func NewActivePTWPolicy(seed int64, arms int) *ActivePTWPolicy {
	if arms <= 0 {
		panic("policy: arms must be positive")
	}
	return &ActivePTWPolicy{
		rng:   rand.New(rand.NewSource(seed)),
		model: ptw.NewActivePTW(activePTWDepth, arms),
		arms:  arms,
	}
}

func (a *ActivePTWPolicy) GetAction() int {
	level := a.LevelPosteriorSample()

	best := math.Inf(-1)
	bestIdx := 0
	for i := 0; i < a.arms; i++ {
		post := a.model.Posterior(level, i)
		r := ptw.SampleBeta(a.rng, post.Alpha, post.Beta)
		if r > best {
			best = r
			bestIdx = i
		}
	}
	return bestIdx
}

func (a *ActivePTWPolicy) Update(arm, reward int) {
	a.model.Update(reward, arm)
}

func (a *ActivePTWPolicy) Name() string { return "ActivePTW" }

// LevelPosterior returns the model's posterior probability over
// segmentation levels.
func (a *ActivePTWPolicy) LevelPosterior() []float64 {
	return a.model.LevelPosterior()
}

// LevelPosteriorSample draws a segmentation level from the posterior over
// levels.
func (a *ActivePTWPolicy) LevelPosteriorSample() int {
	lp := a.model.LevelPosterior()
	return sampleDiscrete(a.rng, lp)
}

// Model exposes the underlying Active PTW statistics.
func (a *ActivePTWPolicy) Model() *ptw.ActivePTW {
	return a.model
}

// sampleDiscrete draws an index i with probability proportional to
// weights[i], matching std::discrete_distribution's renormalising
// behaviour when the weights do not sum to exactly one.
func sampleDiscrete(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}

	draw := rng.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if draw < cum {
			return i
		}
	}
	return len(weights) - 1
}

// paranoidExploreConst is the exploration-rate scaling constant C from the
// original forced-exploration schedule.
const paranoidExploreConst = 1.0

// ParanoidExploreMode selects how ParanoidPTW picks an arm when it decides
// to force exploration rather than follow its Active PTW posterior.
type ParanoidExploreMode int

const (
	// ParanoidExploreUniform picks a uniformly random arm. This is the
	// default, matching the original implementation's hardcoded choice.
	ParanoidExploreUniform ParanoidExploreMode = iota
	// ParanoidExploreLeastVisited picks the arm with the fewest
	// observations at the sampled segmentation level.
	ParanoidExploreLeastVisited
)

// ParanoidPTWOption configures a ParanoidPTW policy at construction time.
type ParanoidPTWOption func(*ParanoidPTW)

// WithExploreMode overrides the default uniform forced-exploration mode.
func WithExploreMode(mode ParanoidExploreMode) ParanoidPTWOption {
	return func(p *ParanoidPTW) {
		p.exploreMode = mode
	}
}

// ParanoidPTW wraps ActivePTWPolicy with forced exploration: after sampling
// a segmentation level, it computes an exploration rate from the sampled
// segment's size and, with that probability, overrides the PTW-driven
// choice with either a uniformly random arm or the least-visited one.
type ParanoidPTW struct {
	rng         *rand.Rand
	arms        int
	aptw        *ActivePTWPolicy
	trials      int
	exploreMode ParanoidExploreMode
}

// NewParanoidPTW builds a ParanoidPTW policy over the given number of arms.
func NewParanoidPTW(seed int64, arms int, opts ...ParanoidPTWOption) *ParanoidPTW {
	if arms <= 0 {
		panic("policy: arms must be positive")
	}
	p := &ParanoidPTW{
		rng:         rand.New(rand.NewSource(seed)),
		arms:        arms,
		aptw:        NewActivePTWPolicy(seed, arms),
		exploreMode: ParanoidExploreUniform,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *ParanoidPTW) GetAction() int {
	level := p.aptw.LevelPosteriorSample()

	lp := p.aptw.LevelPosterior()
	k := (len(lp) - 1) - level // segment size is 2^k

	clip := math.Log(float64(p.trials+1)) + 1.0
	for float64(k) > clip {
		k--
	}

	if p.rng.Float64() < exploreProb(k) {
		if p.exploreMode == ParanoidExploreUniform {
			return p.rng.Intn(p.arms)
		}
		return p.leastExploredArm(level)
	}

	best := math.Inf(-1)
	bestIdx := 0
	for i := 0; i < p.arms; i++ {
		post := p.aptw.Model().Posterior(level, i)
		r := ptw.SampleBeta(p.rng, post.Alpha, post.Beta)
		if r > best {
			best = r
			bestIdx = i
		}
	}
	return bestIdx
}

func (p *ParanoidPTW) Update(arm, reward int) {
	p.aptw.Update(arm, reward)
	p.trials++
}

func (p *ParanoidPTW) Name() string { return "ParanoidPTW" }

// exploreProb is the forced-exploration rate for a segment of size 2^k,
// clamped to [0, 1].
func exploreProb(k int) float64 {
	kf := float64(k)
	prob := paranoidExploreConst * math.Pow(2.0, -kf) * (math.Pow(2.0, kf/2.0) - kf*math.Log(2.0))

	if prob < 0.0 {
		prob = 0.0
	}
	if prob > 1.0 {
		prob = 1.0
	}
	return prob
}

func (p *ParanoidPTW) leastExploredArm(level int) int {
	bestCount := math.Inf(1)
	bestIdx := 0

	for arm := 0; arm < p.arms; arm++ {
		post := p.aptw.Model().Posterior(level, arm)
		count := post.Alpha + post.Beta
		if count < bestCount {
			bestCount = count
			bestIdx = arm
		}
	}
	return bestIdx
}
