package ptw

import "math"

// ActivePTW is a Bayesian mixture over every dyadic partition of a
// [0, 2^depth) time horizon, with an independent KTEstimator per arm on
// each segment. Lazily resetting only the subtree under the most recent
// change point keeps each Update call O(depth) instead of O(2^depth).
type ActivePTW struct {
	index uint64
	nodes []ptwNode
	depth int
	arms  int

	logStop, logSplit float64
}

type ptwNode struct {
	model       []KTEstimator
	logWeighted float64
	logBuf      float64
}

func newPTWNode(arms int) ptwNode {
	return ptwNode{model: make([]KTEstimator, arms)}
}

func (n *ptwNode) logMarginal() float64 {
	total := 0.0
	for i := range n.model {
		total += n.model[i].LogMarginal()
	}
	return total
}

func (n *ptwNode) prob(r, k int) float64 {
	return n.model[k].Prob(r)
}

// NewActivePTW builds a model over a [0, 2^depth) horizon for the given
// number of arms. The prior favours stopping a partition over splitting it
// by a factor that grows with the number of arms: LogStopWeight =
// log((arms-1)/arms), LogSplitWeight = log(1/arms).
func NewActivePTW(depth, arms int) *ActivePTW {
	nodes := make([]ptwNode, depth+1)
	for i := range nodes {
		nodes[i] = newPTWNode(arms)
	}

	a := float64(arms)
	x := (a - 1.0) / a

	return &ActivePTW{
		nodes:    nodes,
		depth:    depth,
		arms:     arms,
		logStop:  math.Log(x),
		logSplit: math.Log(1.0 - x),
	}
}

// Prob returns the probability of observing reward r next from arm k,
// marginalising over the posterior distribution of segmentation levels.
func (m *ActivePTW) Prob(r, k int) float64 {
	post := m.LevelPosterior()

	total := 0.0
	for i, p := range post {
		total += p * m.nodes[i].prob(r, k)
	}
	return total
}

// LogMarginal is the log probability assigned to every piece of experience
// processed so far.
func (m *ActivePTW) LogMarginal() float64 {
	return m.nodes[0].logWeighted
}

// Update folds a newly observed (reward, arm) pair into the model.
func (m *ActivePTW) Update(r, k int) {
	if m.index >= uint64(1)<<uint(m.depth) {
		panic("ptw: ActivePTW horizon exhausted")
	}

	i := m.mscb(m.index + 1)

	m.nodes[i].logBuf = m.nodes[i+1].logWeighted

	for j := i + 1; j <= m.depth; j++ {
		m.nodes[j] = newPTWNode(m.arms)
	}

	n := &m.nodes[m.depth]
	n.model[k].Update(r)
	n.logWeighted = n.logMarginal()

	for step := 1; step <= m.depth; step++ {
		idx := m.depth - step
		m.nodes[idx].model[k].Update(r)

		lhs := m.logStop + m.nodes[idx].logMarginal()
		rhs := m.logSplit + m.nodes[idx+1].logWeighted + m.nodes[idx].logBuf
		m.nodes[idx].logWeighted = logAdd(lhs, rhs)
	}

	m.index++
}

// mscb returns the number of bits to the left of the most significant
// location at which the 1-based times t-1 and t-2 differ.
func (m *ActivePTW) mscb(t uint64) int {
	if t == 1 {
		return 0
	}

	c := m.depth - 1
	cnt := 0

	for i := 0; i < m.depth; i++ {
		tm1, tm2 := t-1, t-2
		mask := uint64(1) << uint(c)

		if (tm1 & mask) != (tm2 & mask) {
			return cnt
		}
		c--
		cnt++
	}

	return cnt
}

// LevelPosterior returns the posterior probability of each segmentation
// level, from the coarsest (index 0, the whole horizon) to the finest
// (index depth, a single step). The finest level cannot split further, so
// it receives all of the remaining mass.
func (m *ActivePTW) LevelPosterior() []float64 {
	massLeft := 1.0

	dest := make([]float64, m.depth+1)

	for i := 0; i <= m.depth; i++ {
		stopPost := 1.0
		if i < m.depth {
			x := m.logStop + m.nodes[i].logMarginal() - m.nodes[i].logWeighted
			stopPost = math.Exp(x)
		}

		dest[i] = massLeft * stopPost
		massLeft *= 1.0 - stopPost

		if massLeft < 0.0 {
			massLeft = 0.0
		}
	}

	return dest
}

// Posterior gives the Beta sufficient statistics for arm at the given
// segmentation level.
func (m *ActivePTW) Posterior(level, arm int) BetaParams {
	return m.nodes[level].model[arm].Posterior()
}
