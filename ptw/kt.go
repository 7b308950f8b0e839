package ptw

import "math"

const ktAlpha = 0.5

// BetaParams are the sufficient statistics of a Beta posterior.
type BetaParams struct {
	Alpha, Beta float64
}

// KTEstimator is a Krichevsky-Trofimov estimator for a memoryless binary
// source, equivalent to Bayesian updating under a Beta(1/2, 1/2) prior.
type KTEstimator struct {
	logKT  float64
	counts [2]uint64
}

// Prob returns the probability the estimator assigns to seeing symbol b next.
func (e *KTEstimator) Prob(b int) float64 {
	num := float64(e.counts[b]) + ktAlpha
	den := float64(e.counts[0]+e.counts[1]) + 2*ktAlpha
	return num / den
}

// Update folds a newly observed symbol into the estimator.
func (e *KTEstimator) Update(b int) {
	e.logKT += math.Log(e.Prob(b))
	e.counts[b]++
}

// LogMarginal is the log probability the estimator assigns to every symbol
// it has processed so far.
func (e *KTEstimator) LogMarginal() float64 {
	return e.logKT
}

// Posterior gives the Beta distribution's sufficient statistics implied by
// the symbols observed so far.
func (e *KTEstimator) Posterior() BetaParams {
	return BetaParams{
		Alpha: ktAlpha + float64(e.counts[1]),
		Beta:  ktAlpha + float64(e.counts[0]),
	}
}
