// Package ptw implements Active Partition Tree Weighting, a Bayesian
// mixture over dyadic partitions of a time horizon used to track
// non-stationary Bernoulli sources.
package ptw

import "math"

// logAdd computes log(exp(logX) + exp(logY)) without leaving log space,
// using the identity log(x+y) = log(x) + log1p(exp(log(y)-log(x))) for
// log(x) <= log(y). When the two terms are more than 100 nats apart the
// smaller one cannot affect the result at float64 precision, so the
// log1p term is skipped.
func logAdd(logX, logY float64) float64 {
	if logX > logY {
		logX, logY = logY, logX
	}

	diff := logY - logX
	if diff < 100.0 {
		diff = math.Log1p(math.Exp(diff))
	}

	return logX + diff
}

// BernoulliKL is the Kullback-Leibler divergence between Bernoulli(p) and
// Bernoulli(q), with the boundary cases at p,q in {0,1} handled explicitly.
func BernoulliKL(p, q float64) float64 {
	if p < 0.0 || q < 0.0 || p > 1.0 || q > 1.0 {
		return math.NaN()
	}

	if (p == 0.0 && q == 0.0) || (p == 1.0 && q == 1.0) {
		return 0.0
	}

	if p == 0.0 {
		return -math.Log(1.0 - q)
	}
	if p == 1.0 {
		return -math.Log(q)
	}

	if q == 0.0 || q == 1.0 {
		return math.Inf(1)
	}

	return p*math.Log(p/q) + (1.0-p)*math.Log((1.0-p)/(1.0-q))
}
