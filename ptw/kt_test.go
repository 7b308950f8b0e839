package ptw

import (
	"math"
	"testing"
)

func TestKTEstimatorSequence(t *testing.T) {
	var e KTEstimator
	bits := []int{1, 0, 1, 1}

	for _, b := range bits {
		e.Update(b)
	}

	want := math.Log(5.0 / 128.0) // product of (1/2)(1/4)(1/2)(5/8)
	if got := e.LogMarginal(); math.Abs(got-want) > 1e-9 {
		t.Errorf("LogMarginal() = %v, want %v", got, want)
	}

	post := e.Posterior()
	if math.Abs(post.Alpha-3.5) > 1e-9 || math.Abs(post.Beta-1.5) > 1e-9 {
		t.Errorf("Posterior() = %+v, want Alpha=3.5 Beta=1.5", post)
	}
}

func TestKTEstimatorProbSumsToOne(t *testing.T) {
	var e KTEstimator
	e.Update(1)
	e.Update(1)
	e.Update(0)

	if got := e.Prob(0) + e.Prob(1); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Prob(0)+Prob(1) = %v, want 1", got)
	}
}

func TestKTEstimatorUniformPrior(t *testing.T) {
	var e KTEstimator
	if got := e.Prob(0); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Prob(0) before any updates = %v, want 0.5", got)
	}
	if got := e.Prob(1); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("Prob(1) before any updates = %v, want 0.5", got)
	}
}
