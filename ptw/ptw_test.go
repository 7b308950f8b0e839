package ptw

import (
	"math"
	"testing"
)

func TestActivePTWLevelPosteriorSumsToOne(t *testing.T) {
	m := NewActivePTW(4, 2)

	for i := 0; i < 10; i++ {
		m.Update(i%2, 0)
		lp := m.LevelPosterior()

		total := 0.0
		for _, p := range lp {
			if p < 0.0 || p > 1.0 {
				t.Fatalf("level posterior out of range: %v", p)
			}
			total += p
		}
		if math.Abs(total-1.0) > 1e-9 {
			t.Errorf("after %d updates, level posterior sums to %v, want 1", i+1, total)
		}
	}
}

func TestActivePTWStationaryCollapsesToCoarsestLevel(t *testing.T) {
	depth, arms := 6, 2
	m := NewActivePTW(depth, arms)

	// A constant, never-changing reward sequence should make the model
	// increasingly confident that the whole horizon is one segment.
	for i := 0; i < 1<<depth; i++ {
		m.Update(1, 0)
	}

	lp := m.LevelPosterior()
	if lp[0] < lp[depth] {
		t.Errorf("stationary sequence favours finest level (%v) over coarsest (%v)", lp[depth], lp[0])
	}
}

func TestActivePTWAbruptChangeFavoursSplitting(t *testing.T) {
	depth, arms := 6, 2
	m := NewActivePTW(depth, arms)

	half := 1 << (depth - 1)
	for i := 0; i < half; i++ {
		m.Update(1, 0)
	}
	for i := 0; i < half; i++ {
		m.Update(0, 0)
	}

	lp := m.LevelPosterior()
	total := 0.0
	for _, p := range lp {
		total += p
	}
	if math.Abs(total-1.0) > 1e-9 {
		t.Fatalf("level posterior sums to %v, want 1", total)
	}

	// the coarsest (whole-horizon) level should no longer dominate once
	// the reward sequence flips halfway through
	if lp[0] > 0.5 {
		t.Errorf("coarsest level posterior %v too large after an abrupt change", lp[0])
	}
}

func TestActivePTWPosteriorMatchesPerArmKT(t *testing.T) {
	depth, arms := 3, 2
	m := NewActivePTW(depth, arms)

	m.Update(1, 0)
	m.Update(0, 1)

	// at the finest level, each segment has seen at most one update, so
	// the posterior for an untouched arm should remain the KT prior
	post := m.Posterior(depth, 0)
	if post.Alpha != 0.5 || post.Beta != 0.5 {
		t.Errorf("Posterior(depth, 0) = %+v, want the KT prior Alpha=0.5 Beta=0.5", post)
	}
}

func TestActivePTWPanicsPastHorizon(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when updating past the horizon")
		}
	}()

	m := NewActivePTW(1, 2)
	m.Update(0, 0)
	m.Update(0, 0)
	m.Update(0, 0) // horizon is 2^1 = 2 steps
}
