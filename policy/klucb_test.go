package policy

import (
	"math"
	"testing"

	"github.com/avli/activeptw-bandits/ptw"
)

func TestMaxRelEntropyMonotone(t *testing.T) {
	p := 0.3

	smallUB := maxRelEntropy(p, 0.01)
	largeUB := maxRelEntropy(p, 1.0)

	if smallUB > largeUB {
		t.Errorf("maxRelEntropy should grow with ub: got %v (ub=0.01) > %v (ub=1.0)", smallUB, largeUB)
	}
	if smallUB < p || largeUB > 1.0 {
		t.Errorf("maxRelEntropy out of [p, 1] range: got %v and %v", smallUB, largeUB)
	}
}

func TestMaxRelEntropyConvergesWithinEps(t *testing.T) {
	p, ub := 0.2, 0.05
	q := maxRelEntropy(p, ub)

	// q should very nearly saturate the constraint bernoulliKL(p,q) == ub
	got := ptw.BernoulliKL(p, q)
	if math.Abs(got-ub) > 1e-4 {
		t.Errorf("bernoulliKL(p, maxRelEntropy(p,ub)) = %v, want close to ub=%v", got, ub)
	}
}

func TestKLUCBPlaysEachArmOnceBeforeExploiting(t *testing.T) {
	const arms = 3
	k := NewKLUCB(1, arms)

	seen := make(map[int]bool)
	for i := 0; i < arms; i++ {
		arm := k.GetAction()
		seen[arm] = true
		k.Update(arm, 0)
	}
	if len(seen) != arms {
		t.Fatalf("expected all %d arms visited, got %d", arms, len(seen))
	}
}
