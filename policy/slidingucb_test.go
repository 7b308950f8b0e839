package policy

import "testing"

func TestSlidingUCBEvictsOldestPlay(t *testing.T) {
	s := NewSlidingUCB(1, 2, 2)

	s.Update(0, 1) // window: [(0,1)]
	s.Update(0, 1) // window: [(0,1),(0,1)], visits[0]=2

	if s.visits[0] != 2 {
		t.Fatalf("visits[0] = %v, want 2", s.visits[0])
	}

	s.Update(1, 0) // evicts the oldest (0,1): visits[0]=1, visits[1]=1
	if s.visits[0] != 1 {
		t.Errorf("visits[0] after eviction = %v, want 1", s.visits[0])
	}
	if s.visits[1] != 1 {
		t.Errorf("visits[1] after eviction = %v, want 1", s.visits[1])
	}
	if s.cummReward[0] != 1 {
		t.Errorf("cummReward[0] after eviction = %v, want 1", s.cummReward[0])
	}
}

func TestSlidingUCBWideWindowMatchesUnboundedHistory(t *testing.T) {
	s := NewSlidingUCB(1, 2, 1000)

	for i := 0; i < 10; i++ {
		s.Update(0, 1)
		s.Update(1, 0)
	}

	if s.visits[0] != 10 || s.visits[1] != 10 {
		t.Errorf("visits = %v,%v, want 10,10 (no eviction within the window)", s.visits[0], s.visits[1])
	}
}

func TestSlidingUCBEvictionScenario(t *testing.T) {
	s := NewSlidingUCB(1, 2, 4)

	plays := []struct{ arm, reward int }{
		{0, 1}, {0, 1}, {1, 0}, {1, 0}, {0, 0},
	}
	for _, p := range plays {
		s.Update(p.arm, p.reward)
	}

	if s.visits[0] != 2 || s.cummReward[0] != 1 {
		t.Errorf("arm 0: visits=%v cummReward=%v, want visits=2 cummReward=1", s.visits[0], s.cummReward[0])
	}
	if s.visits[1] != 2 || s.cummReward[1] != 0 {
		t.Errorf("arm 1: visits=%v cummReward=%v, want visits=2 cummReward=0", s.visits[1], s.cummReward[1])
	}
}

func TestSlidingUCBPlaysEachArmOnceBeforeExploiting(t *testing.T) {
	const arms = 3
	s := NewSlidingUCB(1, arms, 100)

	seen := make(map[int]bool)
	for i := 0; i < arms; i++ {
		arm := s.GetAction()
		seen[arm] = true
		s.Update(arm, 0)
	}
	if len(seen) != arms {
		t.Fatalf("expected all %d arms visited, got %d", arms, len(seen))
	}
}
