package policy

import "testing"

func TestUniformStaysWithinArmRange(t *testing.T) {
	const arms = 4
	u := NewUniform(1, arms)

	for i := 0; i < 100; i++ {
		arm := u.GetAction()
		if arm < 0 || arm >= arms {
			t.Fatalf("GetAction() = %d, out of range [0,%d)", arm, arms)
		}
		u.Update(arm, 0)
	}
}

func TestUniformName(t *testing.T) {
	u := NewUniform(1, 2)
	if u.Name() != "Uniform" {
		t.Errorf("Name() = %q, want Uniform", u.Name())
	}
}
