package policy

import "math/rand"

// Uniform picks an arm uniformly at random on every step and never learns.
type Uniform struct {
	rng  *rand.Rand
	arms int
}

// NewUniform builds a Uniform policy over the given number of arms.
func NewUniform(seed int64, arms int) *Uniform {
	if arms <= 0 {
		panic("policy: arms must be positive")
	}
	return &Uniform{rng: rand.New(rand.NewSource(seed)), arms: arms}
}

func (u *Uniform) GetAction() int {
	return u.rng.Intn(u.arms)
}

func (u *Uniform) Update(arm, reward int) {}

func (u *Uniform) Name() string { return "Uniform" }
