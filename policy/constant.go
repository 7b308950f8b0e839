package policy

// Constant always plays the same fixed arm and never learns. It is useful
// as a degenerate baseline when comparing regret against other policies.
type Constant struct {
	action int
}

// NewConstant builds a policy that always pulls the given arm.
func NewConstant(action int) *Constant {
	return &Constant{action: action}
}

func (c *Constant) GetAction() int { return c.action }

func (c *Constant) Update(arm, reward int) {}

func (c *Constant) Name() string { return "Constant" }
