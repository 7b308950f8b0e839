// Package policy implements bandit strategies that choose which arm to
// pull and learn from the rewards they observe.
package policy

// BanditStrategy is the common interface implemented by every policy in
// this package.
type BanditStrategy interface {
	// GetAction selects the arm to pull next.
	GetAction() int
	// Update folds the reward observed for a pulled arm into the policy's
	// internal state.
	Update(arm, reward int)
	// Name identifies the policy, e.g. for reporting.
	Name() string
}
