package main

import (
	"fmt"

	"github.com/avli/activeptw-bandits/environment"
	"github.com/avli/activeptw-bandits/policy"
)

// malgDepth matches the original driver's hardcoded MALG sub-instance
// depth.
const malgDepth = 20

// createAgent builds the policy named by cfg.Agent, seeded with
// agentSeed (which defaults to cfg.AgentSeed, but is overridden per-repeat
// in plot mode so that repeats are not perfectly correlated).
func createAgent(cfg config, agentSeed int64) (policy.BanditStrategy, error) {
	switch cfg.Agent {
	case "UCB":
		return policy.NewUCB1(agentSeed, cfg.Arms), nil
	case "KLUCB":
		return policy.NewKLUCB(agentSeed, cfg.Arms), nil
	case "SWUCB":
		return policy.NewSlidingUCB(agentSeed, cfg.Arms, cfg.SWUCBWindow), nil
	case "ActivePTW":
		return policy.NewActivePTWPolicy(agentSeed, cfg.Arms), nil
	case "ParanoidPTW":
		return policy.NewParanoidPTW(agentSeed, cfg.Arms), nil
	case "MALG":
		return policy.NewMALG(agentSeed, cfg.Arms, malgDepth), nil
	case "TS":
		return policy.NewThompsonSampling(agentSeed, cfg.Arms), nil
	case "Constant":
		return policy.NewConstant(0), nil
	case "Uniform":
		return policy.NewUniform(agentSeed, cfg.Arms), nil
	}
	return nil, fmt.Errorf("invalid agent %q", cfg.Agent)
}

// createEnvironment builds the bandit problem named by cfg.CptSchedule.
func createEnvironment(cfg config) (*environment.BernoulliEnvironment, error) {
	switch cfg.CptSchedule {
	case "Nasty":
		theta1 := make([]float64, cfg.Arms)
		for i := range theta1 {
			theta1[i] = 0.1
		}
		theta1[0] = 0.2

		theta2 := make([]float64, cfg.Arms)
		for i := range theta2 {
			theta2[i] = 0.2
		}
		theta2[0] = 0.2
		theta2[1] = 0.8

		sched := environment.NewTwoPhase(cfg.Trials, theta1, theta2)
		return environment.NewBernoulliEnvironment(cfg.Arms, cfg.EnvSeed, sched), nil

	case "Geometric":
		sched := environment.NewGeometric(cfg.CptRate, cfg.Trials, cfg.EnvSeed+10007)
		return environment.NewBernoulliEnvironment(cfg.Arms, cfg.EnvSeed, sched), nil
	}
	return nil, fmt.Errorf("invalid changepoint schedule %q", cfg.CptSchedule)
}
