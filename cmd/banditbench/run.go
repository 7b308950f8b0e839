package main

import (
	"fmt"
	"io"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"
)

// plotAgents is the fixed set of agents compared against one another in
// plot mode, matching the original driver's comparison set.
var plotAgents = []string{
	"UCB",
	"ActivePTW",
	"MALG",
	"TS",
	"KLUCB",
	"SWUCB",
	"ParanoidPTW",
}

// runText runs a single trial of cfg.Agent against cfg's environment and
// writes a plain-text summary to w.
func runText(cfg config, w io.Writer) error {
	env, err := createEnvironment(cfg)
	if err != nil {
		return err
	}

	agent, err := createAgent(cfg, cfg.AgentSeed)
	if err != nil {
		return err
	}

	for t := 0; t < cfg.Trials; t++ {
		arm := agent.GetAction()
		r := env.Pull(arm)
		agent.Update(arm, int(r))
	}

	return showSummary(env, w)
}

func showSummary(env interface {
	Trials() int
	CumulativeReward() float64
	BestHindsightExpectedReturn() float64
}, w io.Writer) error {
	trials := float64(env.Trials())
	regret := env.BestHindsightExpectedReturn() - env.CumulativeReward()
	avgRegret := regret / trials

	_, err := fmt.Fprintf(w,
		"%d trials completed.\nTotal Reward: %g\nRegret: %g\nAvg Regret: %g\n",
		env.Trials(), env.CumulativeReward(), regret, avgRegret)
	return err
}

// runPlot runs cfg.PlotRepeats independent trials for every agent in
// plotAgents and writes a CSV of trial,agent,mean_regret,ci95 to w. This
// stands in for the original driver's matplotlib script generation,
// which this lab's scope excludes; the statistics reported are the same.
func runPlot(cfg config, w io.Writer) error {
	regrets := make([][][]float64, len(plotAgents))

	var wg sync.WaitGroup
	sem := make(chan struct{}, 8)
	errs := make([]error, len(plotAgents))

	for i, agentName := range plotAgents {
		regrets[i] = make([][]float64, cfg.PlotRepeats)

		for j := 0; j < cfg.PlotRepeats; j++ {
			wg.Add(1)
			sem <- struct{}{}

			go func(i, j int, agentName string) {
				defer wg.Done()
				defer func() { <-sem }()

				repeatCfg := cfg
				repeatCfg.Agent = agentName

				curve, err := runSingleRepeat(repeatCfg, cfg.AgentSeed+int64(j))
				if err != nil {
					errs[i] = err
					return
				}
				regrets[i][j] = curve
			}(i, j, agentName)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "trial,agent,mean_regret,ci95"); err != nil {
		return err
	}

	for i, agentName := range plotAgents {
		for t := 0; t < cfg.Trials; t++ {
			mean, ci := meanAndCI95(regrets[i], t, cfg.PlotRepeats)
			if _, err := fmt.Fprintf(w, "%d,%s,%g,%g\n", t+1, agentName, mean, ci); err != nil {
				return err
			}
		}
	}

	return nil
}

// runSingleRepeat runs one agent-vs-environment trial and returns its
// regret curve, one value per trial step.
func runSingleRepeat(cfg config, agentSeed int64) ([]float64, error) {
	env, err := createEnvironment(cfg)
	if err != nil {
		return nil, err
	}
	agent, err := createAgent(cfg, agentSeed)
	if err != nil {
		return nil, err
	}

	curve := make([]float64, cfg.Trials)
	for t := 0; t < cfg.Trials; t++ {
		arm := agent.GetAction()
		r := env.Pull(arm)
		agent.Update(arm, int(r))

		curve[t] = env.BestHindsightExpectedReturn() - env.CumulativeReward()
	}
	return curve, nil
}

// meanAndCI95 computes the mean and 1.96*standard-error half-width of
// regrets[*][t] across repeats.
func meanAndCI95(regrets [][]float64, t, repeats int) (mean, ci95 float64) {
	sample := make([]float64, repeats)
	for j := 0; j < repeats; j++ {
		sample[j] = regrets[j][t]
	}

	mean, variance := stat.MeanVariance(sample, nil)
	if repeats < 2 {
		return mean, 0.0
	}

	stderr := math.Sqrt(variance) / math.Sqrt(float64(repeats))
	return mean, 1.96 * stderr
}
