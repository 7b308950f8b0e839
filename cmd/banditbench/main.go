// Command banditbench runs a bandit policy against a non-stationary
// Bernoulli environment, either reporting a single run's regret summary
// (Mode=text) or a CSV regret curve averaged over repeats (Mode=plot).
package main

import (
	"fmt"
	"log"
	"os"
)

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(cfg config, w *os.File) error {
	switch cfg.Mode {
	case "text":
		return runText(cfg, w)
	case "plot":
		return runPlot(cfg, w)
	}
	return fmt.Errorf("unhandled mode %q", cfg.Mode)
}
