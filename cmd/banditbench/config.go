package main

import (
	"fmt"
	"strconv"
	"strings"
)

// config holds every banditbench run's options, with the same defaults as
// the original driver this lab is modelled on.
type config struct {
	EnvSeed     int64
	AgentSeed   int64
	Trials      int
	Arms        int
	Agent       string
	Mode        string
	PlotRepeats int
	CptRate     float64
	SWUCBWindow int
	CptSchedule string
}

// defaultConfig returns a config pre-populated with banditbench's defaults.
func defaultConfig() config {
	cptRate := 0.002
	return config{
		EnvSeed:     666,
		AgentSeed:   33,
		Trials:      2500,
		Arms:        10,
		Agent:       "ActivePTW",
		Mode:        "text",
		PlotRepeats: 400,
		CptRate:     cptRate,
		SWUCBWindow: int(1.0/cptRate + 0.5),
		CptSchedule: "Geometric",
	}
}

// parseArgs parses a sequence of key=value tokens into cfg, starting from
// defaultConfig's values. Unrecognised keys or malformed tokens are a hard
// error.
func parseArgs(args []string) (config, error) {
	cfg := defaultConfig()

	for _, arg := range args {
		eq := strings.IndexByte(arg, '=')
		if eq < 0 {
			return config{}, fmt.Errorf("args need to be in key=value format: %q", arg)
		}
		key, val := arg[:eq], arg[eq+1:]

		var err error
		switch key {
		case "EnvSeed":
			cfg.EnvSeed, err = parseInt64(val)
		case "AgentSeed":
			cfg.AgentSeed, err = parseInt64(val)
		case "Trials":
			var n int
			n, err = parseInt(val)
			if err == nil && n < 1 {
				err = fmt.Errorf("Trials needs to be non-zero")
			}
			cfg.Trials = n
		case "PlotRepeats":
			var n int
			n, err = parseInt(val)
			if err == nil && n < 1 {
				err = fmt.Errorf("PlotRepeats needs to be positive")
			}
			cfg.PlotRepeats = n
		case "SWUCBWindow":
			var n int
			n, err = parseInt(val)
			if err == nil && n < 1 {
				err = fmt.Errorf("SWUCBWindow needs to be positive")
			}
			cfg.SWUCBWindow = n
		case "Arms":
			var n int
			n, err = parseInt(val)
			if err == nil && n < 2 {
				err = fmt.Errorf("Arms needs to be at least 2")
			}
			cfg.Arms = n
		case "Agent":
			cfg.Agent = val
		case "CptSchedule":
			cfg.CptSchedule = val
		case "Mode":
			if val != "text" && val != "plot" {
				err = fmt.Errorf("Mode needs to be one of text/plot")
			}
			cfg.Mode = val
		case "CptRate":
			var f float64
			f, err = strconv.ParseFloat(val, 64)
			if err == nil && f >= 1.0 {
				err = fmt.Errorf("CptRate needs to be less than 1.0")
			}
			cfg.CptRate = f
		default:
			err = fmt.Errorf("unrecognised arg %q", key)
		}

		if err != nil {
			return config{}, err
		}
	}

	return cfg, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q: %w", s, err)
	}
	return n, nil
}

func parseInt64(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q: %w", s, err)
	}
	return n, nil
}
