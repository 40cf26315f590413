package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// sweepRun is one entry of a batch-benchmark config file: a scenario
// name paired with the {time_limit, difficulty, seed} tuple to run it
// under.
type sweepRun struct {
	Scenario    string `toml:"scenario"`
	TimeLimitMs uint32 `toml:"time_limit_ms"`
	Difficulty  uint32 `toml:"difficulty"`
	Seed        int64  `toml:"seed"`
}

// sweepConfig is the root of a TOML sweep file: a list of [[run]]
// tables, each describing one decision to make and log.
//
//	[[run]]
//	scenario = "win1"
//	time_limit_ms = 2000
//	difficulty = 2
//	seed = 1
type sweepConfig struct {
	Runs []sweepRun `toml:"run"`
}

// loadSweep reads and parses a TOML sweep file describing a batch of
// decisions for cmd/arac to run and log in one invocation, letting a
// caller benchmark several {scenario, time_limit, difficulty, seed}
// tuples without re-invoking the binary per case.
func loadSweep(path string) ([]sweepRun, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading sweep config %q", path)
	}
	var cfg sweepConfig
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing sweep config %q", path)
	}
	if len(cfg.Runs) == 0 {
		return nil, errors.Errorf("sweep config %q has no [[run]] entries", path)
	}
	for i := range cfg.Runs {
		if cfg.Runs[i].TimeLimitMs == 0 {
			cfg.Runs[i].TimeLimitMs = 2000
		}
	}
	return cfg.Runs, nil
}
