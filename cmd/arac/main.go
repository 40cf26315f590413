// Command arac is a standalone CLI harness for the midnight-protocol
// search core: it drives package arac the way a host embedding runtime
// would, without requiring a WASM loader, so a single decision (or a
// sweep of them) can be exercised and benchmarked from a shell.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/paiv/midnight-protocol/internal/arac"
)

type wallClock struct{ start time.Time }

func (c wallClock) NowMillis() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

func main() {
	scenario := flag.String("scenario", "win1", "built-in scenario: win1, win2, start")
	timeLimit := flag.Uint("time", 2000, "time budget in ms")
	difficulty := flag.Uint("difficulty", 2, "difficulty level (0, 1, or 2+)")
	seed := flag.Int64("seed", 0, "RNG seed (0 for time-based)")
	configPath := flag.String("config", "", "optional TOML file describing a sweep of scenarios to run")
	cpuProfile := flag.String("cpuprofile", "", "write cpu profile to file")
	verbose := flag.Bool("verbose", false, "enable structured logging")
	flag.Parse()

	log := newLogger(*verbose)
	defer log.Sync()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalw("could not create cpu profile", "error", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalw("could not start cpu profile", "error", err)
		}
		defer pprof.StopCPUProfile()
	}

	if *configPath != "" {
		runs, err := loadSweep(*configPath)
		if err != nil {
			log.Fatalw("could not load sweep config", "path", *configPath, "error", err)
		}
		for _, run := range runs {
			runOne(log, run.Scenario, run.TimeLimitMs, run.Difficulty, run.Seed)
		}
		return
	}

	runOne(log, *scenario, uint32(*timeLimit), uint32(*difficulty), *seed)
}

func runOne(log *zap.SugaredLogger, scenarioName string, timeLimitMs, difficulty uint32, seed int64) {
	root, err := BuildScenario(scenarioName)
	if err != nil {
		log.Fatalw("unknown scenario", "scenario", scenarioName, "error", err)
	}

	s := int64(seed)
	if s == 0 {
		s = time.Now().UnixNano()
	}

	arena := arac.NewArena(64 << 20)
	rng := &arac.RNG{}
	clock := wallClock{start: time.Now()}

	mv, ctx := arac.SelectMove(arena, rng, clock, float64(s), root, timeLimitMs, difficulty)

	log.Infow("decision",
		"scenario", scenarioName,
		"time_limit_ms", timeLimitMs,
		"difficulty", difficulty,
		"seed", s,
		"move", formatMove(mv),
		"playouts", ctx.TotalPlayouts(),
		"max_path", ctx.MaxPathSeen(),
		"arena_used_bytes", arena.Used(),
	)
	fmt.Printf("scenario=%s move=%s playouts=%d max_path=%d\n",
		scenarioName, formatMove(mv), ctx.TotalPlayouts(), ctx.MaxPathSeen())
}

func formatMove(mv arac.Move) string {
	if mv.IsPass() {
		return "pass"
	}
	return fmt.Sprintf("%d->%d(pid=%d)", mv.From, mv.To, mv.Pid)
}

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	z, err := cfg.Build()
	if err != nil {
		panic(errors.Wrap(err, "building zap logger"))
	}
	return z.Sugar()
}
