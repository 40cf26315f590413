package wire

import (
	"github.com/paiv/midnight-protocol/internal/arac"
	"github.com/paiv/midnight-protocol/internal/tracelog"
)

// Engine owns the per-instance state that survives across calls: the
// arena, the RNG, and the setup_data configuration. It marshals the wire
// records at the boundary and otherwise delegates entirely to package
// arac. One Engine corresponds to one WASM module instance; callers that
// need more than one independent game running concurrently construct more
// than one Engine rather than sharing one across goroutines.
type Engine struct {
	arena  *arac.Arena
	rng    *arac.RNG
	config SetupData
	log    tracelog.Logger
}

// NewEngine constructs an Engine. A nil log is replaced with the
// package-default (no-op unless built with -tags trace).
func NewEngine(log tracelog.Logger) *Engine {
	if log == nil {
		log = tracelog.Default()
	}
	return &Engine{rng: &arac.RNG{}, log: log}
}

// Setup reads a SetupData record from the front of mem and sizes the
// arena to the configured memory budget, minus the stack carve-out. A
// zero time_limit is coerced to DefaultTimeLimitMs.
func (e *Engine) Setup(mem []byte) {
	e.config = DecodeSetupData(mem[:SetupDataSize])
	if e.config.TimeLimit == 0 {
		e.config.TimeLimit = arac.DefaultTimeLimitMs
	}
	budget := int(e.config.MemorySize)*WasmPageSize - StackSize
	if budget < 0 {
		budget = 0
	}
	e.arena = arac.NewArena(budget)
	e.log.Infow("setup",
		"memory_pages", e.config.MemorySize,
		"time_limit_ms", e.config.TimeLimit,
		"difficulty", e.config.DifficultyLevel,
		"arena_bytes", budget,
	)
}

// SelectMove reads a GameStateData record from the front of mem, runs the
// search, writes the chosen PlayerMoveData record back to the front of
// mem, and returns 1. The boundary never fails in-band; a position with
// no legal moves simply yields the pass sentinel.
func (e *Engine) SelectMove(mem []byte, clock arac.Clock, hostRandomDraw float64) uint8 {
	gs := DecodeGameStateData(mem[:GameStateDataSize])
	root := arac.State{
		CurrentPlayer: gs.CurrentPlayer,
		Board:         gs.Board,
		Progs:         gs.Progs,
	}
	root.Ended = arac.IsTerminal(&root)

	mv, ctx := arac.SelectMove(e.arena, e.rng, clock, hostRandomDraw, root, e.config.TimeLimit, e.config.DifficultyLevel)

	out := PassMoveData
	if !mv.IsPass() {
		out = PlayerMoveData{Ver: 1, From: mv.From, To: mv.To, Pid: mv.Pid}
	}
	copy(mem[:PlayerMoveDataSize], out.Encode())

	e.log.TraceValue("playouts", ctx.TotalPlayouts())
	e.log.TraceValue("max_path", ctx.MaxPathSeen())
	return 1
}
