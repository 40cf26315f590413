package arac

import "math"

// DefaultTimeLimitMs is substituted when the host's setup_data carries a
// zero time_limit.
const DefaultTimeLimitMs uint32 = 100000

// seedFromHostRandom converts the host's float64 random draw into seed
// material by value truncation, not by reinterpreting the float's bit
// pattern.
func seedFromHostRandom(x float64) uint64 {
	return uint64(math.Trunc(x))
}

// Clock abstracts the host's monotonic time_now import so the search
// loop never depends on a concrete timer. NowMillis should be
// monotonic; it need not be wall-clock time.
type Clock interface {
	NowMillis() float64
}

// Difficulty applies the level-to-parameter mapping: level 0 and 1 clamp
// both the time budget and how deep a single playout may select before
// falling back to a rollout; level 2 and above leave the configured time
// budget untouched and select unbounded (still capped by PathCapacity).
func Difficulty(level uint32, timeLimit uint32) (effectiveTimeLimit, maxPath uint32) {
	switch level {
	case 0:
		return minU32(500, timeLimit), 3
	case 1:
		return minU32(1000, timeLimit), 5
	default:
		return timeLimit, 0
	}
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// NewContext builds a fresh search context backed by arena and rng. The
// caller is responsible for resetting arena and seeding rng beforehand.
func NewContext(arena *Arena, rng *RNG) *Context {
	return &Context{Arena: arena, Stats: NewNodeTable(arena), RNG: rng}
}

// SelectMove runs the full per-decision search: it resets the arena,
// seeds the RNG from the host-supplied random draw, builds the root
// context, runs playouts until progress stalls, the time budget for
// this difficulty runs out, or the arena is spent, and returns
// the move with the best observed win rate (or Pass if root is already
// terminal or no child was ever visited) along with the context the
// search ran in, for callers that want playout/path counters.
func SelectMove(arena *Arena, rng *RNG, clock Clock, hostRandomDraw float64, root State, timeLimit, difficultyLevel uint32) (Move, *Context) {
	effTimeLimit, maxPath := Difficulty(difficultyLevel, timeLimit)

	ctx := NewContext(arena, rng)
	ctx.RootState = root
	ctx.TimeLimit = effTimeLimit
	ctx.MaxPath = maxPath

	if root.Ended {
		return Pass, ctx
	}

	arena.Reset()
	rng.Seed(seedFromHostRandom(hostRandomDraw))

	ctx.RootID = PackState(&root)
	ctx.Stats.Insert(ctx.RootID, monteNode{parent: 0, wins: 0, rounds: 1})

	start := clock.NowMillis()
	for dt := uint32(1); ; dt++ {
		if !ctx.Playout() {
			break
		}
		if arena.OutOfMemory() {
			break
		}
		if dt == DeadlinePollPeriod {
			dt = 0
			if clock.NowMillis()-start >= float64(effTimeLimit) {
				break
			}
		}
	}

	return BestMove(ctx), ctx
}
