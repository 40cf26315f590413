package arac

// PathCapacity bounds a single playout's selection depth.
const PathCapacity = 100

// DeadlinePollPeriod is how many playouts run between deadline checks:
// the clock is read only on the 10001st, 20002nd, ... playout of a
// decision. Reading it per playout would cost more than a cheap playout
// does; shrinking the period changes how much search time a decision
// actually gets.
const DeadlinePollPeriod = 10001

// Context holds everything a single select_move decision needs: the root
// position and its fingerprint, the resolved time/path budget for this
// difficulty level, and the arena-backed statistics table playouts
// accumulate into.
type Context struct {
	RootState State
	RootID    uint64
	TimeLimit uint32 // ms
	MaxPath   uint32
	Arena     *Arena
	Stats     *NodeTable
	RNG       *RNG

	totalPlayouts uint32
	maxPathSeen   uint32
}

// TotalPlayouts reports how many playouts this context has run so far.
func (c *Context) TotalPlayouts() uint32 { return c.totalPlayouts }

// MaxPathSeen reports the deepest selection path any playout reached so
// far.
func (c *Context) MaxPathSeen() uint32 { return c.maxPathSeen }

// uct1 is the visit-linear selection score. The exploration bonus is
// linear in the parent visit count, not the textbook sqrt(ln(parent)/n)
// term, so it needs neither sqrt nor log at runtime; playing strength
// depends on keeping exactly this formula.
func uct1(wins, rounds, parentRounds float64) float64 {
	return (wins + parentRounds/100) / rounds
}

// Playout runs one MCTS iteration: select down to either a brand-new leaf
// or a terminal child, roll out the rest with Dive when selection didn't
// land on a terminal, and backpropagate the result up the selection path.
// It returns false when some frontier along the path has no legal move at
// all, which the caller treats as "this decision cannot make further
// progress" and stops the outer loop.
func (c *Context) Playout() bool {
	parentState := c.RootState
	parentID := c.RootID
	selectedMove := Pass

	seen := &SeenSet{}
	path := make([]uint64, 0, PathCapacity)
	seen.Insert(parentID)
	path = append(path, parentID)

	moves := make([]Move, 0, MoveCapacity)
	var bestState State

	for !parentState.Ended && len(path) < PathCapacity {
		if (c.MaxPath != 0 && uint32(len(path)) >= c.MaxPath) || c.Arena.OutOfMemory() {
			break
		}
		moves = ValidMoves(moves, &parentState, parentState.CurrentPlayer)
		if len(moves) == 0 {
			return false
		}

		bestMove := Pass
		var bestID uint64
		bestW := -1e20
		parentRounds := float64(c.Stats.Get(parentID).rounds)

		for _, mv := range moves {
			ns := NextState(&parentState, mv)
			nsID := PackState(&ns)
			if seen.Has(nsID) {
				continue
			}
			seen.Insert(nsID)

			node := c.Stats.Get(nsID)
			var w float64
			if node.parent == 0 {
				*node = monteNode{parent: parentID, wins: 0, rounds: 1}
				w = uct1(0, 1, parentRounds)
			} else {
				w = uct1(float64(node.wins), float64(node.rounds), parentRounds)
			}
			if ns.Ended {
				w = 100
			}
			if w > bestW {
				bestW = w
				bestID = nsID
				bestMove = mv
				bestState = ns
			}
		}

		if bestMove.IsPass() {
			parentState.Ended = true
			parentState.Win = false
			break
		}

		path = append(path, bestID)
		node := c.Stats.Get(bestID)
		if node.rounds == 1 {
			selectedMove = bestMove
			break
		}
		parentState = bestState
		parentID = bestID
	}

	var win bool
	if parentState.Ended {
		win = parentState.Win
	} else {
		win = c.Dive(parentState, selectedMove)
	}

	c.totalPlayouts++
	if uint32(len(path)) > c.maxPathSeen {
		c.maxPathSeen = uint32(len(path))
	}

	result := uint32(0)
	if win {
		result = 1
	}
	for i := len(path) - 1; i >= 0; i-- {
		node := c.Stats.Get(path[i])
		node.wins += result
		node.rounds++
		result = 1 - result
	}
	return true
}

// Dive rolls a random playout forward from parent after applying
// firstMove, rejecting any position already visited along this rollout,
// until the game ends or every remaining move has been rejected as a
// repeat. It reports whether the side that moved into the position being
// scored (the last path entry) ends up as the winner: with a real
// firstMove that is parent's side to move; with the Pass sentinel (the
// selection loop hit its depth or memory bound without reaching a fresh
// leaf) the rollout starts at parent itself, whose position was reached
// by the opponent, so the winner test flips sides.
func (c *Context) Dive(parent State, firstMove Move) bool {
	uid := parent.CurrentPlayer
	seen := &SeenSet{}
	state := parent
	seen.Insert(PackState(&state))
	if firstMove.IsPass() {
		uid = 3 - uid
	} else {
		state = NextState(&state, firstMove)
		seen.Insert(PackState(&state))
	}

	moves := make([]Move, 0, MoveCapacity)
	for !state.Ended {
		moves = ValidMoves(moves, &state, state.CurrentPlayer)
		advanced := false
		for len(moves) > 0 {
			i := c.RNG.Range(uint32(len(moves)))
			mv := moves[i]
			next := NextState(&state, mv)
			k := PackState(&next)
			if seen.Has(k) {
				moves = append(moves[:i], moves[i+1:]...)
				continue
			}
			seen.Insert(k)
			state = next
			advanced = true
			break
		}
		if !advanced {
			break
		}
	}
	return state.CurrentPlayer == uid
}

// BestMove picks the root child with the highest observed win rate,
// skipping any child with zero recorded playouts. Ties resolve to the
// first-encountered child in ValidMoves order. It returns Pass if no
// root child was ever visited.
func BestMove(c *Context) Move {
	best := Pass
	bestScore := -1.0
	moves := make([]Move, 0, MoveCapacity)
	moves = ValidMoves(moves, &c.RootState, c.RootState.CurrentPlayer)
	for _, mv := range moves {
		ns := NextState(&c.RootState, mv)
		id := PackState(&ns)
		node := c.Stats.Get(id)
		if node.rounds == 0 {
			continue
		}
		score := float64(node.wins) / float64(node.rounds)
		if score > bestScore {
			bestScore = score
			best = mv
		}
	}
	return best
}
