package main

import (
	"fmt"

	"github.com/paiv/midnight-protocol/internal/arac"
)

// BuildScenario builds one of the engine's built-in demonstration
// positions by name. "win1" and "win2" each have an immediate winning
// move for the side to play; "start" is a symmetric opening position
// with every program still in its starting deck slot.
func BuildScenario(name string) (arac.State, error) {
	switch name {
	case "win1":
		return scenarioWin1(), nil
	case "win2":
		return scenarioWin2(), nil
	case "start":
		return scenarioStart(), nil
	default:
		return arac.State{}, fmt.Errorf("unknown scenario %q", name)
	}
}

// scenarioWin1 places player 1's king one dagger-move from its home
// square, with player 1's other four pieces filling the rest of row 4 and
// player 2's king tucked in the corner. The engine is expected to find
// the immediate winning move 12->2 with pid 0 (dagger).
func scenarioWin1() arac.State {
	var s arac.State
	s.CurrentPlayer = 1
	s.Board[1][2] = 13 // player 1 king
	s.Board[4][0] = 23 // player 2 king
	s.Board[4][1] = 11
	s.Board[4][2] = 12
	s.Board[4][3] = 14
	s.Board[4][4] = 15
	// progs[0]=decked, [1,2]=player1 active (dagger + harpoon),
	// [3,4]=player2 active (jackhammer + onion).
	s.Progs = [5]uint8{4, 0, 1, 2, 3}
	return s
}

// scenarioWin2 places player 2's king one dagger-move (negated) from its
// home square; the deck also carries harpoon, whose negated delta leads
// to the same home square from a different origin and must not be
// mistaken for the winning move from this position.
func scenarioWin2() arac.State {
	var s arac.State
	s.CurrentPlayer = 2
	s.Board[3][2] = 23 // player 2 king
	s.Board[0][0] = 13 // player 1 king, off its target square (0,2)
	s.Board[4][1] = 21
	s.Board[4][3] = 22
	s.Progs = [5]uint8{2, 3, 4, 0, 1}
	return s
}

// scenarioStart is a hand-built symmetric opening: each side's king on
// its home square's opposite edge, four non-king pieces flanking it, and
// the full five-program deck in its starting order.
func scenarioStart() arac.State {
	var s arac.State
	s.CurrentPlayer = 1
	s.Board[4][0] = 11
	s.Board[4][1] = 12
	s.Board[4][2] = 13
	s.Board[4][3] = 14
	s.Board[4][4] = 15
	s.Board[0][0] = 21
	s.Board[0][1] = 22
	s.Board[0][2] = 23
	s.Board[0][3] = 24
	s.Board[0][4] = 25
	s.Progs = [5]uint8{0, 1, 2, 3, 4}
	return s
}
