package arac

// MoveCapacity bounds the per-position move list; further moves beyond
// this count are silently dropped rather than grown into.
const MoveCapacity = 100

// ValidMoves appends every legal move for uid in s to out and returns the
// extended slice, enumerating in board-scan order (row-major), then by
// uid's two active program slots in slot order, then by each program's
// deltas in table order. The order matters: it's the tie-break the
// search and best-move extraction both rely on implicitly when scores
// are equal.
// Output is capped at MoveCapacity entries.
func ValidMoves(out []Move, s *State, uid uint8) []Move {
	out = out[:0]
	rotate := int8(3 - 2*int8(uid))
	progs := OwnProgs(s, uid)
	for y := uint8(0); y < 5; y++ {
		for x := uint8(0); x < 5; x++ {
			piece := s.Board[y][x]
			if !IsOwn(piece, uid) {
				continue
			}
			from := y*10 + x
			for _, pid := range progs {
				for _, d := range Programs[pid] {
					to := int8(from) + d*rotate
					if !OnBoard(to) {
						continue
					}
					target := GetPiece(s, uint8(to))
					if IsOwn(target, uid) {
						continue
					}
					if len(out) >= MoveCapacity {
						continue
					}
					out = append(out, Move{From: from, To: uint8(to), Pid: pid})
				}
			}
		}
	}
	return out
}
