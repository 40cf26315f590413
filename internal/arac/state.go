package arac

// Programs holds the relative square deltas for the five movement
// patterns, expressed from player 1's perspective (row*10+col deltas, as
// on the wire). Player 2's moves negate every delta before applying it.
var Programs = [5][]int8{
	{-10, -1, 1},     // dagger
	{-20, 10},        // harpoon
	{-11, -9, -1, 1}, // jackhammer
	{-1, 1, 9, 11},   // onion
	{-11, -9, 9, 11}, // shuriken
}

// Move is a single ply: a program-piece moving from one square to
// another using one of its five programs. Squares are encoded row*10+col,
// matching the wire format.
type Move struct {
	From, To, Pid uint8
}

// Pass is the sentinel move carried through a terminal or stalled search;
// it serializes to the 0xFF,0xFF,0xFF wire encoding at the boundary.
var Pass = Move{From: 0xff, To: 0xff, Pid: 0xff}

// IsPass reports whether m is the pass sentinel.
func (m Move) IsPass() bool {
	return m == Pass
}

// State is the in-memory game position: whose turn it is, the 5x5 board
// of two-digit player/piece-id bytes (0 is empty), the 5-slot program
// deck (slot 0 decked, slots 1-2 player 1's active pair, slots 3-4 player
// 2's), and whether the position is already terminal.
type State struct {
	CurrentPlayer uint8
	Board         [5][5]uint8
	Progs         [5]uint8
	Ended         bool
	Win           bool
}

// IsKing reports whether piece is a king of either player (unit digit 3).
func IsKing(piece uint8) bool {
	return piece != 0 && piece%10 == 3
}

func isKing1(piece uint8) bool { return piece == 13 }
func isKing2(piece uint8) bool { return piece == 23 }

// IsOwn reports whether piece belongs to uid (1 or 2). The empty square
// (0) belongs to nobody.
func IsOwn(piece, uid uint8) bool {
	return piece != 0 && piece/10 == uid
}

// OnBoard reports whether a row*10+col encoded square falls on the 5x5
// grid.
func OnBoard(pos int8) bool {
	x := pos % 10
	y := pos / 10
	return x >= 0 && x <= 4 && y >= 0 && y <= 4
}

// GetPiece reads the board at a row*10+col encoded square.
func GetPiece(s *State, pos uint8) uint8 {
	x, y := pos%10, pos/10
	return s.Board[y][x]
}

// SetPiece writes the board at a row*10+col encoded square.
func SetPiece(s *State, pos, piece uint8) {
	x, y := pos%10, pos/10
	s.Board[y][x] = piece
}

// OwnProgs returns the two program slots currently active for uid.
func OwnProgs(s *State, uid uint8) [2]uint8 {
	if uid == 1 {
		return [2]uint8{s.Progs[1], s.Progs[2]}
	}
	return [2]uint8{s.Progs[3], s.Progs[4]}
}

// IsTerminal reports whether either king already occupies its opponent's
// home square, or whether a king is altogether missing from the board
// (the degenerate case treated as terminal so the search never walks off
// the end of a captured game).
func IsTerminal(s *State) bool {
	sawP1, sawP2 := false, false
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			piece := s.Board[y][x]
			if isKing1(piece) {
				if y == 0 && x == 2 {
					return true
				}
				sawP1 = true
			} else if isKing2(piece) {
				if y == 4 && x == 2 {
					return true
				}
				sawP2 = true
			}
		}
	}
	return !(sawP1 && sawP2)
}

// NextState applies mv to s and returns the resulting position. It does
// not validate mv against ValidMoves; callers are expected to only ever
// apply moves they themselves generated. A terminal state is returned
// unchanged.
func NextState(s *State, mv Move) State {
	if s.Ended {
		return *s
	}
	next := *s
	next.CurrentPlayer = 3 - s.CurrentPlayer
	uid := s.CurrentPlayer
	piece := GetPiece(s, mv.From)
	SetPiece(&next, mv.From, 0)
	SetPiece(&next, mv.To, piece)
	next.Ended = IsTerminal(&next)
	if next.Ended {
		next.CurrentPlayer = s.CurrentPlayer
		next.Win = true
		return next
	}
	lo := int(uid-1)*2 + 1
	for i := 0; i < 2; i++ {
		if next.Progs[lo+i] == mv.Pid {
			next.Progs[lo+i] = next.Progs[0]
			next.Progs[0] = mv.Pid
			break
		}
	}
	return next
}
