package arac

// PackState returns the canonical 64-bit fingerprint used as the node
// table and seen-set key: 4 reserved bits, four 2-bit program ids sorted
// within each player's pair, a prog_fix disambiguation bit, the
// player-to-move bit, then five 5-bit piece positions per side (king,
// then four non-king pieces in board-scan order).
//
// prog_fix exists because two program ids collapse to the same 2-bit
// value after truncation (id 4 aliases id 0). It is set only when a 0
// shows up in an earlier deck slot and a 4 in a later one across the
// 4-slot scan; this is order-sensitive, not symmetric per pair, and
// changing it would alter which positions transpose onto the same node
// in the statistics table.
func PackState(s *State) uint64 {
	var packed uint64
	if s.CurrentPlayer == 2 {
		packed |= 1 << 13
	}

	var p1King, p2King uint64
	var p1, p2 [4]uint64
	var n1, n2 int
	for i := 0; i < 25; i++ {
		piece := s.Board[i/5][i%5]
		if piece == 0 {
			continue
		}
		if IsOwn(piece, 1) {
			if IsKing(piece) {
				p1King = uint64(i)
			} else if n1 < 4 {
				p1[n1] = uint64(i)
				n1++
			}
		} else {
			if IsKing(piece) {
				p2King = uint64(i)
			} else if n2 < 4 {
				p2[n2] = uint64(i)
				n2++
			}
		}
	}
	packed |= p1King << 14
	for i, field := range [4]uint{19, 24, 29, 34} {
		packed |= p1[i] << field
	}
	packed |= p2King << 39
	for i, field := range [4]uint{44, 49, 54, 59} {
		packed |= p2[i] << field
	}

	progs := [4]uint8{s.Progs[1], s.Progs[2], s.Progs[3], s.Progs[4]}
	if progs[0] > progs[1] {
		progs[0], progs[1] = progs[1], progs[0]
	}
	if progs[2] > progs[3] {
		progs[2], progs[3] = progs[3], progs[2]
	}

	var fix, seen0 uint64
	for i, pid := range progs {
		packed |= (uint64(pid) & 0x3) << uint(4+2*i)
		if pid == 0 {
			seen0 = 1
		} else if pid == 4 && seen0 == 1 {
			fix = 1
		}
	}
	packed |= fix << 12
	return packed
}
