// Package wire marshals the little-endian, byte-exact wire structures
// the host and the engine core exchange through shared memory: setup_data,
// game_state_data, and player_move_data. Layout and sizes are fixed by
// the embedding contract and must not drift, since the host writes and
// reads these exact byte offsets regardless of which language built the
// module occupying them.
package wire

import "encoding/binary"

const (
	// SetupDataSize is sizeof(setup_data): three packed u32 fields.
	SetupDataSize = 12
	// GameStateDataSize is sizeof(game_state_data): 1 + 25 + 5 bytes.
	GameStateDataSize = 31
	// PlayerMoveDataSize is sizeof(player_move_data): four bytes.
	PlayerMoveDataSize = 4

	// WasmPageSize is the WASM linear memory page size setup_data's
	// memory_size is expressed in.
	WasmPageSize = 65536
	// StackSize is the carve-out reserved for the native stack between
	// the module's heap base and the start of the arena.
	StackSize = 0x20000
)

// SetupData mirrors setup_data: the host's one-time configuration of the
// engine for the lifetime of the module instance.
type SetupData struct {
	MemorySize      uint32 // WASM pages
	TimeLimit       uint32 // ms
	DifficultyLevel uint32
}

// DecodeSetupData reads a SetupData from the front of b. b must be at
// least SetupDataSize bytes.
func DecodeSetupData(b []byte) SetupData {
	return SetupData{
		MemorySize:      binary.LittleEndian.Uint32(b[0:4]),
		TimeLimit:       binary.LittleEndian.Uint32(b[4:8]),
		DifficultyLevel: binary.LittleEndian.Uint32(b[8:12]),
	}
}

// Encode writes s as a SetupDataSize-byte little-endian record.
func (s SetupData) Encode() []byte {
	b := make([]byte, SetupDataSize)
	binary.LittleEndian.PutUint32(b[0:4], s.MemorySize)
	binary.LittleEndian.PutUint32(b[4:8], s.TimeLimit)
	binary.LittleEndian.PutUint32(b[8:12], s.DifficultyLevel)
	return b
}

// GameStateData mirrors game_state_data: the position the host asks the
// engine to move from. Board is row-major, [row][col], 0 for empty, else
// a two-digit player/piece-id byte.
type GameStateData struct {
	CurrentPlayer uint8
	Board         [5][5]uint8
	Progs         [5]uint8
}

// DecodeGameStateData reads a GameStateData from the front of b. b must
// be at least GameStateDataSize bytes.
func DecodeGameStateData(b []byte) GameStateData {
	var g GameStateData
	g.CurrentPlayer = b[0]
	idx := 1
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			g.Board[y][x] = b[idx]
			idx++
		}
	}
	copy(g.Progs[:], b[idx:idx+5])
	return g
}

// Encode writes g as a GameStateDataSize-byte record.
func (g GameStateData) Encode() []byte {
	b := make([]byte, GameStateDataSize)
	b[0] = g.CurrentPlayer
	idx := 1
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			b[idx] = g.Board[y][x]
			idx++
		}
	}
	copy(b[idx:idx+5], g.Progs[:])
	return b
}

// PlayerMoveData mirrors player_move_data: the engine's chosen move, or
// the 0xFF,0xFF,0xFF pass sentinel with Ver left at the protocol version.
type PlayerMoveData struct {
	Ver, From, To, Pid uint8
}

// Encode writes m as its 4-byte wire record.
func (m PlayerMoveData) Encode() []byte {
	return []byte{m.Ver, m.From, m.To, m.Pid}
}

// DecodePlayerMoveData reads a PlayerMoveData from the front of b.
func DecodePlayerMoveData(b []byte) PlayerMoveData {
	return PlayerMoveData{Ver: b[0], From: b[1], To: b[2], Pid: b[3]}
}

// PassMoveData is the wire encoding of the pass sentinel, protocol
// version 1.
var PassMoveData = PlayerMoveData{Ver: 1, From: 0xff, To: 0xff, Pid: 0xff}
