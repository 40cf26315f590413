package wire

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paiv/midnight-protocol/internal/arac"
)

type fakeClock struct{ start time.Time }

func (c fakeClock) NowMillis() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

func TestSetupDataRoundTrip(t *testing.T) {
	want := SetupData{MemorySize: 16, TimeLimit: 2000, DifficultyLevel: 1}
	got := DecodeSetupData(want.Encode())
	assert.Equal(t, want, got)
}

func TestGameStateDataRoundTrip(t *testing.T) {
	var want GameStateData
	want.CurrentPlayer = 1
	want.Board[1][2] = 13
	want.Board[4][0] = 23
	want.Progs = [5]uint8{4, 0, 1, 2, 3}

	got := DecodeGameStateData(want.Encode())
	assert.Equal(t, want, got)
}

func TestPlayerMoveDataRoundTrip(t *testing.T) {
	want := PlayerMoveData{Ver: 1, From: 12, To: 2, Pid: 0}
	got := DecodePlayerMoveData(want.Encode())
	assert.Equal(t, want, got)
}

func TestPassMoveDataEncodesSentinel(t *testing.T) {
	assert.Equal(t, []byte{1, 0xff, 0xff, 0xff}, PassMoveData.Encode())
}

func TestEngineSetupZeroTimeLimitCoerced(t *testing.T) {
	e := NewEngine(nil)
	mem := SetupData{MemorySize: 4, TimeLimit: 0, DifficultyLevel: 2}.Encode()
	e.Setup(mem)
	assert.Equal(t, arac.DefaultTimeLimitMs, e.config.TimeLimit)
}

func TestEngineSetupSizesArenaMinusStack(t *testing.T) {
	e := NewEngine(nil)
	mem := SetupData{MemorySize: 2, TimeLimit: 1000, DifficultyLevel: 2}.Encode()
	e.Setup(mem)
	want := 2*WasmPageSize - StackSize
	assert.Equal(t, want, e.arena.Size())
}

func TestEngineSelectMoveRoundTrip(t *testing.T) {
	e := NewEngine(nil)
	e.Setup(SetupData{MemorySize: 16, TimeLimit: 2000, DifficultyLevel: 2}.Encode())

	gs := GameStateData{CurrentPlayer: 1}
	gs.Board[1][2] = 13
	gs.Board[4][0] = 23
	gs.Board[4][1] = 11
	gs.Board[4][2] = 12
	gs.Board[4][3] = 14
	gs.Board[4][4] = 15
	gs.Progs = [5]uint8{4, 0, 1, 2, 3}

	mem := make([]byte, GameStateDataSize)
	copy(mem, gs.Encode())

	clock := fakeClock{start: time.Now()}
	ret := e.SelectMove(mem, clock, 1.0)
	require.Equal(t, uint8(1), ret)

	mv := DecodePlayerMoveData(mem[:PlayerMoveDataSize])
	assert.Equal(t, uint8(1), mv.Ver)
	assert.Equal(t, PlayerMoveData{Ver: 1, From: 12, To: 2, Pid: 0}, mv)
}

// Same round trip from the other side: player 2 to move, one dagger-step
// (negated delta) from its target square. The terminal recomputation at
// the boundary must leave the position live and the search must find
// 32->42.
func TestEngineSelectMoveRoundTripPlayer2(t *testing.T) {
	e := NewEngine(nil)
	e.Setup(SetupData{MemorySize: 16, TimeLimit: 2000, DifficultyLevel: 2}.Encode())

	gs := GameStateData{CurrentPlayer: 2}
	gs.Board[3][2] = 23
	gs.Board[0][0] = 13
	gs.Board[4][1] = 21
	gs.Board[4][3] = 22
	gs.Progs = [5]uint8{2, 3, 4, 0, 1}

	mem := make([]byte, GameStateDataSize)
	copy(mem, gs.Encode())

	clock := fakeClock{start: time.Now()}
	ret := e.SelectMove(mem, clock, 2.0)
	require.Equal(t, uint8(1), ret)

	mv := DecodePlayerMoveData(mem[:PlayerMoveDataSize])
	assert.Equal(t, PlayerMoveData{Ver: 1, From: 32, To: 42, Pid: 0}, mv)
}
