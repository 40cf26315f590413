//go:build js && wasm

// Command aracwasm is the embedding-runtime entrypoint: it exposes the
// engine's setup/select_move surface to a JS host as the aracSetup and
// aracSelectMove globals.
//
// A browser host can't hand a Go wasm module a raw pointer into its own
// linear memory the way a native or AssemblyScript module would, so the
// "shared memory window" here is a single reusable Uint8Array the host
// passes by reference into aracSetup/aracSelectMove on every call; the
// engine reads its input from the front of it and overwrites the front
// of it with its output, keeping the in-place window semantics as
// closely as wasm/JS interop allows.
package main

import (
	"syscall/js"
	"time"

	"github.com/paiv/midnight-protocol/internal/wire"
)

var engine = wire.NewEngine(nil)

type wallClock struct{ start time.Time }

func (c wallClock) NowMillis() float64 {
	return float64(time.Since(c.start)) / float64(time.Millisecond)
}

var bootTime = wallClock{start: time.Now()}

// copyFromJS reads a JS Uint8Array into a freshly-sized Go buffer.
func copyFromJS(v js.Value, n int) []byte {
	buf := make([]byte, n)
	js.CopyBytesToGo(buf, v)
	return buf
}

// aracSetup is the setup export: args[0] is a Uint8Array holding a
// wire.SetupData record.
func aracSetup(this js.Value, args []js.Value) any {
	mem := copyFromJS(args[0], wire.SetupDataSize)
	engine.Setup(mem)
	return js.ValueOf(true)
}

// aracSelectMove is the select_move export: args[0] is a Uint8Array
// holding a wire.GameStateData record; args[1], if present and numeric,
// is the host-supplied random draw. The chosen wire.PlayerMoveData
// record is written back into args[0] and the function returns 1.
func aracSelectMove(this js.Value, args []js.Value) any {
	mem := copyFromJS(args[0], wire.GameStateDataSize)

	draw := js.Global().Get("Math").Call("random").Float()
	if len(args) > 1 && args[1].Type() == js.TypeNumber {
		draw = args[1].Float()
	}

	ret := engine.SelectMove(mem, bootTime, draw)

	out := js.Global().Get("Uint8Array").New(len(mem))
	js.CopyBytesToJS(out, mem)
	args[0].Call("set", out)

	return js.ValueOf(int(ret))
}

func main() {
	c := make(chan struct{}, 0)
	js.Global().Set("aracSetup", js.FuncOf(aracSetup))
	js.Global().Set("aracSelectMove", js.FuncOf(aracSelectMove))
	<-c
}
