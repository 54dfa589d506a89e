// Package rain implements the digital-rain animation engine.
//
// The engine owns one falling [Drop] per screen column per depth
// layer, advances all of them once per [Engine.Tick], and paints the
// frame through the caller-supplied [Surface]:
//
//   - [Config]: every tunable knob, with clamped defaults
//   - [Drop]: one falling column instance and its character tape
//   - [Engine]: drop state machine plus frame renderer
//   - [Surface]: drawing contract implemented by the front-ends
//
// # Determinism
//
// All randomness flows through a single rand.Rand seeded from
// [Config.Seed]; a fixed seed replays an identical frame sequence.
//
// # Concurrency
//
// The engine is single-threaded and tick-driven. Tick, Resize and
// LoadCorpus must all be called from the same goroutine; none of them
// blocks and no locking exists.
//
// # Scan invariant
//
// The per-drop draw loop continues past cells below the canvas and
// breaks at the first cell above it, which is only correct while the
// tape-index-to-Y mapping stays monotonic within a drop. Any future
// feature that reorders the trail must revisit that early exit.
package rain
