// Package state provides thread-safe state management for the dashboard.
//
// # Overview
//
// The Store is the coordination point between the feed, which mutates the
// synthetic series on its own timers, and the UI, which renders snapshots on
// its refresh cadence.
//
//	Producer (feed):               Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ engine.Tick()  │            │                 │
//	│      ↓         │            │                 │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (mutex)   │      ↓          │
//	│  next tick...  │            │  render UI      │
//	└────────────────┘            └─────────────────┘
//
// # Update Semantics
//
// A tick is published with a single Update call carrying a complete
// metrics.State. The swap happens under the write lock, so readers observe
// either the state before a tick or the state after it, never a mix of the
// two. MarkReady flips the loading gate exactly once.
//
// # Defensive Copying
//
// Update clones its argument and Snapshot clones what it returns. Callers may
// freely modify what they hold without affecting the store.
//
// # Testing Considerations
//
// The zero Store is ready to use: it holds an empty State and reports
// Loading() until MarkReady is called.
package state
