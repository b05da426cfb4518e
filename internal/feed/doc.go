// Package feed drives the synthetic metrics on a timer.
//
// A Feed owns the current metrics.State and a metrics.Engine. Start arms a
// repeating timer (10s by default); every firing computes the next state with
// Engine.Tick and publishes it to the state.Store in one Update call. The
// first Start also arms a one-shot loading gate (1.2s by default) that marks
// the store ready exactly once. The gate runs on its own timer: pausing the
// feed with Stop does not delay it. Close cancels it along with the tick.
//
// # Cancellation
//
// Timer callbacks take the feed mutex and check a generation counter before
// doing any work. Stop flips the running flag under the same mutex, so once
// Stop returns no tick can be applied, even if a timer had already fired and
// was waiting on the lock. A callback from an earlier Start is discarded by
// the generation check.
//
// # Testing
//
// Time comes from the Clock interface. Tests inject a fake clock whose
// Advance method fires due callbacks synchronously, which makes cadence and
// cancellation deterministic.
package feed
