package feed

import (
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/five82/insights/internal/metrics"
	"github.com/five82/insights/internal/state"
)

// fakeClock fires AfterFunc callbacks synchronously from Advance.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	seq     int
	f       func()
	stopped bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &fakeTimer{clock: c, at: c.now.Add(d), seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	was := !t.stopped
	t.stopped = true
	return was
}

// Advance moves time forward, firing due timers in deadline order.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	end := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var due []*fakeTimer
		for _, t := range c.timers {
			if !t.stopped && !t.at.After(end) {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			c.now = end
			c.mu.Unlock()
			return
		}
		sort.Slice(due, func(i, j int) bool {
			if due[i].at.Equal(due[j].at) {
				return due[i].seq < due[j].seq
			}
			return due[i].at.Before(due[j].at)
		})
		next := due[0]
		next.stopped = true
		c.now = next.at
		c.mu.Unlock()

		next.f()
	}
}

func (c *fakeClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// maxSource pins every draw to its upper bound.
type maxSource struct{}

func (maxSource) IntRange(_, hi int) int { return hi }
func (maxSource) Float64() float64       { return 0.9 }

func newTestFeed(clock *fakeClock) (*Feed, *state.Store) {
	store := state.NewStore(metrics.Seed(clock.Now()))
	f := New(store, metrics.NewEngine(maxSource{}), Options{Clock: clock})
	return f, store
}

func TestFeed_OneTickAddsMaxDelta(t *testing.T) {
	clock := newFakeClock()
	f, store := newTestFeed(clock)
	before := store.Snapshot()

	f.Start()
	defer f.Stop()
	clock.Advance(DefaultInterval)

	snap := store.Snapshot()
	if snap.Ticks != 1 {
		t.Fatalf("Ticks = %d, want 1", snap.Ticks)
	}
	for i, m := range snap.Metrics {
		if want := before.Metrics[i].Value + 50; m.Value != want {
			t.Fatalf("metric %s = %d, want %d", m.Name, m.Value, want)
		}
	}
	if !snap.LastUpdated.Equal(clock.Now()) {
		t.Fatalf("LastUpdated = %v, want %v", snap.LastUpdated, clock.Now())
	}
}

func TestFeed_TicksAtFixedCadence(t *testing.T) {
	clock := newFakeClock()
	f, store := newTestFeed(clock)

	f.Start()
	defer f.Stop()

	clock.Advance(DefaultInterval - time.Millisecond)
	if got := store.Snapshot().Ticks; got != 0 {
		t.Fatalf("Ticks before first interval = %d, want 0", got)
	}
	clock.Advance(time.Millisecond + 5*DefaultInterval)
	if got := store.Snapshot().Ticks; got != 6 {
		t.Fatalf("Ticks after 60s = %d, want 6", got)
	}
}

func TestFeed_StopPreventsFurtherTicks(t *testing.T) {
	clock := newFakeClock()
	f, store := newTestFeed(clock)

	f.Start()
	clock.Advance(2 * DefaultInterval)
	f.Stop()
	ticks := store.Snapshot().Ticks

	clock.Advance(100 * time.Second)

	if got := store.Snapshot().Ticks; got != ticks {
		t.Fatalf("Ticks after Stop = %d, want %d", got, ticks)
	}
	if f.Running() {
		t.Fatal("Running() = true after Stop")
	}
	if n := clock.pending(); n != 0 {
		t.Fatalf("pending timers after Stop = %d, want 0", n)
	}
}

func TestFeed_StaleCallbackIsIgnored(t *testing.T) {
	clock := newFakeClock()
	f, store := newTestFeed(clock)

	f.Start()
	stale := f.gen
	f.Stop()

	// Simulate a timer that fired concurrently with Stop.
	f.tick(stale)
	if got := store.Snapshot().Ticks; got != 0 {
		t.Fatalf("Ticks after stale callback = %d, want 0", got)
	}

	// And one from a previous run after a restart.
	f.Start()
	defer f.Stop()
	f.tick(stale)
	if got := store.Snapshot().Ticks; got != 0 {
		t.Fatalf("Ticks after stale callback on restarted feed = %d, want 0", got)
	}
}

func TestFeed_StartStopIdempotent(t *testing.T) {
	clock := newFakeClock()
	f, store := newTestFeed(clock)

	f.Stop() // stopping a stopped feed is fine
	f.Start()
	f.Start()
	if n := clock.pending(); n != 2 {
		t.Fatalf("pending timers = %d, want 2 (tick + loading gate)", n)
	}

	clock.Advance(DefaultInterval)
	if got := store.Snapshot().Ticks; got != 1 {
		t.Fatalf("Ticks = %d, want 1 (double Start must not double tick)", got)
	}

	f.Stop()
	f.Stop()
	if f.Running() {
		t.Fatal("Running() = true after Stop")
	}
}

func TestFeed_LoadingGateOpensOnce(t *testing.T) {
	clock := newFakeClock()
	f, store := newTestFeed(clock)

	f.Start()
	defer f.Stop()

	clock.Advance(DefaultLoadingDelay - time.Millisecond)
	if f.Ready() {
		t.Fatal("Ready() = true before loading delay")
	}
	clock.Advance(time.Millisecond)
	if !f.Ready() {
		t.Fatal("Ready() = false after loading delay")
	}
	if got := store.Snapshot().Ticks; got != 0 {
		t.Fatalf("loading gate should not tick; Ticks = %d", got)
	}

	// Restarting does not re-arm the gate.
	f.Stop()
	f.Start()
	if n := clock.pending(); n != 1 {
		t.Fatalf("pending timers after restart = %d, want 1 (tick only)", n)
	}
}

func TestFeed_PauseBeforeReadyKeepsGate(t *testing.T) {
	clock := newFakeClock()
	f, store := newTestFeed(clock)

	f.Start()
	clock.Advance(time.Second)
	f.Stop()
	if n := clock.pending(); n != 1 {
		t.Fatalf("pending timers after pause = %d, want 1 (loading gate)", n)
	}

	clock.Advance(DefaultLoadingDelay - time.Second)
	if !f.Ready() {
		t.Fatal("Ready() = false although the loading delay elapsed while paused")
	}
	if got := store.Snapshot().Ticks; got != 0 {
		t.Fatalf("paused feed ticked %d times", got)
	}

	// Resuming does not arm a second gate.
	f.Start()
	defer f.Stop()
	if n := clock.pending(); n != 1 {
		t.Fatalf("pending timers after resume = %d, want 1 (tick only)", n)
	}
}

func TestFeed_CloseCancelsGate(t *testing.T) {
	clock := newFakeClock()
	f, store := newTestFeed(clock)

	f.Start()
	clock.Advance(time.Second)
	f.Close()
	f.Close()
	if n := clock.pending(); n != 0 {
		t.Fatalf("pending timers after Close = %d, want 0", n)
	}

	clock.Advance(time.Minute)
	if f.Ready() {
		t.Fatal("Ready() = true although the feed closed before the gate")
	}

	f.Start()
	if f.Running() {
		t.Fatal("Start after Close restarted the feed")
	}
	clock.Advance(100 * time.Second)
	if got := store.Snapshot().Ticks; got != 0 {
		t.Fatalf("Ticks after Close = %d, want 0", got)
	}
}

func TestFeed_Interval(t *testing.T) {
	store := state.NewStore(metrics.Seed(time.Now()))
	if got := New(store, metrics.NewEngine(maxSource{}), Options{}).Interval(); got != DefaultInterval {
		t.Fatalf("default Interval() = %v, want %v", got, DefaultInterval)
	}
	if got := New(store, metrics.NewEngine(maxSource{}), Options{Interval: 3 * time.Second}).Interval(); got != 3*time.Second {
		t.Fatalf("Interval() = %v, want 3s", got)
	}
}

func TestFeed_SystemClockTicks(t *testing.T) {
	store := state.NewStore(metrics.Seed(time.Now()))
	f := New(store, metrics.NewEngine(metrics.NewSource(1)), Options{
		Interval:     5 * time.Millisecond,
		LoadingDelay: 5 * time.Millisecond,
	})

	f.Start()
	deadline := time.Now().Add(2 * time.Second)
	for store.Snapshot().Ticks < 3 || !f.Ready() {
		if time.Now().After(deadline) {
			f.Stop()
			t.Fatalf("feed did not tick with the system clock (ticks=%d ready=%v)", store.Snapshot().Ticks, f.Ready())
		}
		time.Sleep(time.Millisecond)
	}
	f.Stop()

	ticks := store.Snapshot().Ticks
	time.Sleep(30 * time.Millisecond)
	if got := store.Snapshot().Ticks; got != ticks {
		t.Fatalf("Ticks after Stop = %d, want %d", got, ticks)
	}
}
