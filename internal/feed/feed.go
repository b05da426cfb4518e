package feed

import (
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/five82/insights/internal/metrics"
	"github.com/five82/insights/internal/state"
)

const (
	// DefaultInterval is the cadence of the synthetic ticks.
	DefaultInterval = 10 * time.Second

	// DefaultLoadingDelay is how long the dashboard shows placeholders.
	DefaultLoadingDelay = 1200 * time.Millisecond
)

// Options configure a Feed.
type Options struct {
	Interval     time.Duration // zero uses DefaultInterval
	LoadingDelay time.Duration // zero uses DefaultLoadingDelay
	Clock        Clock         // nil uses SystemClock
	Logger       *logrus.Entry // nil discards
}

// Feed owns the synthetic series and mutates them on a fixed cadence,
// publishing every tick to a state.Store.
type Feed struct {
	store  *state.Store
	engine *metrics.Engine
	clock  Clock
	log    *logrus.Entry

	interval     time.Duration
	loadingDelay time.Duration

	mu        sync.Mutex
	running   bool
	closed    bool
	gateArmed bool
	gen       uint64
	tickTimer Timer
	gateTimer Timer
	current   metrics.State
}

// New returns a stopped feed that publishes into store.
func New(store *state.Store, engine *metrics.Engine, opts Options) *Feed {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.LoadingDelay <= 0 {
		opts.LoadingDelay = DefaultLoadingDelay
	}
	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = logrus.NewEntry(l)
	}
	return &Feed{
		store:        store,
		engine:       engine,
		clock:        opts.Clock,
		log:          opts.Logger.WithField("component", "feed"),
		interval:     opts.Interval,
		loadingDelay: opts.LoadingDelay,
		current:      store.State(),
	}
}

// Start arms the periodic tick. The first Start also arms the loading gate.
// Calling Start on a running or closed feed does nothing.
func (f *Feed) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.running || f.closed {
		return
	}
	f.running = true
	f.gen++
	f.scheduleTick(f.gen)

	if !f.gateArmed && !f.store.Snapshot().Ready {
		f.gateArmed = true
		f.gateTimer = f.clock.AfterFunc(f.loadingDelay, f.openGate)
	}
	f.log.WithField("interval", f.interval.String()).Info("feed started")
}

// Stop disarms the periodic tick. Once Stop returns no further tick is
// applied. A pending loading gate still fires. Calling Stop on a stopped feed
// does nothing.
func (f *Feed) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopLocked()
}

// Close stops the feed for good and cancels a loading gate that has not
// fired yet. Start after Close does nothing.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.stopLocked()
	f.closed = true
	if f.gateTimer != nil {
		f.gateTimer.Stop()
		f.gateTimer = nil
	}
}

func (f *Feed) stopLocked() {
	if !f.running {
		return
	}
	f.running = false
	if f.tickTimer != nil {
		f.tickTimer.Stop()
		f.tickTimer = nil
	}
	f.log.Info("feed stopped")
}

// Running reports whether the periodic tick is armed.
func (f *Feed) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

// Ready reports whether the loading gate has elapsed.
func (f *Feed) Ready() bool {
	return f.store.Snapshot().Ready
}

// Interval returns the tick cadence.
func (f *Feed) Interval() time.Duration {
	return f.interval
}

// scheduleTick must be called with f.mu held.
func (f *Feed) scheduleTick(gen uint64) {
	f.tickTimer = f.clock.AfterFunc(f.interval, func() { f.tick(gen) })
}

func (f *Feed) tick(gen uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	// A callback from a previous Start, or one that lost the race with Stop.
	if !f.running || gen != f.gen {
		return
	}

	f.current = f.engine.Tick(f.current, f.clock.Now())
	f.store.Update(f.current)
	f.log.WithField("last_updated", f.current.LastUpdated.Format(time.RFC3339)).Debug("tick applied")

	f.scheduleTick(gen)
}

func (f *Feed) openGate() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.gateTimer = nil
	if f.store.MarkReady() {
		f.log.Info("dashboard ready")
	}
}
