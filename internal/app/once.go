package app

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/x/term"
	"github.com/sirupsen/logrus"

	"github.com/five82/insights/internal/metrics"
	"github.com/five82/insights/internal/report"
	"github.com/five82/insights/internal/state"
	"github.com/five82/insights/internal/tableview"
)

// applyTicks advances the store n times synchronously, the way the feed
// would over n intervals.
func applyTicks(store *state.Store, engine *metrics.Engine, n int, now func() time.Time) {
	current := store.State()
	for range max(n, 0) {
		current = engine.Tick(current, now())
		store.Update(current)
	}
}

func runOnce(out io.Writer, store *state.Store, engine *metrics.Engine, view *tableview.View, ticks int, log *logrus.Entry) error {
	applyTicks(store, engine, ticks, time.Now)
	store.MarkReady()

	opts := report.Options{UseColors: isTerminal(out)}
	if err := report.Write(out, store.Snapshot(), view, opts); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	log.WithFields(logrus.Fields{
		"ticks": ticks,
		"rows":  len(view.Visible().Rows),
	}).Info("report written")
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(f.Fd())
}
