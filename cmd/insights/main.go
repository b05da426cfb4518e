package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/insights/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	tick := flag.Duration("tick", 0, "metrics update interval (optional, defaults to 10s)")
	seed := flag.Uint64("seed", 0, "random seed for the synthetic feed (optional)")
	once := flag.Bool("once", false, "print a single report and exit")
	ticks := flag.Int("ticks", 0, "ticks to apply before the report (with -once)")
	query := flag.String("query", "", "initial table filter")
	sortSpec := flag.String("sort", "", "initial table sort: column[:asc|desc]")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:   *configPath,
		PrefsPath:    *prefsPath,
		TickInterval: *tick,
		Seed:         *seed,
		Once:         *once,
		Ticks:        *ticks,
		Query:        *query,
		Sort:         *sortSpec,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "insights: %v\n", err)
		return 1
	}
	return 0
}
