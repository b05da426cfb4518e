package metrics

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Perturbation bounds applied on every tick.
const (
	RevenueDelta    = 250
	UsersDelta      = 100
	ConversionDelta = 50
	MetricDelta     = 50

	// ProportionFloor is the minimum value of either proportion slice.
	ProportionFloor = 100

	// TrendMax is the exclusive upper bound of a trend magnitude.
	TrendMax = 5.0
)

// Source supplies the randomness consumed by a tick.
type Source interface {
	// IntRange returns a uniform integer in [lo, hi].
	IntRange(lo, hi int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// NewSource returns a Source backed by a PCG generator. A zero seed derives one
// from the current time.
func NewSource(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type pcgSource struct {
	r *rand.Rand
}

func (s *pcgSource) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.IntN(hi-lo+1)
}

func (s *pcgSource) Float64() float64 {
	return s.r.Float64()
}

// Engine applies bounded random perturbations to a State.
type Engine struct {
	src Source
}

// NewEngine returns an engine drawing from src.
func NewEngine(src Source) *Engine {
	if src == nil {
		src = NewSource(0)
	}
	return &Engine{src: src}
}

// Tick returns the state one step after prev. prev is not modified.
func (e *Engine) Tick(prev State, now time.Time) State {
	next := prev.Clone()

	for i := range next.Series {
		next.Series[i].Revenue += e.src.IntRange(-RevenueDelta, RevenueDelta)
		next.Series[i].Users += e.src.IntRange(-UsersDelta, UsersDelta)
	}

	total := prev.Proportion.Total()
	conversions := max(ProportionFloor, prev.Proportion.Conversions+e.src.IntRange(-ConversionDelta, ConversionDelta))
	next.Proportion = Proportion{
		Conversions:    conversions,
		NonConversions: max(ProportionFloor, total-conversions),
	}

	for i := range next.Metrics {
		next.Metrics[i].Value = max(0, next.Metrics[i].Value+e.src.IntRange(-MetricDelta, MetricDelta))
		next.Metrics[i].Trend = e.trend()
	}

	next.LastUpdated = now
	return next
}

// trend draws a fresh label unrelated to the value change.
func (e *Engine) trend() string {
	sign := "-"
	if e.src.Float64() > 0.5 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, e.src.Float64()*TrendMax)
}
