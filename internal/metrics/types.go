package metrics

import (
	"regexp"
	"time"
)

// Point is one period of the time series shared by the revenue and users charts.
type Point struct {
	Label   string
	Revenue int
	Users   int
}

// Proportion is the two-slice conversion dataset behind the pie chart.
type Proportion struct {
	Conversions    int
	NonConversions int
}

// Total returns the sum of both slices.
func (p Proportion) Total() int {
	return p.Conversions + p.NonConversions
}

// Share returns the conversion fraction in [0,1], or 0 when both slices are empty.
func (p Proportion) Share() float64 {
	total := p.Total()
	if total <= 0 {
		return 0
	}
	return float64(p.Conversions) / float64(total)
}

// Metric is a headline card value.
type Metric struct {
	Name  string
	Value int
	Trend string
}

// TrendUp reports whether the trend label carries a positive sign.
func (m Metric) TrendUp() bool {
	return len(m.Trend) > 0 && m.Trend[0] == '+'
}

var trendPattern = regexp.MustCompile(`^[+-]\d+(\.\d+)?%$`)

// ValidTrend reports whether label has the form [+-]<number>%.
func ValidTrend(label string) bool {
	return trendPattern.MatchString(label)
}

// State bundles the four mutable series.
type State struct {
	Series      []Point
	Proportion  Proportion
	Metrics     []Metric
	LastUpdated time.Time
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := s
	if s.Series != nil {
		out.Series = make([]Point, len(s.Series))
		copy(out.Series, s.Series)
	}
	if s.Metrics != nil {
		out.Metrics = make([]Metric, len(s.Metrics))
		copy(out.Metrics, s.Metrics)
	}
	return out
}

// Metric returns the metric with the given name.
func (s State) Metric(name string) (Metric, bool) {
	for _, m := range s.Metrics {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}

// Seed returns the initial dashboard state stamped with now.
func Seed(now time.Time) State {
	return State{
		Series: []Point{
			{Label: "Jan", Revenue: 4000, Users: 2400},
			{Label: "Feb", Revenue: 3000, Users: 1398},
			{Label: "Mar", Revenue: 2000, Users: 9800},
			{Label: "Apr", Revenue: 2780, Users: 3908},
			{Label: "May", Revenue: 1890, Users: 4800},
		},
		Proportion: Proportion{Conversions: 400, NonConversions: 600},
		Metrics: []Metric{
			{Name: "Revenue", Value: 45000, Trend: "+12%"},
			{Name: "Users", Value: 8200, Trend: "+5%"},
			{Name: "Conversions", Value: 1240, Trend: "-3%"},
			{Name: GrowthMetric, Value: 18, Trend: "+1.5%"},
		},
		LastUpdated: now,
	}
}
