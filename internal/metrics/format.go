package metrics

import (
	"strconv"

	"github.com/dustin/go-humanize"
)

// GrowthMetric is rendered as a percentage rather than a count.
const GrowthMetric = "Growth"

// FormatValue renders a card value: Growth as "N%", everything else with
// thousands separators.
func FormatValue(m Metric) string {
	if m.Name == GrowthMetric {
		return strconv.Itoa(m.Value) + "%"
	}
	return humanize.Comma(int64(m.Value))
}
