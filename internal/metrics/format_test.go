package metrics

import "testing"

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   Metric
		want string
	}{
		{Metric{Name: "Revenue", Value: 45000}, "45,000"},
		{Metric{Name: "Users", Value: 8200}, "8,200"},
		{Metric{Name: "Conversions", Value: 999}, "999"},
		{Metric{Name: "Growth", Value: 18}, "18%"},
		{Metric{Name: "Growth", Value: 1250}, "1250%"},
		{Metric{Name: "Revenue", Value: 1234567}, "1,234,567"},
	}
	for _, tc := range cases {
		if got := FormatValue(tc.in); got != tc.want {
			t.Fatalf("FormatValue(%+v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
