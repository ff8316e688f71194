package reporting

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{name: "growth", current: 1200, previous: 1000, want: 20.0},
		{name: "decline", current: 800, previous: 1000, want: -20.0},
		{name: "rounded to one decimal", current: 1, previous: 3, want: -66.7},
		{name: "appearing revenue", current: 500, previous: 0, want: 100.0},
		{name: "two empty periods", current: 0, previous: 0, want: 0},
		{name: "vanished revenue", current: 0, previous: 250, want: -100.0},
		{name: "unchanged", current: 1000, previous: 1000, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, percentChange(tc.current, tc.previous))
		})
	}
}

func TestWholePercent(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		total int64
		want  int
	}{
		{name: "half", count: 2, total: 4, want: 50},
		{name: "rounds half away from zero", count: 1, total: 8, want: 13},
		{name: "rounds down", count: 1, total: 3, want: 33},
		{name: "zero total", count: 0, total: 0, want: 0},
		{name: "zero count", count: 0, total: 7, want: 0},
		{name: "full share", count: 5, total: 5, want: 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, wholePercent(tc.count, tc.total))
		})
	}
}
