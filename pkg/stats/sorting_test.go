package stats

import (
	"testing"

	"github.com/longbridgeapp/assert"
)

func names(items []FunctionStats) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Function)
	}

	return out
}

func TestSortByMeanDesc(t *testing.T) {
	tests := []struct {
		name     string
		items    []FunctionStats
		expected []string
	}{
		{
			name:     "empty",
			items:    []FunctionStats{},
			expected: []string{},
		},
		{
			name: "slowest first",
			items: []FunctionStats{
				{Function: "a", Mean: 2},
				{Function: "b", Mean: 5},
				{Function: "c", Mean: 0.5},
				{Function: "d", Mean: 12.3},
			},
			expected: []string{"d", "b", "a", "c"},
		},
		{
			name: "ties keep their order",
			items: []FunctionStats{
				{Function: "x", Mean: 1},
				{Function: "y", Mean: 3},
				{Function: "z", Mean: 1},
				{Function: "w", Mean: 3},
			},
			expected: []string{"y", "w", "x", "z"},
		},
		{
			name: "negative means",
			items: []FunctionStats{
				{Function: "neg", Mean: -1},
				{Function: "zero", Mean: 0},
			},
			expected: []string{"zero", "neg"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			SortByMeanDesc(test.items)
			assert.Equal(t, test.expected, names(test.items))

			for i := 1; i < len(test.items); i++ {
				assert.True(t, test.items[i-1].Mean >= test.items[i].Mean)
			}
		})
	}
}
