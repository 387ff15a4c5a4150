package stats

import "sort"

// statsSorter is a custom sorter for function statistics.
type statsSorter struct {
	items []FunctionStats
	less  func(i, j *FunctionStats) bool
}

func (s *statsSorter) Len() int           { return len(s.items) }
func (s *statsSorter) Swap(i, j int)      { s.items[i], s.items[j] = s.items[j], s.items[i] }
func (s *statsSorter) Less(i, j int) bool { return s.less(&s.items[i], &s.items[j]) }

// SortByMeanDesc orders items from the slowest to the fastest function.
// Functions with equal means keep their relative order.
func SortByMeanDesc(items []FunctionStats) {
	sort.Stable(&statsSorter{
		items: items,
		less: func(i, j *FunctionStats) bool {
			return i.Mean > j.Mean
		},
	})
}
