package stats

import (
	"context"
	"sync"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/profstat/internal/sentinel"
	"github.com/hyp3rd/profstat/pkg/sample"
)

// Collector groups runtimes by function name.
// Functions are remembered in the order they first appear.
type Collector struct {
	mu       sync.RWMutex // mutex to protect concurrent access to the runtimes
	order    []string
	runtimes map[string][]float64
}

// NewCollector creates a new, empty collector.
func NewCollector() *Collector {
	return &Collector{
		runtimes: make(map[string][]float64),
	}
}

// Add records one sample.
func (c *Collector) Add(s sample.Sample) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.add(s)
}

// AddAll records every sample in samples.
func (c *Collector) AddAll(samples []sample.Sample) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range samples {
		c.add(s)
	}
}

func (c *Collector) add(s sample.Sample) {
	values, ok := c.runtimes[s.Function]
	if !ok {
		c.order = append(c.order, s.Function)
	}

	c.runtimes[s.Function] = append(values, s.Runtime)
}

// Functions returns the distinct function names in order of first appearance.
func (c *Collector) Functions() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	functions := make([]string, len(c.order))
	copy(functions, c.order)

	return functions
}

// Len returns the number of distinct functions.
func (c *Collector) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}

// Compute returns the statistics of a single function.
func (c *Collector) Compute(function string) (FunctionStats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	runtimes, ok := c.runtimes[function]
	if !ok {
		return FunctionStats{}, ewrap.Wrap(sentinel.ErrFunctionNotFound, function)
	}

	return summarize(function, runtimes), nil
}

// GetStats returns the statistics of every function, in order of first appearance.
// progress, when not nil, is called once per function.
func (c *Collector) GetStats(ctx context.Context, progress ProgressFunc) ([]FunctionStats, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	results := make([]FunctionStats, 0, len(c.order))
	for i, function := range c.order {
		if err := ctx.Err(); err != nil {
			return nil, ewrap.Wrap(err, "aggregating samples")
		}

		results = append(results, summarize(function, c.runtimes[function]))

		if progress != nil {
			progress(i+1, len(c.order))
		}
	}

	return results, nil
}
