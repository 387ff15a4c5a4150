package sample

import (
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/profstat/internal/constants"
	"github.com/hyp3rd/profstat/internal/sentinel"
)

// Recorder writes samples in the format produced by the instrumented profiler:
//
//	"<function>": <runtime>
//
// It is safe for concurrent use.
type Recorder struct {
	mu  sync.Mutex
	w   io.Writer
	buf []byte
}

// NewRecorder returns a Recorder writing to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Record writes one sample for name, converting runtime to milliseconds.
func (r *Recorder) Record(name string, runtime time.Duration) error {
	return r.RecordMillis(name, float64(runtime)/float64(time.Millisecond))
}

// RecordMillis writes one sample for name with a runtime already expressed in milliseconds.
func (r *Recorder) RecordMillis(name string, runtime float64) error {
	if strings.TrimSpace(name) == "" {
		return ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "function name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.buf = r.buf[:0]
	r.buf = append(r.buf, '"')
	r.buf = append(r.buf, strings.ReplaceAll(name, `"`, `""`)...)
	r.buf = append(r.buf, '"', constants.DefaultDelimiter, ' ')
	r.buf = strconv.AppendFloat(r.buf, runtime, 'g', constants.RecorderPrecision, 64)
	r.buf = append(r.buf, '\n')

	if _, err := r.w.Write(r.buf); err != nil {
		return ewrap.Wrap(err, "failed to record sample")
	}

	return nil
}

// Track starts timing name and returns the function that records the elapsed time.
//
//	done := rec.Track("update")
//	// ... timed work ...
//	if err := done(); err != nil {
//		return err
//	}
func (r *Recorder) Track(name string) func() error {
	start := time.Now()

	return func() error {
		return r.Record(name, time.Since(start))
	}
}
