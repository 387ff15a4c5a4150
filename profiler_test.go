package profstat

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/profstat/internal/sentinel"
	"github.com/hyp3rd/profstat/pkg/sample"
	"github.com/hyp3rd/profstat/pkg/stats"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "profile.log")
	assert.Nil(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "slowest function first",
			input: "a:1.0\nb:5.0\na:3.0\n",
			expected: "Function                      Mean execution time\n" +
				"b                             5.0000 +- 0.0000 ms\n" +
				"a                             2.0000 +- 1.0000 ms\n",
		},
		{
			name:  "population standard deviation",
			input: "f:10\nf:20\n",
			expected: "Function                      Mean execution time\n" +
				"f                             15.0000 +- 5.0000 ms\n",
		},
		{
			name:  "instrumented profiler output",
			input: "\"LinceOnUpdate\": 0.5\n\"LinceDrawScene\": 2.5\n\"LinceOnUpdate\": 1.5\n",
			expected: "Function                      Mean execution time\n" +
				"LinceDrawScene                2.5000 +- 0.0000 ms\n" +
				"LinceOnUpdate                 1.0000 +- 0.5000 ms\n",
		},
		{
			name:     "empty file",
			input:    "",
			expected: "Function                      Mean execution time\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			profiler, err := NewProfiler()
			assert.Nil(t, err)

			var out bytes.Buffer
			assert.Nil(t, Run(context.Background(), profiler, writeProfile(t, test.input), &out))
			assert.Equal(t, test.expected, out.String())
		})
	}
}

func TestRun_EveryFunctionOnce(t *testing.T) {
	input := "c:3\na:1\nb:2\nc:4\na:9\nd:0.1\nb:2\n"

	profiler, err := NewProfiler()
	assert.Nil(t, err)

	var out bytes.Buffer
	assert.Nil(t, Run(context.Background(), profiler, writeProfile(t, input), &out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(t, 5, len(lines))

	seen := make(map[string]int)
	for _, line := range lines[1:] {
		seen[strings.Fields(line)[0]]++
	}

	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1, "d": 1}, seen)
}

func TestRun_Errors(t *testing.T) {
	profiler, err := NewProfiler()
	assert.Nil(t, err)

	var out bytes.Buffer

	err = Run(context.Background(), profiler, filepath.Join(t.TempDir(), "missing.log"), &out)
	assert.True(t, errors.Is(err, sentinel.ErrReadProfile))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	err = Run(context.Background(), profiler, writeProfile(t, "a:1\nb:slow\n"), &out)
	assert.True(t, errors.Is(err, sentinel.ErrInvalidRuntime))

	err = Run(context.Background(), profiler, writeProfile(t, "a:1\nb\n"), &out)
	assert.True(t, errors.Is(err, sentinel.ErrMalformedLine))

	assert.Equal(t, 0, out.Len())
}

func TestNewProfiler_Options(t *testing.T) {
	var progress [][2]int

	profiler, err := NewProfiler(
		WithDelimiter(';'),
		WithNameWidth(4),
		WithPrecision(2),
		WithUnit("us"),
		WithProgress(func(done, total int) {
			progress = append(progress, [2]int{done, total})
		}),
	)
	assert.Nil(t, err)

	var out bytes.Buffer
	assert.Nil(t, Run(context.Background(), profiler, writeProfile(t, "x;1\ny;4\nx;3\n"), &out))
	assert.Equal(t, "FunctionMean execution time\ny   4.00 +- 0.00 us\nx   2.00 +- 1.00 us\n", out.String())
	assert.Equal(t, [][2]int{{1, 2}, {2, 2}}, progress)
}

func TestNewProfiler_InvalidOptions(t *testing.T) {
	tests := []struct {
		name        string
		options     []Option
		expectedErr error
	}{
		{name: "quote delimiter", options: []Option{WithDelimiter('"')}, expectedErr: sentinel.ErrInvalidOption},
		{name: "newline delimiter", options: []Option{WithDelimiter('\n')}, expectedErr: sentinel.ErrInvalidOption},
		{name: "negative width", options: []Option{WithNameWidth(-30)}, expectedErr: sentinel.ErrInvalidOption},
		{name: "negative precision", options: []Option{WithPrecision(-1)}, expectedErr: sentinel.ErrInvalidOption},
		{name: "empty unit", options: []Option{WithUnit("")}, expectedErr: sentinel.ErrParamCannotBeEmpty},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			profiler, err := NewProfiler(test.options...)
			assert.Nil(t, profiler)
			assert.True(t, errors.Is(err, test.expectedErr))
		})
	}
}

func TestProfiler_RenderCanceled(t *testing.T) {
	profiler, err := NewProfiler()
	assert.Nil(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err = profiler.Render(ctx, &out, nil)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, out.Len())
}

// tagMiddleware records the order in which decorated services are entered.
type tagMiddleware struct {
	next  Service
	tag   string
	trace *[]string
}

func (mw tagMiddleware) Load(ctx context.Context, path string) ([]sample.Sample, error) {
	*mw.trace = append(*mw.trace, mw.tag)

	return mw.next.Load(ctx, path)
}

func (mw tagMiddleware) Aggregate(ctx context.Context, samples []sample.Sample) ([]stats.FunctionStats, error) {
	return mw.next.Aggregate(ctx, samples)
}

func (mw tagMiddleware) Render(ctx context.Context, w io.Writer, results []stats.FunctionStats) error {
	return mw.next.Render(ctx, w, results)
}

func TestApplyMiddleware(t *testing.T) {
	profiler, err := NewProfiler()
	assert.Nil(t, err)

	var trace []string

	tag := func(name string) Middleware {
		return func(next Service) Service {
			return tagMiddleware{next: next, tag: name, trace: &trace}
		}
	}

	svc := ApplyMiddleware(profiler, tag("inner"), tag("outer"))

	var out bytes.Buffer
	assert.Nil(t, Run(context.Background(), svc, writeProfile(t, "a:1\n"), &out))
	assert.Equal(t, []string{"outer", "inner"}, trace)
}
