package sample

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/profstat/internal/constants"
	"github.com/hyp3rd/profstat/internal/sentinel"
)

// Reader parses profiler output into samples.
type Reader struct {
	r         io.Reader
	delimiter rune
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithDelimiter sets the rune separating the function name from the runtime.
func WithDelimiter(delimiter rune) ReaderOption {
	return func(r *Reader) {
		r.delimiter = delimiter
	}
}

// NewReader returns a Reader consuming r.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	reader := &Reader{
		r:         r,
		delimiter: constants.DefaultDelimiter,
	}
	for _, opt := range opts {
		opt(reader)
	}

	return reader
}

// ValidDelimiter reports whether delimiter can separate the two fields of a line.
func ValidDelimiter(delimiter rune) bool {
	return delimiter != 0 &&
		delimiter != '"' &&
		delimiter != '\r' &&
		delimiter != '\n' &&
		utf8.ValidRune(delimiter) &&
		delimiter != utf8.RuneError
}

// ReadAll parses every line of the input. The first malformed line aborts the read.
func (r *Reader) ReadAll(ctx context.Context) ([]Sample, error) {
	if !ValidDelimiter(r.delimiter) {
		return nil, ewrap.Wrapf(sentinel.ErrInvalidOption, "delimiter %q", r.delimiter)
	}

	cr := csv.NewReader(r.r)
	cr.Comma = r.delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var samples []Sample

	for {
		if err := ctx.Err(); err != nil {
			return nil, ewrap.Wrap(err, "reading profiler output")
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, ewrap.Wrapf(sentinel.ErrMalformedLine, "line %d: %v", parseErr.Line, parseErr.Err)
			}

			return nil, fmt.Errorf("%w: %w", sentinel.ErrReadProfile, err)
		}

		// whitespace-only lines are blank
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}

		line, _ := cr.FieldPos(0)

		s, err := parseRecord(record, line)
		if err != nil {
			return nil, err
		}

		samples = append(samples, s)
	}

	return samples, nil
}

func parseRecord(record []string, line int) (Sample, error) {
	// an unterminated quote swallows the following lines into the field
	for _, field := range record {
		if strings.ContainsAny(field, "\r\n") {
			return Sample{}, ewrap.Wrapf(sentinel.ErrMalformedLine, "line %d: unterminated quoted field", line)
		}
	}

	if len(record) != 2 {
		return Sample{}, ewrap.Wrapf(sentinel.ErrMalformedLine, "line %d: expected 2 fields, got %d", line, len(record))
	}

	// names are kept verbatim: " foo" and "foo" are different functions
	name := record[0]
	if strings.TrimSpace(name) == "" {
		return Sample{}, ewrap.Wrapf(sentinel.ErrMalformedLine, "line %d: empty function name", line)
	}

	field := strings.TrimSpace(record[1])

	runtime, err := strconv.ParseFloat(field, 64)
	if err != nil || math.IsNaN(runtime) || math.IsInf(runtime, 0) {
		return Sample{}, ewrap.Wrapf(sentinel.ErrInvalidRuntime, "line %d: %q", line, field)
	}

	return Sample{Function: name, Runtime: runtime}, nil
}

// ReadFile opens path and parses it with a Reader built from opts.
func ReadFile(ctx context.Context, path string, opts ...ReaderOption) ([]Sample, error) {
	if path == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "path")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", sentinel.ErrReadProfile, err)
	}
	defer f.Close()

	return NewReader(f, opts...).ReadAll(ctx)
}
