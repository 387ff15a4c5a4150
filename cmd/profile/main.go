// Command profile aggregates profiler output and prints the mean runtime of
// every function, slowest first.
//
// Usage:
//
//	profile <path-to-profiler-output>
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/hyp3rd/profstat"
	"github.com/hyp3rd/profstat/internal/sentinel"
	"github.com/hyp3rd/profstat/pkg/middleware"
	"github.com/hyp3rd/profstat/pkg/stats"
)

const (
	instrumentationName = "github.com/hyp3rd/profstat"

	exitFailure = 1
	exitUsage   = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// run executes the command and returns its exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintf(stderr, "profile: %v\nusage: profile <path-to-profiler-output>\n", sentinel.ErrUsage)

		return exitUsage
	}

	interactive := isTerminal(stderr)

	logger := newLogger(stderr, interactive)
	defer func() { _ = logger.Sync() }()

	svc, err := newService(logger.Sugar(), stderr, interactive)
	if err != nil {
		fmt.Fprintf(stderr, "profile: %v\n", err)

		return exitFailure
	}

	err = profstat.Run(ctx, svc, args[0], stdout)
	if err != nil {
		fmt.Fprintf(stderr, "profile: %v\n", err)

		return exitFailure
	}

	return 0
}

// newLogger returns the stage logger. Stage logs only reach stderr when it is a terminal.
func newLogger(stderr io.Writer, interactive bool) *zap.Logger {
	if !interactive {
		return zap.NewNop()
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(stderr),
		zapcore.InfoLevel,
	))
}

// newService builds the profiler and decorates it with logging and telemetry.
// The progress bar is only drawn when stderr is a terminal.
func newService(logger middleware.Logger, stderr io.Writer, interactive bool) (profstat.Service, error) {
	var options []profstat.Option

	if interactive {
		options = append(options, profstat.WithProgress(newProgressBar(stderr)))
	}

	profiler, err := profstat.NewProfiler(options...)
	if err != nil {
		return nil, err
	}

	svc := profstat.ApplyMiddleware(profiler,
		func(next profstat.Service) profstat.Service {
			return middleware.NewLoggingMiddleware(next, logger)
		},
		func(next profstat.Service) profstat.Service {
			return middleware.NewOTelTracingMiddleware(next, otel.Tracer(instrumentationName))
		},
	)

	return middleware.NewOTelMetricsMiddleware(svc, otel.Meter(instrumentationName))
}

// newProgressBar returns a progress callback drawing on w.
// The bar is created on the first call, once the number of functions is known.
func newProgressBar(w io.Writer) stats.ProgressFunc {
	var bar *progressbar.ProgressBar

	return func(done, total int) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionSetDescription("aggregating"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		_ = bar.Set(done)

		if done == total {
			_ = bar.Finish()
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
