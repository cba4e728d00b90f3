// Package observability wires the process-wide logger. Local runs use text
// or JSON slog handlers; when an OTLP endpoint is configured, log records
// are bridged into the OpenTelemetry pipeline instead.
package observability

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/contrib/processors/minsev"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

const instrumentationName = "github.com/florianilch/dribbble-go"

// Instrument installs the default slog logger for the process.
//
// With an empty otlpEndpoint the logger writes to stderr in the requested
// format ("text" or "json"). Otherwise records flow through an OTLP log
// exporter: "stdout" for the debug exporter, a "grpc://" prefix for the gRPC
// transport, anything else for HTTP.
func Instrument(level slog.Level, format, otlpEndpoint string) error {
	var handler slog.Handler

	switch {
	case otlpEndpoint != "":
		provider, err := newLoggerProvider(context.Background(), otlpEndpoint, level)
		if err != nil {
			return fmt.Errorf("creating logger provider: %w", err)
		}
		handler = otelslog.NewHandler(instrumentationName, otelslog.WithLoggerProvider(provider))
	case format == "json":
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	default:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

func newLoggerProvider(ctx context.Context, endpoint string, level slog.Level) (*sdklog.LoggerProvider, error) {
	var exporter sdklog.Exporter

	switch {
	case endpoint == "stdout":
		exp, err := stdoutlog.New()
		if err != nil {
			return nil, err
		}
		exporter = exp
	case strings.HasPrefix(endpoint, "grpc://"):
		exp, err := otlploggrpc.New(ctx,
			otlploggrpc.WithEndpoint(strings.TrimPrefix(endpoint, "grpc://")),
			otlploggrpc.WithInsecure(),
		)
		if err != nil {
			return nil, err
		}
		exporter = exp
	default:
		exp, err := otlploghttp.New(ctx,
			otlploghttp.WithEndpoint(endpoint),
			otlploghttp.WithInsecure(),
		)
		if err != nil {
			return nil, err
		}
		exporter = exp
	}

	processor := minsev.NewLogProcessor(sdklog.NewBatchProcessor(exporter), severity(level))
	return sdklog.NewLoggerProvider(sdklog.WithProcessor(processor)), nil
}

// severity maps slog levels onto the minimum-severity filter.
func severity(level slog.Level) minsev.Severity {
	switch {
	case level <= slog.LevelDebug:
		return minsev.SeverityDebug
	case level <= slog.LevelInfo:
		return minsev.SeverityInfo
	case level <= slog.LevelWarn:
		return minsev.SeverityWarn
	default:
		return minsev.SeverityError
	}
}
