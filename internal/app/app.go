package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"roomroster/internal/config"
	"roomroster/internal/dataprocessing"
	apperrors "roomroster/internal/errors"
	"roomroster/internal/exporter"
	"roomroster/internal/infrastructure"
)

// Request names the two sources and the output format of one run. An empty
// Format selects the configured default.
type Request struct {
	StudentsSource string
	RoomsSource    string
	Format         string
}

// Application wires the loader, combiner and exporter together
type Application struct {
	Config   *config.Config
	Logger   *slog.Logger
	Tracer   trace.Tracer
	Loader   *dataprocessing.Loader
	Combiner *dataprocessing.Combiner
	Exporter *exporter.Exporter

	out io.Writer
}

// NewApplication creates an application writing its result to out. A nil
// tracer disables tracing.
func NewApplication(cfg *config.Config, logger *slog.Logger, tracer trace.Tracer, out io.Writer) *Application {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(infrastructure.TracerName)
	}
	if out == nil {
		out = os.Stdout
	}
	return &Application{
		Config:   cfg,
		Logger:   infrastructure.WithComponent(logger, "app"),
		Tracer:   tracer,
		Loader:   dataprocessing.NewLoader(logger),
		Combiner: dataprocessing.NewCombiner(logger),
		Exporter: exporter.NewExporter(logger),
		out:      out,
	}
}

// Run executes load, combine and export in that order. The format is
// checked before any source is read. On failure nothing has been written.
func (a *Application) Run(ctx context.Context, req Request) error {
	ctx = infrastructure.EnsureTraceID(ctx)
	ctx, span := a.Tracer.Start(ctx, "roomroster.run", trace.WithAttributes(
		attribute.String("students_source", req.StudentsSource),
		attribute.String("rooms_source", req.RoomsSource),
	))
	defer span.End()

	err := a.run(ctx, req)
	if err != nil {
		infrastructure.RecordError(ctx, err,
			attribute.String("error_type", string(apperrors.TypeOf(err))))
		a.Logger.LogAttrs(ctx, slog.LevelError, "Run failed", apperrors.LogAttrs(err)...)
	}
	return err
}

func (a *Application) run(ctx context.Context, req Request) error {
	name := req.Format
	if name == "" {
		name = a.Config.Export.Format
	}
	format, err := exporter.ParseFormat(name)
	if err != nil {
		return err
	}

	a.Logger.InfoContext(ctx, "Starting run",
		slog.String("students_source", req.StudentsSource),
		slog.String("rooms_source", req.RoomsSource),
		slog.String("format", format.String()),
		slog.String("otel_trace_id", infrastructure.TraceIDFromContext(ctx)))

	loadCtx, loadSpan := a.Tracer.Start(ctx, "load")
	students, rooms, err := a.Loader.Load(loadCtx, req.StudentsSource, req.RoomsSource)
	if err != nil {
		infrastructure.RecordError(loadCtx, err)
		loadSpan.End()
		return err
	}
	loadSpan.SetAttributes(
		attribute.Int("students", len(students)),
		attribute.Int("rooms", len(rooms)))
	loadSpan.End()

	_, combineSpan := a.Tracer.Start(ctx, "combine")
	combined := a.Combiner.Combine(students, rooms)
	combineSpan.SetAttributes(attribute.Int("rooms", len(combined)))
	combineSpan.End()

	exportCtx, exportSpan := a.Tracer.Start(ctx, "export",
		trace.WithAttributes(attribute.String("format", format.String())))
	defer exportSpan.End()
	if err := a.Exporter.Export(a.out, combined, format); err != nil {
		infrastructure.RecordError(exportCtx, err)
		return err
	}

	a.Logger.InfoContext(ctx, "Run completed",
		slog.Int("rooms", len(combined)),
		slog.String("format", format.String()))
	return nil
}
