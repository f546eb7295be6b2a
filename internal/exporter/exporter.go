package exporter

import (
	"fmt"
	"io"
	"log/slog"

	apperrors "roomroster/internal/errors"
	"roomroster/pkg/contracts/domain"
)

// Render builds the complete payload for rooms in the given format.
func Render(rooms []domain.RoomWithStudents, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return renderJSON(rooms)
	case FormatXML:
		return renderXML(rooms)
	default:
		return nil, apperrors.NewUnsupportedFormatError(string(format))
	}
}

// Exporter writes rendered payloads to an output stream.
type Exporter struct {
	logger *slog.Logger
}

// NewExporter creates a new exporter
func NewExporter(logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{logger: logger.With(slog.String("component", "exporter"))}
}

// Export renders rooms and writes the payload followed by a newline in a
// single write. Nothing is written when rendering fails.
func (e *Exporter) Export(w io.Writer, rooms []domain.RoomWithStudents, format Format) error {
	payload, err := Render(rooms, format)
	if err != nil {
		e.logger.Debug("Failed to render output",
			slog.String("format", format.String()),
			slog.String("error", err.Error()))
		return err
	}

	out := make([]byte, 0, len(payload)+1)
	out = append(out, payload...)
	out = append(out, '\n')
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write %s output: %w", format, err)
	}

	e.logger.Info("Output written",
		slog.String("format", format.String()),
		slog.Int("rooms", len(rooms)),
		slog.Int("bytes", len(out)))
	return nil
}
