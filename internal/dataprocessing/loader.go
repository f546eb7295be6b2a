package dataprocessing

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	apperrors "roomroster/internal/errors"
	"roomroster/internal/validation"
	"roomroster/pkg/contracts/domain"
)

// Loader reads the student and room sources and returns validated records.
type Loader struct {
	files   *validation.FileValidator
	records *validation.RecordValidator
	logger  *slog.Logger
}

// NewLoader creates a loader that logs through logger.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		files:   validation.NewFileValidator(logger),
		records: validation.NewRecordValidator(logger),
		logger:  logger.With(slog.String("component", "loader")),
	}
}

// Load reads studentsSource then roomsSource, decodes both and validates
// every record. The first failure is returned and nothing else is.
func (l *Loader) Load(ctx context.Context, studentsSource, roomsSource string) ([]domain.Student, []domain.Room, error) {
	rawStudents, err := l.readSource(ctx, studentsSource)
	if err != nil {
		return nil, nil, err
	}
	rawRooms, err := l.readSource(ctx, roomsSource)
	if err != nil {
		return nil, nil, err
	}

	students, err := l.records.ValidateStudents(rawStudents)
	if err != nil {
		return nil, nil, withSource(err, studentsSource)
	}
	rooms, err := l.records.ValidateRooms(rawRooms)
	if err != nil {
		return nil, nil, withSource(err, roomsSource)
	}

	l.logger.InfoContext(ctx, "Sources loaded",
		slog.String("students_source", studentsSource),
		slog.String("rooms_source", roomsSource),
		slog.Int("students", len(students)),
		slog.Int("rooms", len(rooms)))
	return students, rooms, nil
}

func (l *Loader) readSource(ctx context.Context, source string) ([]map[string]any, error) {
	data, err := l.files.ReadFile(source)
	if err != nil {
		return nil, err
	}
	raw, err := DecodeRecords(source, data)
	if err != nil {
		l.logger.DebugContext(ctx, "Source rejected by decoder",
			slog.String("source", source),
			slog.String("error", err.Error()))
		return nil, err
	}
	l.logger.DebugContext(ctx, "Source decoded",
		slog.String("source", source),
		slog.Int("bytes", len(data)),
		slog.Int("records", len(raw)))
	return raw, nil
}

func withSource(err error, source string) error {
	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		appErr.WithContext(apperrors.ContextSource, source)
	}
	return err
}

// DecodeRecords parses data as a JSON array of objects. data must be UTF-8
// without a byte order mark. Numbers are kept as json.Number so integer
// checks can be exact.
func DecodeRecords(source string, data []byte) ([]map[string]any, error) {
	if bytes.HasPrefix(data, utf8BOM) {
		return nil, decodeErrorAt(source, "unexpected UTF-8 byte order mark", data, 0)
	}
	if offset, ok := firstInvalidUTF8(data); !ok {
		return nil, decodeErrorAt(source, "invalid UTF-8", data, int64(offset))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil, decodeErrorAt(source, "empty document", data, int64(len(data)))
		}
		var syntaxErr *json.SyntaxError
		if stderrors.As(err, &syntaxErr) {
			// Offset counts the offending byte; report its own position.
			return nil, decodeErrorAt(source, syntaxErr.Error(), data, syntaxErr.Offset-1)
		}
		if stderrors.Is(err, io.ErrUnexpectedEOF) {
			return nil, decodeErrorAt(source, "unexpected end of JSON input", data, int64(len(data)))
		}
		return nil, apperrors.NewDecodeError(source, err.Error())
	}

	// Anything after the first value is rejected.
	if _, err := dec.Token(); !stderrors.Is(err, io.EOF) {
		return nil, decodeErrorAt(source, "extra data after JSON value", data, dec.InputOffset())
	}

	items, ok := doc.([]any)
	if !ok {
		return nil, apperrors.NewDecodeError(source,
			fmt.Sprintf("expected an array of objects, got %s", validation.JSONTypeName(doc)))
	}

	records := make([]map[string]any, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, apperrors.NewDecodeError(source,
				fmt.Sprintf("element %d: expected an object, got %s", i, validation.JSONTypeName(item))).
				WithContext(apperrors.ContextIndex, i)
		}
		records = append(records, obj)
	}
	return records, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// firstInvalidUTF8 returns the offset of the first byte that is not part of a
// valid UTF-8 sequence. ok is true when data is entirely valid.
func firstInvalidUTF8(data []byte) (offset int, ok bool) {
	if utf8.Valid(data) {
		return 0, true
	}
	for offset < len(data) {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			return offset, false
		}
		offset += size
	}
	return offset, false
}

func decodeErrorAt(source, reason string, data []byte, offset int64) error {
	line, col := lineColumn(data, offset)
	return apperrors.NewDecodeError(source, fmt.Sprintf("%s (line %d, column %d)", reason, line, col)).
		WithContext(apperrors.ContextOffset, offset).
		WithContext(apperrors.ContextLine, line).
		WithContext(apperrors.ContextColumn, col)
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	if offset < 0 {
		offset = 0
	}
	prefix := data[:offset]
	line := bytes.Count(prefix, []byte("\n")) + 1
	col := int(offset) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}
