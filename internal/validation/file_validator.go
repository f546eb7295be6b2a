package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	apperrors "roomroster/internal/errors"
)

// FileValidator checks input sources before they are read
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger.With(slog.String("component", "file_validator")),
	}
}

// ValidateFile checks that path names an existing, readable regular file.
// Every failure is reported as a not-found error carrying the path.
func (v *FileValidator) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		v.logger.Debug("File does not exist",
			slog.String("file", path))
		return apperrors.NewNotFoundError(path, err)
	}
	if err != nil {
		v.logger.Debug("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewNotFoundError(path, err)
	}
	if info.IsDir() {
		v.logger.Debug("Path is a directory, not a file",
			slog.String("path", path))
		return apperrors.NewNotFoundError(path, fmt.Errorf("%s is a directory, not a file", path))
	}

	// Check if file is readable by opening it
	file, err := os.Open(path)
	if err != nil {
		v.logger.Debug("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewNotFoundError(path, err)
	}
	file.Close()

	v.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ReadFile validates path and reads it fully into memory. The handle is
// released before returning.
func (v *FileValidator) ReadFile(path string) ([]byte, error) {
	if err := v.ValidateFile(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		v.logger.Debug("Failed to read file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return nil, apperrors.NewNotFoundError(path, err)
	}
	return data, nil
}
