package exporter

import (
	apperrors "roomroster/internal/errors"
)

// Format is an output format tag. The set is closed.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatJSON

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{FormatJSON, FormatXML}
}

// ParseFormat maps a format name to its tag. Matching is exact.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatXML:
		return f, nil
	default:
		return "", apperrors.NewUnsupportedFormatError(s)
	}
}

// String implements fmt.Stringer
func (f Format) String() string {
	return string(f)
}
