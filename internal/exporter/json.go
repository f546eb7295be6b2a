package exporter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"roomroster/pkg/contracts/domain"
)

// renderJSON encodes rooms as an indented JSON array. An empty or nil list
// renders as [].
func renderJSON(rooms []domain.RoomWithStudents) ([]byte, error) {
	if rooms == nil {
		rooms = []domain.RoomWithStudents{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalizeStudents(rooms)); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	// Encode terminates with a newline; the writer adds its own.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// normalizeStudents replaces nil student lists so they encode as [].
func normalizeStudents(rooms []domain.RoomWithStudents) []domain.RoomWithStudents {
	out := make([]domain.RoomWithStudents, len(rooms))
	for i, r := range rooms {
		if r.Students == nil {
			r.Students = []domain.Student{}
		}
		out[i] = r
	}
	return out
}
