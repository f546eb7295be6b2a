package exporter

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "roomroster/internal/errors"
	"roomroster/internal/shared/testutil"
	"roomroster/pkg/contracts/domain"
)

func sampleRooms() []domain.RoomWithStudents {
	return []domain.RoomWithStudents{
		{ID: 1, Name: "A", Students: []domain.Student{
			{ID: 10, Name: "X", Room: 1},
		}},
		{ID: 2, Name: "B", Students: []domain.Student{}},
	}
}

func TestRender_JSON(t *testing.T) {
	got, err := Render(sampleRooms(), FormatJSON)

	require.NoError(t, err)
	expected := `[
  {
    "id": 1,
    "name": "A",
    "students": [
      {
        "id": 10,
        "name": "X",
        "room": 1
      }
    ]
  },
  {
    "id": 2,
    "name": "B",
    "students": []
  }
]`
	assert.Equal(t, expected, string(got))
}

func TestRender_XML(t *testing.T) {
	got, err := Render(sampleRooms(), FormatXML)

	require.NoError(t, err)
	expected := `<?xml version="1.0" encoding="UTF-8"?>
<rooms>
  <room>
    <id>1</id>
    <name>A</name>
    <students>
      <student>
        <id>10</id>
        <name>X</name>
        <room>1</room>
      </student>
    </students>
  </room>
  <room>
    <id>2</id>
    <name>B</name>
    <students></students>
  </room>
</rooms>`
	assert.Equal(t, expected, string(got))
}

func TestRender_Empty(t *testing.T) {
	tests := []struct {
		name     string
		rooms    []domain.RoomWithStudents
		format   Format
		expected string
	}{
		{name: "json nil", format: FormatJSON, expected: "[]"},
		{name: "json empty", rooms: []domain.RoomWithStudents{}, format: FormatJSON, expected: "[]"},
		{name: "xml nil", format: FormatXML, expected: xml.Header + "<rooms></rooms>"},
		{name: "xml empty", rooms: []domain.RoomWithStudents{}, format: FormatXML, expected: xml.Header + "<rooms></rooms>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.rooms, tt.format)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(got))
		})
	}
}

func TestRender_JSONNilStudents(t *testing.T) {
	rooms := []domain.RoomWithStudents{{ID: 1, Name: "A"}}

	got, err := Render(rooms, FormatJSON)

	require.NoError(t, err)
	assert.Contains(t, string(got), `"students": []`)
	assert.NotContains(t, string(got), "null")
	assert.Nil(t, rooms[0].Students)
}

func TestRender_JSONKeepsTextVerbatim(t *testing.T) {
	rooms := []domain.RoomWithStudents{{ID: 1, Name: "Aula <Zoë> & co", Students: []domain.Student{}}}

	got, err := Render(rooms, FormatJSON)

	require.NoError(t, err)
	assert.Contains(t, string(got), `"name": "Aula <Zoë> & co"`)

	var decoded []domain.RoomWithStudents
	require.NoError(t, json.Unmarshal(got, &decoded))
	assert.Equal(t, rooms, decoded)
}

func TestRender_XMLEscapesText(t *testing.T) {
	rooms := []domain.RoomWithStudents{{ID: 1, Name: "A & <B>", Students: []domain.Student{}}}

	got, err := Render(rooms, FormatXML)

	require.NoError(t, err)
	assert.Contains(t, string(got), "<name>A &amp; &lt;B&gt;</name>")
}

func TestRender_UnsupportedFormat(t *testing.T) {
	got, err := Render(sampleRooms(), Format("yaml"))

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeUnsupportedFormat))
	assert.Equal(t, "unsupported format: yaml", err.Error())
}

// countingWriter records each Write call.
type countingWriter struct {
	bytes.Buffer
	writes int
	err    error
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	if w.err != nil {
		return 0, w.err
	}
	return w.Buffer.Write(p)
}

func TestExporter_Export(t *testing.T) {
	for _, format := range Formats() {
		t.Run(format.String(), func(t *testing.T) {
			logger, logs := testutil.NewTestLogger(t)
			w := &countingWriter{}

			err := NewExporter(logger).Export(w, sampleRooms(), format)

			require.NoError(t, err)
			payload, _ := Render(sampleRooms(), format)
			assert.Equal(t, string(payload)+"\n", w.String())
			assert.Equal(t, 1, w.writes)
			testutil.AssertLogAttr(t, logs, "format", format.String())
		})
	}
}

func TestExporter_Export_UnsupportedFormatWritesNothing(t *testing.T) {
	w := &countingWriter{}

	err := NewExporter(nil).Export(w, sampleRooms(), Format("yaml"))

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeUnsupportedFormat))
	assert.Equal(t, 0, w.writes)
	assert.Empty(t, w.String())
}

func TestExporter_Export_WriteFailure(t *testing.T) {
	boom := errors.New("disk full")
	w := &countingWriter{err: boom}

	err := NewExporter(nil).Export(w, sampleRooms(), FormatJSON)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to write json output")
}
