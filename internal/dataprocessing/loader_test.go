package dataprocessing

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "roomroster/internal/errors"
	"roomroster/internal/shared/testutil"
	"roomroster/pkg/contracts/domain"
)

func TestLoader_Load(t *testing.T) {
	fixtures := testutil.NewSourceFixtures(t)
	studentsPath := fixtures.Students(
		testutil.Student(10, "X", 1),
		testutil.Student(11, "Y", 2),
		testutil.Student(12, "Z", 1),
	)
	roomsPath := fixtures.Rooms(
		testutil.Room(1, "A"),
		testutil.Room(2, "B"),
	)

	students, rooms, err := NewLoader(nil).Load(context.Background(), studentsPath, roomsPath)

	require.NoError(t, err)
	assert.Equal(t, []domain.Student{
		{ID: 10, Name: "X", Room: 1},
		{ID: 11, Name: "Y", Room: 2},
		{ID: 12, Name: "Z", Room: 1},
	}, students)
	assert.Equal(t, []domain.Room{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}, rooms)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name       string
		students   string // raw content; "" means the file is not created
		rooms      string
		wantType   apperrors.ErrorType
		wantSource string
		contains   string
	}{
		{
			name:       "missing students source",
			rooms:      `[]`,
			wantType:   apperrors.ErrTypeNotFound,
			wantSource: "students.json",
			contains:   "missing file:",
		},
		{
			name:       "missing rooms source",
			students:   `[]`,
			wantType:   apperrors.ErrTypeNotFound,
			wantSource: "rooms.json",
			contains:   "missing file:",
		},
		{
			name:       "students not JSON",
			students:   `[{"id": 1,}]`,
			rooms:      `[]`,
			wantType:   apperrors.ErrTypeDecode,
			wantSource: "students.json",
			contains:   "invalid JSON in",
		},
		{
			name:       "rooms not an array",
			students:   `[]`,
			rooms:      `{"id": 1, "name": "A"}`,
			wantType:   apperrors.ErrTypeDecode,
			wantSource: "rooms.json",
			contains:   "expected an array of objects, got object",
		},
		{
			name:       "invalid student",
			students:   `[{"id": -1, "name": "A", "room": 0}]`,
			rooms:      `[]`,
			wantType:   apperrors.ErrTypeValidation,
			wantSource: "students.json",
			contains:   "ID and room must be non-negative",
		},
		{
			name:       "invalid room",
			students:   `[]`,
			rooms:      `[{"id": "1", "name": "A"}]`,
			wantType:   apperrors.ErrTypeValidation,
			wantSource: "rooms.json",
			contains:   "id: expected integer, got string",
		},
		{
			name:       "decode failure in rooms wins over invalid students",
			students:   `[{"id": -1, "name": "A", "room": 0}]`,
			rooms:      `not json`,
			wantType:   apperrors.ErrTypeDecode,
			wantSource: "rooms.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixtures := testutil.NewSourceFixtures(t)
			studentsPath := fixtures.Path("students.json")
			roomsPath := fixtures.Path("rooms.json")
			if tt.students != "" {
				fixtures.WriteRaw("students.json", tt.students)
			}
			if tt.rooms != "" {
				fixtures.WriteRaw("rooms.json", tt.rooms)
			}

			students, rooms, err := NewLoader(nil).Load(context.Background(), studentsPath, roomsPath)

			require.Error(t, err)
			assert.Nil(t, students)
			assert.Nil(t, rooms)
			assert.True(t, apperrors.IsType(err, tt.wantType), "got %v", err)
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
			source, ok := apperrors.ContextValue(err, apperrors.ContextSource)
			require.True(t, ok)
			assert.Equal(t, tt.wantSource, filepath.Base(source.(string)))
		})
	}
}

func TestDecodeRecords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLen  int
		wantErr  string
		wantLine int
		wantCol  int
	}{
		{name: "empty array", input: `[]`, wantLen: 0},
		{name: "two objects", input: `[{"id": 1}, {"id": 2}]`, wantLen: 2},
		{name: "surrounding whitespace", input: "\n  [ {} ]  \n", wantLen: 1},
		{name: "empty document", input: ``, wantErr: "empty document"},
		{name: "whitespace only", input: "  \n ", wantErr: "empty document"},
		{name: "null document", input: `null`, wantErr: "expected an array of objects, got null"},
		{name: "string document", input: `"x"`, wantErr: "expected an array of objects, got string"},
		{name: "array of numbers", input: `[1, 2]`, wantErr: "element 0: expected an object, got number"},
		{name: "truncated", input: `[{"id": 1}`, wantErr: "unexpected end of JSON input"},
		{name: "trailing data", input: `[] []`, wantErr: "extra data after JSON value"},
		{
			name:     "invalid UTF-8 in a name",
			input:    "[{\"id\": 1, \"name\": \"A\xff\xfeB\", \"room\": 1}]",
			wantErr:  "invalid UTF-8",
			wantLine: 1,
			wantCol:  22,
		},
		{
			name:     "invalid UTF-8 on a later line",
			input:    "[\n  {\"name\": \"\xc3\"}\n]",
			wantErr:  "invalid UTF-8",
			wantLine: 2,
			wantCol:  13,
		},
		{
			name:     "byte order mark",
			input:    "\xef\xbb\xbf[]",
			wantErr:  "unexpected UTF-8 byte order mark",
			wantLine: 1,
			wantCol:  1,
		},
		{
			name:     "syntax error position",
			input:    "[\n  {\"id\": 1,}\n]",
			wantErr:  "invalid character '}'",
			wantLine: 2,
			wantCol:  12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeRecords("src.json", []byte(tt.input))

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Len(t, got, tt.wantLen)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsType(err, apperrors.ErrTypeDecode))
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, err.Error(), "src.json")
			if tt.wantLine != 0 {
				line, _ := apperrors.ContextValue(err, apperrors.ContextLine)
				col, _ := apperrors.ContextValue(err, apperrors.ContextColumn)
				assert.Equal(t, tt.wantLine, line)
				assert.Equal(t, tt.wantCol, col)
			}
		})
	}
}

func TestDecodeRecords_KeepsNumbersExact(t *testing.T) {
	got, err := DecodeRecords("src.json", []byte(`[{"id": 9007199254740993}]`))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, json.Number("9007199254740993"), got[0]["id"])
}

func TestDecodeRecords_ValidMultibyteText(t *testing.T) {
	got, err := DecodeRecords("src.json", []byte(`[{"name": "Zoë 教室 🎓"}]`))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Zoë 教室 🎓", got[0]["name"])
}

func TestLoader_Load_InvalidUTF8IsDecodeError(t *testing.T) {
	fixtures := testutil.NewSourceFixtures(t)
	studentsPath := fixtures.WriteRaw("students.json", "[{\"id\": 1, \"name\": \"A\xffB\", \"room\": 1}]")
	roomsPath := fixtures.Rooms(testutil.Room(1, "A"))

	students, rooms, err := NewLoader(nil).Load(context.Background(), studentsPath, roomsPath)

	require.Error(t, err)
	assert.Nil(t, students)
	assert.Nil(t, rooms)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeDecode))
	assert.Contains(t, err.Error(), "invalid UTF-8")
}

func TestLineColumn(t *testing.T) {
	data := []byte("ab\ncd\nef")

	tests := []struct {
		offset int64
		line   int
		column int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{7, 3, 2},
		{100, 3, 3},
		{-1, 1, 1},
	}

	for _, tt := range tests {
		line, col := lineColumn(data, tt.offset)
		assert.Equal(t, tt.line, line, "offset %d", tt.offset)
		assert.Equal(t, tt.column, col, "offset %d", tt.offset)
	}
}
