package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// SourceFixtures writes student and room sources into a test's temp dir
type SourceFixtures struct {
	t   *testing.T
	dir string
}

// NewSourceFixtures creates fixtures rooted at t.TempDir()
func NewSourceFixtures(t *testing.T) *SourceFixtures {
	t.Helper()
	return &SourceFixtures{t: t, dir: t.TempDir()}
}

// Path returns the path name would have inside the fixture directory
func (f *SourceFixtures) Path(name string) string {
	return filepath.Join(f.dir, name)
}

// Students writes records to students.json and returns its path
func (f *SourceFixtures) Students(records ...map[string]any) string {
	f.t.Helper()
	return f.WriteJSON("students.json", nonNil(records))
}

// Rooms writes records to rooms.json and returns its path
func (f *SourceFixtures) Rooms(records ...map[string]any) string {
	f.t.Helper()
	return f.WriteJSON("rooms.json", nonNil(records))
}

// WriteJSON marshals v into name and returns its path
func (f *SourceFixtures) WriteJSON(name string, v any) string {
	f.t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		f.t.Fatalf("marshal fixture %s: %v", name, err)
	}
	return f.WriteRaw(name, string(data))
}

// WriteRaw writes content verbatim into name and returns its path
func (f *SourceFixtures) WriteRaw(name, content string) string {
	f.t.Helper()
	path := f.Path(name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		f.t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// Student returns a raw student object
func Student(id int, name string, room int) map[string]any {
	return map[string]any{"id": id, "name": name, "room": room}
}

// Room returns a raw room object
func Room(id int, name string) map[string]any {
	return map[string]any{"id": id, "name": name}
}

func nonNil(records []map[string]any) []map[string]any {
	if records == nil {
		return []map[string]any{}
	}
	return records
}
