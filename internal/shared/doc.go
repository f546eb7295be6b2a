// Package shared holds code used across roomroster packages that belongs to
// no single component.
//
// # Test Utilities
//
// The testutil subpackage provides:
//
//   - BufferedSlogHandler and NewTestLogger for asserting on log output
//   - Source fixtures that write student and room JSON files into t.TempDir()
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    logger, logs := testutil.NewTestLogger(t)
//	    sources := testutil.NewSourceFixtures(t)
//	    studentsPath := sources.Students(testutil.Student(10, "X", 1))
//	    roomsPath := sources.Rooms(testutil.Room(1, "A"))
//	    ...
//	}
package shared
