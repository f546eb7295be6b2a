package dataprocessing

import (
	"log/slog"

	"roomroster/pkg/contracts/domain"
)

// Combiner joins students into the rooms they reference.
type Combiner struct {
	logger *slog.Logger
}

// NewCombiner creates a combiner that logs through logger.
func NewCombiner(logger *slog.Logger) *Combiner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Combiner{logger: logger.With(slog.String("component", "combiner"))}
}

// Combine returns one RoomWithStudents per distinct room id, in order of
// first appearance. When ids repeat, the last room's fields win but the
// position stays where the id was first seen. Students keep their input
// order within a room; students whose room does not exist are dropped.
// The inputs are not modified.
func (c *Combiner) Combine(students []domain.Student, rooms []domain.Room) []domain.RoomWithStudents {
	result := make([]domain.RoomWithStudents, 0, len(rooms))
	index := make(map[int]int, len(rooms))
	duplicates := 0

	for _, r := range rooms {
		if pos, ok := index[r.ID]; ok {
			result[pos] = domain.NewRoomWithStudents(r)
			duplicates++
			continue
		}
		index[r.ID] = len(result)
		result = append(result, domain.NewRoomWithStudents(r))
	}

	dropped := 0
	for _, s := range students {
		pos, ok := index[s.Room]
		if !ok {
			dropped++
			continue
		}
		result[pos].Students = append(result[pos].Students, s)
	}

	c.logger.Debug("Students combined into rooms",
		slog.Int("rooms", len(result)),
		slog.Int("students", len(students)-dropped),
		slog.Int("dropped_students", dropped),
		slog.Int("duplicate_room_ids", duplicates))
	return result
}
