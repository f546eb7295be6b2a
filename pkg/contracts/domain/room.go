package domain

// Room is a validated room record. Name is required but otherwise unchecked.
type Room struct {
	ID   int    `json:"id" xml:"id" validate:"nonnegative"`
	Name string `json:"name" xml:"name"`
}

// RoomFields lists the required keys of a raw room object in declaration order.
var RoomFields = []string{"id", "name"}

// RoomWithStudents is a room together with the students assigned to it, in
// the order they appeared in the input.
type RoomWithStudents struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Students []Student `json:"students"`
}

// NewRoomWithStudents copies the room's fields into an aggregate with an
// empty, non-nil student list.
func NewRoomWithStudents(r Room) RoomWithStudents {
	return RoomWithStudents{
		ID:       r.ID,
		Name:     r.Name,
		Students: make([]Student, 0),
	}
}
