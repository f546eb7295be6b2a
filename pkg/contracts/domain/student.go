package domain

// Student is a validated student record. Room references Room.ID and may
// point at a room that does not exist.
type Student struct {
	ID   int    `json:"id" xml:"id" validate:"nonnegative"`
	Name string `json:"name" xml:"name" validate:"notblank"`
	Room int    `json:"room" xml:"room" validate:"nonnegative"`
}

// StudentFields lists the required keys of a raw student object in
// declaration order.
var StudentFields = []string{"id", "name", "room"}
