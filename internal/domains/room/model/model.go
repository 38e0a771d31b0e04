package model

import "fmt"

const (
	EntityName = "room"
	Path       = "/rooms"

	FieldName     = "Name"
	FieldCapacity = "Capacity"
	FieldLocation = "Location"
)

// Fields lists the form fields in the order the API reports them.
var Fields = []string{FieldName, FieldCapacity, FieldLocation}

// Buildings is the fixed set a room's location is picked from.
var Buildings = []string{
	"Gedung D3",
	"Gedung D4",
	"Gedung Pasca Sarjana",
	"Gedung SAW",
	"Aula Serbaguna",
	"Lapangan Olahraga",
	"Lapangan Parkir",
}

type Room struct {
	ID       int    `json:"id"       validate:"gt=0"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Location string `json:"location"`
}

func ItemPath(id int) string {
	return fmt.Sprintf("%s/%d", Path, id)
}

func ID(room Room) int {
	return room.ID
}
