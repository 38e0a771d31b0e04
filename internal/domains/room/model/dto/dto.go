package dto

import (
	"net/http"
	"strconv"

	"bookspace/internal/domains/room/model"
	"bookspace/shared"
)

const (
	InputName     = "name"
	InputCapacity = "capacity"
	InputLocation = "location"
)

// RoomForm is the raw text of the room form, as typed.
type RoomForm struct {
	Name     string
	Capacity string
	Location string
}

func (f *RoomForm) FromRequest(r *http.Request) {
	f.Name = r.PostFormValue(InputName)
	f.Capacity = r.PostFormValue(InputCapacity)
	f.Location = r.PostFormValue(InputLocation)
}

func (f *RoomForm) FromModel(room model.Room) {
	f.Name = room.Name
	f.Capacity = strconv.Itoa(room.Capacity)
	f.Location = room.Location
}

// Values keys the form text by API field name.
func (f RoomForm) Values() map[string]string {
	return map[string]string{
		model.FieldName:     f.Name,
		model.FieldCapacity: f.Capacity,
		model.FieldLocation: f.Location,
	}
}

func (f RoomForm) ToRequest() RoomRequest {
	return RoomRequest{
		Name:     f.Name,
		Capacity: shared.ConvertStringToNumber(f.Capacity),
		Location: f.Location,
	}
}

// RoomRequest is the body of POST /rooms and PUT /rooms/{id}. A capacity that
// is not a number is sent as null for the API to reject.
type RoomRequest struct {
	Name     string `json:"name"`
	Capacity *int   `json:"capacity"`
	Location string `json:"location"`
}
