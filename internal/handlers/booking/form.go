package booking

import (
	"strconv"

	"bookspace/internal/domains/booking/model"
	"bookspace/internal/domains/booking/model/dto"
	roomModel "bookspace/internal/domains/room/model"
	"bookspace/internal/view"
	"bookspace/transport/http/render"
)

type formPage struct {
	Title   string
	Action  string
	Form    *view.Form
	Rooms   []roomModel.Room
	Editing bool
}

// BorrowerInput is read-only on edit; the API does not accept a new borrower.
func (p formPage) BorrowerInput() render.Input {
	return render.Input{
		Name:     dto.InputBorrowerName,
		Label:    "Borrower Name",
		Type:     "text",
		Value:    p.Form.Value(model.FieldBorrowerName),
		Error:    p.Form.Error(model.FieldBorrowerName),
		Disabled: p.Editing,
	}
}

func (p formPage) RoomSelect() render.Select {
	options := make([]render.Option, 0, len(p.Rooms))
	for _, room := range p.Rooms {
		options = append(options, render.Option{Value: strconv.Itoa(room.ID), Label: room.Name})
	}

	return render.Select{
		Name:        dto.InputRoomID,
		Label:       "Room",
		Value:       p.Form.Value(model.FieldRoomID),
		Placeholder: "Select a room",
		Error:       p.Form.Error(model.FieldRoomID),
		Options:     options,
	}
}

func (p formPage) StartInput() render.Input {
	return render.Input{
		Name:  dto.InputStartTime,
		Label: "Start Time",
		Type:  "datetime-local",
		Value: p.Form.Value(model.FieldStartTime),
		Error: p.Form.Error(model.FieldStartTime),
	}
}

func (p formPage) EndInput() render.Input {
	return render.Input{
		Name:  dto.InputEndTime,
		Label: "End Time",
		Type:  "datetime-local",
		Value: p.Form.Value(model.FieldEndTime),
		Error: p.Form.Error(model.FieldEndTime),
	}
}

func (p formPage) Actions() render.Actions {
	return render.FormActions(p.Form, model.Path)
}
