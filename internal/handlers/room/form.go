package room

import (
	"bookspace/internal/domains/room/model"
	"bookspace/internal/domains/room/model/dto"
	"bookspace/internal/view"
	"bookspace/transport/http/render"
)

type formPage struct {
	Title  string
	Action string
	Form   *view.Form
}

func (p formPage) NameInput() render.Input {
	return render.Input{
		Name:  dto.InputName,
		Label: "Room name",
		Type:  "text",
		Value: p.Form.Value(model.FieldName),
		Error: p.Form.Error(model.FieldName),
	}
}

func (p formPage) CapacityInput() render.Input {
	return render.Input{
		Name:  dto.InputCapacity,
		Label: "Capacity",
		Type:  "number",
		Value: p.Form.Value(model.FieldCapacity),
		Error: p.Form.Error(model.FieldCapacity),
	}
}

func (p formPage) LocationSelect() render.Select {
	options := make([]render.Option, 0, len(model.Buildings))
	for _, building := range model.Buildings {
		options = append(options, render.Option{Value: building, Label: building})
	}

	return render.Select{
		Name:        dto.InputLocation,
		Label:       "Location",
		Value:       p.Form.Value(model.FieldLocation),
		Placeholder: "Select a location",
		Error:       p.Form.Error(model.FieldLocation),
		Options:     options,
	}
}

func (p formPage) Actions() render.Actions {
	return render.FormActions(p.Form, model.Path)
}
