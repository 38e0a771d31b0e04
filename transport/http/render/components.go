package render

import (
	"bookspace/internal/domains/booking/model"
	"bookspace/internal/view"
	"bookspace/shared/constant"
)

type Option struct {
	Value string
	Label string
}

type Input struct {
	Name     string
	Label    string
	Type     string
	Value    string
	Error    string
	Disabled bool
}

type Select struct {
	Name        string
	Label       string
	Value       string
	Placeholder string
	Error       string
	Options     []Option
}

type Actions struct {
	CancelURL   string
	SubmitLabel string
	Submitting  bool
}

// FormActions renders the Cancel link and the submit button of form.
func FormActions(form *view.Form, cancelURL string) Actions {
	return Actions{
		CancelURL:   cancelURL,
		SubmitLabel: form.SubmitLabel(),
		Submitting:  form.Submitting(),
	}
}

const (
	StateNone  = ""
	StateEmpty = "empty"
	StateError = "error"
)

// State is the message shown above a table instead of, or next to, its rows.
type State struct {
	State   string
	Message string
}

func ListState(state view.State, empty string) State {
	switch state {
	case view.StateError:
		return State{State: StateError, Message: constant.MessageLoadFailed}
	case view.StateEmpty:
		return State{State: StateEmpty, Message: empty}
	default:
		return State{State: StateNone}
	}
}

type BookingDetail struct {
	Booking    model.Booking
	DismissURL string
}

// StatusOptions is the status filter, "All Status" first.
func StatusOptions() []Option {
	options := []Option{{Value: constant.DefaultValueStatus, Label: model.StatusLabel(constant.DefaultValueStatus)}}

	for _, status := range model.Statuses {
		options = append(options, Option{Value: status, Label: model.StatusLabel(status)})
	}

	return options
}
