package view

import (
	"strings"
	"sync"

	"bookspace/shared/constant"
	"bookspace/shared/failure"
)

// Form holds field values and the errors of the last submission. Field names
// are the API's, e.g. "Name" or "RoomId", so server errors map one to one.
type Form struct {
	mu         sync.Mutex
	fields     []string
	values     map[string]string
	errors     map[string]string
	global     string
	submitting bool
}

func NewForm(fields ...string) *Form {
	return &Form{
		fields: fields,
		values: make(map[string]string, len(fields)),
		errors: map[string]string{},
	}
}

func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[field] = value
}

// SetValues copies values keyed by field name, e.g. from a decoded request.
func (f *Form) SetValues(values map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for field, value := range values {
		f.values[field] = value
	}
}

func (f *Form) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.values[field]
}

// Begin starts a submission: previous errors are cleared.
func (f *Form) Begin() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.errors = map[string]string{}
	f.global = ""
	f.submitting = true
}

func (f *Form) Succeed() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.submitting = false
}

// Fail attaches the first message of every known field to that field and the
// payload message to the banner. With nothing to show, the banner gets the
// generic fallback.
func (f *Form) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.submitting = false

	problem, ok := failure.AsProblem(err)
	if !ok {
		f.global = constant.MessageFallback

		return
	}

	for _, field := range f.fields {
		if msg := fieldError(problem, field); msg != "" {
			f.errors[field] = msg
		}
	}

	f.global = problem.Message

	if len(f.errors) == 0 && f.global == "" {
		f.global = constant.MessageFallback
	}
}

// SetGlobal shows msg in the banner without touching field errors.
func (f *Form) SetGlobal(msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.global = msg
}

func fieldError(problem *failure.Problem, field string) string {
	if msg := problem.FieldError(field); msg != "" {
		return msg
	}

	for key := range problem.Errors {
		if strings.EqualFold(key, field) {
			return problem.FieldError(key)
		}
	}

	return ""
}

func (f *Form) Error(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.errors[field]
}

func (f *Form) Global() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.global
}

func (f *Form) HasErrors() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.errors) > 0 || f.global != ""
}

func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.submitting
}

func (f *Form) SubmitLabel() string {
	if f.Submitting() {
		return constant.MessageButtonSaving
	}

	return constant.MessageButtonSave
}
