// Package mocks provides an in-memory tracer for handler and service tests.
// Nothing is exported; the spans opened and the errors traced on them are
// kept so tests can assert on them.
package mocks

import (
	"context"
	"sync"

	"bookspace/infras/otel"
)

type Span struct {
	Scope      string
	Name       string
	Errors     []error
	Events     []string
	Attributes map[string]any
	Ended      bool
}

type Otel struct {
	mu    sync.Mutex
	spans []*Span
}

func NewOtel() *Otel {
	return &Otel{}
}

func (o *Otel) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, otel.Scope) {
	o.mu.Lock()
	defer o.mu.Unlock()

	span := &Span{Scope: scopeName, Name: spanName, Attributes: map[string]any{}}
	o.spans = append(o.spans, span)

	return ctx, &scope{owner: o, span: span}
}

func (o *Otel) Shutdown(_ context.Context) error {
	return nil
}

// Spans returns a snapshot of every span opened so far, in order.
func (o *Otel) Spans() []Span {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]Span, len(o.spans))
	for i, span := range o.spans {
		out[i] = *span
	}

	return out
}

// Span looks a span up by name.
func (o *Otel) Span(name string) (Span, bool) {
	for _, span := range o.Spans() {
		if span.Name == name {
			return span, true
		}
	}

	return Span{}, false
}

type scope struct {
	owner *Otel
	span  *Span
}

func (s *scope) End() {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	s.span.Ended = true
}

func (s *scope) TraceError(err error) {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	s.span.Errors = append(s.span.Errors, err)
}

func (s *scope) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func (s *scope) AddEvent(name string) {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	s.span.Events = append(s.span.Events, name)
}

func (s *scope) SetAttribute(key string, value any) {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()

	s.span.Attributes[key] = value
}

func (s *scope) SetAttributes(attributes map[string]any) {
	for key, value := range attributes {
		s.SetAttribute(key, value)
	}
}
