package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// Stream is the server side of a long-lived DataStar connection.
type Stream interface {
	context.Context

	// SendSignals patches frontend signals.
	SendSignals(signals map[string]any) error
	// SendComponent patches a DOM element with a rendered component.
	SendComponent(component templ.Component, opts ...TemplOption) error
}

// StreamFunc runs for the lifetime of the SSE connection. The connection
// ends when it returns or the client disconnects.
type StreamFunc func(stream Stream) error

type stream struct {
	context.Context
	sse *datastar.ServerSentEventGenerator
}

func (s *stream) SendSignals(signals map[string]any) error {
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return s.sse.PatchSignals(data)
}

func (s *stream) SendComponent(component templ.Component, opts ...TemplOption) error {
	return s.sse.PatchElementTempl(component, opts...)
}

type sseResponse struct {
	fn StreamFunc
}

func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return ErrBadRequest
	}
	sse := datastar.NewSSE(w, r)
	return s.fn(&stream{Context: r.Context(), sse: sse})
}

// SSE creates a streaming response for DataStar clients. Other clients get
// a 400 through the error handler.
//
//	return handler.SSE(func(s handler.Stream) error {
//		sub := notifier.Subscribe(s)
//		defer sub.Close()
//		for v := range sub.Updates() {
//			if err := s.SendSignals(map[string]any{"version": v}); err != nil {
//				return err
//			}
//		}
//		return nil
//	})
func SSE(fn StreamFunc) Response {
	return sseResponse{fn: fn}
}
