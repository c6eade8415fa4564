package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Bind adapts a pure handler to net/http. It is the only place that touches
// the request and response writer.
func Bind(h HandlerFunc, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := NewRequest(r)
		if err != nil {
			logger.Debug().Err(err).Str("path", r.URL.Path).Msg("malformed request body")
			httperrors.RespondBadRequest(w, "")
			return
		}
		Write(w, h(r.Context(), req))
	}
}

// NewRequest builds a Request from an *http.Request routed by gorilla/mux.
func NewRequest(r *http.Request) (Request, error) {
	req := Request{
		Method: r.Method,
		Params: mux.Vars(r),
		Query:  r.URL.Query(),
		Body:   map[string]json.RawMessage{},
	}
	if r.Body == nil || r.Method == http.MethodGet || r.Method == http.MethodDelete {
		return req, nil
	}
	body, err := ParseBody(r.Body)
	if err != nil {
		return Request{}, err
	}
	req.Body = body
	return req, nil
}

// Write encodes a Result as JSON.
func Write(w http.ResponseWriter, res Result) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Status)
	_ = json.NewEncoder(w).Encode(res.Body)
}
