package errors

import "net/http"

// Default messages used when a failure carries no description of its own.
const (
	MsgBadRequest          = "bad request"
	MsgNotFound            = "resource not found"
	MsgMethodNotAllowed    = "method not allowed"
	MsgInternalServerError = "internal server error"

	// MsgUnprocessable repeats the 400 wording. Clients of the trivia frontend
	// match on it, so it stays as is.
	MsgUnprocessable = "bad request"
)

// DefaultMessage returns the generic message for an HTTP status.
func DefaultMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return MsgBadRequest
	case http.StatusNotFound:
		return MsgNotFound
	case http.StatusMethodNotAllowed:
		return MsgMethodNotAllowed
	case http.StatusUnprocessableEntity:
		return MsgUnprocessable
	case http.StatusInternalServerError:
		return MsgInternalServerError
	default:
		return http.StatusText(status)
	}
}
