package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// Request is the transport-independent view of an inbound call.
type Request struct {
	Method string
	Params map[string]string
	Query  url.Values
	Body   map[string]json.RawMessage
}

// Result is what a handler produces: a status and a JSON-encodable body.
type Result struct {
	Status int
	Body   interface{}
}

// OK wraps a success body.
func OK(body interface{}) Result {
	return Result{Status: http.StatusOK, Body: body}
}

// Fail builds an error result; an empty message selects the status default.
func Fail(status int, message string) Result {
	return Result{Status: status, Body: httperrors.New(status, message)}
}

// ParseBody decodes a JSON object body. An empty body yields an empty object.
func ParseBody(r io.Reader) (map[string]json.RawMessage, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	body := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(data)) == 0 {
		return body, nil
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("decode body: %w", err)
	}
	if body == nil {
		body = map[string]json.RawMessage{}
	}
	return body, nil
}

// Has reports whether field is present in the body with a non-null value.
func (r Request) Has(field string) bool {
	raw, ok := r.Body[field]
	if !ok {
		return false
	}
	return !bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// String decodes a string field.
func (r Request) String(field string) (string, error) {
	var s string
	if err := json.Unmarshal(r.Body[field], &s); err != nil {
		return "", fmt.Errorf("field %s: %w", field, err)
	}
	return s, nil
}

// Int decodes an integer field sent either as a JSON number or a numeric string.
func (r Request) Int(field string) (int64, error) {
	n, err := parseInt(r.Body[field])
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", field, err)
	}
	return n, nil
}

// IntList decodes an array of integers (numbers or numeric strings).
func (r Request) IntList(field string) ([]int64, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(r.Body[field], &raw); err != nil {
		return nil, fmt.Errorf("field %s: %w", field, err)
	}
	out := make([]int64, 0, len(raw))
	for _, item := range raw {
		n, err := parseInt(item)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// ParamInt parses a path parameter as an integer id.
func (r Request) ParamInt(name string) (int64, error) {
	return strconv.ParseInt(r.Params[name], 10, 64)
}

// Page reads the page query parameter.
func (r Request) Page() (page int, explicit bool) {
	raw := ""
	if r.Query != nil {
		raw = r.Query.Get("page")
	}
	return trivia.ParsePage(raw)
}

func parseInt(raw json.RawMessage) (int64, error) {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, err
	}
	return n.Int64()
}

// rawText renders a scalar JSON value as plain text: strings are unquoted,
// numbers keep their literal form, null and absent values become "".
func rawText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(trimmed))
}
