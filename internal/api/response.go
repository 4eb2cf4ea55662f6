package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

// Response is the JSON envelope shared by every endpoint.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

// HTTPError pairs a status code with a stable error code.
type HTTPError struct {
	Status int
	Code   string
}

func (e HTTPError) Error() string { return e.Code }

// Errors mapped to fixed HTTP statuses by writeError.
var (
	ErrNotFound         = HTTPError{Status: http.StatusNotFound, Code: "not_found"}
	ErrMethodNotAllowed = HTTPError{Status: http.StatusMethodNotAllowed, Code: "method_not_allowed"}
)

// ValidationError collects per-parameter messages.
type ValidationError url.Values

func (e ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, strings.Join(e[k], "; ")))
	}
	return "validation error: " + strings.Join(parts, ", ")
}

// Add appends message to the messages recorded for field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Data: data})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	detail := &ErrorDetail{Code: "internal_error", Message: http.StatusText(status)}

	var valErr ValidationError
	var httpErr HTTPError
	switch {
	case errors.As(err, &valErr):
		status = http.StatusUnprocessableEntity
		detail.Code = "validation_error"
		detail.Message = "invalid query parameters"
		detail.Details = maps.Clone(map[string][]string(valErr))
	case errors.As(err, &httpErr):
		status = httpErr.Status
		detail.Code = httpErr.Code
		detail.Message = err.Error()
	}

	writeJSON(w, status, Response{Error: detail})
}
