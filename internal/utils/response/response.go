// Package response provides helpers for writing consistent JSON HTTP
// responses from the mock Remote Data Service.
//
// Success responses carry whatever shape the handler produced (a
// record, an array). Error responses always use the same envelope so
// consumers know what failure looks like:
//
//	{ "status": "error", "error": "field Name is required" }
package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Response is the standard envelope returned for error cases.
type Response struct {
	Status string `json:"status"` // "ok" or "error"
	Error  string `json:"error"`  // human-readable error detail
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status
// code. Header() → WriteHeader() → body, in that order — once the first
// body byte is written the headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// GeneralError wraps any Go error into the standard envelope. Use it
// for unexpected failures (DB errors, decode errors, missing records).
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError flattens go-playground/validator field errors into a
// single human-readable envelope, one clause per failing field.
//
// Example output:
//
//	{ "status": "error", "error": "field Name is required, field Course is required" }
func ValidationError(errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMessages, ", "),
	}
}
