// Package api is the HTTP client for the Remote Data Service — the
// hosted REST endpoint exposing the Students and Courses collections.
//
// The service is treated as opaque: this client knows the five routes
// in the contract and nothing else. It performs no retries, configures
// no timeout, and caches nothing; callers pass a context.Context if
// they want cancellation, and the dashboard deliberately never does
// (an unmounted view does not abort an in-flight request).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/AvdhutBhokare/student-management-dashboard/internal/types"
)

// StatusError is returned for any non-2xx response. The message format
// is fixed — it is what the dashboard stores and displays verbatim.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.Code)
}

// Client talks to one Remote Data Service instance.
// It is safe for concurrent use, though the dashboard drives it from a
// single logical thread.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// New returns a Client rooted at baseURL (e.g. "https://xyz.mockapi.io/api/v1").
// A trailing slash on baseURL is tolerated.
//
// The underlying http.Client has no Timeout on purpose: the dashboard
// configures none, and a hung request simply never settles.
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

// ListStudents fetches the entire Students collection.
//
//	GET /Students → 200 + JSON array
func (c *Client) ListStudents(ctx context.Context) ([]types.Student, error) {
	var students []types.Student
	if err := c.do(ctx, http.MethodGet, "/Students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// ListCourses fetches the entire Courses collection.
//
//	GET /Courses → 200 + JSON array
func (c *Client) ListCourses(ctx context.Context) ([]types.Course, error) {
	var courses []types.Course
	if err := c.do(ctx, http.MethodGet, "/Courses", nil, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// CreateStudent posts the form to the Students collection and returns
// the created record, now carrying the server-assigned id.
//
//	POST /Students → 200/201 + created Student
//
// The form is forwarded as-is: this operation does not re-validate.
func (c *Client) CreateStudent(ctx context.Context, form types.FormData) (types.Student, error) {
	var created types.Student
	if err := c.do(ctx, http.MethodPost, "/Students", form, &created); err != nil {
		return types.Student{}, err
	}
	return created, nil
}

// UpdateStudent replaces every field of the student with the given id
// and returns the record as stored by the service.
//
//	PUT /Students/{id} → 200 + updated Student
func (c *Client) UpdateStudent(ctx context.Context, id string, form types.FormData) (types.Student, error) {
	var updated types.Student
	if err := c.do(ctx, http.MethodPut, "/Students/"+url.PathEscape(id), form, &updated); err != nil {
		return types.Student{}, err
	}
	return updated, nil
}

// DeleteStudent removes the student with the given id.
//
//	DELETE /Students/{id} → 200/204
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/Students/"+url.PathEscape(id), nil, nil)
}

// do issues one request and decodes the response.
//
// Error taxonomy (mirrored by the dashboard's handling):
//   - transport failure → the underlying error, wrapped with the route
//   - non-2xx status    → *StatusError (body discarded)
//   - undecodable body  → the json error, wrapped
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%s %s: build request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused, then surface the
		// status in the fixed display format.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Code: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}
