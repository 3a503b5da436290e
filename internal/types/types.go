// Package types holds all shared data structures (records) used across
// the application. Keeping them in one place prevents import cycles —
// the dashboard, the API client, storage, and the mock-API handlers can
// all import types without depending on each other.
package types

// Student represents one record in the remote Students collection.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — controls how the field appears on the wire
//     (lowercase names match the collection's REST conventions).
//
//  2. validate:"..." — rules checked by the go-playground/validator
//     package on the server side of the mock API. "required" means the
//     field must be non-zero / non-empty.
//
// ID is assigned by the Remote Data Service and is an opaque string:
// nothing in this codebase parses it, orders by it, or assumes a format.
type Student struct {
	ID     string `json:"id"`
	Name   string `json:"name"   validate:"required"`
	Email  string `json:"email"  validate:"required"`
	Course string `json:"course" validate:"required"`
}

// Course represents one record in the remote Courses collection.
// Courses are read-only from the dashboard's perspective — fetched once
// at startup, never created, updated, or deleted here.
//
// Code is the value a Student.Course field points at. There is no
// referential integrity behind that link: a student can carry a code
// that no longer exists in the Courses collection.
type Course struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// FormData is the transient staging record behind the add/edit dialog.
// It mirrors a Student minus the server-assigned ID: created empty,
// mutated field-by-field as the user types, reset after a successful
// submit or when the dialog closes.
//
// The validate tags drive internal/validation; notblank and email_shape
// are custom validators registered there.
type FormData struct {
	Name   string `json:"name"   validate:"notblank"`
	Email  string `json:"email"  validate:"notblank,email_shape"`
	Course string `json:"course" validate:"required"`
}
