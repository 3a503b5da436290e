// Package student contains the mock Remote Data Service handlers for
// the Students collection. The routes match the hosted service the
// dashboard was built against, capitalised paths included:
//
//	GET    /Students        → list the collection
//	POST   /Students        → create, server assigns the id
//	GET    /Students/{id}   → fetch one record
//	PUT    /Students/{id}   → replace all fields except the id
//	DELETE /Students/{id}   → remove the record
//
// HANDLER PATTERN — THE CLOSURE / FACTORY PATTERN:
// ─────────────────────────────────────────────────
// Each exported function accepts the storage dependency and returns a
// func with the exact http.HandlerFunc signature the router needs. The
// factory runs ONCE at route registration; the returned closure runs on
// every request and "closes over" the storage it was given.
package student

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/AvdhutBhokare/student-management-dashboard/internal/storage"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/types"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/utils/response"
)

// ─────────────────────────────────────────────────────────────────────────────
// Create handles POST /Students
//
// Request body (JSON) — no id, the server assigns one:
//
//	{ "name": "Jane Doe", "email": "jane@example.com", "course": "CS101" }
//
// Success response (201 Created) — the stored record:
//
//	{ "id": "…", "name": "Jane Doe", "email": "jane@example.com", "course": "CS101" }
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, or failed validation
//	500 Internal     — database error
//
// ─────────────────────────────────────────────────────────────────────────────
func Create(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a student")

		var student types.Student
		err := json.NewDecoder(r.Body).Decode(&student)

		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// Server-side validation is deliberately coarse (fields present,
		// nothing more); the dashboard's own advisory validation is the
		// user-facing one.
		if err := validator.New().Struct(student); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		created, err := store.CreateStudent(student)
		if err != nil {
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("student created", slog.String("id", created.ID))
		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// List handles GET /Students
// Returns a JSON array of every student, in creation order.
// Returns an empty array [] (not null) when the collection is empty.
// ─────────────────────────────────────────────────────────────────────────────
func List(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all students")

		students, err := store.GetStudents()
		if err != nil {
			slog.Error("error getting students", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, students)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /Students/{id}
//
// Error responses:
//
//	404 Not Found — no record with that id
//	500 Internal  — database error
//
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// r.PathValue extracts the {id} segment — Go 1.22+ ServeMux
		// supports named path parameters in the route pattern.
		id := r.PathValue("id")
		slog.Info("getting a student", slog.String("id", id))

		student, err := store.GetStudentByID(id)
		if err != nil {
			writeStorageError(w, id, "getting", err)
			return
		}

		response.WriteJSON(w, http.StatusOK, student)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PUT /Students/{id}
// Replaces ALL fields of an existing student; the id is immutable.
//
// Success response (200 OK) — the record as stored after the update.
//
// Error responses:
//
//	400 Bad Request — empty body, malformed JSON, or failed validation
//	404 Not Found   — no record with that id
//	500 Internal    — database error
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a student", slog.String("id", id))

		var student types.Student
		err := json.NewDecoder(r.Body).Decode(&student)
		if errors.Is(err, io.EOF) {
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if err := validator.New().Struct(student); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		updated, err := store.UpdateStudentByID(id, student)
		if err != nil {
			writeStorageError(w, id, "updating", err)
			return
		}

		slog.Info("student updated", slog.String("id", id))
		response.WriteJSON(w, http.StatusOK, updated)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /Students/{id}
//
// Success response: 204 No Content, empty body.
//
// Error responses:
//
//	404 Not Found — no record with that id
//	500 Internal  — database error
//
// ─────────────────────────────────────────────────────────────────────────────
func Delete(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a student", slog.String("id", id))

		if err := store.DeleteStudentByID(id); err != nil {
			writeStorageError(w, id, "deleting", err)
			return
		}

		slog.Info("student deleted", slog.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// writeStorageError maps the storage sentinel to 404 and everything
// else to 500, logging the latter.
func writeStorageError(w http.ResponseWriter, id, op string, err error) {
	if errors.Is(err, storage.ErrStudentNotFound) {
		response.WriteJSON(w, http.StatusNotFound, response.GeneralError(err))
		return
	}
	slog.Error("error "+op+" student",
		slog.String("id", id),
		slog.String("error", err.Error()))
	response.WriteJSON(w, http.StatusInternalServerError, response.GeneralError(err))
}
