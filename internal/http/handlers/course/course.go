// Package course contains the mock Remote Data Service handler for the
// Courses collection. Courses are read-only over HTTP — records are
// seeded at server startup, and the dashboard only ever lists them.
package course

import (
	"log/slog"
	"net/http"

	"github.com/AvdhutBhokare/student-management-dashboard/internal/storage"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/utils/response"
)

// List handles GET /Courses
// Returns a JSON array of every course, in seeding order.
// Returns an empty array [] (not null) when the collection is empty.
func List(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all courses")

		courses, err := store.GetCourses()
		if err != nil {
			slog.Error("error getting courses", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, courses)
	}
}
