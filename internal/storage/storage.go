// Package storage defines the Storage interface — the contract any
// database backend must satisfy to back the mock Remote Data Service.
//
// The HTTP handlers depend only on this interface, never on a concrete
// database: swapping SQLite for something else means implementing these
// methods and changing one line in cmd/mockapi. Tests pass a fake.
package storage

import (
	"errors"

	"github.com/AvdhutBhokare/student-management-dashboard/internal/types"
)

// ErrStudentNotFound is the sentinel for id-addressed operations on a
// student that does not exist. Handlers translate it to 404.
var ErrStudentNotFound = errors.New("student not found")

// Storage is the database contract for the two collections the mock
// service exposes. Students is the mutable collection; Courses is only
// ever listed and seeded.
type Storage interface {
	// CreateStudent inserts a new record, assigning it a fresh opaque
	// id (any id on the input is ignored), and returns the stored record.
	CreateStudent(student types.Student) (types.Student, error)

	// GetStudents returns every student in insertion order.
	// Returns an empty slice (not nil) when there are none.
	GetStudents() ([]types.Student, error)

	// GetStudentByID fetches a single student, or ErrStudentNotFound.
	GetStudentByID(id string) (types.Student, error)

	// UpdateStudentByID replaces all fields except the id and returns
	// the record as stored, or ErrStudentNotFound.
	UpdateStudentByID(id string, student types.Student) (types.Student, error)

	// DeleteStudentByID removes a record, or returns ErrStudentNotFound.
	DeleteStudentByID(id string) error

	// GetCourses returns every course. Empty slice when there are none.
	GetCourses() ([]types.Course, error)

	// CreateCourse inserts a course record (used by startup seeding),
	// assigning it a fresh id, and returns the stored record.
	CreateCourse(course types.Course) (types.Course, error)
}
