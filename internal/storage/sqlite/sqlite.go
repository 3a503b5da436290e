// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// SQLite keeps the whole mock service in a single file on disk — no
// separate server process, nothing to install beyond the driver. The
// blank import below registers the sqlite3 driver with database/sql;
// nothing from it is called directly.
//
// Record ids are random UUID strings, assigned here at insert time, so
// the id stays an opaque string exactly as the hosted service's would
// be — clients must never parse or order by it.
package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/AvdhutBhokare/student-management-dashboard/internal/storage"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/types"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
// A single *sql.DB is a connection pool and is safe for concurrent use.
type SQLite struct {
	Db *sql.DB
}

// interface conformance check
var _ storage.Storage = (*SQLite)(nil)

// New opens the SQLite database at path, creates the students and
// courses tables if they do not already exist, and returns a
// ready-to-use *SQLite.
//
// The rowid alias keeps insertion order observable: GetStudents and
// GetCourses list in the order records were created, matching the
// append-at-the-end behaviour the dashboard expects.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS students (
			seq    INTEGER PRIMARY KEY AUTOINCREMENT,
			id     TEXT    NOT NULL UNIQUE,
			name   TEXT    NOT NULL,
			email  TEXT    NOT NULL,
			course TEXT    NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create students table: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS courses (
			seq  INTEGER PRIMARY KEY AUTOINCREMENT,
			id   TEXT    NOT NULL UNIQUE,
			code TEXT    NOT NULL UNIQUE,
			name TEXT    NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create courses table: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// CreateStudent inserts a new row with a freshly assigned id.
// Placeholders (?) keep user input as pure data, never SQL syntax.
func (s *SQLite) CreateStudent(student types.Student) (types.Student, error) {
	stmt, err := s.Db.Prepare(
		"INSERT INTO students (id, name, email, course) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: prepare: %w", err)
	}
	defer stmt.Close()

	student.ID = uuid.NewString()
	if _, err := stmt.Exec(student.ID, student.Name, student.Email, student.Course); err != nil {
		return types.Student{}, fmt.Errorf("CreateStudent: exec: %w", err)
	}

	return student, nil
}

// GetStudents returns all student rows in insertion order.
func (s *SQLite) GetStudents() ([]types.Student, error) {
	rows, err := s.Db.Query(
		"SELECT id, name, email, course FROM students ORDER BY seq",
	)
	if err != nil {
		return nil, fmt.Errorf("GetStudents: query: %w", err)
	}
	defer rows.Close()

	// Pre-allocate an empty (non-nil) slice so an empty table encodes
	// as [] rather than null.
	students := make([]types.Student, 0)

	for rows.Next() {
		var student types.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.Course,
		); err != nil {
			return nil, fmt.Errorf("GetStudents: scan row: %w", err)
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetStudents: rows iteration: %w", err)
	}

	return students, nil
}

// GetStudentByID fetches exactly one student row by id.
func (s *SQLite) GetStudentByID(id string) (types.Student, error) {
	var student types.Student
	err := s.Db.QueryRow(
		"SELECT id, name, email, course FROM students WHERE id = ? LIMIT 1", id,
	).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.Course,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Student{}, storage.ErrStudentNotFound
		}
		return types.Student{}, fmt.Errorf("GetStudentByID: scan: %w", err)
	}

	return student, nil
}

// UpdateStudentByID replaces a student's data with the provided values
// and returns the record as stored.
func (s *SQLite) UpdateStudentByID(id string, student types.Student) (types.Student, error) {
	stmt, err := s.Db.Prepare(
		"UPDATE students SET name = ?, email = ?, course = ? WHERE id = ?",
	)
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(student.Name, student.Email, student.Course, id)
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return types.Student{}, fmt.Errorf("UpdateStudentByID: rows affected: %w", err)
	}
	if affected == 0 {
		return types.Student{}, storage.ErrStudentNotFound
	}

	// Re-fetch so the caller gets exactly what is stored.
	return s.GetStudentByID(id)
}

// DeleteStudentByID removes a student row by id.
func (s *SQLite) DeleteStudentByID(id string) error {
	stmt, err := s.Db.Prepare("DELETE FROM students WHERE id = ?")
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: prepare: %w", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(id)
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: exec: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("DeleteStudentByID: rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrStudentNotFound
	}

	return nil
}

// GetCourses returns all course rows in insertion order.
func (s *SQLite) GetCourses() ([]types.Course, error) {
	rows, err := s.Db.Query("SELECT id, code, name FROM courses ORDER BY seq")
	if err != nil {
		return nil, fmt.Errorf("GetCourses: query: %w", err)
	}
	defer rows.Close()

	courses := make([]types.Course, 0)

	for rows.Next() {
		var course types.Course
		if err := rows.Scan(&course.ID, &course.Code, &course.Name); err != nil {
			return nil, fmt.Errorf("GetCourses: scan row: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetCourses: rows iteration: %w", err)
	}

	return courses, nil
}

// CreateCourse inserts a course row with a freshly assigned id.
func (s *SQLite) CreateCourse(course types.Course) (types.Course, error) {
	stmt, err := s.Db.Prepare("INSERT INTO courses (id, code, name) VALUES (?, ?, ?)")
	if err != nil {
		return types.Course{}, fmt.Errorf("CreateCourse: prepare: %w", err)
	}
	defer stmt.Close()

	course.ID = uuid.NewString()
	if _, err := stmt.Exec(course.ID, course.Code, course.Name); err != nil {
		return types.Course{}, fmt.Errorf("CreateCourse: exec: %w", err)
	}

	return course, nil
}
