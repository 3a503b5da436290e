package dashboard

import (
	"context"
	"log/slog"

	"github.com/AvdhutBhokare/student-management-dashboard/internal/api"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/types"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/validation"
)

// ConfirmFunc is the blocking confirmation gate in front of a delete.
// It receives the student about to be removed and returns true to
// proceed. Returning false makes the whole operation a no-op — no
// request is sent and no state changes.
type ConfirmFunc func(st types.Student) bool

// Controller owns the dashboard State and reconciles it with the
// Remote Data Service.
//
// MUTATION DISCIPLINE:
// ─────────────────────
// Local state is only ever mutated after a network call succeeds.
// A failed create/update/delete leaves State exactly as it was — the
// error is logged and (for the startup Students fetch only) stored for
// display. There is no retry, no rollback, and nothing to roll back.
//
// The Controller is meant for a single logical thread: it is NOT safe
// for concurrent use from multiple goroutines.
type Controller struct {
	client  *api.Client
	log     *slog.Logger
	confirm ConfirmFunc
	state   State
}

// NewController wires a controller to a Remote Data Service client.
// A nil confirm defaults to always-approve (useful for tests and
// non-interactive callers).
func NewController(client *api.Client, log *slog.Logger, confirm ConfirmFunc) *Controller {
	if confirm == nil {
		confirm = func(types.Student) bool { return true }
	}
	return &Controller{
		client:  client,
		log:     log,
		confirm: confirm,
		state:   NewState(),
	}
}

// State returns a snapshot of the current dashboard state.
func (c *Controller) State() State { return c.state }

// LoadStudents performs the one-shot startup fetch of the Students
// collection. The loading flag settles regardless of outcome; on
// failure the error message is stored in State for display and the
// list stays empty.
func (c *Controller) LoadStudents(ctx context.Context) error {
	students, err := c.client.ListStudents(ctx)
	if err != nil {
		c.log.Error("failed to fetch students", slog.String("error", err.Error()))
		c.state = c.state.StudentsFailed(err.Error())
		return err
	}
	c.state = c.state.StudentsLoaded(students)
	return nil
}

// LoadCourses performs the one-shot startup fetch of the Courses
// collection. A failure here is logged only — the course list is left
// silently empty and the dashboard falls back to showing raw codes.
func (c *Controller) LoadCourses(ctx context.Context) {
	courses, err := c.client.ListCourses(ctx)
	if err != nil {
		c.log.Error("failed to fetch courses", slog.String("error", err.Error()))
		return
	}
	c.state = c.state.CoursesLoaded(courses)
}

// OpenAdd opens the creation dialog.
func (c *Controller) OpenAdd() { c.state = c.state.OpenAdd() }

// OpenEdit opens the edit dialog for the student with the given id,
// pre-populating the form. Returns false if no such student is listed.
func (c *Controller) OpenEdit(id string) bool {
	st, ok := c.findStudent(id)
	if !ok {
		return false
	}
	c.state = c.state.OpenEdit(st)
	return true
}

// CloseDialog abandons the open dialog and resets the form.
func (c *Controller) CloseDialog() { c.state = c.state.CloseDialog() }

// SetField records one form input.
func (c *Controller) SetField(field, value string) {
	c.state = c.state.SetField(field, value)
}

// SubmitAdd validates the form and, when valid, creates the student.
// ok is false when validation failed (messages are stored in State for
// inline display; nothing is sent) or when the create itself failed.
func (c *Controller) SubmitAdd(ctx context.Context) (ok bool, err error) {
	errs := validation.Check(c.state.Form)
	if !errs.Valid() {
		c.state = c.state.SetErrors(errs)
		return false, nil
	}
	if _, err := c.CreateStudent(ctx); err != nil {
		return false, err
	}
	c.state = c.state.CloseDialog()
	return true, nil
}

// SubmitEdit validates the form and, when valid, updates the student
// whose id was captured when the edit dialog opened.
func (c *Controller) SubmitEdit(ctx context.Context) (ok bool, err error) {
	errs := validation.Check(c.state.Form)
	if !errs.Valid() {
		c.state = c.state.SetErrors(errs)
		return false, nil
	}
	if _, err := c.UpdateStudent(ctx); err != nil {
		return false, err
	}
	c.state = c.state.CloseDialog()
	return true, nil
}

// CreateStudent POSTs the current form to the Students collection and,
// on success, appends the server-returned record (now carrying its
// assigned id) to the end of the list.
//
// The form is NOT re-validated here; callers wanting the advisory
// checks go through SubmitAdd.
func (c *Controller) CreateStudent(ctx context.Context) (types.Student, error) {
	created, err := c.client.CreateStudent(ctx, c.state.Form)
	if err != nil {
		c.log.Error("failed to create student", slog.String("error", err.Error()))
		return types.Student{}, err
	}
	c.state = c.state.StudentAdded(created)
	c.log.Info("student created", slog.String("id", created.ID))
	return created, nil
}

// UpdateStudent PUTs the current form to the student captured by
// OpenEdit and, on success, swaps the server-returned record into the
// list in place of the old entry.
func (c *Controller) UpdateStudent(ctx context.Context) (types.Student, error) {
	updated, err := c.client.UpdateStudent(ctx, c.state.EditID, c.state.Form)
	if err != nil {
		c.log.Error("failed to update student",
			slog.String("id", c.state.EditID),
			slog.String("error", err.Error()))
		return types.Student{}, err
	}
	c.state = c.state.StudentReplaced(updated)
	c.log.Info("student updated", slog.String("id", updated.ID))
	return updated, nil
}

// DeleteStudent removes the student with the given id, gated by the
// confirmation callback. deleted is false when the id is not listed,
// when the user declined (no request is sent in either case), or when
// the DELETE failed (state untouched).
func (c *Controller) DeleteStudent(ctx context.Context, id string) (deleted bool, err error) {
	st, ok := c.findStudent(id)
	if !ok {
		return false, nil
	}
	if !c.confirm(st) {
		return false, nil
	}
	if err := c.client.DeleteStudent(ctx, id); err != nil {
		c.log.Error("failed to delete student",
			slog.String("id", id),
			slog.String("error", err.Error()))
		return false, err
	}
	c.state = c.state.StudentRemoved(id)
	c.log.Info("student deleted", slog.String("id", id))
	return true, nil
}

// CourseName resolves a course code to its display name via the
// in-memory course list. Unknown codes come back unchanged — the raw
// code is the fallback display when the referenced course is missing
// or the Courses fetch never populated.
func (c *Controller) CourseName(code string) string {
	for _, course := range c.state.Courses {
		if course.Code == code {
			return course.Name
		}
	}
	return code
}

func (c *Controller) findStudent(id string) (types.Student, bool) {
	for _, st := range c.state.Students {
		if st.ID == id {
			return st, true
		}
	}
	return types.Student{}, false
}
