// Package dashboard holds the framework-independent core of the student
// management dashboard: an explicit State struct, pure transition
// functions over it, and a Controller that drives the Remote Data
// Service and reconciles State after each successful call.
//
// STATE MODEL — PURE TRANSITIONS:
// ────────────────────────────────
// Every user action and every settled network call maps to a named
// transition (OpenAdd, SetField, StudentAdded, …). Transitions take a
// State by value and return a new State; list changes always build a
// fresh slice rather than splicing in place, so a reader holding the
// previous State never observes a half-applied mutation.
package dashboard

import (
	"github.com/AvdhutBhokare/student-management-dashboard/internal/types"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/validation"
)

// Dialog identifies which (if any) form dialog is open.
type Dialog int

const (
	DialogNone Dialog = iota
	DialogAdd
	DialogEdit
)

// State is everything the presentation layer renders from.
//
// Students and Courses are wholesale replaced on load and rebuilt on
// every reconciliation; Form, Errors, Dialog and EditID are the
// transient dialog state; Loading and LoadError describe the one-shot
// startup fetch of the Students collection.
type State struct {
	Students []types.Student
	Courses  []types.Course

	Form   types.FormData
	Errors validation.Errors
	Dialog Dialog
	EditID string

	Loading   bool
	LoadError string
}

// NewState returns the initial state: empty collections, no dialog,
// loading flag raised until the first Students fetch settles.
func NewState() State {
	return State{
		Students: []types.Student{},
		Courses:  []types.Course{},
		Loading:  true,
	}
}

// OpenAdd opens the creation dialog with an empty form.
func (s State) OpenAdd() State {
	s.Dialog = DialogAdd
	s.Form = types.FormData{}
	s.Errors = nil
	s.EditID = ""
	return s
}

// OpenEdit opens the edit dialog pre-populated from an existing
// student. The id is captured now — it is what the eventual PUT targets
// even if the list changes underneath the open dialog.
func (s State) OpenEdit(st types.Student) State {
	s.Dialog = DialogEdit
	s.Form = types.FormData{Name: st.Name, Email: st.Email, Course: st.Course}
	s.Errors = nil
	s.EditID = st.ID
	return s
}

// CloseDialog discards the form, its errors, and the captured edit id.
func (s State) CloseDialog() State {
	s.Dialog = DialogNone
	s.Form = types.FormData{}
	s.Errors = nil
	s.EditID = ""
	return s
}

// SetField records one keystroke/selection into the staging form.
// Unknown field names are ignored.
func (s State) SetField(field, value string) State {
	switch field {
	case "name":
		s.Form.Name = value
	case "email":
		s.Form.Email = value
	case "course":
		s.Form.Course = value
	}
	return s
}

// SetErrors stores a validation result for inline display.
func (s State) SetErrors(errs validation.Errors) State {
	s.Errors = errs
	return s
}

// StudentsLoaded replaces the student list wholesale and settles the
// loading flag.
func (s State) StudentsLoaded(students []types.Student) State {
	s.Students = students
	if s.Students == nil {
		s.Students = []types.Student{}
	}
	s.Loading = false
	s.LoadError = ""
	return s
}

// StudentsFailed settles the loading flag and records the fetch error;
// the list stays as it was (the initial empty slice on startup).
func (s State) StudentsFailed(msg string) State {
	s.Loading = false
	s.LoadError = msg
	return s
}

// CoursesLoaded replaces the course list wholesale.
func (s State) CoursesLoaded(courses []types.Course) State {
	s.Courses = courses
	if s.Courses == nil {
		s.Courses = []types.Course{}
	}
	return s
}

// StudentAdded appends the server-returned record to the end of the
// list, preserving existing order.
func (s State) StudentAdded(st types.Student) State {
	next := make([]types.Student, 0, len(s.Students)+1)
	next = append(next, s.Students...)
	next = append(next, st)
	s.Students = next
	return s
}

// StudentReplaced rewrites the list, swapping in the server-returned
// record for the entry with the matching id. Every other entry and the
// relative order are unchanged. No match means no change.
func (s State) StudentReplaced(st types.Student) State {
	next := make([]types.Student, len(s.Students))
	for i, existing := range s.Students {
		if existing.ID == st.ID {
			next[i] = st
		} else {
			next[i] = existing
		}
	}
	s.Students = next
	return s
}

// StudentRemoved rewrites the list without the entry whose id matches.
// Removal is by identifier equality, never by position.
func (s State) StudentRemoved(id string) State {
	next := make([]types.Student, 0, len(s.Students))
	for _, existing := range s.Students {
		if existing.ID != id {
			next = append(next, existing)
		}
	}
	s.Students = next
	return s
}
