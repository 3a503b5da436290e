package dashboard

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AvdhutBhokare/student-management-dashboard/internal/types"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/validation"
)

func sampleStudents() []types.Student {
	return []types.Student{
		{ID: "1", Name: "Ada", Email: "ada@example.com", Course: "CS101"},
		{ID: "7", Name: "Grace", Email: "grace@example.com", Course: "MATH201"},
		{ID: "9", Name: "Alan", Email: "alan@example.com", Course: "CS101"},
	}
}

func TestNewState(t *testing.T) {
	s := NewState()
	require.True(t, s.Loading)
	require.NotNil(t, s.Students)
	require.NotNil(t, s.Courses)
	require.Empty(t, s.Students)
	require.Equal(t, DialogNone, s.Dialog)
}

func TestDialogTransitions(t *testing.T) {
	s := NewState().SetField("name", "stale").SetErrors(validation.Errors{"name": "x"})

	s = s.OpenAdd()
	require.Equal(t, DialogAdd, s.Dialog)
	require.Equal(t, types.FormData{}, s.Form)
	require.Nil(t, s.Errors)

	st := types.Student{ID: "7", Name: "Grace", Email: "grace@example.com", Course: "MATH201"}
	s = s.OpenEdit(st)
	require.Equal(t, DialogEdit, s.Dialog)
	require.Equal(t, "7", s.EditID)
	require.Equal(t, types.FormData{Name: "Grace", Email: "grace@example.com", Course: "MATH201"}, s.Form)

	s = s.SetField("name", "Grace Hopper").SetField("bogus", "ignored")
	require.Equal(t, "Grace Hopper", s.Form.Name)

	s = s.CloseDialog()
	require.Equal(t, DialogNone, s.Dialog)
	require.Equal(t, types.FormData{}, s.Form)
	require.Empty(t, s.EditID)
}

func TestTransitionsArePure(t *testing.T) {
	before := NewState().StudentsLoaded(sampleStudents())
	original := make([]types.Student, len(before.Students))
	copy(original, before.Students)

	_ = before.StudentAdded(types.Student{ID: "42"})
	_ = before.StudentReplaced(types.Student{ID: "7", Name: "New"})
	_ = before.StudentRemoved("9")

	// The starting state's slice is untouched by any transition.
	require.Equal(t, original, before.Students)
}

func TestStudentsLoaded(t *testing.T) {
	s := NewState().StudentsLoaded(sampleStudents())
	require.False(t, s.Loading)
	require.Len(t, s.Students, 3)

	// A nil payload still yields a non-nil empty list.
	s = NewState().StudentsLoaded(nil)
	require.False(t, s.Loading)
	require.NotNil(t, s.Students)
	require.Empty(t, s.Students)
}

func TestStudentsFailed(t *testing.T) {
	s := NewState().StudentsFailed("HTTP error! status: 500")
	require.False(t, s.Loading)
	require.Equal(t, "HTTP error! status: 500", s.LoadError)
	require.Empty(t, s.Students)
}

func TestStudentAddedAppendsAtEnd(t *testing.T) {
	s := NewState().StudentsLoaded(sampleStudents())
	created := types.Student{ID: "42", Name: "A", Email: "a@b.com", Course: "CS101"}

	s = s.StudentAdded(created)
	require.Len(t, s.Students, 4)
	require.Equal(t, created, s.Students[3])
	require.Equal(t, "1", s.Students[0].ID)
}

func TestStudentReplacedPreservesOrder(t *testing.T) {
	s := NewState().StudentsLoaded(sampleStudents())
	updated := types.Student{ID: "7", Name: "New", Email: "new@example.com", Course: "ENG105"}

	s = s.StudentReplaced(updated)
	require.Len(t, s.Students, 3)
	require.Equal(t, "1", s.Students[0].ID)
	require.Equal(t, updated, s.Students[1])
	require.Equal(t, "9", s.Students[2].ID)
}

func TestStudentReplacedUnknownIDIsNoop(t *testing.T) {
	s := NewState().StudentsLoaded(sampleStudents())
	s = s.StudentReplaced(types.Student{ID: "404", Name: "ghost"})
	require.Equal(t, sampleStudents(), s.Students)
}

func TestStudentRemovedByID(t *testing.T) {
	s := NewState().StudentsLoaded(sampleStudents())

	s = s.StudentRemoved("9")
	require.Len(t, s.Students, 2)
	for _, st := range s.Students {
		require.NotEqual(t, "9", st.ID)
	}
}
