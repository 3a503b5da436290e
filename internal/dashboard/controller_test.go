package dashboard

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AvdhutBhokare/student-management-dashboard/internal/api"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/types"
)

// fakeRemote is an in-memory stand-in for the Remote Data Service,
// close enough to the real contract for controller tests. It counts
// requests per method so tests can assert that nothing was sent.
type fakeRemote struct {
	students []types.Student
	courses  []types.Course
	nextID   int
	requests map[string]int // method → count
	failWith int            // when non-zero, every request gets this status
}

func newFakeRemote(students []types.Student, courses []types.Course) *fakeRemote {
	return &fakeRemote{
		students: students,
		courses:  courses,
		nextID:   100,
		requests: map[string]int{},
	}
}

func (f *fakeRemote) server(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /Students", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, f.students)
	})
	mux.HandleFunc("POST /Students", func(w http.ResponseWriter, r *http.Request) {
		var st types.Student
		require.NoError(t, json.NewDecoder(r.Body).Decode(&st))
		st.ID = strconv.Itoa(f.nextID)
		f.nextID++
		f.students = append(f.students, st)
		writeJSON(w, http.StatusCreated, st)
	})
	mux.HandleFunc("PUT /Students/{id}", func(w http.ResponseWriter, r *http.Request) {
		var st types.Student
		require.NoError(t, json.NewDecoder(r.Body).Decode(&st))
		st.ID = r.PathValue("id")
		for i := range f.students {
			if f.students[i].ID == st.ID {
				f.students[i] = st
				writeJSON(w, http.StatusOK, st)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("DELETE /Students/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		for i := range f.students {
			if f.students[i].ID == id {
				f.students = append(f.students[:i:i], f.students[i+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("GET /Courses", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, f.courses)
	})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.requests[r.Method]++
		if f.failWith != 0 {
			w.WriteHeader(f.failWith)
			return
		}
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestController(t *testing.T, remote *fakeRemote, confirm ConfirmFunc) *Controller {
	t.Helper()
	srv := remote.server(t)
	return NewController(api.New(srv.URL), testLogger(), confirm)
}

func seededController(t *testing.T, remote *fakeRemote, confirm ConfirmFunc) *Controller {
	t.Helper()
	ctrl := newTestController(t, remote, confirm)
	require.NoError(t, ctrl.LoadStudents(context.Background()))
	ctrl.LoadCourses(context.Background())
	return ctrl
}

func TestLoadStudents(t *testing.T) {
	remote := newFakeRemote(sampleStudents(), nil)
	ctrl := newTestController(t, remote, nil)

	require.NoError(t, ctrl.LoadStudents(context.Background()))

	state := ctrl.State()
	require.False(t, state.Loading)
	require.Empty(t, state.LoadError)
	require.Equal(t, sampleStudents(), state.Students)
}

func TestLoadStudentsFailureIsStored(t *testing.T) {
	remote := newFakeRemote(nil, nil)
	remote.failWith = http.StatusInternalServerError
	ctrl := newTestController(t, remote, nil)

	err := ctrl.LoadStudents(context.Background())
	require.Error(t, err)

	state := ctrl.State()
	require.False(t, state.Loading)
	require.Equal(t, "HTTP error! status: 500", state.LoadError)
	require.Empty(t, state.Students)
}

func TestLoadCoursesFailureIsSilent(t *testing.T) {
	remote := newFakeRemote(nil, nil)
	remote.failWith = http.StatusBadGateway
	ctrl := newTestController(t, remote, nil)

	ctrl.LoadCourses(context.Background())

	// No stored error, course list silently left empty.
	require.Empty(t, ctrl.State().LoadError)
	require.Empty(t, ctrl.State().Courses)
}

func TestSubmitAddCreatesAndAppends(t *testing.T) {
	remote := newFakeRemote(sampleStudents(), nil)
	ctrl := seededController(t, remote, nil)

	ctrl.OpenAdd()
	ctrl.SetField("name", "A")
	ctrl.SetField("email", "a@b.com")
	ctrl.SetField("course", "CS101")

	ok, err := ctrl.SubmitAdd(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	state := ctrl.State()
	require.Len(t, state.Students, 4)
	last := state.Students[3]
	require.NotEmpty(t, last.ID)
	require.Equal(t, "A", last.Name)
	require.Equal(t, "a@b.com", last.Email)
	require.Equal(t, "CS101", last.Course)

	// Dialog closed, form reset.
	require.Equal(t, DialogNone, state.Dialog)
	require.Equal(t, types.FormData{}, state.Form)
}

func TestSubmitAddValidationBlocksRequest(t *testing.T) {
	remote := newFakeRemote(sampleStudents(), nil)
	ctrl := seededController(t, remote, nil)
	posted := remote.requests[http.MethodPost]

	ctrl.OpenAdd()
	ctrl.SetField("name", "   ")
	ctrl.SetField("email", "not-an-email")

	ok, err := ctrl.SubmitAdd(context.Background())
	require.NoError(t, err)
	require.False(t, ok)

	state := ctrl.State()
	require.Equal(t, "Name is required", state.Errors["name"])
	require.Equal(t, "Please enter a valid email address", state.Errors["email"])
	require.Equal(t, "Course selection is required", state.Errors["course"])
	require.Len(t, state.Students, 3)
	require.Equal(t, posted, remote.requests[http.MethodPost], "no request may be sent on validation failure")

	// Dialog stays open so the user can correct the form.
	require.Equal(t, DialogAdd, state.Dialog)
}

func TestCreateFailureLeavesListUnchanged(t *testing.T) {
	remote := newFakeRemote(sampleStudents(), nil)
	ctrl := seededController(t, remote, nil)
	before := ctrl.State().Students

	ctrl.OpenAdd()
	ctrl.SetField("name", "A")
	ctrl.SetField("email", "a@b.com")
	ctrl.SetField("course", "CS101")
	remote.failWith = http.StatusInternalServerError

	ok, err := ctrl.SubmitAdd(context.Background())
	require.Error(t, err)
	require.False(t, ok)
	require.Equal(t, before, ctrl.State().Students)
}

func TestSubmitEditReplacesInPlace(t *testing.T) {
	remote := newFakeRemote(sampleStudents(), nil)
	ctrl := seededController(t, remote, nil)

	require.True(t, ctrl.OpenEdit("7"))
	require.Equal(t, "Grace", ctrl.State().Form.Name)

	ctrl.SetField("name", "New")
	ok, err := ctrl.SubmitEdit(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	state := ctrl.State()
	require.Len(t, state.Students, 3)
	require.Equal(t, "1", state.Students[0].ID)
	require.Equal(t, types.Student{ID: "7", Name: "New", Email: "grace@example.com", Course: "MATH201"}, state.Students[1])
	require.Equal(t, "9", state.Students[2].ID)
}

func TestUpdateFailureLeavesListUnchanged(t *testing.T) {
	remote := newFakeRemote(sampleStudents(), nil)
	ctrl := seededController(t, remote, nil)
	before := ctrl.State().Students

	require.True(t, ctrl.OpenEdit("7"))
	ctrl.SetField("name", "New")
	remote.failWith = http.StatusConflict

	ok, err := ctrl.SubmitEdit(context.Background())
	require.Error(t, err)
	require.False(t, ok)
	require.Equal(t, before, ctrl.State().Students)
}

func TestDeleteStudent(t *testing.T) {
	remote := newFakeRemote(sampleStudents(), nil)
	var confirmed types.Student
	ctrl := seededController(t, remote, func(st types.Student) bool {
		confirmed = st
		return true
	})

	deleted, err := ctrl.DeleteStudent(context.Background(), "9")
	require.NoError(t, err)
	require.True(t, deleted)
	require.Equal(t, "Alan", confirmed.Name)

	state := ctrl.State()
	require.Len(t, state.Students, 2)
	for _, st := range state.Students {
		require.NotEqual(t, "9", st.ID)
	}
}

func TestDeleteDeclinedSendsNoRequest(t *testing.T) {
	remote := newFakeRemote(sampleStudents(), nil)
	ctrl := seededController(t, remote, func(types.Student) bool { return false })
	before := ctrl.State().Students

	deleted, err := ctrl.DeleteStudent(context.Background(), "9")
	require.NoError(t, err)
	require.False(t, deleted)
	require.Zero(t, remote.requests[http.MethodDelete])
	require.Equal(t, before, ctrl.State().Students)
}

func TestDeleteFailureLeavesListUnchanged(t *testing.T) {
	remote := newFakeRemote(sampleStudents(), nil)
	ctrl := seededController(t, remote, nil)
	before := ctrl.State().Students

	remote.failWith = http.StatusInternalServerError
	deleted, err := ctrl.DeleteStudent(context.Background(), "9")
	require.Error(t, err)
	require.False(t, deleted)
	require.Equal(t, before, ctrl.State().Students)
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	remote := newFakeRemote(sampleStudents(), nil)
	ctrl := seededController(t, remote, nil)

	deleted, err := ctrl.DeleteStudent(context.Background(), "404")
	require.NoError(t, err)
	require.False(t, deleted)
	require.Zero(t, remote.requests[http.MethodDelete])
}

func TestCourseName(t *testing.T) {
	remote := newFakeRemote(nil, []types.Course{
		{ID: "c1", Code: "CS101", Name: "Intro to CS"},
	})
	ctrl := seededController(t, remote, nil)

	require.Equal(t, "Intro to CS", ctrl.CourseName("CS101"))
	require.Equal(t, "UNKNOWN", ctrl.CourseName("UNKNOWN"))
}

func TestCourseNameFallsBackBeforeCoursesLoad(t *testing.T) {
	remote := newFakeRemote(nil, nil)
	ctrl := newTestController(t, remote, nil)

	require.Equal(t, "CS101", ctrl.CourseName("CS101"))
}
