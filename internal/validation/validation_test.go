package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AvdhutBhokare/student-management-dashboard/internal/types"
)

func validForm() types.FormData {
	return types.FormData{
		Name:   "Jane Doe",
		Email:  "jane@example.com",
		Course: "CS101",
	}
}

func TestCheckValidForm(t *testing.T) {
	errs := Check(validForm())
	require.True(t, errs.Valid())
	require.Empty(t, errs)
}

func TestCheckName(t *testing.T) {
	tests := []struct {
		label string
		name  string
	}{
		{"empty", ""},
		{"spaces only", "   "},
		{"tabs and newlines", "\t\n "},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			form := validForm()
			form.Name = tt.name

			errs := Check(form)
			require.False(t, errs.Valid())
			require.Equal(t, "Name is required", errs["name"])
		})
	}
}

func TestCheckEmail(t *testing.T) {
	tests := []struct {
		label string
		email string
		want  string
	}{
		{"empty", "", "Email is required"},
		{"spaces only", "  ", "Email is required"},
		{"no at sign", "janeexample.com", "Please enter a valid email address"},
		{"no domain dot", "jane@example", "Please enter a valid email address"},
		{"nothing after last dot", "jane@example.", "Please enter a valid email address"},
		{"nothing before at", "@example.com", "Please enter a valid email address"},
		{"whitespace inside", "jane doe@example.com", "Please enter a valid email address"},
		{"double at", "jane@@example.com", "Please enter a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			form := validForm()
			form.Email = tt.email

			errs := Check(form)
			require.False(t, errs.Valid())
			require.Equal(t, tt.want, errs["email"])
		})
	}
}

func TestCheckEmailAcceptsDottedDomains(t *testing.T) {
	form := validForm()
	form.Email = "jane.doe@mail.example.co.uk"

	require.True(t, Check(form).Valid())
}

func TestCheckCourse(t *testing.T) {
	form := validForm()
	form.Course = ""

	errs := Check(form)
	require.False(t, errs.Valid())
	require.Equal(t, "Course selection is required", errs["course"])
}

func TestCheckRulesRunIndependently(t *testing.T) {
	// An entirely empty form reports all three fields at once.
	errs := Check(types.FormData{})
	require.Len(t, errs, 3)
	require.Equal(t, "Name is required", errs["name"])
	require.Equal(t, "Email is required", errs["email"])
	require.Equal(t, "Course selection is required", errs["course"])
}
