// main runs the interactive student management dashboard in a terminal.
//
// The presentation here is deliberately thin: every piece of behaviour
// lives in internal/dashboard; this file only reads commands, prompts
// for form fields, and prints state.
//
// COMMANDS:
//
//	list           show all students
//	courses        show the course catalogue
//	add            open the add dialog (prompts for name/email/course)
//	edit <id>      open the edit dialog for one student
//	delete <id>    delete one student (asks for confirmation first)
//	help           print this list
//	quit           exit
//
// RUNNING:
//
//	go run ./cmd/dashboard --config=config/local.yaml
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/AvdhutBhokare/student-management-dashboard/internal/api"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/config"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/dashboard"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/types"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.Setup(cfg.Env)

	client := api.New(cfg.API.BaseURL)
	input := bufio.NewScanner(os.Stdin)

	// The delete gate: prompt on the same terminal the command loop
	// reads from. Anything other than y/yes declines.
	confirm := func(st types.Student) bool {
		fmt.Printf("Delete %s <%s>? [y/N]: ", st.Name, st.Email)
		if !input.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(input.Text()))
		return answer == "y" || answer == "yes"
	}

	ctrl := dashboard.NewController(client, log, confirm)
	ctx := context.Background()

	// One-shot startup fetches. A Students failure is surfaced below
	// via state; a Courses failure is logged only and the dashboard
	// falls back to raw course codes.
	_ = ctrl.LoadStudents(ctx)
	ctrl.LoadCourses(ctx)

	if msg := ctrl.State().LoadError; msg != "" {
		fmt.Printf("could not load students: %s\n", msg)
	}

	fmt.Printf("student management dashboard — %d students, %d courses (type 'help')\n",
		len(ctrl.State().Students), len(ctrl.State().Courses))

	for {
		fmt.Print("> ")
		if !input.Scan() {
			return
		}

		fields := strings.Fields(input.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "list":
			printStudents(ctrl)

		case "courses":
			printCourses(ctrl)

		case "add":
			ctrl.OpenAdd()
			runDialog(ctx, ctrl, input, false)

		case "edit":
			if len(args) != 1 {
				fmt.Println("usage: edit <id>")
				continue
			}
			if !ctrl.OpenEdit(args[0]) {
				fmt.Printf("no student with id %q\n", args[0])
				continue
			}
			runDialog(ctx, ctrl, input, true)

		case "delete":
			if len(args) != 1 {
				fmt.Println("usage: delete <id>")
				continue
			}
			deleted, err := ctrl.DeleteStudent(ctx, args[0])
			switch {
			case err != nil:
				fmt.Println("delete failed; the list is unchanged")
			case deleted:
				fmt.Println("deleted")
			default:
				fmt.Println("nothing deleted")
			}

		case "help":
			fmt.Println("commands: list, courses, add, edit <id>, delete <id>, help, quit")

		case "quit", "exit":
			return

		default:
			fmt.Printf("unknown command %q (type 'help')\n", cmd)
		}
	}
}

// runDialog prompts for the three form fields and submits. A blank
// answer in edit mode keeps the pre-populated value.
func runDialog(ctx context.Context, ctrl *dashboard.Controller, input *bufio.Scanner, editing bool) {
	form := ctrl.State().Form

	prompts := []struct {
		field   string
		label   string
		current string
	}{
		{"name", "Name", form.Name},
		{"email", "Email", form.Email},
		{"course", "Course code", form.Course},
	}

	for _, p := range prompts {
		if editing {
			fmt.Printf("%s [%s]: ", p.label, p.current)
		} else {
			fmt.Printf("%s: ", p.label)
		}
		if !input.Scan() {
			ctrl.CloseDialog()
			return
		}
		value := strings.TrimSpace(input.Text())
		if editing && value == "" {
			continue // keep the existing value
		}
		ctrl.SetField(p.field, value)
	}

	var ok bool
	var err error
	if editing {
		ok, err = ctrl.SubmitEdit(ctx)
	} else {
		ok, err = ctrl.SubmitAdd(ctx)
	}

	switch {
	case err != nil:
		fmt.Println("save failed; the list is unchanged")
		ctrl.CloseDialog()
	case ok:
		fmt.Println("saved")
	default:
		// Validation failed — show the per-field messages and abandon
		// the dialog (re-run the command to retry).
		for field, msg := range ctrl.State().Errors {
			fmt.Printf("  %s: %s\n", field, msg)
		}
		ctrl.CloseDialog()
	}
}

func printStudents(ctrl *dashboard.Controller) {
	st := ctrl.State()
	if len(st.Students) == 0 {
		fmt.Println("no students")
		return
	}
	for _, s := range st.Students {
		fmt.Printf("%-36s  %-20s  %-28s  %s\n",
			s.ID, s.Name, s.Email, ctrl.CourseName(s.Course))
	}
}

func printCourses(ctrl *dashboard.Controller) {
	st := ctrl.State()
	if len(st.Courses) == 0 {
		fmt.Println("no courses loaded")
		return
	}
	for _, c := range st.Courses {
		fmt.Printf("%-10s  %s\n", c.Code, c.Name)
	}
}
