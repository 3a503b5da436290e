// main runs the local stand-in for the hosted Remote Data Service.
//
// The dashboard was written against a hosted mock REST endpoint; this
// binary serves the identical contract from a local SQLite file so the
// whole system runs offline. Route table (capitalised collection paths,
// matching the hosted service):
//
//	GET    /Students        → 200 + array of Student
//	POST   /Students        → 201 + created Student (server-assigned id)
//	GET    /Students/{id}   → 200 + Student
//	PUT    /Students/{id}   → 200 + updated Student
//	DELETE /Students/{id}   → 204
//	GET    /Courses         → 200 + array of Course
//
// RUNNING:
//
//	go run ./cmd/mockapi --config=config/local.yaml
//
// or with the environment variable:
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/mockapi
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AvdhutBhokare/student-management-dashboard/internal/config"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/http/handlers/course"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/http/handlers/student"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/storage"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/storage/sqlite"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/types"
	"github.com/AvdhutBhokare/student-management-dashboard/internal/utils/logger"
)

// defaultCourses is the catalogue seeded into an empty database, the
// same fixed set the hosted mock service carried.
var defaultCourses = []struct {
	code string
	name string
}{
	{"CS101", "Introduction to Computer Science"},
	{"MATH201", "Calculus II"},
	{"ENG105", "Academic Writing"},
	{"PHY110", "General Physics"},
	{"HIST220", "Modern World History"},
}

func main() {
	cfg := config.MustLoad()

	log := logger.Setup(cfg.Env)

	log.Info("starting mockapi",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	store, err := sqlite.New(cfg.MockAPI.StoragePath)
	if err != nil {
		log.Error("failed to initialise storage",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("storage initialised",
		slog.String("path", cfg.MockAPI.StoragePath))

	if err := seedCourses(store); err != nil {
		log.Error("failed to seed courses", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Handler factories receive the storage once at registration and
	// return the closure the router calls per request.
	router := http.NewServeMux()

	router.HandleFunc("GET /Students", student.List(store))
	router.HandleFunc("POST /Students", student.Create(store))
	router.HandleFunc("GET /Students/{id}", student.GetByID(store))
	router.HandleFunc("PUT /Students/{id}", student.Update(store))
	router.HandleFunc("DELETE /Students/{id}", student.Delete(store))
	router.HandleFunc("GET /Courses", course.List(store))

	server := &http.Server{
		Addr:    cfg.MockAPI.Addr,
		Handler: router,

		// Server-side timeouts guard against slow clients. The
		// dashboard's own client stays timeout-free; that asymmetry is
		// intentional.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ListenAndServe blocks, so it runs in its own goroutine and main
	// waits below for a shutdown signal.
	go func() {
		log.Info("server started", slog.String("address", cfg.MockAPI.Addr))

		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// Give in-flight requests five seconds to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// seedCourses inserts the default catalogue on first boot. A non-empty
// courses table is left alone, so reseeding is idempotent.
func seedCourses(store storage.Storage) error {
	existing, err := store.GetCourses()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, c := range defaultCourses {
		if _, err := store.CreateCourse(types.Course{Code: c.code, Name: c.name}); err != nil {
			return err
		}
	}
	return nil
}
