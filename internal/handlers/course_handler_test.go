package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmarlow/course-store/internal/models"
	"github.com/jmarlow/course-store/internal/repository"
	"github.com/jmarlow/course-store/internal/seed"
	"github.com/jmarlow/course-store/internal/service"
	"github.com/jmarlow/course-store/pkg/logger"
)

func newCourseHandler(repo repository.CourseRepository) *CourseHandler {
	return NewCourseHandler(service.NewCourseService(repo), logger.New("error"))
}

func TestListCourses_SeededCatalog(t *testing.T) {
	// Empty store boot: seed runs, then the listing returns the sample catalog
	repo := repository.NewInMemoryCourseRepository()
	if err := seed.Run(context.Background(), repo, false, logger.New("error")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	handler := newCourseHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	w := httptest.NewRecorder()

	handler.ListCourses(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var courses []models.Course
	if err := json.NewDecoder(w.Body).Decode(&courses); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(courses) != 3 {
		t.Fatalf("expected 3 courses, got %d", len(courses))
	}

	titles := map[string]bool{}
	for _, c := range courses {
		titles[c.Title] = true
	}
	for _, want := range []string{"English Basics", "French Advanced", "Spanish Beginner"} {
		if !titles[want] {
			t.Errorf("missing seeded course %q", want)
		}
	}
}

func TestListCourses_CISkip(t *testing.T) {
	// With the skip flag set the catalog stays empty and the listing
	// returns an empty array, not null
	repo := repository.NewInMemoryCourseRepository()
	if err := seed.Run(context.Background(), repo, true, logger.New("error")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	handler := newCourseHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	w := httptest.NewRecorder()

	handler.ListCourses(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := w.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}

func TestCreateCourse_RoundTrip(t *testing.T) {
	repo := repository.NewInMemoryCourseRepository()
	handler := newCourseHandler(repo)

	body, _ := json.Marshal(models.Course{Title: "X", Instructor: "Y", Price: 10})
	req := httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handler.CreateCourse(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var created models.Course
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if created.ID == "" {
		t.Error("created course has no id")
	}

	// The created course must come back through the listing unchanged
	listReq := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	listW := httptest.NewRecorder()
	handler.ListCourses(listW, listReq)

	var courses []models.Course
	if err := json.NewDecoder(listW.Body).Decode(&courses); err != nil {
		t.Fatalf("failed to decode listing: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected 1 course, got %d", len(courses))
	}
	got := courses[0]
	if got.ID != created.ID || got.Title != "X" || got.Instructor != "Y" || got.Price != 10 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestCreateCourse_InvalidJSON(t *testing.T) {
	handler := newCourseHandler(repository.NewInMemoryCourseRepository())

	req := httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewReader([]byte("not json")))
	w := httptest.NewRecorder()

	handler.CreateCourse(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

// brokenCourseRepo fails every operation with a fixed error
type brokenCourseRepo struct {
	err error
}

func (r *brokenCourseRepo) GetAll(ctx context.Context) ([]models.Course, error) { return nil, r.err }
func (r *brokenCourseRepo) Insert(ctx context.Context, c *models.Course) error  { return r.err }
func (r *brokenCourseRepo) InsertMany(ctx context.Context, c []models.Course) error {
	return r.err
}
func (r *brokenCourseRepo) Count(ctx context.Context) (int64, error) { return 0, r.err }

func TestCourseHandlers_StorageError(t *testing.T) {
	// Storage failures surface as 500 with the raw error message
	storageErr := errors.New("server selection timeout")
	handler := newCourseHandler(&brokenCourseRepo{err: storageErr})

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	w := httptest.NewRecorder()
	handler.ListCourses(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("list status = %d, want 500", w.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp["error"] != "server selection timeout" {
		t.Errorf("error = %q, want raw storage error", resp["error"])
	}

	body, _ := json.Marshal(models.Course{Title: "X"})
	createReq := httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewReader(body))
	createW := httptest.NewRecorder()
	handler.CreateCourse(createW, createReq)

	if createW.Code != http.StatusInternalServerError {
		t.Errorf("create status = %d, want 500", createW.Code)
	}
}
