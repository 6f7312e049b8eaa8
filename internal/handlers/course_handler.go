package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jmarlow/course-store/internal/models"
	"github.com/jmarlow/course-store/internal/service"
)

// CourseHandler handles course-related HTTP requests
type CourseHandler struct {
	service *service.CourseService
	log     *slog.Logger
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(service *service.CourseService, log *slog.Logger) *CourseHandler {
	return &CourseHandler{
		service: service,
		log:     log,
	}
}

// ListCourses handles GET /api/courses
// Returns every course in storage-native order.
func (h *CourseHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.List(r.Context())
	if err != nil {
		h.log.Error("failed to list courses", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, courses)
}

// CreateCourse handles POST /api/courses
// Accepts a full or partial course payload and returns the persisted record
// including its assigned identifier.
func (h *CourseHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var course models.Course

	if err := json.NewDecoder(r.Body).Decode(&course); err != nil {
		h.log.Error("failed to decode course request", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), &course)
	if err != nil {
		h.log.Error("failed to create course", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, created)
	h.log.Info("course created", "course_id", created.ID, "title", created.Title)
}
