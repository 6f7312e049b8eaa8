package service

import (
	"context"

	"github.com/jmarlow/course-store/internal/models"
	"github.com/jmarlow/course-store/internal/repository"
)

// CourseService handles business logic for the course catalog
type CourseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new course service
func NewCourseService(repo repository.CourseRepository) *CourseService {
	return &CourseService{
		repo: repo,
	}
}

// List returns all courses in the catalog
func (s *CourseService) List(ctx context.Context) ([]models.Course, error) {
	return s.repo.GetAll(ctx)
}

// Create persists a new course and returns it with its assigned identifier.
// Payloads may be partial; missing fields are simply stored as absent.
func (s *CourseService) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	if err := s.repo.Insert(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}
