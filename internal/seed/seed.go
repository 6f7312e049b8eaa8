// Package seed populates the catalog with sample courses on first run.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmarlow/course-store/internal/models"
	"github.com/jmarlow/course-store/internal/repository"
)

// SampleCourses returns the fixed catalog inserted into an empty store.
// A fresh slice is returned each call so callers can't mutate the originals.
func SampleCourses() []models.Course {
	return []models.Course{
		{
			Title:      "English Basics",
			Instructor: "Sarah Mitchell",
			Category:   "Language",
			Location:   "London",
			Price:      49.99,
			Rating:     4.7,
			Spaces:     20,
			Cover:      "/images/english-basics.jpg",
		},
		{
			Title:      "French Advanced",
			Instructor: "Claire Dubois",
			Category:   "Language",
			Location:   "Paris",
			Price:      79.99,
			Rating:     4.9,
			Spaces:     12,
			Cover:      "/images/french-advanced.jpg",
		},
		{
			Title:      "Spanish Beginner",
			Instructor: "Diego Alvarez",
			Category:   "Language",
			Location:   "Madrid",
			Price:      39.99,
			Rating:     4.5,
			Spaces:     25,
			Cover:      "/images/spanish-beginner.jpg",
		},
	}
}

// Run seeds the catalog if it is empty. When skip is set (CI environments)
// nothing happens regardless of the current count. Errors are returned to
// the caller, which is expected to log and continue: seeding is best-effort
// and never aborts startup.
func Run(ctx context.Context, repo repository.CourseRepository, skip bool, log *slog.Logger) error {
	if skip {
		log.Info("seed skipped", "reason", "CI environment")
		return nil
	}

	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count courses: %w", err)
	}

	if count > 0 {
		log.Info("catalog already seeded", "count", count)
		return nil
	}

	courses := SampleCourses()
	if err := repo.InsertMany(ctx, courses); err != nil {
		return fmt.Errorf("insert sample courses: %w", err)
	}

	log.Info("seeded catalog with sample courses", "count", len(courses))
	return nil
}
