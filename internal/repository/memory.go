package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/jmarlow/course-store/internal/models"
)

// InMemoryCourseRepository implements CourseRepository with in-memory storage.
// Used in tests and local development in place of a live document store.
type InMemoryCourseRepository struct {
	mu      sync.RWMutex
	courses []models.Course
}

// NewInMemoryCourseRepository creates an empty in-memory course repository
func NewInMemoryCourseRepository() *InMemoryCourseRepository {
	return &InMemoryCourseRepository{}
}

// GetAll returns all courses in insertion order
func (r *InMemoryCourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	courses := make([]models.Course, len(r.courses))
	copy(courses, r.courses)
	return courses, nil
}

// Insert stores a single course, assigning it an identifier
func (r *InMemoryCourseRepository) Insert(ctx context.Context, course *models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if course.ID == "" {
		course.ID = uuid.New().String()
	}
	r.courses = append(r.courses, *course)
	return nil
}

// InsertMany stores a batch of courses, assigning identifiers
func (r *InMemoryCourseRepository) InsertMany(ctx context.Context, courses []models.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range courses {
		if courses[i].ID == "" {
			courses[i].ID = uuid.New().String()
		}
		r.courses = append(r.courses, courses[i])
	}
	return nil
}

// Count returns the number of stored courses
func (r *InMemoryCourseRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.courses)), nil
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewInMemoryOrderRepository creates an empty in-memory order repository
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{}
}

// GetAll returns all orders in insertion order
func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

// Insert stores a single order, assigning it an identifier
func (r *InMemoryOrderRepository) Insert(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	r.orders = append(r.orders, *order)
	return nil
}
