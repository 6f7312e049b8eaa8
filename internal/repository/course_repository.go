package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jmarlow/course-store/internal/models"
)

// CourseRepository defines the interface for course data access
type CourseRepository interface {
	GetAll(ctx context.Context) ([]models.Course, error)
	Insert(ctx context.Context, course *models.Course) error
	InsertMany(ctx context.Context, courses []models.Course) error
	Count(ctx context.Context) (int64, error)
}

// MongoCourseRepository implements CourseRepository over a Mongo collection
type MongoCourseRepository struct {
	coll *mongo.Collection
}

// NewMongoCourseRepository creates a course repository backed by the given collection
func NewMongoCourseRepository(coll *mongo.Collection) *MongoCourseRepository {
	return &MongoCourseRepository{coll: coll}
}

// GetAll returns all courses in storage-native order. No sort is applied,
// so the order is whatever the store returns.
func (r *MongoCourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	courses := []models.Course{}
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, err
	}
	return courses, nil
}

// Insert persists a single course, assigning it an identifier
func (r *MongoCourseRepository) Insert(ctx context.Context, course *models.Course) error {
	if course.ID == "" {
		course.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.coll.InsertOne(ctx, course)
	return err
}

// InsertMany persists a batch of courses, assigning identifiers
func (r *MongoCourseRepository) InsertMany(ctx context.Context, courses []models.Course) error {
	docs := make([]interface{}, 0, len(courses))
	for i := range courses {
		if courses[i].ID == "" {
			courses[i].ID = primitive.NewObjectID().Hex()
		}
		docs = append(docs, courses[i])
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

// Count returns the number of courses in the collection
func (r *MongoCourseRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.D{})
}
