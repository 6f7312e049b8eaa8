package service

import (
	"context"
	"time"

	"github.com/jmarlow/course-store/internal/models"
	"github.com/jmarlow/course-store/internal/repository"
)

// OrderService handles order intake and review
type OrderService struct {
	repo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
	}
}

// Create validates the required customer fields, stamps the creation time
// and persists the order. Items and total are stored exactly as supplied;
// prices are not cross-checked against the live catalog.
func (s *OrderService) Create(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	order := &models.Order{
		Customer:  *req.Customer,
		Items:     req.Items,
		Total:     req.Total,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// List returns all orders
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	return s.repo.GetAll(ctx)
}
