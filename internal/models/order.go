package models

import (
	"errors"
	"time"
)

var (
	// ErrCustomerRequired indicates the order is missing required customer fields
	ErrCustomerRequired = errors.New("customer name and email are required")
)

// Customer holds the contact details captured at checkout.
// Only name and email are required; everything else is optional.
type Customer struct {
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	Zip     string `bson:"zip,omitempty" json:"zip,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
	Notes   string `bson:"notes,omitempty" json:"notes,omitempty"`
	Coupon  string `bson:"coupon,omitempty" json:"coupon,omitempty"`
}

// OrderItem is a denormalized snapshot of a course at order time.
// It is never reconciled against the live catalog.
type OrderItem struct {
	CourseID string  `bson:"courseId" json:"courseId"`
	Title    string  `bson:"title" json:"title"`
	Price    float64 `bson:"price" json:"price"`
	Qty      int     `bson:"qty" json:"qty"`
}

// Order is the persisted order document. Orders are immutable once created.
type Order struct {
	ID        string      `bson:"_id,omitempty" json:"id,omitempty"`
	Customer  Customer    `bson:"customer" json:"customer"`
	Items     []OrderItem `bson:"items" json:"items"`
	Total     float64     `bson:"total" json:"total"`
	CreatedAt time.Time   `bson:"createdAt" json:"createdAt"`
}

// OrderRequest represents an incoming order payload from the checkout flow
type OrderRequest struct {
	Customer *Customer   `json:"customer"`
	Items    []OrderItem `json:"items"`
	Total    float64     `json:"total"`
}

// Validate checks the required customer fields. Items and total are trusted
// as supplied by the client and are not checked against the catalog.
func (r OrderRequest) Validate() error {
	if r.Customer == nil || r.Customer.Name == "" || r.Customer.Email == "" {
		return ErrCustomerRequired
	}
	return nil
}
