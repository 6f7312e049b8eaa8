package models

import (
	"errors"
	"testing"
)

func TestOrderRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     OrderRequest
		wantErr error
	}{
		{
			name: "valid customer",
			req: OrderRequest{
				Customer: &Customer{Name: "Ada Lovelace", Email: "ada@example.com"},
				Items:    []OrderItem{{CourseID: "1", Title: "English Basics", Price: 49.99, Qty: 1}},
				Total:    49.99,
			},
			wantErr: nil,
		},
		{
			name:    "missing customer",
			req:     OrderRequest{Total: 10},
			wantErr: ErrCustomerRequired,
		},
		{
			name: "missing name",
			req: OrderRequest{
				Customer: &Customer{Email: "ada@example.com"},
			},
			wantErr: ErrCustomerRequired,
		},
		{
			name: "missing email",
			req: OrderRequest{
				Customer: &Customer{Name: "Ada Lovelace"},
			},
			wantErr: ErrCustomerRequired,
		},
		{
			name: "optional fields absent is fine",
			req: OrderRequest{
				Customer: &Customer{Name: "Ada Lovelace", Email: "ada@example.com"},
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
