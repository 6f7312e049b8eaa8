package models

// Course represents a catalog item available for purchase.
// Field names on the wire match the storefront frontend's expectations.
type Course struct {
	ID         string  `bson:"_id,omitempty" json:"id,omitempty"`
	Title      string  `bson:"title,omitempty" json:"title,omitempty"`
	Instructor string  `bson:"instructor,omitempty" json:"instructor,omitempty"`
	Category   string  `bson:"category,omitempty" json:"category,omitempty"`
	Location   string  `bson:"location,omitempty" json:"location,omitempty"`
	Price      float64 `bson:"price,omitempty" json:"price,omitempty"`
	Rating     float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	Spaces     int     `bson:"spaces,omitempty" json:"spaces,omitempty"`
	Cover      string  `bson:"cover,omitempty" json:"cover,omitempty"`
}
