package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMissingHandle = errors.New("collection handle is required")
	ErrMissingTitle  = errors.New("title is required")
	ErrNegativePrice = errors.New("price must not be negative")
)

// Collection is a merchandising grouping of products, unrelated to the
// storage collection concept.
type Collection struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Handle      string             `bson:"handle" json:"handle"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	IsLimited   bool               `bson:"is_limited" json:"is_limited"`
}

func (c Collection) Validate() error {
	if c.Handle == "" {
		return ErrMissingHandle
	}
	if c.Title == "" {
		return ErrMissingTitle
	}
	return nil
}

type Product struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title            string             `bson:"title" json:"title"`
	Subtitle         string             `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
	Description      string             `bson:"description,omitempty" json:"description,omitempty"`
	Price            float64            `bson:"price" json:"price"`
	CompareAtPrice   *float64           `bson:"compare_at_price,omitempty" json:"compare_at_price,omitempty"`
	CollectionHandle string             `bson:"collection_handle" json:"collection_handle"`
	Image            string             `bson:"image,omitempty" json:"image,omitempty"`
	LimitedBadge     string             `bson:"limited_badge,omitempty" json:"limited_badge,omitempty"`
	IsBundle         bool               `bson:"is_bundle" json:"is_bundle"`
}

func (p Product) Validate() error {
	if p.Title == "" {
		return ErrMissingTitle
	}
	if p.CollectionHandle == "" {
		return ErrMissingHandle
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if p.CompareAtPrice != nil && *p.CompareAtPrice < 0 {
		return ErrNegativePrice
	}
	return nil
}
