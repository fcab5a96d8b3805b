package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MinRating = 1
	MaxRating = 5
)

var ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")

// Review is an append-only customer review. There is no edit or delete
// lifecycle.
type Review struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID string             `bson:"product_id" json:"product_id"`
	Author    string             `bson:"author" json:"author"`
	Rating    int                `bson:"rating" json:"rating"`
	Content   string             `bson:"content" json:"content"`
}

func (r Review) Validate() error {
	if r.Rating < MinRating || r.Rating > MaxRating {
		return ErrRatingOutOfRange
	}
	return nil
}
