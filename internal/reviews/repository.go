package reviews

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gramtop961/gilded-gaze-backend/internal/domain"
	"github.com/gramtop961/gilded-gaze-backend/internal/store"
)

type Repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(store.ReviewsCollection)}
}

// ListByProduct returns a product's reviews in insertion order.
func (r *Repository) ListByProduct(ctx context.Context, productID domain.ProductID) ([]domain.Review, error) {
	cursor, err := r.col.Find(ctx, bson.M{"product_id": productID.Hex()})
	if err != nil {
		return nil, err
	}

	reviews := []domain.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// Append persists a new review. Callers validate the review before it
// reaches the ledger.
func (r *Repository) Append(ctx context.Context, review domain.Review) (domain.ReviewID, error) {
	result, err := r.col.InsertOne(ctx, review)
	if err != nil {
		return domain.ReviewID{}, err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.ReviewID{}, errors.New("unexpected inserted id type")
	}

	return domain.ReviewIDFromObjectID(oid), nil
}
