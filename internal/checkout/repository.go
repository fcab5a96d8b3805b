package checkout

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gramtop961/gilded-gaze-backend/internal/domain"
	"github.com/gramtop961/gilded-gaze-backend/internal/store"
)

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(store.OrdersCollection)}
}

func (r *OrderRepository) Insert(ctx context.Context, order *domain.Order) (domain.OrderID, error) {
	result, err := r.col.InsertOne(ctx, order)
	if err != nil {
		return domain.OrderID{}, err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.OrderID{}, errors.New("unexpected inserted id type")
	}

	return domain.OrderIDFromObjectID(oid), nil
}

func (r *OrderRepository) GetByID(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	var order domain.Order
	err := r.col.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}
