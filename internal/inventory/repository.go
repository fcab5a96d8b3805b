package inventory

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gramtop961/gilded-gaze-backend/internal/domain"
	"github.com/gramtop961/gilded-gaze-backend/internal/store"
)

var ErrInsufficientStock = errors.New("insufficient stock")

type StockRepository struct {
	col *mongo.Collection
}

func NewStockRepository(db *mongo.Database) *StockRepository {
	return &StockRepository{col: db.Collection(store.InventoryCollection)}
}

// Quantity reports the on-hand quantity for a product. The second return
// is false when no inventory record exists for the product.
func (r *StockRepository) Quantity(ctx context.Context, productID domain.ProductID) (int, bool, error) {
	var inv domain.Inventory
	err := r.col.FindOne(ctx, bson.M{"product_id": productID.Hex()}).Decode(&inv)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return inv.Quantity, true, nil
}

// DecrementIfAvailable atomically deducts quantity from the product's
// inventory record, matching only while enough stock remains. Two
// concurrent checkouts racing on the same product cannot both win.
func (r *StockRepository) DecrementIfAvailable(ctx context.Context, productID domain.ProductID, quantity int) error {
	result, err := r.col.UpdateOne(ctx,
		bson.M{
			"product_id": productID.Hex(),
			"quantity":   bson.M{"$gte": quantity},
		},
		bson.M{"$inc": bson.M{"quantity": -quantity}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrInsufficientStock
	}

	return nil
}

// Restock adds quantity back to the product's inventory record. Used to
// compensate decrements when a later line item of the same order fails.
func (r *StockRepository) Restock(ctx context.Context, productID domain.ProductID, quantity int) error {
	result, err := r.col.UpdateOne(ctx,
		bson.M{"product_id": productID.Hex()},
		bson.M{"$inc": bson.M{"quantity": quantity}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return errors.New("no inventory record to restock")
	}

	return nil
}

// Create inserts the initial inventory record for a product.
func (r *StockRepository) Create(ctx context.Context, productID domain.ProductID, quantity int) error {
	_, err := r.col.InsertOne(ctx, domain.Inventory{
		ProductID: productID.Hex(),
		Quantity:  quantity,
	})
	return err
}
