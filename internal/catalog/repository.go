package catalog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gramtop961/gilded-gaze-backend/internal/domain"
	"github.com/gramtop961/gilded-gaze-backend/internal/store"
)

// ProductWithStock is a product enriched with its current inventory
// quantity, the shape the catalog endpoints return.
type ProductWithStock struct {
	domain.Product `bson:",inline"`
	Inventory      int `bson:"-" json:"inventory"`
}

type Repository struct {
	products  *mongo.Collection
	inventory *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		products:  db.Collection(store.ProductsCollection),
		inventory: db.Collection(store.InventoryCollection),
	}
}

// ListByCollection returns every product in a merchandising collection,
// each with its inventory quantity (0 when no record exists).
func (r *Repository) ListByCollection(ctx context.Context, handle string) ([]ProductWithStock, error) {
	cursor, err := r.products.Find(ctx, bson.M{"collection_handle": handle})
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}

	out := make([]ProductWithStock, 0, len(products))
	for _, p := range products {
		quantity, err := r.quantityFor(ctx, p.ID.Hex())
		if err != nil {
			return nil, err
		}
		out = append(out, ProductWithStock{Product: p, Inventory: quantity})
	}

	return out, nil
}

// GetByID returns one product with its inventory quantity, or nil when the
// product does not exist.
func (r *Repository) GetByID(ctx context.Context, id domain.ProductID) (*ProductWithStock, error) {
	var product domain.Product
	err := r.products.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	quantity, err := r.quantityFor(ctx, id.Hex())
	if err != nil {
		return nil, err
	}

	return &ProductWithStock{Product: product, Inventory: quantity}, nil
}

func (r *Repository) quantityFor(ctx context.Context, productHex string) (int, error) {
	var inv domain.Inventory
	err := r.inventory.FindOne(ctx, bson.M{"product_id": productHex}).Decode(&inv)
	if err != nil {
		// A product without an inventory record sells out to zero, it is
		// not an error.
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, nil
		}
		return 0, err
	}
	return inv.Quantity, nil
}
