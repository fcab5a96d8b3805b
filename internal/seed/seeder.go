// Package seed populates an empty store with the demo catalog. Every
// section is guarded by an emptiness check, so re-running it never
// duplicates documents.
package seed

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gramtop961/gilded-gaze-backend/internal/domain"
	"github.com/gramtop961/gilded-gaze-backend/internal/store"
)

type Seeder struct {
	db     *mongo.Database
	logger *slog.Logger
}

func NewSeeder(db *mongo.Database, logger *slog.Logger) *Seeder {
	return &Seeder{
		db:     db,
		logger: logger,
	}
}

func (s *Seeder) Seed(ctx context.Context) error {
	if err := s.seedConfig(ctx); err != nil {
		return fmt.Errorf("seed config: %w", err)
	}
	if err := s.seedCollections(ctx); err != nil {
		return fmt.Errorf("seed collections: %w", err)
	}
	if err := s.seedProducts(ctx); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

func (s *Seeder) seedConfig(ctx context.Context) error {
	empty, err := s.isEmpty(ctx, store.ConfigCollection)
	if err != nil || !empty {
		return err
	}

	cfg := domain.DefaultConfig()
	cfg.ID = domain.ConfigKey
	if _, err := s.db.Collection(store.ConfigCollection).InsertOne(ctx, cfg); err != nil {
		return err
	}

	s.logger.Info("config seeded")
	return nil
}

func (s *Seeder) seedCollections(ctx context.Context) error {
	empty, err := s.isEmpty(ctx, store.CollectionsCollection)
	if err != nil || !empty {
		return err
	}

	for _, c := range DemoCollections() {
		if err := c.Validate(); err != nil {
			return err
		}
		if _, err := s.db.Collection(store.CollectionsCollection).InsertOne(ctx, c); err != nil {
			return err
		}
	}

	s.logger.Info("collections seeded", "count", len(DemoCollections()))
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	empty, err := s.isEmpty(ctx, store.ProductsCollection)
	if err != nil || !empty {
		return err
	}

	products := DemoProducts()
	for _, entry := range products {
		if err := entry.Product.Validate(); err != nil {
			return err
		}

		result, err := s.db.Collection(store.ProductsCollection).InsertOne(ctx, entry.Product)
		if err != nil {
			return err
		}

		oid, ok := result.InsertedID.(primitive.ObjectID)
		if !ok {
			return fmt.Errorf("unexpected inserted id type for product %q", entry.Product.Title)
		}

		inv := domain.Inventory{
			ProductID: oid.Hex(),
			Quantity:  entry.Quantity,
		}
		if _, err := s.db.Collection(store.InventoryCollection).InsertOne(ctx, inv); err != nil {
			return err
		}
	}

	s.logger.Info("products seeded", "count", len(products))
	return nil
}

func (s *Seeder) isEmpty(ctx context.Context, collection string) (bool, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
