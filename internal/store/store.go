// Package store connects to the document database and names its
// collections. Documents are loosely typed; all field constraints are
// enforced at the application boundary before any write.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"
)

const (
	ConfigCollection      = "config"
	CollectionsCollection = "collection"
	ProductsCollection    = "product"
	InventoryCollection   = "inventory"
	ReviewsCollection     = "review"
	OrdersCollection      = "order"
)

// Names lists every collection this service persists to, in schema order.
func Names() []string {
	return []string{
		ConfigCollection,
		CollectionsCollection,
		ProductsCollection,
		InventoryCollection,
		ReviewsCollection,
		OrdersCollection,
	}
}

// Connect opens an instrumented connection and verifies it with a ping.
func Connect(ctx context.Context, uri, database string) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100).
		SetMonitor(otelmongo.NewMonitor())

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("connect to document store: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping document store: %w", err)
	}

	return client.Database(database), nil
}
