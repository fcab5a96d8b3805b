package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Inventory tracks on-hand quantity for one product. The product reference
// is the product's hex id; quantity never goes negative.
type Inventory struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ProductID string             `bson:"product_id" json:"product_id"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}
