package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when an identifier string cannot be parsed.
var ErrInvalidID = errors.New("invalid id")

// ProductID identifies a product document. It is parsed from its hex form
// once at the API boundary and passed as an opaque value afterwards.
type ProductID struct {
	oid primitive.ObjectID
}

func ParseProductID(s string) (ProductID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ProductID{}, ErrInvalidID
	}
	return ProductID{oid: oid}, nil
}

func ProductIDFromObjectID(oid primitive.ObjectID) ProductID {
	return ProductID{oid: oid}
}

func (id ProductID) ObjectID() primitive.ObjectID { return id.oid }

func (id ProductID) Hex() string { return id.oid.Hex() }

func (id ProductID) String() string { return id.oid.Hex() }

// OrderID identifies an order document, assigned at insert time.
type OrderID struct {
	oid primitive.ObjectID
}

func OrderIDFromObjectID(oid primitive.ObjectID) OrderID {
	return OrderID{oid: oid}
}

func ParseOrderID(s string) (OrderID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return OrderID{}, ErrInvalidID
	}
	return OrderID{oid: oid}, nil
}

func (id OrderID) ObjectID() primitive.ObjectID { return id.oid }

func (id OrderID) Hex() string { return id.oid.Hex() }

func (id OrderID) String() string { return id.oid.Hex() }

// ReviewID identifies a review document, assigned at insert time.
type ReviewID struct {
	oid primitive.ObjectID
}

func ReviewIDFromObjectID(oid primitive.ObjectID) ReviewID {
	return ReviewID{oid: oid}
}

func (id ReviewID) Hex() string { return id.oid.Hex() }

func (id ReviewID) String() string { return id.oid.Hex() }
