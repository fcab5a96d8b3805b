package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseProductID(t *testing.T) {
	oid := primitive.NewObjectID()

	id, err := ParseProductID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), id.Hex())
	assert.Equal(t, oid, id.ObjectID())

	for _, bad := range []string{"", "nope", "zzzzzzzzzzzzzzzzzzzzzzzz", oid.Hex() + "00"} {
		_, err := ParseProductID(bad)
		assert.ErrorIs(t, err, ErrInvalidID, bad)
	}
}

func TestReviewValidate(t *testing.T) {
	review := Review{ProductID: primitive.NewObjectID().Hex(), Author: "June", Content: "Nice."}

	for rating := MinRating; rating <= MaxRating; rating++ {
		review.Rating = rating
		assert.NoError(t, review.Validate())
	}

	for _, rating := range []int{0, 6, -3, 100} {
		review.Rating = rating
		assert.ErrorIs(t, review.Validate(), ErrRatingOutOfRange)
	}
}

func TestOrderValidate(t *testing.T) {
	pid := primitive.NewObjectID().Hex()
	valid := Order{
		Items: []OrderItem{{ProductID: pid, Title: "X", Price: 24, Quantity: 1}},
		Email: "buyer@example.com",
	}
	assert.NoError(t, valid.Validate())

	t.Run("missing email", func(t *testing.T) {
		o := valid
		o.Email = ""
		assert.ErrorIs(t, o.Validate(), ErrMissingEmail)
	})

	t.Run("no items", func(t *testing.T) {
		o := valid
		o.Items = nil
		assert.ErrorIs(t, o.Validate(), ErrEmptyOrder)
	})

	t.Run("zero quantity", func(t *testing.T) {
		o := valid
		o.Items = []OrderItem{{ProductID: pid, Title: "X", Price: 24, Quantity: 0}}
		assert.ErrorIs(t, o.Validate(), ErrInvalidQuantity)
	})

	t.Run("negative price", func(t *testing.T) {
		o := valid
		o.Items = []OrderItem{{ProductID: pid, Title: "X", Price: -1, Quantity: 1}}
		assert.ErrorIs(t, o.Validate(), ErrNegativePrice)
	})

	t.Run("malformed product reference", func(t *testing.T) {
		o := valid
		o.Items = []OrderItem{{ProductID: "nope", Title: "X", Price: 1, Quantity: 1}}
		assert.ErrorIs(t, o.Validate(), ErrInvalidID)
	})
}

func TestProductValidate(t *testing.T) {
	negative := -1.0
	cases := []struct {
		name    string
		product Product
		wantErr error
	}{
		{"valid", Product{Title: "X", CollectionHandle: "core", Price: 24}, nil},
		{"missing title", Product{CollectionHandle: "core", Price: 24}, ErrMissingTitle},
		{"missing handle", Product{Title: "X", Price: 24}, ErrMissingHandle},
		{"negative price", Product{Title: "X", CollectionHandle: "core", Price: -24}, ErrNegativePrice},
		{"negative compare at", Product{Title: "X", CollectionHandle: "core", Price: 24, CompareAtPrice: &negative}, ErrNegativePrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.product.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.LimitedEditionActive)
	assert.Equal(t, "Celestial Gaze", cfg.LimitedEditionName)
	assert.Empty(t, cfg.ID)
}
