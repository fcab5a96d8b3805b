package configflag

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gramtop961/gilded-gaze-backend/internal/domain"
	"github.com/gramtop961/gilded-gaze-backend/internal/store"
)

// Repository manages the config singleton. The document lives under a
// fixed key so the first toggle is one upsert, never find-then-insert.
type Repository struct {
	col *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(store.ConfigCollection)}
}

// Get returns the live config, or the defaults when none exists yet.
func (r *Repository) Get(ctx context.Context) (domain.Config, error) {
	var cfg domain.Config
	err := r.col.FindOne(ctx, bson.M{"_id": domain.ConfigKey}).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, err
	}
	return cfg, nil
}

// SetLimitedEditionActive flips the flag, creating the singleton with the
// default display name when it does not exist.
func (r *Repository) SetLimitedEditionActive(ctx context.Context, active bool) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": domain.ConfigKey},
		bson.M{
			"$set":         bson.M{"limited_edition_active": active},
			"$setOnInsert": bson.M{"limited_edition_name": domain.DefaultConfig().LimitedEditionName},
		},
		options.Update().SetUpsert(true),
	)
	return err
}
