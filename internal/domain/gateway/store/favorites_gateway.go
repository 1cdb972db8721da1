package store

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

// FavoritesGateway is the durable side of the favorites store.
// Records come back raw, in storage order; filtering and grouping belong to the caller.
type FavoritesGateway interface {
	// Load reads every record. A store that was never written yields no records and no error.
	Load(ctx context.Context) ([]entity.Favorite, error)

	// Append adds one record at the end of the store
	Append(ctx context.Context, favorite entity.Favorite) error

	// ReplaceAll swaps the whole content of the store; readers see either the old or the new content
	ReplaceAll(ctx context.Context, favorites []entity.Favorite) error

	Health() model.ComponentHealthStatus
}
