package favorites

import (
	"context"
	"errors"

	"go-weather/internal/domain/entity"
)

// ErrInvalidFavorite is returned for a favorite with an empty or undefined city or state
var ErrInvalidFavorite = errors.New("invalid favorite")

type UseCase interface {
	// List rebuilds the index from the durable store and returns it
	List(ctx context.Context) (*entity.FavoritesIndex, error)

	// Rebuild replaces the in-memory index with the valid records of the durable store.
	// On a read failure the previous index is kept and returned along with the error.
	Rebuild(ctx context.Context) (*entity.FavoritesIndex, error)

	// Add appends the favorite to the durable store and to the loaded index
	Add(ctx context.Context, favorite entity.Favorite) error

	// Remove deletes every exact match and rewrites the durable store from the remaining index
	Remove(ctx context.Context, favorite entity.Favorite) (int, error)

	// Compact rewrites the durable store from a fresh rebuild, dropping invalid records and normalizing state keys
	Compact(ctx context.Context, requestID string) error
}
