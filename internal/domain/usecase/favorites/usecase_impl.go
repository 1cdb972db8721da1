package favorites

import (
	"context"
	"fmt"
	"sync"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/lock"
	"go-weather/internal/domain/gateway/store"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// favoritesUseCase owns the favorites index. mu serializes every rebuild and mutation;
// the locker extends that to other processes sharing the same durable store.
type favoritesUseCase struct {
	mu           sync.Mutex
	index        *entity.FavoritesIndex
	loaded       bool
	storeGateway store.FavoritesGateway
	locker       lock.Locker
}

func NewFavoritesUseCase(storeGateway store.FavoritesGateway, locker lock.Locker) UseCase {
	if locker == nil {
		locker = lock.NoopLocker{}
	}
	return &favoritesUseCase{
		index:        entity.NewFavoritesIndex(),
		storeGateway: storeGateway,
		locker:       locker,
	}
}

func (uc *favoritesUseCase) List(ctx context.Context) (*entity.FavoritesIndex, error) {
	return uc.Rebuild(ctx)
}

func (uc *favoritesUseCase) Rebuild(ctx context.Context) (*entity.FavoritesIndex, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	err := uc.rebuildLocked(ctx)
	return uc.index.Clone(), err
}

func (uc *favoritesUseCase) Add(ctx context.Context, favorite entity.Favorite) error {
	if !favorite.Valid() {
		return fmt.Errorf("%w: city=%q state=%q", ErrInvalidFavorite, favorite.City, favorite.State)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	release, err := uc.locker.Acquire(ctx)
	if err != nil {
		log.Errorw(msg.GetMessage("favorites.lock-failed"), "error", err)
		return fmt.Errorf("failed to lock favorites: %w", err)
	}
	defer release()

	if err = uc.storeGateway.Append(ctx, favorite); err != nil {
		log.Errorw(msg.GetMessage("favorites.add-failed", favorite.City, favorite.State), "error", err)
		return fmt.Errorf("failed to add favorite: %w", err)
	}

	if uc.loaded {
		uc.index.Add(favorite)
	}
	log.Infow(msg.GetMessage("favorites.added", favorite.City, favorite.State))
	return nil
}

func (uc *favoritesUseCase) Remove(ctx context.Context, favorite entity.Favorite) (int, error) {
	if !favorite.Valid() {
		return 0, fmt.Errorf("%w: city=%q state=%q", ErrInvalidFavorite, favorite.City, favorite.State)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	release, err := uc.locker.Acquire(ctx)
	if err != nil {
		log.Errorw(msg.GetMessage("favorites.lock-failed"), "error", err)
		return 0, fmt.Errorf("failed to lock favorites: %w", err)
	}
	defer release()

	// a cold index would rewrite the store from nothing
	if !uc.loaded {
		if err = uc.rebuildLocked(ctx); err != nil {
			return 0, err
		}
	}

	remaining := uc.index.Clone()
	removed := remaining.Remove(favorite)

	if err = uc.storeGateway.ReplaceAll(ctx, remaining.Entries()); err != nil {
		log.Errorw(msg.GetMessage("favorites.rewrite-failed"), "error", err)
		return 0, fmt.Errorf("failed to rewrite favorites: %w", err)
	}

	uc.index = remaining
	log.Infow(msg.GetMessage("favorites.removed", favorite.City, favorite.State), "removed", removed)
	return removed, nil
}

func (uc *favoritesUseCase) Compact(ctx context.Context, requestID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	release, err := uc.locker.Acquire(ctx)
	if err != nil {
		log.Errorw(msg.GetMessage("favorites.lock-failed"), "requestId", requestID, "error", err)
		return fmt.Errorf("failed to lock favorites: %w", err)
	}
	defer release()

	if err = uc.rebuildLocked(ctx); err != nil {
		return err
	}

	if err = uc.storeGateway.ReplaceAll(ctx, uc.index.Entries()); err != nil {
		log.Errorw(msg.GetMessage("favorites.rewrite-failed"), "requestId", requestID, "error", err)
		return fmt.Errorf("failed to compact favorites: %w", err)
	}

	log.Infow(msg.GetMessage("favorites.compacted"), "requestId", requestID, "entries", uc.index.Len())
	return nil
}

// rebuildLocked must be called with mu held
func (uc *favoritesUseCase) rebuildLocked(ctx context.Context) error {
	records, err := uc.storeGateway.Load(ctx)
	if err != nil {
		log.Errorw(msg.GetMessage("favorites.read-failed"), "error", err)
		return fmt.Errorf("failed to rebuild favorites: %w", err)
	}

	uc.index = entity.BuildFavoritesIndex(records)
	uc.loaded = true
	log.Debugw(msg.GetMessage("favorites.rebuilt"), "records", len(records), "entries", uc.index.Len())
	return nil
}
