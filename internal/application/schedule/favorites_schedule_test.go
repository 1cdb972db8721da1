package schedule

import (
	"context"
	"errors"
	"testing"

	"go-weather/internal/domain/entity"
)

type compactingUseCase struct {
	requestIDs []string
	err        error
}

func (u *compactingUseCase) List(context.Context) (*entity.FavoritesIndex, error) {
	return entity.NewFavoritesIndex(), nil
}

func (u *compactingUseCase) Rebuild(context.Context) (*entity.FavoritesIndex, error) {
	return entity.NewFavoritesIndex(), nil
}

func (u *compactingUseCase) Add(context.Context, entity.Favorite) error {
	return nil
}

func (u *compactingUseCase) Remove(context.Context, entity.Favorite) (int, error) {
	return 0, nil
}

func (u *compactingUseCase) Compact(_ context.Context, requestID string) error {
	u.requestIDs = append(u.requestIDs, requestID)
	return u.err
}

func TestExecuteScheduledTaskTagsEachRun(t *testing.T) {
	useCase := &compactingUseCase{}
	scheduler := NewFavoritesScheduler(useCase, "@every 1h", 0)

	scheduler.ExecuteScheduledTask()
	useCase.err = errors.New("disk full")
	scheduler.ExecuteScheduledTask()

	if len(useCase.requestIDs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(useCase.requestIDs))
	}
	if useCase.requestIDs[0] == "" || useCase.requestIDs[0] == useCase.requestIDs[1] {
		t.Fatalf("expected distinct request ids, got %v", useCase.requestIDs)
	}
}

func TestInitFavoritesScheduleTasks(t *testing.T) {
	if err := NewFavoritesScheduler(&compactingUseCase{}, "", 0).InitFavoritesScheduleTasks(); err != nil {
		t.Fatalf("empty expression should disable compaction, got %v", err)
	}

	if err := NewFavoritesScheduler(&compactingUseCase{}, "not a cron", 0).InitFavoritesScheduleTasks(); err == nil {
		t.Fatal("expected an error for an invalid expression")
	}

	scheduler := NewFavoritesScheduler(&compactingUseCase{}, "@every 1h", 0)
	if err := scheduler.InitFavoritesScheduleTasks(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	scheduler.Stop()
}
