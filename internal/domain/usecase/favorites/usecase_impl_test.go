package favorites

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/lock"
	"go-weather/internal/domain/gateway/store"
	"go-weather/internal/domain/model"
)

func newCSVUseCase(t *testing.T, content string) (UseCase, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "favorites", "favorites.csv")
	if content != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return NewFavoritesUseCase(store.NewCSVFavoritesGateway(path), lock.NoopLocker{}), path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return string(data)
}

func TestAddThenRebuildSurfacesNormalizedState(t *testing.T) {
	useCase, _ := newCSVUseCase(t, "")
	ctx := context.Background()

	if err := useCase.Add(ctx, entity.Favorite{City: "Albany", State: "New York"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	index, err := useCase.Rebuild(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := index.Cities("New_York"); !reflect.DeepEqual(got, []string{"Albany"}) {
		t.Fatalf("expected Albany under New_York, got %v", got)
	}
	if got := index.Cities("New York"); len(got) != 0 {
		t.Fatalf("raw state key should not exist, got %v", got)
	}
}

func TestAddUpdatesLoadedIndex(t *testing.T) {
	useCase, path := newCSVUseCase(t, "Boise,Idaho\n")
	ctx := context.Background()

	if _, err := useCase.List(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := useCase.Add(ctx, entity.Favorite{City: "Nampa", State: "Idaho"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// removing from the loaded index must not lose the record added after the last rebuild
	if _, err := useCase.Remove(ctx, entity.Favorite{City: "Boise", State: "Idaho"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, path); got != "Nampa,Idaho\n" {
		t.Fatalf("unexpected file content %q", got)
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	useCase, _ := newCSVUseCase(t, "Boise,Idaho\nAlbany,New York\nNampa,Idaho\n")
	ctx := context.Background()

	first, err := useCase.Rebuild(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := useCase.Rebuild(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first.Entries(), second.Entries()) {
		t.Fatalf("rebuild is not idempotent: %v vs %v", first.Entries(), second.Entries())
	}
}

func TestRebuildExcludesInvalidRecords(t *testing.T) {
	useCase, _ := newCSVUseCase(t, "Boise,Idaho\n,Idaho\nundefined,Idaho\nNampa,\nNampa,undefined\nNampa\n")

	index, err := useCase.Rebuild(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []entity.Favorite{{City: "Boise", State: "Idaho"}}
	if !reflect.DeepEqual(index.Entries(), want) {
		t.Fatalf("unexpected entries: %v", index.Entries())
	}
}

func TestRemoveThenRebuild(t *testing.T) {
	useCase, path := newCSVUseCase(t, "Boise,Idaho\nAlbany,New York\nNampa,Idaho\nBoise,Idaho\n")
	ctx := context.Background()

	if _, err := useCase.List(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	removed, err := useCase.Remove(ctx, entity.Favorite{City: "Boise", State: "Idaho"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 2 {
		t.Fatalf("expected both duplicates removed, got %d", removed)
	}

	index, err := useCase.Rebuild(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index.Contains(entity.Favorite{City: "Boise", State: "Idaho"}) {
		t.Fatal("removed favorite is still present")
	}
	for _, kept := range []entity.Favorite{{City: "Albany", State: "New York"}, {City: "Nampa", State: "Idaho"}} {
		if !index.Contains(kept) {
			t.Fatalf("expected %v to be kept", kept)
		}
	}
	if got := readFile(t, path); got != "Nampa,Idaho\nAlbany,New_York\n" {
		t.Fatalf("unexpected file content %q", got)
	}
}

func TestRemoveOnColdIndexKeepsOtherRecords(t *testing.T) {
	useCase, path := newCSVUseCase(t, "Boise,Idaho\nNampa,Idaho\n")

	if _, err := useCase.Remove(context.Background(), entity.Favorite{City: "Boise", State: "Idaho"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, path); got != "Nampa,Idaho\n" {
		t.Fatalf("unexpected file content %q", got)
	}
}

func TestInvalidFavoritesAreRejected(t *testing.T) {
	useCase, path := newCSVUseCase(t, "")
	ctx := context.Background()

	for _, favorite := range []entity.Favorite{
		{City: "", State: "Idaho"},
		{City: "Boise", State: "undefined"},
	} {
		if err := useCase.Add(ctx, favorite); !errors.Is(err, ErrInvalidFavorite) {
			t.Errorf("add %v: expected ErrInvalidFavorite, got %v", favorite, err)
		}
		if _, err := useCase.Remove(ctx, favorite); !errors.Is(err, ErrInvalidFavorite) {
			t.Errorf("remove %v: expected ErrInvalidFavorite, got %v", favorite, err)
		}
	}

	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("invalid favorites must not touch storage, stat err: %v", err)
	}
}

func TestCompactNormalizesFile(t *testing.T) {
	useCase, path := newCSVUseCase(t, "Boise,Idaho\nundefined,Idaho\nAlbany,New York\n\n")

	if err := useCase.Compact(context.Background(), "req-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, path); got != "Boise,Idaho\nAlbany,New_York\n" {
		t.Fatalf("unexpected file content %q", got)
	}
}

type failingGateway struct {
	store.FavoritesGateway
	loadErr    error
	replaceErr error
	appendErr  error
}

func (g *failingGateway) Load(ctx context.Context) ([]entity.Favorite, error) {
	if g.loadErr != nil {
		return nil, g.loadErr
	}
	return g.FavoritesGateway.Load(ctx)
}

func (g *failingGateway) Append(ctx context.Context, favorite entity.Favorite) error {
	if g.appendErr != nil {
		return g.appendErr
	}
	return g.FavoritesGateway.Append(ctx, favorite)
}

func (g *failingGateway) ReplaceAll(ctx context.Context, favorites []entity.Favorite) error {
	if g.replaceErr != nil {
		return g.replaceErr
	}
	return g.FavoritesGateway.ReplaceAll(ctx, favorites)
}

func (g *failingGateway) Health() model.ComponentHealthStatus {
	return g.FavoritesGateway.Health()
}

func TestFailedRewriteLeavesIndexUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.csv")
	if err := os.WriteFile(path, []byte("Boise,Idaho\nNampa,Idaho\n"), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	gateway := &failingGateway{FavoritesGateway: store.NewCSVFavoritesGateway(path)}
	useCase := NewFavoritesUseCase(gateway, nil)
	ctx := context.Background()

	if _, err := useCase.List(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gateway.replaceErr = errors.New("disk full")
	if _, err := useCase.Remove(ctx, entity.Favorite{City: "Boise", State: "Idaho"}); err == nil {
		t.Fatal("expected rewrite error")
	}

	gateway.loadErr = errors.New("permission denied")
	index, err := useCase.Rebuild(ctx)
	if err == nil {
		t.Fatal("expected read error")
	}
	if index.Len() != 2 {
		t.Fatalf("expected the previous index to be kept, got %v", index.Entries())
	}
}

func TestFailedAppendLeavesIndexUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.csv")
	gateway := &failingGateway{FavoritesGateway: store.NewCSVFavoritesGateway(path)}
	useCase := NewFavoritesUseCase(gateway, nil)
	ctx := context.Background()

	if _, err := useCase.List(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	gateway.appendErr = errors.New("read-only file system")
	if err := useCase.Add(ctx, entity.Favorite{City: "Boise", State: "Idaho"}); err == nil {
		t.Fatal("expected append error")
	}

	gateway.loadErr = errors.New("permission denied")
	index, _ := useCase.Rebuild(ctx)
	if index.Len() != 0 {
		t.Fatalf("expected empty index, got %v", index.Entries())
	}
}

func TestConcurrentMutationsDoNotLoseRecords(t *testing.T) {
	useCase, _ := newCSVUseCase(t, "")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			city := string(rune('A' + i))
			if err := useCase.Add(ctx, entity.Favorite{City: city, State: "Idaho"}); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if i%2 == 0 {
				if _, err := useCase.Remove(ctx, entity.Favorite{City: city, State: "Idaho"}); err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		}(i)
	}
	wg.Wait()

	index, err := useCase.Rebuild(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if index.Len() != 10 {
		t.Fatalf("expected 10 favorites, got %d: %v", index.Len(), index.Entries())
	}
}

func TestMultiWordStateKeyShiftsAfterRewrite(t *testing.T) {
	useCase, path := newCSVUseCase(t, "Albany,New York State\nBoise,Idaho\n")
	ctx := context.Background()

	index, err := useCase.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := index.States(); !reflect.DeepEqual(got, []string{"New_York State", "Idaho"}) {
		t.Fatalf("unexpected states before rewrite: %v", got)
	}

	if _, err := useCase.Remove(ctx, entity.Favorite{City: "Boise", State: "Idaho"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := readFile(t, path); got != "Albany,New_York State\n" {
		t.Fatalf("unexpected file content %q", got)
	}

	// each rebuild replaces one more space of a key read back from the file
	index, err = useCase.Rebuild(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := index.States(); !reflect.DeepEqual(got, []string{"New_York_State"}) {
		t.Fatalf("unexpected states after rebuild: %v", got)
	}

	removed, err := useCase.Remove(ctx, entity.Favorite{City: "Albany", State: "New York State"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 0 {
		t.Fatalf("expected the raw state name to miss the shifted key, got %d removals", removed)
	}

	removed, err = useCase.Remove(ctx, entity.Favorite{City: "Albany", State: "New_York State"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected the stored key to match, got %d removals", removed)
	}
}
