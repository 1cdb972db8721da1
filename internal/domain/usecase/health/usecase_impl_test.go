package health

import (
	"context"
	"path/filepath"
	"testing"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/lock"
	"go-weather/internal/domain/gateway/store"
	"go-weather/internal/domain/model"
)

type stubWeatherGateway struct {
	state string
}

func (s stubWeatherGateway) GetCurrent(context.Context, string) (*entity.SearchResult, error) {
	return nil, nil
}

func (s stubWeatherGateway) BreakerState() string {
	return s.state
}

func TestCheckHealth(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		path    string
		breaker string
		want    model.HealthStatus
	}{
		{"all up", filepath.Join(dir, "favorites.csv"), "closed", model.StatusUp},
		{"half open breaker is up", filepath.Join(dir, "favorites.csv"), "half-open", model.StatusUp},
		{"open breaker", filepath.Join(dir, "favorites.csv"), "open", model.StatusDown},
		{"broken storage", dir, "closed", model.StatusDown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			useCase := NewHealthUseCase(store.NewCSVFavoritesGateway(tc.path), lock.NoopLocker{}, stubWeatherGateway{state: tc.breaker})
			response := useCase.CheckHealth()
			if response.Status != tc.want {
				t.Errorf("status = %s, want %s (%+v)", response.Status, tc.want, response)
			}
			if response.Provider.Details["breaker"] != tc.breaker {
				t.Errorf("unexpected provider details: %v", response.Provider.Details)
			}
		})
	}
}
