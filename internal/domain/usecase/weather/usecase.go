package weather

import (
	"context"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
)

type UseCase interface {
	// SearchWeather normalizes the location, fetches the current conditions and records the search on success
	SearchWeather(ctx context.Context, location model.LocationDTO) (*entity.SearchResult, error)

	// GetHistory returns the last searches labeled from the most recent
	GetHistory() model.HistorySnapshot
}
