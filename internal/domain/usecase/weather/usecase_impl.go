package weather

import (
	"context"
	"fmt"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/memory"
	"go-weather/internal/domain/model"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

type weatherUseCase struct {
	apiGateway     api.WeatherGateway
	historyGateway memory.HistoryGateway
}

func NewWeatherUseCase(apiGateway api.WeatherGateway, historyGateway memory.HistoryGateway) UseCase {
	return &weatherUseCase{
		apiGateway:     apiGateway,
		historyGateway: historyGateway,
	}
}

// SearchWeather normalizes the location, fetches the current conditions and records the search on success
func (uc *weatherUseCase) SearchWeather(ctx context.Context, location model.LocationDTO) (*entity.SearchResult, error) {
	query := NormalizeLocation(location.ZipCode, location.City, location.State)

	if query.Kind == ByPostalCode && query.PostalCode != "" && (location.City != "" || location.State != "") {
		log.Debugw(msg.GetMessage("weather.postal-code-priority"), "zipCode", query.PostalCode, "city", location.City, "state", location.State)
	}

	result, err := uc.apiGateway.GetCurrent(ctx, query.Value())
	if err != nil {
		return nil, fmt.Errorf("failed to search weather by %s: %w", query.Kind, err)
	}

	uc.historyGateway.Record(entity.HistoryEntry{City: result.City, Region: result.State})
	log.Infow(msg.GetMessage("weather.found"), "city", result.City, "state", result.State, "query", query.Kind.String())

	return result, nil
}

// GetHistory returns the last searches labeled from the most recent
func (uc *weatherUseCase) GetHistory() model.HistorySnapshot {
	entries := uc.historyGateway.Entries()

	var snapshot model.HistorySnapshot
	labels := []**entity.HistoryEntry{&snapshot.LastLocation, &snapshot.SecondLastLocation, &snapshot.ThirdLastLocation}
	for i := 0; i < len(entries) && i < len(labels); i++ {
		entry := entries[i]
		*labels[i] = &entry
	}

	return snapshot
}
