package model

import "go-weather/internal/domain/entity"

// LocationDTO is the body accepted by the weather search and add-to-favorites endpoints.
// Any field may be empty or the literal "undefined".
type LocationDTO struct {
	ZipCode string `json:"zipCode"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// HistorySnapshot is the labeled view over the search history, most recent first
type HistorySnapshot struct {
	LastLocation       *entity.HistoryEntry `json:"lastLocation,omitempty"`
	SecondLastLocation *entity.HistoryEntry `json:"secondLastLocation,omitempty"`
	ThirdLastLocation  *entity.HistoryEntry `json:"thirdLastLocation,omitempty"`
}
