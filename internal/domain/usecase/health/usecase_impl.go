package health

import (
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/gateway/lock"
	"go-weather/internal/domain/gateway/store"
	"go-weather/internal/domain/model"
)

type healthUseCase struct {
	storeGateway store.FavoritesGateway
	locker       lock.Locker
	apiGateway   api.WeatherGateway
}

func NewHealthUseCase(storeGateway store.FavoritesGateway, locker lock.Locker, apiGateway api.WeatherGateway) UseCase {
	return &healthUseCase{
		storeGateway: storeGateway,
		locker:       locker,
		apiGateway:   apiGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	favoritesHealth := useCase.storeGateway.Health()
	lockHealth := useCase.locker.Health()
	providerHealth := useCase.providerHealth()

	overallStatus := model.StatusUp
	if favoritesHealth.Status != model.StatusUp || lockHealth.Status != model.StatusUp || providerHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:    overallStatus,
		Favorites: favoritesHealth,
		Lock:      lockHealth,
		Provider:  providerHealth,
	}
}

// providerHealth is DOWN only while the circuit breaker is open
func (useCase *healthUseCase) providerHealth() model.ComponentHealthStatus {
	state := useCase.apiGateway.BreakerState()

	status := model.StatusUp
	if state == "open" {
		status = model.StatusDown
	}

	return model.ComponentHealthStatus{
		Status:  status,
		Details: map[string]string{"breaker": state},
	}
}
