package controller

import (
	"errors"
	"net/http"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/gateway/api"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/weather"
	"go-weather/pkg/log"
	"go-weather/pkg/msg"

	"github.com/labstack/echo/v4"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.POST("/weatherInformation", controller.SearchWeather)
	controller.api.GET("/getHistory", controller.GetHistory)
}

// SearchWeather godoc
// @Summary Current weather for a location
// @Description Looks up current conditions by zip code, or by city and state when no zip code is given. Successful searches are added to the history.
// @Tags weather
// @Accept json
// @Produce json
// @Param location body model.LocationDTO true "Location fields, any of them may be empty"
// @Success 200 {object} entity.SearchResult
// @Failure 400 {object} entity.ErrorResult "Error reported by the weather provider"
// @Failure 502 {object} entity.ErrorResult "Unrecognized provider response"
// @Failure 503 {object} entity.ErrorResult "Weather provider unavailable"
// @Router /weatherInformation [post]
func (controller *WeatherController) SearchWeather(c echo.Context) error {
	var dto model.LocationDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("request.invalid-body")})
	}

	result, err := controller.useCase.SearchWeather(c.Request().Context(), dto)
	if err == nil {
		return c.JSON(http.StatusOK, result)
	}

	var providerErr *api.ProviderError
	switch {
	case errors.As(err, &providerErr):
		log.Infow(msg.GetMessage("weather.provider-error"), "code", providerErr.Code, "message", providerErr.Message)
		return c.JSON(http.StatusBadRequest, providerErr.Result())
	case errors.Is(err, api.ErrTransport):
		log.Errorw(msg.GetMessage("weather.unavailable"), "error", err)
		return c.JSON(http.StatusServiceUnavailable, entity.ErrorResult{
			ErrorCode:    http.StatusServiceUnavailable,
			ErrorMessage: msg.GetMessage("weather.unavailable"),
		})
	case errors.Is(err, api.ErrUnrecognizedResponse):
		log.Errorw(msg.GetMessage("weather.unrecognized"), "error", err)
		return c.JSON(http.StatusBadGateway, entity.ErrorResult{
			ErrorCode:    http.StatusBadGateway,
			ErrorMessage: msg.GetMessage("weather.unrecognized"),
		})
	default:
		log.Errorw(msg.GetMessage("weather.failed"), "error", err)
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
	}
}

// GetHistory godoc
// @Summary Search history
// @Description The last three successful searches, most recent first
// @Tags weather
// @Produce json
// @Success 200 {object} model.HistorySnapshot
// @Router /getHistory [get]
func (controller *WeatherController) GetHistory(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.GetHistory())
}
