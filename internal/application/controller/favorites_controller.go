package controller

import (
	"errors"
	"net/http"

	"go-weather/internal/domain/entity"
	"go-weather/internal/domain/model"
	"go-weather/internal/domain/usecase/favorites"
	"go-weather/pkg/msg"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var validate = validator.New()

type FavoritesController struct {
	api     *echo.Group
	useCase favorites.UseCase
}

func NewFavoritesController(api *echo.Group, useCase favorites.UseCase) *FavoritesController {
	return &FavoritesController{api: api, useCase: useCase}
}

// InitFavoritesRoutes initializes favorites routes
func (controller *FavoritesController) InitFavoritesRoutes() {
	controller.api.GET("/getFavorites", controller.GetFavorites)
	controller.api.POST("/addToFavorites", controller.AddFavorite)
	controller.api.POST("/removeFavorite", controller.RemoveFavorite)
}

// GetFavorites godoc
// @Summary List favorites
// @Description Reloads favorites from storage and returns them grouped by state, state names with their first space replaced by an underscore
// @Tags favorites
// @Produce json
// @Success 200 {object} map[string][]string "Cities grouped by state"
// @Router /getFavorites [get]
func (controller *FavoritesController) GetFavorites(c echo.Context) error {
	// read failures are logged by the use case, the previous index is still served
	index, _ := controller.useCase.List(c.Request().Context())
	return c.JSON(http.StatusOK, index)
}

// AddFavorite godoc
// @Summary Add a favorite
// @Description Saves a city and state as a favorite. The zip code is accepted and ignored.
// @Tags favorites
// @Accept json
// @Produce json
// @Param favorite body model.LocationDTO true "Favorite location"
// @Success 201 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse "Missing city or state"
// @Router /addToFavorites [post]
func (controller *FavoritesController) AddFavorite(c echo.Context) error {
	var dto model.LocationDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("request.invalid-body")})
	}

	err := controller.useCase.Add(c.Request().Context(), entity.Favorite{City: dto.City, State: dto.State})
	if errors.Is(err, favorites.ErrInvalidFavorite) {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("favorites.invalid")})
	}

	// storage failures are logged and reported as accepted
	return c.JSON(http.StatusCreated, model.MessageResponse{Message: msg.GetMessage("favorites.add-accepted")})
}

// RemoveFavorite godoc
// @Summary Remove a favorite
// @Description Removes every saved entry matching the city and state
// @Tags favorites
// @Accept json
// @Produce json
// @Param favorite body model.FavoriteDTO true "Favorite to remove"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.ErrorResponse "Missing city or state"
// @Router /removeFavorite [post]
func (controller *FavoritesController) RemoveFavorite(c echo.Context) error {
	var dto model.FavoriteDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("request.invalid-body")})
	}
	if err := validate.Struct(dto); err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg.GetMessage("favorites.invalid")})
	}

	_, _ = controller.useCase.Remove(c.Request().Context(), entity.Favorite{City: dto.City, State: dto.State})
	return c.JSON(http.StatusOK, model.MessageResponse{Message: msg.GetMessage("favorites.remove-accepted")})
}
