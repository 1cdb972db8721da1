package controller

import (
	"errors"
	"io/fs"
	"net/http"
	"os"

	"go-weather/internal/domain/model"
	"go-weather/pkg/msg"

	"github.com/labstack/echo/v4"
)

type DocumentationController struct {
	api  *echo.Group
	path string
}

func NewDocumentationController(api *echo.Group, path string) *DocumentationController {
	return &DocumentationController{api: api, path: path}
}

// InitDocumentationRoutes initializes documentation routes
func (controller *DocumentationController) InitDocumentationRoutes() {
	controller.api.GET("/documentation", controller.GetDocumentation)
}

// GetDocumentation godoc
// @Summary Project documentation
// @Description Serves the project documentation file
// @Tags documentation
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 404 {object} model.ErrorResponse
// @Router /documentation [get]
func (controller *DocumentationController) GetDocumentation(c echo.Context) error {
	info, err := os.Stat(controller.path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return c.JSON(http.StatusNotFound, model.ErrorResponse{Error: msg.GetMessage("documentation.not-found")})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: err.Error()})
	}
	return c.File(controller.path)
}
