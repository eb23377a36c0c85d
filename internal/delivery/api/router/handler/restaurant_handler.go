package handler

import (
	"tableplay/internal/delivery/api/response"
	"tableplay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type RestaurantHandler struct {
	uc usecase.CatalogUsecase
}

func NewRestaurantHandler(uc usecase.CatalogUsecase) *RestaurantHandler {
	return &RestaurantHandler{uc: uc}
}

// List is public; the catalog is the same for every caller.
func (h *RestaurantHandler) List(c echo.Context) error {
	restaurants, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toRestaurantResponses(restaurants))
}
