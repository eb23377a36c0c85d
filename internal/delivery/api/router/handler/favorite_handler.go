package handler

import (
	"strconv"

	"tableplay/internal/delivery/api/response"
	deliverycontext "tableplay/internal/delivery/context"
	"tableplay/internal/domain/entity"
	domainerrors "tableplay/internal/domain/errors"
	"tableplay/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler serves the caller's favorites. Every route sits behind AuthMiddleware.
type FavoriteHandler struct {
	uc usecase.FavoriteUsecase
}

func NewFavoriteHandler(uc usecase.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{uc: uc}
}

func (h *FavoriteHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	restaurants, err := h.uc.List(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toRestaurantResponses(restaurants))
}

func (h *FavoriteHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req addFavoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	restaurant, err := h.uc.Add(c.Request().Context(), user.ID, req.RestaurantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, toRestaurantResponse(restaurant))
}

func (h *FavoriteHandler) Remove(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	restaurantID, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 0)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("restaurant_id: must be a positive integer")
	}

	if err := h.uc.Remove(c.Request().Context(), user.ID, uint(restaurantID)); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, okResponse{OK: true})
}

func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, domainerrors.ErrMissingToken
	}

	return user, nil
}
