package handler

import (
	"tableplay/internal/domain/entity"
	"tableplay/internal/usecase"
)

type registerRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	DisplayName string `json:"display_name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type addFavoriteRequest struct {
	RestaurantID uint `json:"restaurant_id" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileResponse struct {
	ID          uint   `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type restaurantResponse struct {
	ID             uint     `json:"id"`
	Key            string   `json:"key"`
	Name           string   `json:"name"`
	Cuisine        string   `json:"cuisine"`
	Price          string   `json:"price"`
	Rating         float64  `json:"rating"`
	DistanceKm     float64  `json:"distance_km"`
	Tags           []string `json:"tags"`
	Badges         []string `json:"badges"`
	MenuHighlights []string `json:"menu_highlights"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func toTokenResponse(out *usecase.TokenOutput) tokenResponse {
	return tokenResponse{AccessToken: out.AccessToken, TokenType: out.TokenType}
}

func toRestaurantResponse(r *entity.Restaurant) restaurantResponse {
	return restaurantResponse{
		ID:             r.ID,
		Key:            r.Key,
		Name:           r.Name,
		Cuisine:        r.Cuisine,
		Price:          r.Price.String(),
		Rating:         r.Rating,
		DistanceKm:     r.DistanceKm,
		Tags:           nonNil(r.Tags),
		Badges:         nonNil(r.Badges),
		MenuHighlights: nonNil(r.MenuHighlights),
	}
}

// toRestaurantResponses always returns a non-nil slice so empty lists encode as [].
func toRestaurantResponses(restaurants []*entity.Restaurant) []restaurantResponse {
	out := make([]restaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, toRestaurantResponse(r))
	}

	return out
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}

	return list
}
