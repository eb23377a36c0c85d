package model

import "gorm.io/datatypes"

// RestaurantModel mirrors the 'restaurants' table.
// List columns are stored as JSON arrays so entries may contain commas.
type RestaurantModel struct {
	ID             uint    `gorm:"primaryKey;autoIncrement"`
	Key            string  `gorm:"column:restaurant_key;type:varchar(32);uniqueIndex;not null"`
	Name           string  `gorm:"type:varchar(200);not null"`
	Cuisine        string  `gorm:"type:varchar(100);not null"`
	Price          string  `gorm:"type:varchar(8);not null"`
	Rating         float64 `gorm:"not null;default:0"`
	DistanceKm     float64 `gorm:"not null;default:0"`
	Tags           datatypes.JSONSlice[string]
	Badges         datatypes.JSONSlice[string]
	MenuHighlights datatypes.JSONSlice[string]

	Favorites []FavoriteModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
