package model

import "time"

// FavoriteModel mirrors the 'favorites' table.
// The composite unique index is what keeps concurrent adds from creating duplicates.
type FavoriteModel struct {
	ID           uint `gorm:"primaryKey;autoIncrement"`
	UserID       uint `gorm:"not null;uniqueIndex:uq_favorites_user_restaurant,priority:1"`
	RestaurantID uint `gorm:"not null;uniqueIndex:uq_favorites_user_restaurant,priority:2;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// All returns every model in migration order.
func All() []any {
	return []any{&UserModel{}, &RestaurantModel{}, &FavoriteModel{}}
}
