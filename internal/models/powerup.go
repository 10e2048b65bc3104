package models

import "gorm.io/gorm"

// PowerUp represents a purchasable power-up in the catalog.
type PowerUp struct {
	ID               string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name             string  `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Description      string  `json:"description" validate:"omitempty,max=500"`
	Duration         int     `json:"duration" validate:"gte=0"` // in seconds
	EffectMultiplier float64 `json:"effectMultiplier"`
	Price            int     `json:"price" validate:"gte=0"`
	IconURL          string  `json:"iconUrl" validate:"omitempty,max=500"`
	gorm.Model               // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// UserPowerUp tracks how many of a power-up a user currently owns.
type UserPowerUp struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string `json:"userId" gorm:"uniqueIndex:idx_user_powerup;type:varchar(36)" validate:"required,uuid"`
	PowerUpID  string `json:"powerUpId" gorm:"uniqueIndex:idx_user_powerup;type:varchar(36)" validate:"required,uuid"`
	Quantity   int    `json:"quantity" gorm:"not null;default:0" validate:"gte=0"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
