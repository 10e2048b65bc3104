package models

import (
	"time"

	"gorm.io/gorm"
)

// GameSession records one completed play of the game. Immutable after creation.
type GameSession struct {
	ID               string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID           string    `json:"userId" gorm:"index;type:varchar(36)" validate:"required,uuid"`
	Score            int       `json:"score" gorm:"not null;default:0" validate:"gte=0"`
	CoinsCollected   int       `json:"coinsCollected" gorm:"not null;default:0" validate:"gte=0"`
	DistanceTraveled int       `json:"distanceTraveled" gorm:"not null;default:0" validate:"gte=0"`
	PlayedAt         time.Time `json:"playedAt"`
	gorm.Model                 // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// GameSessionPowerUp records a power-up activated during a session.
type GameSessionPowerUp struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	GameSessionID string    `json:"gameSessionId" gorm:"index;type:varchar(36)" validate:"required,uuid"`
	PowerUpID     string    `json:"powerUpId" gorm:"type:varchar(36)" validate:"required,uuid"`
	ActivatedAt   time.Time `json:"activatedAt"`
	Duration      int       `json:"duration" validate:"gte=0"` // in seconds
	gorm.Model              // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
