package services

import "errors"

// Business-rule failures surfaced by the service layer. Handlers translate
// them into failure envelopes with errors.Is; anything else is treated as an
// internal error.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPowerUpNotFound    = errors.New("power-up not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrEmailTaken         = errors.New("email is already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInsufficientCoins  = errors.New("not enough coins")
)
