package services

import (
	"errors"

	"pelari/internal/models"
	"pelari/internal/repositories"
)

// leaderboardSize is the fixed page size of the global leaderboard.
const leaderboardSize = 10

// LeaderboardEntry is one row of the global leaderboard, ranked by position.
type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
}

// UserService handles profile lookups and the leaderboard.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// GetUserByID retrieves a player's profile by ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// GetUserByUsername retrieves a player's profile by username.
func (s *UserService) GetUserByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Leaderboard returns the top players by highest score descending. Ranks are
// assigned by position starting at 1; equal scores rank the earlier-created
// player first.
func (s *UserService) Leaderboard() ([]LeaderboardEntry, error) {
	users, err := s.userRepo.TopByHighestScore(leaderboardSize)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for i, user := range users {
		entries = append(entries, LeaderboardEntry{
			Username: user.Username,
			Score:    user.HighestScore,
			Rank:     i + 1,
		})
	}
	return entries, nil
}
