package services

import (
	"errors"
	"log"
	"time"

	"pelari/internal/models"
	"pelari/internal/repositories"
	"pelari/pkg/rabbitmq"
)

// topSessionsSize is the fixed page size of the global top-session listing.
const topSessionsSize = 10

// PowerUpUsage describes one power-up activation reported with a session.
// Name and Description are filled in from the catalog on the way out.
type PowerUpUsage struct {
	PowerUpID   string    `json:"powerUpId" validate:"required"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	ActivatedAt time.Time `json:"activatedAt"`
	Duration    int       `json:"duration" validate:"gte=0"` // in seconds
}

// SessionReport is the payload a client submits after a completed run.
// Absent numeric fields are treated as zero.
type SessionReport struct {
	Score            int            `json:"score" validate:"gte=0"`
	CoinsCollected   int            `json:"coinsCollected" validate:"gte=0"`
	DistanceTraveled int            `json:"distanceTraveled" validate:"gte=0"`
	PowerUps         []PowerUpUsage `json:"powerUps" validate:"omitempty,dive"`
}

// SessionResult is a view of a recorded session.
type SessionResult struct {
	ID               string         `json:"id"`
	UserID           string         `json:"userId"`
	Username         string         `json:"username"`
	Score            int            `json:"score"`
	CoinsCollected   int            `json:"coinsCollected"`
	DistanceTraveled int            `json:"distanceTraveled"`
	PlayedAt         time.Time      `json:"playedAt"`
	IsHighScore      bool           `json:"isHighScore"`
	PowerUps         []PowerUpUsage `json:"powerUps,omitempty"`
}

// GameService orchestrates the session/economy flow: persisting a session,
// crediting coins, detecting new high scores and recording power-up usage.
type GameService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	powerUpRepo repositories.PowerUpRepository
	txManager   repositories.TransactionManager
	mqClient    *rabbitmq.Client
}

// NewGameService creates a new GameService.
func NewGameService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	powerUpRepo repositories.PowerUpRepository,
	txManager repositories.TransactionManager,
	mqClient *rabbitmq.Client,
) *GameService {
	return &GameService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		powerUpRepo: powerUpRepo,
		txManager:   txManager,
		mqClient:    mqClient,
	}
}

// SubmitSession records a completed run for a user inside one transaction:
// the session row, any power-up usages, the coin credit and a highest-score
// update when the score strictly beats the previous best. Usage entries
// referencing unknown power-ups are skipped without error. Returns the saved
// session view and the updated profile.
func (s *GameService) SubmitSession(userID string, report SessionReport) (*SessionResult, *models.User, error) {
	var result *SessionResult
	var updatedUser *models.User

	err := s.txManager.WithinTransaction(func(repos repositories.Repositories) error {
		user, err := repos.Users.GetByID(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		session := &models.GameSession{
			UserID:           user.ID,
			Score:            report.Score,
			CoinsCollected:   report.CoinsCollected,
			DistanceTraveled: report.DistanceTraveled,
			PlayedAt:         time.Now(),
		}
		if err := repos.Sessions.Create(session); err != nil {
			return err
		}

		var usages []PowerUpUsage
		for _, pu := range report.PowerUps {
			powerUp, err := repos.PowerUps.GetByID(pu.PowerUpID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					continue // unknown power-ups are skipped, not an error
				}
				return err
			}
			usage := &models.GameSessionPowerUp{
				GameSessionID: session.ID,
				PowerUpID:     powerUp.ID,
				ActivatedAt:   pu.ActivatedAt,
				Duration:      pu.Duration,
			}
			if err := repos.Sessions.CreateUsage(usage); err != nil {
				return err
			}
			usages = append(usages, PowerUpUsage{
				PowerUpID:   powerUp.ID,
				Name:        powerUp.Name,
				Description: powerUp.Description,
				ActivatedAt: pu.ActivatedAt,
				Duration:    pu.Duration,
			})
		}

		user.Coin += report.CoinsCollected
		isHighScore := report.Score > user.HighestScore
		if isHighScore {
			user.HighestScore = report.Score
		}
		if err := repos.Users.Save(user); err != nil {
			return err
		}

		result = &SessionResult{
			ID:               session.ID,
			UserID:           user.ID,
			Username:         user.Username,
			Score:            session.Score,
			CoinsCollected:   session.CoinsCollected,
			DistanceTraveled: session.DistanceTraveled,
			PlayedAt:         session.PlayedAt,
			IsHighScore:      isHighScore,
			PowerUps:         usages,
		}
		updatedUser = user
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if s.mqClient != nil {
		if err := s.mqClient.PublishGameEvent(rabbitmq.EventSessionSaved, map[string]interface{}{
			"sessionId":   result.ID,
			"userId":      result.UserID,
			"score":       result.Score,
			"isHighScore": result.IsHighScore,
		}); err != nil {
			log.Printf("Warning: Failed to publish session saved event for session %s: %v", result.ID, err)
		}
	} else {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
	}

	return result, updatedUser, nil
}

// ListUserSessions returns all sessions of a user ordered by score
// descending, earliest first among equals.
func (s *GameService) ListUserSessions(userID string) ([]SessionResult, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	sessions, err := s.sessionRepo.GetByUser(user.ID)
	if err != nil {
		return nil, err
	}

	results := make([]SessionResult, 0, len(sessions))
	for _, session := range sessions {
		view, err := s.sessionView(session, user)
		if err != nil {
			return nil, err
		}
		results = append(results, *view)
	}
	return results, nil
}

// TopSessions returns the globally top-scoring sessions, bounded to a fixed
// page size.
func (s *GameService) TopSessions() ([]SessionResult, error) {
	sessions, err := s.sessionRepo.GetTop(topSessionsSize)
	if err != nil {
		return nil, err
	}

	results := make([]SessionResult, 0, len(sessions))
	for _, session := range sessions {
		user, err := s.userRepo.GetByID(session.UserID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				continue // orphaned session, skip from the listing
			}
			return nil, err
		}
		view, err := s.sessionView(session, user)
		if err != nil {
			return nil, err
		}
		results = append(results, *view)
	}
	return results, nil
}

// sessionView assembles the outward view of a stored session, joining its
// power-up usages with catalog data. A listed session is flagged as the high
// score when its score equals the user's current best.
func (s *GameService) sessionView(session models.GameSession, user *models.User) (*SessionResult, error) {
	stored, err := s.sessionRepo.GetUsagesBySession(session.ID)
	if err != nil {
		return nil, err
	}

	var usages []PowerUpUsage
	for _, u := range stored {
		usage := PowerUpUsage{
			PowerUpID:   u.PowerUpID,
			ActivatedAt: u.ActivatedAt,
			Duration:    u.Duration,
		}
		if powerUp, err := s.powerUpRepo.GetByID(u.PowerUpID); err == nil {
			usage.Name = powerUp.Name
			usage.Description = powerUp.Description
		}
		usages = append(usages, usage)
	}

	return &SessionResult{
		ID:               session.ID,
		UserID:           user.ID,
		Username:         user.Username,
		Score:            session.Score,
		CoinsCollected:   session.CoinsCollected,
		DistanceTraveled: session.DistanceTraveled,
		PlayedAt:         session.PlayedAt,
		IsHighScore:      session.Score == user.HighestScore,
		PowerUps:         usages,
	}, nil
}
