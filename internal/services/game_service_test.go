package services_test

import (
	"testing"
	"time"

	"pelari/internal/models"
	"pelari/internal/repositories"
	"pelari/internal/services"

	"github.com/stretchr/testify/assert"
)

func newGameServiceFixture() (*services.GameService, *repositories.MockUserRepository, *repositories.MockSessionRepository, *repositories.MockPowerUpRepository) {
	userRepo := repositories.NewMockUserRepository()
	sessionRepo := repositories.NewMockSessionRepository()
	powerUpRepo := repositories.NewMockPowerUpRepository()
	txManager := repositories.NewMockTransactionManager(repositories.Repositories{
		Users:     userRepo,
		PowerUps:  powerUpRepo,
		Inventory: repositories.NewMockInventoryRepository(),
		Sessions:  sessionRepo,
	})
	service := services.NewGameService(userRepo, sessionRepo, powerUpRepo, txManager, nil)
	return service, userRepo, sessionRepo, powerUpRepo
}

func TestGameService_SubmitSession_NewHighScore(t *testing.T) {
	service, userRepo, _, _ := newGameServiceFixture()

	user := &models.User{Username: "runner", Email: "runner@example.com", Password: "x", Coin: 100, HighestScore: 50}
	assert.NoError(t, userRepo.Create(user))

	result, updated, err := service.SubmitSession(user.ID, services.SessionReport{
		Score:          80,
		CoinsCollected: 20,
	})
	assert.NoError(t, err)
	assert.True(t, result.IsHighScore)
	assert.Equal(t, 80, result.Score)
	assert.Equal(t, 120, updated.Coin)
	assert.Equal(t, 80, updated.HighestScore)

	// A lower follow-up score credits coins but keeps the highest score
	result, updated, err = service.SubmitSession(user.ID, services.SessionReport{
		Score:          60,
		CoinsCollected: 10,
	})
	assert.NoError(t, err)
	assert.False(t, result.IsHighScore)
	assert.Equal(t, 130, updated.Coin)
	assert.Equal(t, 80, updated.HighestScore)
}

func TestGameService_SubmitSession_TyingScoreIsNotHighScore(t *testing.T) {
	service, userRepo, _, _ := newGameServiceFixture()

	user := &models.User{Username: "runner", Email: "runner@example.com", Password: "x", HighestScore: 80}
	assert.NoError(t, userRepo.Create(user))

	result, updated, err := service.SubmitSession(user.ID, services.SessionReport{Score: 80})
	assert.NoError(t, err)
	assert.False(t, result.IsHighScore)
	assert.Equal(t, 80, updated.HighestScore)
}

func TestGameService_SubmitSession_DefaultsToZero(t *testing.T) {
	service, userRepo, _, _ := newGameServiceFixture()

	user := &models.User{Username: "runner", Email: "runner@example.com", Password: "x"}
	assert.NoError(t, userRepo.Create(user))

	// Empty report: score and coins default to zero, no high score on a
	// fresh profile since zero is not strictly greater than zero
	result, updated, err := service.SubmitSession(user.ID, services.SessionReport{})
	assert.NoError(t, err)
	assert.Equal(t, 0, result.Score)
	assert.False(t, result.IsHighScore)
	assert.Equal(t, 0, updated.Coin)
}

func TestGameService_SubmitSession_UserNotFound(t *testing.T) {
	service, _, _, _ := newGameServiceFixture()

	_, _, err := service.SubmitSession("missing-id", services.SessionReport{Score: 10})
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestGameService_SubmitSession_PowerUpUsages(t *testing.T) {
	service, userRepo, sessionRepo, powerUpRepo := newGameServiceFixture()

	user := &models.User{Username: "runner", Email: "runner@example.com", Password: "x"}
	assert.NoError(t, userRepo.Create(user))
	magnet := &models.PowerUp{Name: "Magnet", Description: "Pulls coins", Duration: 10, Price: 30}
	assert.NoError(t, powerUpRepo.Create(magnet))

	activated := time.Now().Add(-30 * time.Second)
	result, _, err := service.SubmitSession(user.ID, services.SessionReport{
		Score: 10,
		PowerUps: []services.PowerUpUsage{
			{PowerUpID: magnet.ID, ActivatedAt: activated, Duration: 10},
			{PowerUpID: "unknown-powerup", ActivatedAt: activated, Duration: 5},
		},
	})
	assert.NoError(t, err)

	// The unknown power-up entry is skipped without error
	assert.Len(t, result.PowerUps, 1)
	assert.Equal(t, magnet.ID, result.PowerUps[0].PowerUpID)
	assert.Equal(t, "Magnet", result.PowerUps[0].Name)

	usages, err := sessionRepo.GetUsagesBySession(result.ID)
	assert.NoError(t, err)
	assert.Len(t, usages, 1)
	assert.Equal(t, magnet.ID, usages[0].PowerUpID)
}

func TestGameService_ListUserSessions(t *testing.T) {
	service, userRepo, _, _ := newGameServiceFixture()

	user := &models.User{Username: "runner", Email: "runner@example.com", Password: "x"}
	assert.NoError(t, userRepo.Create(user))

	for _, score := range []int{40, 90, 70} {
		_, _, err := service.SubmitSession(user.ID, services.SessionReport{Score: score})
		assert.NoError(t, err)
	}

	sessions, err := service.ListUserSessions(user.ID)
	assert.NoError(t, err)
	assert.Len(t, sessions, 3)
	assert.Equal(t, 90, sessions[0].Score)
	assert.Equal(t, 70, sessions[1].Score)
	assert.Equal(t, 40, sessions[2].Score)

	// The user's best session is flagged as the high score in listings
	assert.True(t, sessions[0].IsHighScore)
	assert.False(t, sessions[1].IsHighScore)

	_, err = service.ListUserSessions("missing-id")
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestGameService_TopSessions(t *testing.T) {
	service, userRepo, _, _ := newGameServiceFixture()

	userA := &models.User{Username: "alpha", Email: "alpha@example.com", Password: "x"}
	userB := &models.User{Username: "beta", Email: "beta@example.com", Password: "x"}
	assert.NoError(t, userRepo.Create(userA))
	assert.NoError(t, userRepo.Create(userB))

	// 12 sessions across two users; only the top 10 come back
	for i := 1; i <= 6; i++ {
		_, _, err := service.SubmitSession(userA.ID, services.SessionReport{Score: i * 10})
		assert.NoError(t, err)
		_, _, err = service.SubmitSession(userB.ID, services.SessionReport{Score: i*10 + 5})
		assert.NoError(t, err)
	}

	top, err := service.TopSessions()
	assert.NoError(t, err)
	assert.Len(t, top, 10)
	assert.Equal(t, 65, top[0].Score)
	assert.Equal(t, "beta", top[0].Username)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Score, top[i].Score)
	}
}
