package services_test

import (
	"testing"

	"pelari/internal/models"
	"pelari/internal/repositories"
	"pelari/internal/services"

	"github.com/stretchr/testify/assert"
)

func newShopServiceFixture() (*services.ShopService, *repositories.MockUserRepository, *repositories.MockPowerUpRepository, *repositories.MockInventoryRepository) {
	userRepo := repositories.NewMockUserRepository()
	powerUpRepo := repositories.NewMockPowerUpRepository()
	inventoryRepo := repositories.NewMockInventoryRepository()
	txManager := repositories.NewMockTransactionManager(repositories.Repositories{
		Users:     userRepo,
		PowerUps:  powerUpRepo,
		Inventory: inventoryRepo,
		Sessions:  repositories.NewMockSessionRepository(),
	})
	service := services.NewShopService(userRepo, powerUpRepo, inventoryRepo, txManager, nil)
	return service, userRepo, powerUpRepo, inventoryRepo
}

func TestShopService_BuyAndUsePowerUp(t *testing.T) {
	service, userRepo, powerUpRepo, inventoryRepo := newShopServiceFixture()

	user := &models.User{Username: "runner", Email: "runner@example.com", Password: "x", Coin: 120}
	assert.NoError(t, userRepo.Create(user))
	magnet := &models.PowerUp{Name: "Magnet", Price: 30}
	assert.NoError(t, powerUpRepo.Create(magnet))

	// First buy creates the inventory row with quantity 1
	updated, err := service.BuyPowerUp(user.ID, magnet.ID)
	assert.NoError(t, err)
	assert.Equal(t, 90, updated.Coin)
	entry, err := inventoryRepo.GetByUserAndPowerUp(user.ID, magnet.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, entry.Quantity)

	// Second buy increments the same row
	updated, err = service.BuyPowerUp(user.ID, magnet.ID)
	assert.NoError(t, err)
	assert.Equal(t, 60, updated.Coin)
	entry, err = inventoryRepo.GetByUserAndPowerUp(user.ID, magnet.ID)
	assert.NoError(t, err)
	assert.Equal(t, 2, entry.Quantity)

	// Use decrements by one
	assert.NoError(t, service.UsePowerUp(user.ID, magnet.ID))
	entry, _ = inventoryRepo.GetByUserAndPowerUp(user.ID, magnet.ID)
	assert.Equal(t, 1, entry.Quantity)

	// Draining to zero and using again stays at zero with no error
	assert.NoError(t, service.UsePowerUp(user.ID, magnet.ID))
	assert.NoError(t, service.UsePowerUp(user.ID, magnet.ID))
	assert.NoError(t, service.UsePowerUp(user.ID, magnet.ID))
	entry, _ = inventoryRepo.GetByUserAndPowerUp(user.ID, magnet.ID)
	assert.Equal(t, 0, entry.Quantity)
}

func TestShopService_BuyPowerUp_InsufficientCoins(t *testing.T) {
	service, userRepo, powerUpRepo, inventoryRepo := newShopServiceFixture()

	user := &models.User{Username: "runner", Email: "runner@example.com", Password: "x", Coin: 20}
	assert.NoError(t, userRepo.Create(user))
	shield := &models.PowerUp{Name: "Shield", Price: 50}
	assert.NoError(t, powerUpRepo.Create(shield))

	_, err := service.BuyPowerUp(user.ID, shield.ID)
	assert.ErrorIs(t, err, services.ErrInsufficientCoins)

	// No mutation occurred
	unchanged, _ := userRepo.GetByID(user.ID)
	assert.Equal(t, 20, unchanged.Coin)
	_, err = inventoryRepo.GetByUserAndPowerUp(user.ID, shield.ID)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}

func TestShopService_BuyPowerUp_NotFound(t *testing.T) {
	service, userRepo, powerUpRepo, _ := newShopServiceFixture()

	user := &models.User{Username: "runner", Email: "runner@example.com", Password: "x", Coin: 100}
	assert.NoError(t, userRepo.Create(user))
	magnet := &models.PowerUp{Name: "Magnet", Price: 30}
	assert.NoError(t, powerUpRepo.Create(magnet))

	_, err := service.BuyPowerUp("missing-user", magnet.ID)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	_, err = service.BuyPowerUp(user.ID, "missing-powerup")
	assert.ErrorIs(t, err, services.ErrPowerUpNotFound)
}

func TestShopService_UsePowerUp_NothingOwnedIsNoOp(t *testing.T) {
	service, userRepo, powerUpRepo, _ := newShopServiceFixture()

	user := &models.User{Username: "runner", Email: "runner@example.com", Password: "x"}
	assert.NoError(t, userRepo.Create(user))
	magnet := &models.PowerUp{Name: "Magnet", Price: 30}
	assert.NoError(t, powerUpRepo.Create(magnet))

	// No inventory row at all: silent no-op
	assert.NoError(t, service.UsePowerUp(user.ID, magnet.ID))

	// Unknown user or power-up still fail
	assert.ErrorIs(t, service.UsePowerUp("missing-user", magnet.ID), services.ErrUserNotFound)
	assert.ErrorIs(t, service.UsePowerUp(user.ID, "missing-powerup"), services.ErrPowerUpNotFound)
}

func TestShopService_CatalogAndListOwned(t *testing.T) {
	service, userRepo, powerUpRepo, _ := newShopServiceFixture()

	user := &models.User{Username: "runner", Email: "runner@example.com", Password: "x", Coin: 200}
	assert.NoError(t, userRepo.Create(user))
	magnet := &models.PowerUp{Name: "Magnet", Price: 30}
	shield := &models.PowerUp{Name: "Shield", Price: 50}
	assert.NoError(t, powerUpRepo.Create(magnet))
	assert.NoError(t, powerUpRepo.Create(shield))

	catalog, err := service.Catalog()
	assert.NoError(t, err)
	assert.Len(t, catalog, 2)

	_, err = service.BuyPowerUp(user.ID, magnet.ID)
	assert.NoError(t, err)
	_, err = service.BuyPowerUp(user.ID, magnet.ID)
	assert.NoError(t, err)
	_, err = service.BuyPowerUp(user.ID, shield.ID)
	assert.NoError(t, err)

	owned, err := service.ListOwned(user.ID)
	assert.NoError(t, err)
	assert.Len(t, owned, 2)

	quantities := map[string]int{}
	for _, item := range owned {
		quantities[item.Name] = item.Quantity
	}
	assert.Equal(t, 2, quantities["Magnet"])
	assert.Equal(t, 1, quantities["Shield"])
}
