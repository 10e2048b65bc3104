package services

import (
	"errors"
	"log"

	"pelari/internal/models"
	"pelari/internal/repositories"
	"pelari/pkg/rabbitmq"
)

// OwnedPowerUp is one row of a user's inventory joined with the catalog.
type OwnedPowerUp struct {
	PowerUpID string `json:"powerUpId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// ShopService handles the power-up economy: buying with coins, consuming on
// use and listing the catalog and owned quantities.
type ShopService struct {
	userRepo      repositories.UserRepository
	powerUpRepo   repositories.PowerUpRepository
	inventoryRepo repositories.InventoryRepository
	txManager     repositories.TransactionManager
	mqClient      *rabbitmq.Client
}

// NewShopService creates a new ShopService.
func NewShopService(
	userRepo repositories.UserRepository,
	powerUpRepo repositories.PowerUpRepository,
	inventoryRepo repositories.InventoryRepository,
	txManager repositories.TransactionManager,
	mqClient *rabbitmq.Client,
) *ShopService {
	return &ShopService{
		userRepo:      userRepo,
		powerUpRepo:   powerUpRepo,
		inventoryRepo: inventoryRepo,
		txManager:     txManager,
		mqClient:      mqClient,
	}
}

// Catalog returns all purchasable power-ups.
func (s *ShopService) Catalog() ([]models.PowerUp, error) {
	return s.powerUpRepo.GetAll()
}

// ListOwned returns the user's inventory with names joined from the catalog.
func (s *ShopService) ListOwned(userID string) ([]OwnedPowerUp, error) {
	entries, err := s.inventoryRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	owned := make([]OwnedPowerUp, 0, len(entries))
	for _, entry := range entries {
		item := OwnedPowerUp{
			PowerUpID: entry.PowerUpID,
			Quantity:  entry.Quantity,
		}
		if powerUp, err := s.powerUpRepo.GetByID(entry.PowerUpID); err == nil {
			item.Name = powerUp.Name
		}
		owned = append(owned, item)
	}
	return owned, nil
}

// BuyPowerUp debits the power-up's price from the user's coin balance and
// increments their inventory, creating the row on first purchase. Debit and
// inventory upsert commit together or not at all. Returns the updated
// profile.
func (s *ShopService) BuyPowerUp(userID, powerUpID string) (*models.User, error) {
	var updatedUser *models.User

	err := s.txManager.WithinTransaction(func(repos repositories.Repositories) error {
		user, err := repos.Users.GetByID(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		powerUp, err := repos.PowerUps.GetByID(powerUpID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrPowerUpNotFound
			}
			return err
		}

		if user.Coin < powerUp.Price {
			return ErrInsufficientCoins
		}

		user.Coin -= powerUp.Price
		if err := repos.Users.Save(user); err != nil {
			return err
		}

		entry, err := repos.Inventory.GetByUserAndPowerUp(user.ID, powerUp.ID)
		switch {
		case err == nil:
			entry.Quantity++
			if err := repos.Inventory.Save(entry); err != nil {
				return err
			}
		case errors.Is(err, repositories.ErrNotFound):
			entry = &models.UserPowerUp{
				UserID:    user.ID,
				PowerUpID: powerUp.ID,
				Quantity:  1,
			}
			if err := repos.Inventory.Create(entry); err != nil {
				return err
			}
		default:
			return err
		}

		updatedUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(rabbitmq.EventPowerUpPurchased, userID, powerUpID)
	return updatedUser, nil
}

// UsePowerUp consumes one owned power-up. Using with no inventory row or a
// zero quantity is a silent no-op; quantity never goes below zero.
func (s *ShopService) UsePowerUp(userID, powerUpID string) error {
	consumed := false

	err := s.txManager.WithinTransaction(func(repos repositories.Repositories) error {
		if _, err := repos.Users.GetByID(userID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if _, err := repos.PowerUps.GetByID(powerUpID); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrPowerUpNotFound
			}
			return err
		}

		entry, err := repos.Inventory.GetByUserAndPowerUp(userID, powerUpID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return nil // nothing owned, silently ignored
			}
			return err
		}
		if entry.Quantity == 0 {
			return nil
		}

		entry.Quantity--
		if err := repos.Inventory.Save(entry); err != nil {
			return err
		}
		consumed = true
		return nil
	})
	if err != nil {
		return err
	}

	if consumed {
		s.publishEvent(rabbitmq.EventPowerUpUsed, userID, powerUpID)
	}
	return nil
}

func (s *ShopService) publishEvent(event, userID, powerUpID string) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}
	if err := s.mqClient.PublishGameEvent(event, map[string]interface{}{
		"userId":    userID,
		"powerUpId": powerUpID,
	}); err != nil {
		log.Printf("Warning: Failed to publish %s event for user %s: %v", event, userID, err)
	}
}
