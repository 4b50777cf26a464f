package services

import (
	"errors"
	"fmt"

	"github.com/david-mackay/vibe-code-starter/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDirectory maps wallet addresses to durable user rows. Users are
// created lazily via GetOrCreate, never at sign-in.
type UserDirectory struct {
	db *gorm.DB
}

func NewUserDirectory(db *gorm.DB) *UserDirectory {
	return &UserDirectory{db: db}
}

func (d *UserDirectory) FindByWallet(walletAddress string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("wallet_address = ?", walletAddress).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &user, nil
}

// GetOrCreate is idempotent: the unique index on wallet_address is the
// source of truth for the create race. On insert conflict the existing
// row is re-read and returned.
func (d *UserDirectory) GetOrCreate(walletAddress string) (*models.User, error) {
	user, err := d.FindByWallet(walletAddress)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	created := models.User{WalletAddress: walletAddress}
	if err := d.db.Create(&created).Error; err != nil {
		// Lost the race or the store is down; a re-read disambiguates.
		if existing, findErr := d.FindByWallet(walletAddress); findErr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &created, nil
}

func (d *UserDirectory) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return &user, nil
}
