package models

import (
	"time"

	"github.com/google/uuid"
)

// User is the durable identity behind a wallet address. Rows are created
// lazily on the first request that needs a stable id, never at sign-in.
type User struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WalletAddress string    `gorm:"not null;uniqueIndex" json:"walletAddress"`
	Todos         []Todo    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
