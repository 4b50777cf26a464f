package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthNonce is reserved for a signed-challenge proof-of-wallet-ownership
// flow. The table is migrated for forward compatibility; no endpoint
// writes to it yet.
type AuthNonce struct {
	ID            uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	WalletAddress string    `gorm:"not null;index" json:"walletAddress"`
	Nonce         string    `gorm:"not null;uniqueIndex" json:"nonce"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	CreatedAt     time.Time `json:"createdAt"`
	ExpiresAt     time.Time `gorm:"not null" json:"expiresAt"`
}
