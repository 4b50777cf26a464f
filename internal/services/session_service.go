package services

import (
	"errors"

	"github.com/david-mackay/vibe-code-starter/internal/models"
	"github.com/david-mackay/vibe-code-starter/internal/session"
	"github.com/david-mackay/vibe-code-starter/internal/wallet"
	"github.com/google/uuid"
)

// Directory is the slice of UserDirectory the resolver needs.
type Directory interface {
	GetOrCreate(walletAddress string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
}

// Identity is a wallet-level identity decoded from a valid token, not
// necessarily backed by a user row yet.
type Identity struct {
	Subject       string
	WalletAddress string
}

// SessionService resolves inbound tokens into one of: unauthenticated,
// wallet-only identity, or a DB-backed user.
type SessionService struct {
	codec *session.Codec
	users Directory
}

func NewSessionService(codec *session.Codec, users Directory) *SessionService {
	return &SessionService{codec: codec, users: users}
}

// SignIn issues a token for the claimed address as-is. There is no
// proof-of-possession check: anyone reaching the endpoint can claim any
// address. Known limitation of the starter, see the reserved auth_nonces
// table for the intended challenge flow.
func (s *SessionService) SignIn(walletAddress string) (string, string, error) {
	normalized := wallet.Normalize(walletAddress)
	token, err := s.codec.Issue(normalized)
	return token, normalized, err
}

// AuthenticatedIdentity is the cheap "am I logged in" check. It never
// touches the store.
func (s *SessionService) AuthenticatedIdentity(token string) (*Identity, bool) {
	if token == "" {
		return nil, false
	}
	payload, err := s.codec.Verify(token)
	if err != nil {
		return nil, false
	}
	return &Identity{Subject: payload.Subject, WalletAddress: payload.WalletAddress}, true
}

// RequireResolvedUser is the gate every durable-data operation passes
// through. A UUID-shaped subject is a durable user id and is looked up
// directly; anything else is a wallet address and the user row is
// created lazily. A UUID subject with no matching row is a stale or
// foreign token and counts as unauthenticated.
func (s *SessionService) RequireResolvedUser(token string) (*models.User, error) {
	ident, ok := s.AuthenticatedIdentity(token)
	if !ok {
		return nil, ErrUnauthenticated
	}

	if id, err := uuid.Parse(ident.Subject); err == nil {
		user, err := s.users.FindByID(id)
		if err != nil {
			if errors.Is(err, ErrUserNotFound) {
				return nil, ErrUnauthenticated
			}
			return nil, ErrStoreUnavailable
		}
		return user, nil
	}

	user, err := s.users.GetOrCreate(ident.WalletAddress)
	if err != nil {
		return nil, ErrStoreUnavailable
	}
	return user, nil
}
