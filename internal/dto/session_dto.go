package dto

type CreateSessionRequest struct {
	WalletAddress string `json:"walletAddress"`
}

// SessionUser is the identity shape returned to clients. ID is the
// wallet address until a durable user row exists, then the row's uuid.
type SessionUser struct {
	ID            string `json:"id"`
	WalletAddress string `json:"walletAddress"`
}

type SessionResponse struct {
	OK   bool        `json:"ok"`
	User SessionUser `json:"user"`
}

type SessionStateResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *SessionUser `json:"user,omitempty"`
}
