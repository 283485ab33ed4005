package ports

import "github.com/fairai-labs/fairctl/internal/domain"

// SessionStore persists the authentication session between invocations.
// Load returns (nil, nil) when no session is stored.
type SessionStore interface {
	Load() (*domain.Session, error)
	Save(session *domain.Session) error
	Clear() error
}
