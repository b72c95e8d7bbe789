package auth

import (
	"context"

	"rentmarket/internal/domain"
	"rentmarket/internal/session"
)

// UserRepositoryInterface — only the methods the auth service uses
type UserRepositoryInterface interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ProviderRepositoryInterface — profile creation on provider signup
type ProviderRepositoryInterface interface {
	Create(ctx context.Context, p *domain.ProviderProfile) error
}

// SessionStore is the server-side session registry. A nil store disables
// revocation checks (tokens then live until they expire).
type SessionStore interface {
	Create(ctx context.Context, id string, userID int64, role string) error
	Get(ctx context.Context, id string) (*session.Session, error)
	Delete(ctx context.Context, id string) error
}
