package auth

import (
	"context"
	"errors"
	"strings"

	"rentmarket/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID int64, role, sessionID string) (string, error)
}

// Service contains all business logic for authentication
type Service struct {
	users     UserRepositoryInterface
	providers ProviderRepositoryInterface
	jwt       jwtService
	sessions  SessionStore
}

type LoginResult struct {
	User        *domain.User
	AccessToken string
	SessionID   string
}

func NewService(
	users UserRepositoryInterface,
	providers ProviderRepositoryInterface,
	jwt jwtService,
	sessions SessionStore,
) *Service {
	return &Service{
		users:     users,
		providers: providers,
		jwt:       jwt,
		sessions:  sessions,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	role := domain.UserRole(req.Role)
	if role == "" {
		role = domain.RoleRenter
	}
	if role != domain.RoleRenter && role != domain.RoleProvider {
		return nil, ErrInvalidRole
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if role == domain.RoleProvider {
		profile := &domain.ProviderProfile{
			UserID:      user.ID,
			CompanyName: req.CompanyName,
			FullName:    req.Name,
			Email:       user.Email,
		}
		if err := s.providers.Create(ctx, profile); err != nil {
			return nil, err
		}
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	if s.sessions != nil {
		if err := s.sessions.Create(ctx, sessionID, user.ID, string(user.Role)); err != nil {
			return nil, err
		}
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role), sessionID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:        user,
		AccessToken: token,
		SessionID:   sessionID,
	}, nil
}

// CurrentSession is the mount-time "do I have a session" check: it resolves
// the token's session against the store and returns the signed-in user.
func (s *Service) CurrentSession(ctx context.Context, userID int64, sessionID string) (*SessionInfo, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}

	info := &SessionInfo{
		User: UserPublic{
			ID:    user.ID,
			Role:  string(user.Role),
			Name:  user.Name,
			Email: user.Email,
		},
	}

	if s.sessions != nil && sessionID != "" {
		sess, err := s.sessions.Get(ctx, sessionID)
		if err != nil {
			return nil, ErrSessionExpired
		}
		info.IssuedAt = sess.IssuedAt
		info.ExpiresAt = sess.ExpiresAt
	}

	return info, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if s.sessions == nil || sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}
