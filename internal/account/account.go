//go:generate mockgen -source ./account.go -destination=./mocks/account.go -package=mock_account
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"gitlab.ozon.dev/pupkingeorgij/packcounter/internal/repository"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("only administrators can manage users")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrMissingFields      = errors.New("username and password are required")
	ErrInvalidRole        = errors.New("role must be admin or user")
	ErrSelfDelete         = errors.New("you cannot delete your own account")
	ErrUserNotFound       = errors.New("user not found")
)

type UserRepository interface {
	Create(ctx context.Context, user *repository.User) error
	GetByUsername(ctx context.Context, username string) (*repository.User, error)
	List(ctx context.Context) ([]*repository.User, error)
	Count(ctx context.Context) (int, error)
	Update(ctx context.Context, username string, user *repository.User) error
	Delete(ctx context.Context, username string) error
}

// Identity is an authenticated operator.
type Identity struct {
	Username string
	Role     Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", ErrInvalidRole
	}
}

type Service struct {
	users  UserRepository
	cost   int
	logger *zap.Logger
}

func NewService(users UserRepository, cost int, logger *zap.Logger) *Service {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{users: users, cost: cost, logger: logger}
}

func (s *Service) Authenticate(ctx context.Context, username, password string) (*Identity, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			s.logger.Warn("login failed", zap.String("username", username))
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("login failed", zap.String("username", username))
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("user logged in", zap.String("username", user.Username))
	return &Identity{Username: user.Username, Role: Role(user.Role)}, nil
}

// EnsureDefaultAdmin seeds one administrator when no user exists yet and
// reports whether it did.
func (s *Service) EnsureDefaultAdmin(ctx context.Context, username, password string) (bool, error) {
	count, err := s.users.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	if username == "" {
		username = DefaultAdminUsername
	}
	if password == "" {
		password = DefaultAdminPassword
	}

	hash, err := s.hash(password)
	if err != nil {
		return false, err
	}
	if err := s.users.Create(ctx, &repository.User{Username: username, Password: hash, Role: string(RoleAdmin)}); err != nil {
		return false, fmt.Errorf("failed to create default admin: %w", err)
	}

	s.logger.Info("default admin created", zap.String("username", username))
	if password == DefaultAdminPassword {
		s.logger.Warn("default admin uses the placeholder password; change it before real use",
			zap.String("username", username))
	}
	return true, nil
}

func (s *Service) List(ctx context.Context, actor Identity) ([]Identity, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make([]Identity, len(users))
	for i, u := range users {
		out[i] = Identity{Username: u.Username, Role: Role(u.Role)}
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, actor Identity, username, password string, role Role) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrMissingFields
	}
	if _, err := ParseRole(string(role)); err != nil {
		return err
	}

	hash, err := s.hash(password)
	if err != nil {
		return err
	}

	err = s.users.Create(ctx, &repository.User{Username: username, Password: hash, Role: string(role)})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user created", zap.String("username", username), zap.String("role", string(role)), zap.String("by", actor.Username))
	return nil
}

// Update renames a user and sets its role. An empty password keeps the
// current one.
func (s *Service) Update(ctx context.Context, actor Identity, username, newUsername, password string, role Role) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	newUsername = strings.TrimSpace(newUsername)
	if newUsername == "" {
		return ErrMissingFields
	}
	if _, err := ParseRole(string(role)); err != nil {
		return err
	}

	user := &repository.User{Username: newUsername, Role: string(role)}
	if password != "" {
		hash, err := s.hash(password)
		if err != nil {
			return err
		}
		user.Password = hash
	}

	if err := s.users.Update(ctx, username, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicate):
			return ErrUsernameTaken
		case errors.Is(err, repository.ErrObjectNotFound):
			return ErrUserNotFound
		default:
			return fmt.Errorf("failed to update user: %w", err)
		}
	}

	s.logger.Info("user updated", zap.String("username", username), zap.String("new_username", newUsername), zap.String("by", actor.Username))
	return nil
}

func (s *Service) Delete(ctx context.Context, actor Identity, username string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	if username == actor.Username {
		return ErrSelfDelete
	}

	if err := s.users.Delete(ctx, username); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("user deleted", zap.String("username", username), zap.String("by", actor.Username))
	return nil
}

func (s *Service) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
