package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/ayush/blog-service/internal/models"
)

// Validation errors, reported before any store access happens.
var (
	ErrMissingIdentifier = errors.New("username or email is required")
	ErrMissingPassword   = errors.New("password is required")
	ErrMissingFields     = errors.New("username, email, and password are required")
	ErrInvalidPassword   = errors.New("incorrect password")
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	CreateUser(ctx context.Context, username, email, hashedPw string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// AuthResult identifies a successfully authenticated account.
type AuthResult struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// Service implements account registration and authentication over a UserStore.
type Service struct {
	users UserStore
}

func NewService(users UserStore) *Service {
	return &Service{users: users}
}

// Register creates a new account after verifying that neither the username
// nor the email is already taken. The username check runs first; when both
// collide only the username conflict is reported.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (int64, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return 0, ErrMissingFields
	}

	if err := s.verifyNotInUse(ctx, req.Username, req.Email); err != nil {
		return 0, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	// The store still reports a duplicate here if a concurrent registration
	// won the race between the checks above and this insert.
	user, err := s.users.CreateUser(ctx, req.Username, req.Email, string(hashed))
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (s *Service) verifyNotInUse(ctx context.Context, username, email string) error {
	if _, err := s.users.GetUserByUsername(ctx, username); err == nil {
		return models.ErrExistingUsername
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return err
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return models.ErrExistingEmail
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return err
	}

	return nil
}

// Authenticate verifies a password against the account identified by username
// or email. Username wins when both are supplied.
func (s *Service) Authenticate(ctx context.Context, req models.LoginRequest) (AuthResult, error) {
	if req.Username == "" && req.Email == "" {
		return AuthResult{}, ErrMissingIdentifier
	}
	if req.Password == "" {
		return AuthResult{}, ErrMissingPassword
	}

	var (
		user *models.User
		err  error
	)
	if req.Username != "" {
		user, err = s.users.GetUserByUsername(ctx, req.Username)
	} else {
		user, err = s.users.GetUserByEmail(ctx, req.Email)
	}
	if err != nil {
		return AuthResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return AuthResult{}, ErrInvalidPassword
	}

	return AuthResult{UserID: user.ID, Username: user.Username}, nil
}

// User returns the account for id.
func (s *Service) User(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetUserByID(ctx, id)
}
