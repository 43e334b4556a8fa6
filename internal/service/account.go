// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/translata/translata/internal/auth"
	"github.com/translata/translata/internal/metrics"
	"github.com/translata/translata/internal/model"
	"github.com/translata/translata/internal/repository"
)

// Account service errors.
var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidInput       = errors.New("invalid registration input")
)

// Username validation: 3-32 chars, alphanumeric plus underscore and hyphen.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,32}$`)

const minPasswordLength = 8

// UserStore is the persistence surface AccountService needs.
// *repository.Repository satisfies this.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

// AccountService handles registration and login.
type AccountService struct {
	users   UserStore
	tokens  *auth.TokenService
	metrics metrics.Recorder

	// decoyHash is verified against when a login names an unknown user,
	// so both failure modes cost the same amount of work.
	decoyHash string
}

// NewAccountService creates a new AccountService.
func NewAccountService(users UserStore, tokens *auth.TokenService, recorder metrics.Recorder) *AccountService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}

	decoy, err := auth.HashPassword(uuid.New().String())
	if err != nil {
		decoy = ""
	}

	return &AccountService{
		users:     users,
		tokens:    tokens,
		metrics:   recorder,
		decoyHash: decoy,
	}
}

// RegisterInput defines input for registering a user.
type RegisterInput struct {
	Name     string
	Username string
	Password string
}

// Register creates a new user account. No token is issued; the caller
// logs in separately. Returns ErrUsernameTaken if the username exists;
// the uniqueness check is atomic in the store, so a losing concurrent
// registration fails cleanly with no partial state.
func (s *AccountService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if input.Name == "" || !usernameRegex.MatchString(input.Username) || len(input.Password) < minPasswordLength {
		return nil, ErrInvalidInput
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New().String(),
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user, nil
}

// Login verifies credentials and issues a session token.
// Credentials are always verified before a token is issued. A missing
// user and a wrong password both return ErrInvalidCredentials so the
// response cannot be used to enumerate usernames.
func (s *AccountService) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn the same hashing work as a real verification.
			_, _ = auth.VerifyPassword(password, s.decoyHash)
			s.metrics.IncLoginFailure()
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		s.metrics.IncLoginFailure()
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Username, user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.metrics.IncLoginSuccess()

	return user, token, nil
}
