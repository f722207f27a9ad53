package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Error160/blog-api/internal/core/domain"
	"github.com/Error160/blog-api/internal/core/ports"
)

// tokenKeyBytes yields 40 hex characters per key.
const tokenKeyBytes = 20

// AuthService implements registration, login, logout and token resolution.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenRepository
	tokenTTL time.Duration
	logger   zerolog.Logger
	now      func() time.Time
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenRepository, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * 24 * time.Hour
	}
	return &AuthService{
		users:    users,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Register validates the sign-up form, stores the user with a bcrypt hash and
// mints a fresh token for them.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)

	if in.Username == "" {
		return nil, domain.NewValidationError("username", "this field is required")
	}
	if in.Email == "" {
		return nil, domain.NewValidationError("email", "this field is required")
	}
	if len(in.Password) < domain.MinPasswordLength {
		return nil, domain.NewValidationError("password",
			fmt.Sprintf("ensure this field has at least %d characters", domain.MinPasswordLength))
	}
	if in.Password != in.PasswordConfirmation {
		return nil, domain.NewValidationError("password_confirmation", "passwords do not match")
	}

	if err := s.checkAvailable(ctx, in.Username, in.Email); err != nil {
		return nil, err
	}

	user, err := s.createUser(ctx, in, false)
	if err != nil {
		return nil, err
	}

	token, err := s.issueToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	return &ports.AuthResult{User: user, Token: token.Key}, nil
}

// Login checks the credentials and returns the user's live token, minting
// one only when none exists.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" {
		return nil, domain.NewValidationError("", "please provide both username and password")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.FindByUser(ctx, user.ID)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrTokenNotFound):
		if token, err = s.issueToken(ctx, user.ID); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("login: find token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.AuthResult{User: user, Token: token.Key}, nil
}

// Logout deletes the presented token.
func (s *AuthService) Logout(ctx context.Context, tokenKey string) error {
	if tokenKey == "" {
		return domain.ErrUnauthenticated
	}
	token, err := s.tokens.FindByKey(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return domain.ErrInvalidToken
		}
		return fmt.Errorf("logout: %w", err)
	}
	if err := s.tokens.Delete(ctx, *token); err != nil {
		return fmt.Errorf("logout: delete token: %w", err)
	}
	s.logger.Info().Str("user_id", token.UserID).Msg("user logged out")
	return nil
}

// Profile returns the caller's own record.
func (s *AuthService) Profile(ctx context.Context, who domain.Identity) (*domain.User, error) {
	if who.Anonymous() {
		return nil, domain.ErrUnauthenticated
	}
	return s.users.FindByID(ctx, who.UserID)
}

// Authenticate resolves a token key. Unknown, expired, or orphaned tokens
// yield domain.ErrInvalidToken.
func (s *AuthService) Authenticate(ctx context.Context, tokenKey string) (domain.Identity, error) {
	token, err := s.tokens.FindByKey(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			return domain.Identity{}, domain.ErrInvalidToken
		}
		return domain.Identity{}, fmt.Errorf("authenticate: %w", err)
	}
	if !token.ExpiresAt.IsZero() && !s.now().Before(token.ExpiresAt) {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Identity{}, domain.ErrInvalidToken
		}
		return domain.Identity{}, fmt.Errorf("authenticate: %w", err)
	}
	return user.Identity(), nil
}

// EnsureAdmin creates an admin account named username unless one with that
// username already exists. It is safe to run on every start.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, email, password string) error {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("ensure admin: %w", err)
	}

	if len(password) < domain.MinPasswordLength {
		return domain.NewValidationError("password",
			fmt.Sprintf("ensure this field has at least %d characters", domain.MinPasswordLength))
	}

	user, err := s.createUser(ctx, ports.RegisterInput{Username: username, Email: email, Password: password}, true)
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	s.logger.Info().Str("user_id", user.ID).Str("username", username).Msg("admin account created")
	return nil
}

func (s *AuthService) checkAvailable(ctx context.Context, username, email string) error {
	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return domain.NewValidationError("username", "username already exists")
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("register: %w", err)
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return domain.NewValidationError("email", "email already exists")
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("register: %w", err)
	}
	return nil
}

func (s *AuthService) createUser(ctx context.Context, in ports.RegisterInput, admin bool) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &domain.User{
		ID:           newID(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		IsAdmin:      admin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, domain.NewValidationError("", "a user with that username or email already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) issueToken(ctx context.Context, userID string) (*domain.Token, error) {
	key, err := randomKey(tokenKeyBytes)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	token := domain.Token{
		Key:       key,
		UserID:    userID,
		ExpiresAt: s.now().Add(s.tokenTTL),
	}
	if err := s.tokens.Save(ctx, token); err != nil {
		return nil, fmt.Errorf("save token: %w", err)
	}
	return &token, nil
}

func randomKey(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
