package service

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/wearcast/wearcast/internal/apperr"
	"github.com/wearcast/wearcast/internal/auth"
	"github.com/wearcast/wearcast/internal/metrics"
	"github.com/wearcast/wearcast/internal/model"
	"github.com/wearcast/wearcast/internal/repository"
)

// credentialMessage is the single message for every failed login attempt.
// Unknown email and wrong password must be indistinguishable to the caller.
const credentialMessage = "Incorrect email or password"

// dummyHash is a bcrypt hash of a throwaway value, compared against when the
// email is unknown so both login failure paths cost one hash verification.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserStore is the persistence contract the user service relies on.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	UpdateUserProfile(ctx context.Context, id, name, avatar string) (*model.User, error)
}

// UserService handles signup, login and profile operations.
type UserService struct {
	store   UserStore
	hasher  *auth.Hasher
	tokens  *auth.TokenService
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, hasher *auth.Hasher, tokens *auth.TokenService, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   store,
		hasher:  hasher,
		tokens:  tokens,
		metrics: recorder,
	}
}

// RegisterInput defines input for creating an account.
type RegisterInput struct {
	Name     string
	Avatar   string
	Email    string
	Password string
}

// Register validates the signup payload, hashes the password and creates the
// user. The plaintext password is discarded; only the hash is stored.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateURL(input.Avatar, "avatar"); err != nil {
		return nil, err
	}
	if err := validateEmail(input.Email); err != nil {
		return nil, err
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	now := time.Now().UTC()
	user := &model.User{
		ID:           ulid.Make().String(),
		Name:         input.Name,
		Avatar:       input.Avatar,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return nil, apperr.Conflict("a user with this email already exists")
		}
		return nil, apperr.Internal("failed to create user", err)
	}

	s.metrics.IncUserRegistered()

	return user, nil
}

// LoginInput defines input for authenticating.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and issues an identity token.
// Both unknown email and hash mismatch yield the same unauthorized error.
func (s *UserService) Login(ctx context.Context, input LoginInput) (string, error) {
	if input.Email == "" || input.Password == "" {
		return "", apperr.BadRequest("email and password are required")
	}

	user, err := s.store.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn a hash comparison so this path costs the same as a
			// wrong password on an existing account.
			_ = s.hasher.Verify(input.Password, dummyHash)
			s.metrics.IncLoginFailure()
			return "", apperr.Unauthorized(credentialMessage)
		}
		return "", apperr.Internal("failed to look up user", err)
	}

	if err := s.hasher.Verify(input.Password, user.PasswordHash); err != nil {
		s.metrics.IncLoginFailure()
		return "", apperr.Unauthorized(credentialMessage)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", apperr.Internal("failed to issue token", err)
	}

	s.metrics.IncLoginSuccess()

	return token, nil
}

// GetProfile returns the profile for the authenticated user.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("failed to get user", err)
	}
	return user, nil
}

// UpdateProfileInput defines input for updating the caller's own profile.
// Only name and avatar are mutable.
type UpdateProfileInput struct {
	Name   string
	Avatar string
}

// UpdateProfile validates and applies a profile update for the caller.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*model.User, error) {
	if err := validateName(input.Name); err != nil {
		return nil, err
	}
	if err := validateURL(input.Avatar, "avatar"); err != nil {
		return nil, err
	}

	user, err := s.store.UpdateUserProfile(ctx, userID, input.Name, input.Avatar)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, apperr.Internal("failed to update user", err)
	}

	return user, nil
}
