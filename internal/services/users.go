package services

import (
	"errors"

	"github.com/openshelf/openshelf/internal/database/users"
	"github.com/openshelf/openshelf/internal/entities"
	"github.com/openshelf/openshelf/internal/validation"
)

// Hasher is the abstract password hashing capability.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

// SessionIssuer mints the session token the transport layer sets as the jwt
// cookie. The token value is never part of an operation's response payload.
type SessionIssuer interface {
	Issue(userID uint, email string) (string, error)
}

// UserService implements the account transaction operations.
type UserService struct {
	users  *users.Repository
	hasher Hasher
	tokens SessionIssuer
}

func NewUserService(repo *users.Repository, hasher Hasher, tokens SessionIssuer) *UserService {
	return &UserService{users: repo, hasher: hasher, tokens: tokens}
}

type RegisterInput struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"confirm_password"`
}

// Register validates the candidate, hashes the password, and persists the
// user. The stored record only ever holds the digest.
func (s *UserService) Register(in RegisterInput) (*entities.User, error) {
	if result := validation.Registration(in.Username, in.Email, in.Password, in.PasswordConfirmation); !result.OK() {
		return nil, validationError(result)
	}

	taken, err := s.users.IdentifierTaken(in.Username, in.Email, 0)
	if err != nil {
		return nil, internalError("failed to check existing user", err)
	}
	if taken {
		return nil, conflictError("username or email already in use")
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, internalError("failed to hash password", err)
	}

	user := &entities.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: digest,
	}
	if err := s.users.Create(user); err != nil {
		return nil, internalError("failed to create user", err)
	}
	return user, nil
}

// Authenticate matches the identifier against username or email, verifies
// the password, and issues a session token for the caller to set as a
// cookie.
func (s *UserService) Authenticate(identifier, password string) (*entities.User, string, error) {
	user, err := s.users.GetByIdentifier(identifier)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, "", notFoundError("user")
		}
		return nil, "", internalError("failed to look up user", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", unauthorizedError("password incorrect")
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", internalError("failed to issue session token", err)
	}
	return user, token, nil
}

// GetAuthenticatedUser resolves the session's user id back to an account.
func (s *UserService) GetAuthenticatedUser(userID uint) (*entities.User, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, unauthorizedError("unknown user")
		}
		return nil, internalError("failed to load user", err)
	}
	return user, nil
}

// UpdateProfile re-validates and persists the username and email.
func (s *UserService) UpdateProfile(userID uint, username, email string) (*entities.User, error) {
	if result := validation.ProfileUpdate(username, email); !result.OK() {
		return nil, validationError(result)
	}

	taken, err := s.users.IdentifierTaken(username, email, userID)
	if err != nil {
		return nil, internalError("failed to check existing user", err)
	}
	if taken {
		return nil, conflictError("username or email already in use")
	}

	err = s.users.UpdateFields(userID, map[string]any{
		"username": username,
		"email":    email,
	})
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, notFoundError("user")
		}
		return nil, internalError("failed to update user", err)
	}
	return s.GetAuthenticatedUser(userID)
}

// UpdatePassword verifies the current password before writing a new digest.
func (s *UserService) UpdatePassword(userID uint, oldPassword, newPassword, confirmation string) error {
	if result := validation.PasswordUpdate(newPassword, confirmation); !result.OK() {
		return validationError(result)
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return unauthorizedError("unknown user")
		}
		return internalError("failed to load user", err)
	}

	if !s.hasher.Verify(oldPassword, user.PasswordHash) {
		return unauthorizedError("password incorrect")
	}

	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		return internalError("failed to hash password", err)
	}

	if err := s.users.UpdateFields(userID, map[string]any{"password_hash": digest}); err != nil {
		return internalError("failed to update password", err)
	}
	return nil
}
