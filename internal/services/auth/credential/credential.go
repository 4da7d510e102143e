// Package credential verifies email and password pairs against a fixed set
// of bootstrap accounts with bcrypt password hashes.
package credential

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong password.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// Default account used when no bootstrap users are configured.
const (
	DefaultUserID       = "1"
	DefaultUserName     = "Test User"
	DefaultUserEmail    = "test@example.com"
	DefaultUserPassword = "password123"
)

// User is a bootstrap account as configured in PORTFOLIO_SPACE_BOOTSTRAP_USERS.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
}

// Identity is the public view of a verified account.
type Identity struct {
	ID    string
	Name  string
	Email string
}

// Store verifies credentials against an immutable set of users.
type Store struct {
	byEmail map[string]User
	// decoy keeps unknown-email checks as slow as wrong-password checks.
	decoy []byte
}

// NewStore indexes users by normalized email.
func NewStore(users []User) (*Store, error) {
	if len(users) == 0 {
		return nil, errors.New("at least one user is required")
	}
	byEmail := make(map[string]User, len(users))
	ids := make(map[string]struct{}, len(users))
	cost := bcrypt.DefaultCost
	for i, user := range users {
		user.ID = strings.TrimSpace(user.ID)
		user.Name = strings.TrimSpace(user.Name)
		email := normalizeEmail(user.Email)
		if user.ID == "" {
			return nil, fmt.Errorf("user %d: id is required", i)
		}
		if email == "" {
			return nil, fmt.Errorf("user %s: email is required", user.ID)
		}
		userCost, err := bcrypt.Cost([]byte(user.PasswordHash))
		if err != nil {
			return nil, fmt.Errorf("user %s: password hash: %w", user.ID, err)
		}
		if _, ok := byEmail[email]; ok {
			return nil, fmt.Errorf("user %s: duplicate email %s", user.ID, email)
		}
		if _, ok := ids[user.ID]; ok {
			return nil, fmt.Errorf("duplicate user id %s", user.ID)
		}
		user.Email = email
		byEmail[email] = user
		ids[user.ID] = struct{}{}
		cost = userCost
	}
	decoy, err := bcrypt.GenerateFromPassword([]byte("portfolio.space decoy"), cost)
	if err != nil {
		return nil, fmt.Errorf("generate decoy hash: %w", err)
	}
	return &Store{byEmail: byEmail, decoy: decoy}, nil
}

// Verify returns the identity for email when password matches its hash.
func (s *Store) Verify(ctx context.Context, email, password string) (Identity, error) {
	if err := ctx.Err(); err != nil {
		return Identity{}, err
	}
	user, ok := s.byEmail[normalizeEmail(email)]
	if !ok {
		_ = bcrypt.CompareHashAndPassword(s.decoy, []byte(password))
		return Identity{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}
	return Identity{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

// ParseUsers decodes a JSON array of users.
func ParseUsers(raw string) ([]User, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var users []User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("decode bootstrap users: %w", err)
	}
	return users, nil
}

// HashPassword returns a bcrypt hash of password at cost.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("password is required")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// DefaultUsers returns the single local test account.
func DefaultUsers(cost int) ([]User, error) {
	hash, err := HashPassword(DefaultUserPassword, cost)
	if err != nil {
		return nil, err
	}
	return []User{{
		ID:           DefaultUserID,
		Name:         DefaultUserName,
		Email:        DefaultUserEmail,
		PasswordHash: hash,
	}}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
