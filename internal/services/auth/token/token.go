// Package token issues and verifies the HS256 bearer tokens carried by web
// sessions.
package token

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinKeyBytes is the shortest accepted HS256 signing key.
const MinKeyBytes = 32

// DefaultTTL is the lifetime of issued tokens when none is configured.
const DefaultTTL = 24 * time.Hour

var (
	// ErrTokenInvalid reports a malformed, unsigned, or tampered token.
	ErrTokenInvalid = errors.New("token is invalid")
	// ErrTokenExpired reports a well-formed token past its exp claim.
	ErrTokenExpired = errors.New("token is expired")
)

// Subject identifies the account a token is issued for.
type Subject struct {
	ID    string
	Name  string
	Email string
}

// Claims are the verified contents of a token.
type Claims struct {
	Subject   Subject
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type accessClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Signer issues and verifies tokens with a shared HS256 key.
type Signer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewSigner builds a Signer. A zero ttl uses DefaultTTL; a nil now uses
// time.Now.
func NewSigner(key []byte, ttl time.Duration, now func() time.Time) (*Signer, error) {
	if len(key) < MinKeyBytes {
		return nil, fmt.Errorf("signing key must be at least %d bytes", MinKeyBytes)
	}
	if ttl < 0 {
		return nil, errors.New("token ttl must not be negative")
	}
	if ttl == 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Signer{key: append([]byte(nil), key...), ttl: ttl, now: now}, nil
}

// DecodeKey accepts a base64url (padded or not) or standard base64 key as
// produced by the signing-key tool.
func DecodeKey(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("signing key is required")
	}
	for _, enc := range []*base64.Encoding{
		base64.RawURLEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.StdEncoding,
	} {
		if key, err := enc.DecodeString(raw); err == nil {
			if len(key) < MinKeyBytes {
				return nil, fmt.Errorf("signing key must be at least %d bytes", MinKeyBytes)
			}
			return key, nil
		}
	}
	return nil, errors.New("signing key is not valid base64")
}

// TTL reports the lifetime applied to issued tokens.
func (s *Signer) TTL() time.Duration {
	return s.ttl
}

// Issue signs a token for subject and returns it with its expiry.
func (s *Signer) Issue(subject Subject) (string, time.Time, error) {
	if strings.TrimSpace(subject.ID) == "" {
		return "", time.Time{}, errors.New("subject id is required")
	}
	issuedAt := s.now().UTC().Truncate(time.Second)
	expiresAt := issuedAt.Add(s.ttl)
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.ID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Name:  subject.Name,
		Email: subject.Email,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks the signature and expiry of raw.
func (s *Signer) Verify(raw string) (Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Claims{}, ErrTokenInvalid
	}

	var parsed accessClaims
	_, err := jwt.ParseWithClaims(raw, &parsed, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return Claims{}, mapJWTError(err)
	}
	if strings.TrimSpace(parsed.Subject) == "" || parsed.ExpiresAt == nil {
		return Claims{}, ErrTokenInvalid
	}
	expiresAt := parsed.ExpiresAt.Time.UTC()
	if !expiresAt.After(s.now().UTC()) {
		return Claims{}, ErrTokenExpired
	}

	claims := Claims{
		Subject: Subject{
			ID:    parsed.Subject,
			Name:  parsed.Name,
			Email: parsed.Email,
		},
		ExpiresAt: expiresAt,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return claims, nil
}

func mapJWTError(err error) error {
	if errors.Is(err, jwt.ErrTokenExpired) {
		return ErrTokenExpired
	}
	return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
}
