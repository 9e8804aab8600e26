package jwtinfra

import (
	"bytes"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	DefaultAccessTTL  = 24 * time.Hour
	DefaultRefreshTTL = 7 * 24 * time.Hour
)

// ErrInvalidToken is the only failure Verify reports: bad signature, malformed
// token, wrong algorithm, missing claims and expiry all collapse into it.
var ErrInvalidToken = errors.New("invalid token")

// Claims holds the JWT payload fields.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Keys is the signing configuration. Access and refresh tokens use distinct
// secrets so one can never be verified as the other.
type Keys struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// State is the outcome of checking an optional token.
type State int

const (
	StateAbsent State = iota
	StateInvalid
	StateValid
)

func (s State) String() string {
	switch s {
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return "absent"
	}
}

// Result is returned by Check. Email is set only when State is StateValid.
type Result struct {
	State State
	Email string
}

// Provider signs and verifies HS256 access and refresh tokens.
// It holds no mutable state and is safe for concurrent use.
type Provider struct {
	keys Keys
	now  func() time.Time
}

func NewProvider(keys Keys) (*Provider, error) {
	if len(keys.AccessSecret) == 0 || len(keys.RefreshSecret) == 0 {
		return nil, errors.New("access and refresh secrets are required")
	}
	if bytes.Equal(keys.AccessSecret, keys.RefreshSecret) {
		return nil, errors.New("access and refresh secrets must differ")
	}
	if keys.AccessTTL <= 0 {
		keys.AccessTTL = DefaultAccessTTL
	}
	if keys.RefreshTTL <= 0 {
		keys.RefreshTTL = DefaultRefreshTTL
	}
	keys.AccessSecret = bytes.Clone(keys.AccessSecret)
	keys.RefreshSecret = bytes.Clone(keys.RefreshSecret)
	return &Provider{keys: keys, now: time.Now}, nil
}

func (p *Provider) AccessTTL() time.Duration  { return p.keys.AccessTTL }
func (p *Provider) RefreshTTL() time.Duration { return p.keys.RefreshTTL }

func (p *Provider) IssueAccess(email string) (string, error) {
	return p.sign(email, p.keys.AccessSecret, p.keys.AccessTTL)
}

func (p *Provider) IssueRefresh(email string) (string, error) {
	return p.sign(email, p.keys.RefreshSecret, p.keys.RefreshTTL)
}

func (p *Provider) VerifyAccess(tokenStr string) (*Claims, error) {
	return p.Verify(tokenStr, p.keys.AccessSecret)
}

func (p *Provider) VerifyRefresh(tokenStr string) (*Claims, error) {
	return p.Verify(tokenStr, p.keys.RefreshSecret)
}

// Verify checks tokenStr against secret and returns its claims.
func (p *Provider) Verify(tokenStr string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		slog.Debug("token verification failed", "err", err)
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Refresh mints a new access token for the holder of a valid refresh token.
// The refresh token itself is not rotated and stays usable until it expires.
func (p *Provider) Refresh(refreshToken string) (string, error) {
	claims, err := p.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}
	return p.IssueAccess(claims.Email)
}

// Check classifies an access token that may not have been supplied at all.
func (p *Provider) Check(accessToken string) Result {
	if accessToken == "" {
		return Result{State: StateAbsent}
	}
	claims, err := p.VerifyAccess(accessToken)
	if err != nil {
		return Result{State: StateInvalid}
	}
	return Result{State: StateValid, Email: claims.Email}
}

func (p *Provider) sign(email string, secret []byte, ttl time.Duration) (string, error) {
	now := p.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
