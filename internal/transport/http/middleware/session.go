package middleware

import (
	"context"
	"net/http"

	"github.com/go-pet-adoption-api/internal/domain"
	jwtinfra "github.com/go-pet-adoption-api/internal/infrastructure/jwt"
)

// Cookie names carrying the credentials.
const (
	AccessTokenCookie  = "accessToken"
	RefreshTokenCookie = "refreshToken"
)

// Reasons a request is refused by Session.
var (
	ErrNoToken      = domain.NewError(domain.ErrUnauthorized, "No token provided")
	ErrInvalidToken = domain.NewError(domain.ErrUnauthorized, "Invalid token")
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the caller resolved from a valid access token.
type Identity struct {
	Email string
}

// AccessVerifier checks access tokens.
type AccessVerifier interface {
	VerifyAccess(token string) (*jwtinfra.Claims, error)
}

// Authorize resolves the caller from the access-token cookie on r.
func Authorize(r *http.Request, verifier AccessVerifier) (Identity, error) {
	c, err := r.Cookie(AccessTokenCookie)
	if err != nil || c.Value == "" {
		return Identity{}, ErrNoToken
	}
	claims, err := verifier.VerifyAccess(c.Value)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return Identity{Email: claims.Email}, nil
}

// Session returns middleware that rejects requests without a valid access
// token and stores the caller's Identity in the request context.
func Session(verifier AccessVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := Authorize(r, verifier)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, err.Error())
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext extracts the caller stored by Session.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
