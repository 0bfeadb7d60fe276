// Package identity resolves the acting user and company from an
// authenticated request. The lifecycle services never look this up
// themselves; they receive an ActingCompany explicitly.
package identity

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ActingCompany identifies who is performing an operation.
type ActingCompany struct {
	UserID    uuid.UUID
	CompanyID uuid.UUID
}

type contextKey struct{}

// FromContext returns the acting company stored by the middleware.
func FromContext(ctx context.Context) (ActingCompany, bool) {
	acting, ok := ctx.Value(contextKey{}).(ActingCompany)
	return acting, ok
}

// WithActing returns a context carrying the given acting company. Used by
// the middleware and by tests.
func WithActing(ctx context.Context, acting ActingCompany) context.Context {
	return context.WithValue(ctx, contextKey{}, acting)
}

// Middleware parses a bearer JWT (HS256, claims "uid" and "cid") and stores
// the resolved ActingCompany in the request context. Requests without a
// valid token are rejected with 401.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			acting, err := parseBearer(r.Header.Get("Authorization"), secret)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActing(r.Context(), acting)))
		})
	}
}

func parseBearer(header string, secret []byte) (ActingCompany, error) {
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || raw == "" {
		return ActingCompany{}, fmt.Errorf("missing bearer token")
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return ActingCompany{}, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ActingCompany{}, fmt.Errorf("unexpected claims type")
	}

	userID, err := claimUUID(claims, "uid")
	if err != nil {
		return ActingCompany{}, err
	}

	companyID, err := claimUUID(claims, "cid")
	if err != nil {
		return ActingCompany{}, err
	}

	return ActingCompany{UserID: userID, CompanyID: companyID}, nil
}

func claimUUID(claims jwt.MapClaims, key string) (uuid.UUID, error) {
	raw, ok := claims[key].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("missing %q claim", key)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing %q claim: %w", key, err)
	}

	return id, nil
}

// SignToken mints a session token for the given acting company. Used by
// the auth collaborator and by tests.
func SignToken(acting ActingCompany, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": acting.UserID.String(),
		"cid": acting.CompanyID.String(),
		"exp": time.Now().Add(ttl).Unix(),
	})

	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}
