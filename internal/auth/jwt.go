// Package auth carries the viewer identity of API calls and decides who may
// edit a bulletin. Logging in with GitHub happens elsewhere; this package only
// mints and verifies the session tokens that result from it.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the cookie holding the viewer's session token.
const CookieName = "jwt"

var (
	ErrNoToken      = errors.New("no session token")
	ErrInvalidToken = errors.New("invalid session token")
)

// Claims are the session token claims. The GitHub user id is carried as a
// decimal string under "id".
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
	Login  string `json:"login"`
}

// Viewer is the authenticated caller.
type Viewer struct {
	ID    int64
	Login string
}

func GenerateToken(v Viewer, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   v.Login,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: strconv.FormatInt(v.ID, 10),
		Login:  v.Login,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies an HS256 token carrying an expiry and returns its viewer.
func ParseToken(tokenString string, secretKey []byte) (Viewer, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Viewer{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if !token.Valid {
		return Viewer{}, ErrInvalidToken
	}

	id, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil || id <= 0 {
		return Viewer{}, fmt.Errorf("%w: bad user id %q", ErrInvalidToken, claims.UserID)
	}
	return Viewer{ID: id, Login: claims.Login}, nil
}

// TokenFromRequest returns the bearer token of the Authorization header, or
// the session cookie when there is none.
func TokenFromRequest(h http.Header) (string, error) {
	if authz := h.Get("Authorization"); authz != "" {
		scheme, token, ok := strings.Cut(authz, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", ErrInvalidToken
		}
		return strings.TrimSpace(token), nil
	}
	r := http.Request{Header: h}
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value, nil
	}
	return "", ErrNoToken
}

// CanEdit reports whether viewer may enter edit mode on user's page: edit
// must be requested and the viewer must own the page.
func CanEdit(viewer *Viewer, user string, edit bool) bool {
	return edit && IsOwner(viewer, user)
}

// IsOwner compares logins case-insensitively.
func IsOwner(viewer *Viewer, user string) bool {
	return viewer != nil && viewer.Login != "" && strings.EqualFold(viewer.Login, user)
}
