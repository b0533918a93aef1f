package jwt

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds stored in the "typ" claim.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

var ErrInvalidToken = errors.New("invalid token")

// JWT issues and validates HS256 tokens whose subject is the user's uid.
type JWT struct {
	SecretKey  string        // Secret key for signing tokens
	AccessExp  time.Duration // Access token lifetime
	RefreshExp time.Duration // Refresh token lifetime
}

// New creates a new JWT instance
func New(secretKey string, accessExp, refreshExp time.Duration) *JWT {
	return &JWT{
		SecretKey:  secretKey,
		AccessExp:  accessExp,
		RefreshExp: refreshExp,
	}
}

// Generate creates a token of the given kind for a user uid.
func (j *JWT) Generate(ctx context.Context, uid int64, kind string) (string, error) {
	exp := j.AccessExp
	if kind == KindRefresh {
		exp = j.RefreshExp
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(uid, 10),
		"typ": kind,
		"iat": now.Unix(),
		"exp": now.Add(exp).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GeneratePair creates an access and a refresh token for a user uid.
func (j *JWT) GeneratePair(ctx context.Context, uid int64) (access, refresh string, err error) {
	access, err = j.Generate(ctx, uid, KindAccess)
	if err != nil {
		return "", "", err
	}
	refresh, err = j.Generate(ctx, uid, KindRefresh)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// Parse validates the token string and returns the uid and token kind.
func (j *JWT) Parse(ctx context.Context, tokenString string) (int64, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return 0, "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, "", ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, "", errors.New("sub not found in token")
	}
	uid, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, "", errors.New("invalid sub format")
	}

	kind, _ := claims["typ"].(string)
	return uid, kind, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
