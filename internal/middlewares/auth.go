package middlewares

import (
	"context"
	"net/http"

	"github.com/mstepanov/evreg/internal/jwt"
	"github.com/mstepanov/evreg/internal/logger"
	"github.com/mstepanov/evreg/internal/models"
)

// TokenParser defines the minimal token interface needed by the middleware.
type TokenParser interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Parse(ctx context.Context, tokenString string) (uid int64, kind string, err error)
}

// UserLoader loads the authenticated user by uid.
type UserLoader interface {
	GetByUID(ctx context.Context, uid int64) (*models.UserDB, error)
}

type userKey struct{}

// SetUserToContext stores the authenticated user in the context.
func SetUserToContext(ctx context.Context, user *models.UserDB) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.UserDB {
	user, _ := ctx.Value(userKey{}).(*models.UserDB)
	return user
}

// AuthMiddleware validates the bearer token, requires an access-kind token
// and loads the user into the request context.
func AuthMiddleware(parser TokenParser, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := parser.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			uid, kind, err := parser.Parse(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if kind != jwt.KindAccess {
				logger.Log.Errorw("authorization failed", "err", "wrong token kind", "kind", kind)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			user, err := users.GetByUID(ctx, uid)
			if err != nil {
				logger.Log.Errorw("failed to load user", "uid", uid, "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserToContext(ctx, user)))
		})
	}
}

// AdminMiddleware requires the context user (set by AuthMiddleware) to be an
// admin.
func AdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := GetUserFromContext(r.Context())
			if user == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if !user.IsAdmin {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
