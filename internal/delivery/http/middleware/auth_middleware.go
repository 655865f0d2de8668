package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"caregiver-marketplace/pkg/jwt"
	"caregiver-marketplace/pkg/response"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type contextKey string

const (
	UserIDKey  contextKey = "user_id"
	RoleIDKey  contextKey = "role_id"
	TokenIDKey contextKey = "token_id"
)

const sessionLookupTimeout = 2 * time.Second

var (
	errMissingBearer = errors.New("authorization header is required")
	errMalformedAuth = errors.New("authorization header must be Bearer <token>")
)

// AuthMiddleware admits patients and admins holding a live access token.
// A token stays live while its session key exists in Redis; logout deletes it.
type AuthMiddleware struct {
	jwtService  *jwt.JWTService
	redisClient *redis.Client
}

func NewAuthMiddleware(jwtService *jwt.JWTService, redisClient *redis.Client) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:  jwtService,
		redisClient: redisClient,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil || claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Please sign in again")
			return
		}

		live, err := m.sessionLive(r.Context(), claims)
		if err != nil {
			response.Error(w, http.StatusServiceUnavailable, "Session store unavailable, try again shortly", nil)
			return
		}
		if !live {
			response.Unauthorized(w, "Your session has ended, please sign in again")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, RoleIDKey, claims.RoleID)
		ctx = context.WithValue(ctx, TokenIDKey, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) sessionLive(ctx context.Context, claims *jwt.Claims) (bool, error) {
	opCtx, cancel := context.WithTimeout(ctx, sessionLookupTimeout)
	defer cancel()

	n, err := m.redisClient.Exists(opCtx, jwt.AccessTokenKey(claims.UserID, claims.TokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// bearerToken accepts the scheme in any case, as RFC 6750 allows
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingBearer
	}
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errMalformedAuth
	}
	return token, nil
}

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetTokenIDFromContext returns the session id logout revokes
func GetTokenIDFromContext(ctx context.Context) (string, bool) {
	tokenID, ok := ctx.Value(TokenIDKey).(string)
	return tokenID, ok
}

func GetRoleIDFromContext(ctx context.Context) (int, bool) {
	roleID, ok := ctx.Value(RoleIDKey).(int)
	return roleID, ok
}
