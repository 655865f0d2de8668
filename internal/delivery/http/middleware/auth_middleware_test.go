package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"caregiver-marketplace/config"
	"caregiver-marketplace/internal/domain/entity"
	"caregiver-marketplace/pkg/jwt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr error
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "  Bearer   abc.def.ghi ", want: "abc.def.ghi"},
		{header: "", wantErr: errMissingBearer},
		{header: "Basic dXNlcjpwYXNz", wantErr: errMalformedAuth},
		{header: "Bearer", wantErr: errMalformedAuth},
		{header: "Bearer ", wantErr: errMalformedAuth},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := bearerToken(tt.header)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
	redisClient := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { redisClient.Close() })

	userID := uuid.New()
	access, _, err := jwtService.GenerateAccessToken(userID, "kamala@example.com", entity.RoleIDCustomer)
	require.NoError(t, err)
	refresh, _, err := jwtService.GenerateRefreshToken(userID, "kamala@example.com", entity.RoleIDCustomer)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not-a-jwt", wantStatus: http.StatusUnauthorized},
		{name: "refresh token", header: "Bearer " + refresh, wantStatus: http.StatusUnauthorized},
		{name: "session store down", header: "Bearer " + access, wantStatus: http.StatusServiceUnavailable},
	}

	m := NewAuthMiddleware(jwtService, redisClient)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { reached = true })

			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			m.Authenticate(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.False(t, reached)
		})
	}
}
