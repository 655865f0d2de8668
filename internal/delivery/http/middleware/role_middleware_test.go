package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"caregiver-marketplace/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		roleID     interface{}
		wantStatus int
	}{
		{name: "admin passes", roleID: entity.RoleIDAdmin, wantStatus: http.StatusOK},
		{name: "customer is forbidden", roleID: entity.RoleIDCustomer, wantStatus: http.StatusForbidden},
		{name: "missing role", roleID: nil, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/audit-logs", nil)
			if tt.roleID != nil {
				req = req.WithContext(context.WithValue(req.Context(), RoleIDKey, tt.roleID))
			}
			rec := httptest.NewRecorder()

			RequireAdmin(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
