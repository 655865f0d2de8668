package handler

import (
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAuditLogQuery(t *testing.T) {
	userID := uuid.New()

	query, err := parseAuditLogQuery(url.Values{
		"action":    {" booking.payment "},
		"user_id":   {userID.String()},
		"entity":    {"booking"},
		"entity_id": {"8d3b"},
		"page":      {"2"},
		"limit":     {"50"},
	})

	require.NoError(t, err)
	assert.Equal(t, "booking.payment", query.Action)
	require.NotNil(t, query.UserID)
	assert.Equal(t, userID, *query.UserID)
	assert.Equal(t, "booking", query.Entity)
	assert.Equal(t, "8d3b", query.EntityID)
	assert.Equal(t, 2, query.Page)
	assert.Equal(t, 50, query.Limit)
}

func TestParseAuditLogQuery_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
	}{
		{name: "user id", values: url.Values{"user_id": {"admin"}}},
		{name: "page", values: url.Values{"page": {"two"}}},
		{name: "limit", values: url.Values{"limit": {"1e3"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseAuditLogQuery(tt.values)
			assert.Error(t, err)
		})
	}
}
