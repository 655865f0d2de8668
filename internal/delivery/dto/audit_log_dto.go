package dto

import (
	"time"

	"caregiver-marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditLogQuery is parsed from the admin audit trail query string
type AuditLogQuery struct {
	Action   string
	UserID   *uuid.UUID
	Entity   string
	EntityID string
	Page     int
	Limit    int
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64         `json:"id"`
	User      *UserResponse `json:"user,omitempty"`
	Action    string        `json:"action"`
	Metadata  entity.JSON   `json:"metadata"`
	CreatedAt time.Time     `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Page  int                `json:"-"`
	Limit int                `json:"-"`
	Total int64              `json:"-"`
}
