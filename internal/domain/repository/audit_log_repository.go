package repository

import (
	"caregiver-marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogFilter narrows the admin audit trail. Zero fields match everything.
// Entity and EntityID match the metadata written by AuditService.
type AuditLogFilter struct {
	Action   string
	UserID   *uuid.UUID
	Entity   string
	EntityID string
	Limit    int
	Offset   int
}

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
	// Find returns one page, newest first, and the total number of matches
	Find(db *gorm.DB, filter AuditLogFilter) ([]entity.AuditLog, int64, error)
	FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error)
}
