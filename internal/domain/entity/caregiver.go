package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Gender of a caregiver as stored on the profile
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// CareType is the setting a caregiver works in
type CareType string

const (
	CareTypeHome     CareType = "Home care"
	CareTypeHospital CareType = "Hospital care"
)

// Caregiver is a read-only marketplace profile. Availability and packages are kept in
// their own tables and preloaded in insertion order.
type Caregiver struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	Rating    float64        `gorm:"type:numeric(2,1);not null;default:0" json:"rating"`
	Age       int            `gorm:"not null" json:"age"`
	Contact   string         `gorm:"type:varchar(20)" json:"contact,omitempty"`
	Gender    Gender         `gorm:"type:varchar(10);not null;index" json:"gender"`
	Location  string         `gorm:"type:varchar(255);not null" json:"location"`
	Area      string         `gorm:"type:varchar(255)" json:"area"`
	Languages pq.StringArray `gorm:"type:text[];not null" json:"languages"`
	CareTypes pq.StringArray `gorm:"type:text[];not null" json:"care_types"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Availability []AvailabilitySlot `gorm:"foreignKey:CaregiverID" json:"availability,omitempty"`
	Packages     []ServicePackage   `gorm:"foreignKey:CaregiverID" json:"packages,omitempty"`
}

func (Caregiver) TableName() string {
	return "caregivers"
}

// SupportsCareType reports exact membership of t in the caregiver's care types
func (c *Caregiver) SupportsCareType(t CareType) bool {
	for _, ct := range c.CareTypes {
		if ct == string(t) {
			return true
		}
	}
	return false
}

// Speaks reports whether lang is one of the caregiver's languages
func (c *Caregiver) Speaks(lang string) bool {
	for _, l := range c.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// PackageByName returns the package with the given name, or nil
func (c *Caregiver) PackageByName(name string) *ServicePackage {
	for i := range c.Packages {
		if strings.EqualFold(c.Packages[i].Name, name) {
			return &c.Packages[i]
		}
	}
	return nil
}

// AvailabilitySlot is a closed date interval in which the caregiver can take bookings
type AvailabilitySlot struct {
	ID          int       `gorm:"primaryKey;autoIncrement" json:"id"`
	CaregiverID uuid.UUID `gorm:"type:uuid;not null;index" json:"caregiver_id"`
	StartDate   time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate     time.Time `gorm:"type:date;not null" json:"end_date"`
}

func (AvailabilitySlot) TableName() string {
	return "caregiver_availability"
}

// Overlaps reports whether the slot and [from, to] share at least one instant
func (s AvailabilitySlot) Overlaps(from, to time.Time) bool {
	return !s.StartDate.After(to) && !s.EndDate.Before(from)
}

// ServicePackage is a named per-day rate offered by a caregiver
type ServicePackage struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	CaregiverID uuid.UUID       `gorm:"type:uuid;not null;index" json:"caregiver_id"`
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
}

func (ServicePackage) TableName() string {
	return "caregiver_packages"
}
