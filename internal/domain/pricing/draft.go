package pricing

import (
	"errors"
	"strings"
	"time"

	"caregiver-marketplace/internal/domain/entity"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingPartyDetails = errors.New("patient and guardian details are required")
	ErrPackageRequired     = errors.New("a service package must be selected")
	ErrDateRequired        = errors.New("a booking date is required")
	ErrDateRangeRequired   = errors.New("a start and end date are required")
	ErrInvalidDate         = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidDayType      = errors.New("day type must be 'One Day' or 'Multiple Days'")
	ErrInvalidCareType     = errors.New("care type must be 'Home care' or 'Hospital care'")
	ErrNonPositiveTotal    = errors.New("total must be greater than 0, check the dates")
	ErrAddressRequired     = errors.New("a home address is required for home care")
	ErrHospitalRequired    = errors.New("hospital name and ward number are required for hospital care")
)

// Draft holds the editable fields of a booking form. It never stores a total;
// Total is derived from the current fields on every call.
type Draft struct {
	PatientName     string
	GuardianName    string
	GuardianContact string
	CareType        entity.CareType
	PackageName     string
	DayType         entity.DayType
	SingleDate      string
	StartDate       string
	EndDate         string
	Address         string
	HospitalName    string
	WardNumber      string
}

// Days returns the billable day count for the draft's current dates
func (d Draft) Days() int {
	return DayCount(d.DayType, d.SingleDate, d.StartDate, d.EndDate)
}

// Total prices the draft against pkg
func (d Draft) Total(pkg *entity.ServicePackage) decimal.Decimal {
	return ComputeTotal(pkg, d.DayType, d.SingleDate, d.StartDate, d.EndDate)
}

// Validate applies the submission rules of the booking form against pkg.
// The first failing rule is returned.
func (d Draft) Validate(pkg *entity.ServicePackage) error {
	if blank(d.PatientName) || blank(d.GuardianName) || blank(d.GuardianContact) {
		return ErrMissingPartyDetails
	}
	if pkg == nil {
		return ErrPackageRequired
	}

	switch d.DayType {
	case entity.DayTypeOneDay:
		if blank(d.SingleDate) {
			return ErrDateRequired
		}
		if _, ok := ParseDate(d.SingleDate); !ok {
			return ErrInvalidDate
		}
	case entity.DayTypeMultipleDays:
		if blank(d.StartDate) || blank(d.EndDate) {
			return ErrDateRangeRequired
		}
		_, okStart := ParseDate(d.StartDate)
		_, okEnd := ParseDate(d.EndDate)
		if !okStart || !okEnd {
			return ErrInvalidDate
		}
	default:
		return ErrInvalidDayType
	}

	if !d.Total(pkg).IsPositive() {
		return ErrNonPositiveTotal
	}

	switch d.CareType {
	case entity.CareTypeHome:
		if blank(d.Address) {
			return ErrAddressRequired
		}
	case entity.CareTypeHospital:
		if blank(d.HospitalName) || blank(d.WardNumber) {
			return ErrHospitalRequired
		}
	default:
		return ErrInvalidCareType
	}

	return nil
}

// Dates returns the parsed dates relevant to the day type. Fields that do not
// apply to the day type are returned as nil.
func (d Draft) Dates() (single, start, end *time.Time) {
	switch d.DayType {
	case entity.DayTypeOneDay:
		if t, ok := ParseDate(d.SingleDate); ok {
			single = &t
		}
	case entity.DayTypeMultipleDays:
		if t, ok := ParseDate(d.StartDate); ok {
			start = &t
		}
		if t, ok := ParseDate(d.EndDate); ok {
			end = &t
		}
	}
	return single, start, end
}

// Location returns the location fields that apply to the care type, blanking the others
func (d Draft) Location() (address, hospitalName, wardNumber string) {
	if d.CareType == entity.CareTypeHome {
		return strings.TrimSpace(d.Address), "", ""
	}
	return "", strings.TrimSpace(d.HospitalName), strings.TrimSpace(d.WardNumber)
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
