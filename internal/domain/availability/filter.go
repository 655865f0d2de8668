// Package availability narrows a caregiver roster down to the profiles that
// match a user's search criteria.
package availability

import (
	"strings"
	"time"

	"caregiver-marketplace/internal/domain/entity"
)

// DateLayout is the only accepted format for user-entered search dates
const DateLayout = "2006-01-02"

// GenderAny disables the gender predicate
const GenderAny = "Any"

// Criteria is a domain-level caregiver search filter.
// Used by the usecase layer to avoid coupling with delivery DTOs.
type Criteria struct {
	CareType  entity.CareType
	Location  string   // Substring of location or area, case-insensitive
	Gender    string   // "Any", "Male" or "Female"
	Languages []string // Caregiver must speak all of them
	StartDate string   // Format: YYYY-MM-DD
	EndDate   string   // Format: YYYY-MM-DD
}

// Filter returns the caregivers of roster that satisfy every predicate of c,
// in roster order. Malformed dates disable the date predicate instead of failing.
func Filter(roster []entity.Caregiver, c Criteria) []entity.Caregiver {
	from, to, byDate := c.dateRange()
	term := strings.ToLower(strings.TrimSpace(c.Location))

	matched := make([]entity.Caregiver, 0, len(roster))
	for i := range roster {
		cg := &roster[i]

		if !cg.SupportsCareType(c.CareType) {
			continue
		}
		if !matchesGender(cg, c.Gender) {
			continue
		}
		if term != "" && !matchesLocation(cg, term) {
			continue
		}
		if !speaksAll(cg, c.Languages) {
			continue
		}
		if byDate && !availableBetween(cg, from, to) {
			continue
		}

		matched = append(matched, *cg)
	}
	return matched
}

// dateRange parses the requested interval. ok is false unless both ends are valid dates.
func (c Criteria) dateRange() (from, to time.Time, ok bool) {
	if c.StartDate == "" || c.EndDate == "" {
		return time.Time{}, time.Time{}, false
	}
	from, err := time.Parse(DateLayout, strings.TrimSpace(c.StartDate))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err = time.Parse(DateLayout, strings.TrimSpace(c.EndDate))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

func matchesGender(cg *entity.Caregiver, gender string) bool {
	return gender == "" || gender == GenderAny || entity.Gender(gender) == cg.Gender
}

func matchesLocation(cg *entity.Caregiver, term string) bool {
	return strings.Contains(strings.ToLower(cg.Location), term) ||
		strings.Contains(strings.ToLower(cg.Area), term)
}

func speaksAll(cg *entity.Caregiver, languages []string) bool {
	for _, lang := range languages {
		if !cg.Speaks(lang) {
			return false
		}
	}
	return true
}

func availableBetween(cg *entity.Caregiver, from, to time.Time) bool {
	for _, slot := range cg.Availability {
		if slot.Overlaps(from, to) {
			return true
		}
	}
	return false
}
