package availability

import (
	"testing"
	"time"

	"caregiver-marketplace/internal/domain/entity"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func slot(from, to string) entity.AvailabilitySlot {
	return entity.AvailabilitySlot{StartDate: day(from), EndDate: day(to)}
}

func testRoster() []entity.Caregiver {
	return []entity.Caregiver{
		{
			Name:      "Kamal Perera",
			Gender:    entity.GenderMale,
			Location:  "Nugegoda",
			Area:      "Embuldeniya",
			Languages: pq.StringArray{"Sinhala", "English"},
			CareTypes: pq.StringArray{"Home care"},
			Availability: []entity.AvailabilitySlot{
				slot("2025-11-10", "2025-11-20"),
				slot("2025-12-01", "2025-12-15"),
			},
		},
		{
			Name:         "Lexa",
			Gender:       entity.GenderFemale,
			Location:     "General Hospital, Colombo",
			Area:         "Colombo 10",
			Languages:    pq.StringArray{"English"},
			CareTypes:    pq.StringArray{"Hospital care"},
			Availability: []entity.AvailabilitySlot{slot("2025-11-15", "2025-11-30")},
		},
		{
			Name:         "Latha",
			Gender:       entity.GenderFemale,
			Location:     "Grandpass",
			Area:         "Colombo 14",
			Languages:    pq.StringArray{"Sinhala", "Tamil"},
			CareTypes:    pq.StringArray{"Home care", "Hospital care"},
			Availability: []entity.AvailabilitySlot{slot("2025-11-01", "2025-12-01")},
		},
		{
			Name:         "Renuka",
			Gender:       entity.GenderFemale,
			Location:     "Kelaniya",
			Area:         "Kiribathgoda",
			Languages:    pq.StringArray{"Sinhala"},
			CareTypes:    pq.StringArray{"Home care"},
			Availability: []entity.AvailabilitySlot{slot("2025-11-25", "2025-12-10")},
		},
	}
}

func names(cgs []entity.Caregiver) []string {
	out := make([]string, 0, len(cgs))
	for _, cg := range cgs {
		out = append(out, cg.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "care type is exact membership",
			criteria: Criteria{CareType: entity.CareTypeHome, Gender: GenderAny},
			want:     []string{"Kamal Perera", "Latha", "Renuka"},
		},
		{
			name:     "unknown care type matches nobody",
			criteria: Criteria{CareType: "Home", Gender: GenderAny},
			want:     []string{},
		},
		{
			name:     "gender must match exactly",
			criteria: Criteria{CareType: entity.CareTypeHome, Gender: "Male"},
			want:     []string{"Kamal Perera"},
		},
		{
			name:     "location matches area case-insensitively",
			criteria: Criteria{CareType: entity.CareTypeHospital, Gender: GenderAny, Location: "colombo 1"},
			want:     []string{"Lexa", "Latha"},
		},
		{
			name:     "location matches location field",
			criteria: Criteria{CareType: entity.CareTypeHome, Gender: GenderAny, Location: "  KELANIYA "},
			want:     []string{"Renuka"},
		},
		{
			name:     "languages use AND semantics",
			criteria: Criteria{CareType: entity.CareTypeHome, Gender: GenderAny, Languages: []string{"Sinhala", "English"}},
			want:     []string{"Kamal Perera"},
		},
		{
			name: "date range overlaps any slot",
			criteria: Criteria{
				CareType: entity.CareTypeHome, Gender: GenderAny,
				StartDate: "2025-11-21", EndDate: "2025-11-24",
			},
			want: []string{"Latha"},
		},
		{
			name: "closed interval touches slot boundary",
			criteria: Criteria{
				CareType: entity.CareTypeHome, Gender: GenderAny,
				StartDate: "2025-12-10", EndDate: "2025-12-12",
			},
			want: []string{"Kamal Perera", "Renuka"},
		},
		{
			name: "only one date skips date predicate",
			criteria: Criteria{
				CareType: entity.CareTypeHome, Gender: GenderAny,
				StartDate: "2030-01-01",
			},
			want: []string{"Kamal Perera", "Latha", "Renuka"},
		},
		{
			name: "malformed date skips date predicate",
			criteria: Criteria{
				CareType: entity.CareTypeHome, Gender: GenderAny,
				StartDate: "2030-01-01", EndDate: "2030-13-45",
			},
			want: []string{"Kamal Perera", "Latha", "Renuka"},
		},
		{
			name: "all predicates combined",
			criteria: Criteria{
				CareType: entity.CareTypeHome, Gender: "Female", Location: "colombo",
				Languages: []string{"Tamil"}, StartDate: "2025-11-30", EndDate: "2025-12-05",
			},
			want: []string{"Latha"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testRoster(), tt.criteria)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilter_EmptyRoster(t *testing.T) {
	got := Filter(nil, Criteria{CareType: entity.CareTypeHome, Gender: GenderAny})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilter_PermissiveCriteriaReturnsRosterInOrder(t *testing.T) {
	roster := testRoster()
	for i := range roster {
		roster[i].CareTypes = pq.StringArray{"Home care", "Hospital care"}
	}

	got := Filter(roster, Criteria{CareType: entity.CareTypeHome, Gender: GenderAny})

	assert.Equal(t, roster, got)
}

func TestFilter_NoLanguagesEqualsAllLanguages(t *testing.T) {
	roster := testRoster()[:1]

	none := Filter(roster, Criteria{CareType: entity.CareTypeHome, Gender: GenderAny})
	all := Filter(roster, Criteria{
		CareType: entity.CareTypeHome, Gender: GenderAny,
		Languages: []string(roster[0].Languages),
	})

	assert.Equal(t, none, all)
	assert.Len(t, none, 1)
}

func TestFilter_SecondLanguageNotSpokenExcludes(t *testing.T) {
	got := Filter(testRoster(), Criteria{
		CareType: entity.CareTypeHome, Gender: GenderAny,
		Languages: []string{"Sinhala", "Tamil"},
	})
	assert.Equal(t, []string{"Latha"}, names(got))
}
