package usecase

import (
	"context"
	"errors"
	"testing"

	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/domain/availability"
	"caregiver-marketplace/internal/domain/entity"
	"caregiver-marketplace/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCaregiverUsecase_SearchCaregivers(t *testing.T) {
	roster := []entity.Caregiver{
		{ID: uuid.New(), Name: "Amal", Gender: entity.GenderMale, Location: "Kandy", Languages: pq.StringArray{"Sinhala"}, CareTypes: pq.StringArray{"Home care"}},
		{ID: uuid.New(), Name: "Dilani", Gender: entity.GenderFemale, Location: "Colombo", Languages: pq.StringArray{"Sinhala", "English"}, CareTypes: pq.StringArray{"Home care", "Hospital care"}},
		{ID: uuid.New(), Name: "Ravi", Gender: entity.GenderMale, Location: "Colombo", Languages: pq.StringArray{"Tamil", "English"}, CareTypes: pq.StringArray{"Hospital care"}},
	}

	tests := []struct {
		name      string
		criteria  availability.Criteria
		wantNames []string
	}{
		{
			name:      "care type only keeps roster order",
			criteria:  availability.Criteria{CareType: entity.CareTypeHome, Gender: "Any"},
			wantNames: []string{"Amal", "Dilani"},
		},
		{
			name:      "languages are all required",
			criteria:  availability.Criteria{CareType: entity.CareTypeHospital, Languages: []string{"English", "Tamil"}},
			wantNames: []string{"Ravi"},
		},
		{
			name:      "no match",
			criteria:  availability.Criteria{CareType: entity.CareTypeHome, Location: "galle"},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newTestDB(t)
			cache := new(mockRosterCache)
			uc := NewCaregiverUsecase(db, newTestLogger(), new(mockCaregiverRepository), cache, new(mockAuditService))

			cache.On("Roster", mock.Anything).Return(roster, nil)

			result, err := uc.SearchCaregivers(context.Background(), tt.criteria)

			require.NoError(t, err)
			names := make([]string, 0, len(result.Caregivers))
			for _, c := range result.Caregivers {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.wantNames, names)
			assert.Equal(t, len(tt.wantNames), result.Total)
		})
	}
}

func TestCaregiverUsecase_SearchCaregivers_RosterError(t *testing.T) {
	db, _ := newTestDB(t)
	cache := new(mockRosterCache)
	uc := NewCaregiverUsecase(db, newTestLogger(), new(mockCaregiverRepository), cache, new(mockAuditService))

	cache.On("Roster", mock.Anything).Return(nil, errors.New("db down"))

	result, err := uc.SearchCaregivers(context.Background(), availability.Criteria{CareType: entity.CareTypeHome})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestCaregiverUsecase_CreateCaregiver(t *testing.T) {
	db, sqlMock := newTestDB(t)
	repo := new(mockCaregiverRepository)
	cache := new(mockRosterCache)
	audit := new(mockAuditService)
	uc := NewCaregiverUsecase(db, newTestLogger(), repo, cache, audit)

	adminID := uuid.New()
	req := &dto.CreateCaregiverRequest{
		Name:      "Dilani",
		Age:       34,
		Gender:    "Female",
		Location:  "Colombo",
		Languages: []string{"Sinhala"},
		CareTypes: []string{"Home care"},
		Packages:  []dto.PackageRequest{{Name: "Day Care", Price: decimal.NewFromInt(2000)}},
		Availability: []dto.AvailabilityRequest{
			{StartDate: "2025-11-01", EndDate: "2025-11-30"},
		},
	}

	sqlMock.ExpectBegin()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *entity.Caregiver) bool {
		return c.Name == "Dilani" && len(c.Packages) == 1 && len(c.Availability) == 1
	})).Return(nil)
	audit.On("LogCreate", mock.Anything, &adminID, entity.AuditActionCaregiverCreate, "caregiver", mock.Anything, mock.Anything).Return(nil)
	sqlMock.ExpectCommit()
	cache.On("Invalidate", mock.Anything).Return(errors.New("redis unavailable"))

	resp, err := uc.CreateCaregiver(context.Background(), adminID, req)

	require.NoError(t, err)
	assert.Equal(t, "Dilani", resp.Name)
	cache.AssertCalled(t, "Invalidate", mock.Anything)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestCaregiverUsecase_CreateCaregiver_RejectsInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.CreateCaregiverRequest)
		wantErr error
	}{
		{
			name:    "zero price",
			mutate:  func(r *dto.CreateCaregiverRequest) { r.Packages[0].Price = decimal.Zero },
			wantErr: ErrInvalidPackagePrice,
		},
		{
			name: "reversed availability",
			mutate: func(r *dto.CreateCaregiverRequest) {
				r.Availability = []dto.AvailabilityRequest{{StartDate: "2025-11-30", EndDate: "2025-11-01"}}
			},
			wantErr: ErrInvalidAvailability,
		},
		{
			name: "malformed availability",
			mutate: func(r *dto.CreateCaregiverRequest) {
				r.Availability = []dto.AvailabilityRequest{{StartDate: "2025/11/01", EndDate: "2025-11-30"}}
			},
			wantErr: pricing.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newTestDB(t)
			repo := new(mockCaregiverRepository)
			uc := NewCaregiverUsecase(db, newTestLogger(), repo, new(mockRosterCache), new(mockAuditService))

			req := &dto.CreateCaregiverRequest{
				Name:      "Dilani",
				Packages:  []dto.PackageRequest{{Name: "Day Care", Price: decimal.NewFromInt(2000)}},
				CareTypes: []string{"Home care"},
			}
			tt.mutate(req)

			_, err := uc.CreateCaregiver(context.Background(), uuid.New(), req)

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}
