package usecase

import (
	"context"
	"errors"

	"caregiver-marketplace/internal/converter"
	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/domain/availability"
	"caregiver-marketplace/internal/domain/entity"
	"caregiver-marketplace/internal/domain/pricing"
	"caregiver-marketplace/internal/domain/repository"
	"caregiver-marketplace/internal/service"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrCaregiverNotFound   = errors.New("caregiver not found")
	ErrInvalidPackagePrice = errors.New("package price must be greater than 0")
	ErrDuplicatePackage    = errors.New("package names must be unique per caregiver")
	ErrInvalidAvailability = errors.New("availability end date must not be before start date")
)

type CaregiverUsecase interface {
	SearchCaregivers(ctx context.Context, criteria availability.Criteria) (*dto.CaregiverListResponse, error)
	GetCaregiver(ctx context.Context, id uuid.UUID) (*dto.CaregiverResponse, error)
	CreateCaregiver(ctx context.Context, adminID uuid.UUID, req *dto.CreateCaregiverRequest) (*dto.CaregiverResponse, error)
}

type caregiverUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	caregiverRepo repository.CaregiverRepository
	rosterCache   service.RosterCacheService
	auditService  service.AuditService
}

func NewCaregiverUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	caregiverRepo repository.CaregiverRepository,
	rosterCache service.RosterCacheService,
	auditService service.AuditService,
) CaregiverUsecase {
	return &caregiverUsecase{
		db:            db,
		log:           log,
		caregiverRepo: caregiverRepo,
		rosterCache:   rosterCache,
		auditService:  auditService,
	}
}

// SearchCaregivers runs the availability filter over the cached roster
func (u *caregiverUsecase) SearchCaregivers(ctx context.Context, criteria availability.Criteria) (*dto.CaregiverListResponse, error) {
	roster, err := u.rosterCache.Roster(ctx)
	if err != nil {
		u.log.Warnf("Failed to load caregiver roster: %+v", err)
		return nil, err
	}

	matched := availability.Filter(roster, criteria)

	return &dto.CaregiverListResponse{
		Caregivers: converter.CaregiversToResponses(matched),
		Total:      len(matched),
	}, nil
}

func (u *caregiverUsecase) GetCaregiver(ctx context.Context, id uuid.UUID) (*dto.CaregiverResponse, error) {
	caregiver, err := u.caregiverRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find caregiver %s: %+v", id, err)
		return nil, err
	}
	if caregiver == nil {
		return nil, ErrCaregiverNotFound
	}

	return converter.CaregiverToResponse(caregiver), nil
}

// CreateCaregiver adds a profile to the roster and drops the cached roster
func (u *caregiverUsecase) CreateCaregiver(ctx context.Context, adminID uuid.UUID, req *dto.CreateCaregiverRequest) (*dto.CaregiverResponse, error) {
	caregiver := &entity.Caregiver{
		Name:      req.Name,
		Rating:    req.Rating,
		Age:       req.Age,
		Contact:   req.Contact,
		Gender:    entity.Gender(req.Gender),
		Location:  req.Location,
		Area:      req.Area,
		Languages: pq.StringArray(req.Languages),
		CareTypes: pq.StringArray(req.CareTypes),
	}

	for _, p := range req.Packages {
		if !p.Price.IsPositive() {
			return nil, ErrInvalidPackagePrice
		}
		caregiver.Packages = append(caregiver.Packages, entity.ServicePackage{Name: p.Name, Price: p.Price})
	}

	for _, a := range req.Availability {
		start, okStart := pricing.ParseDate(a.StartDate)
		end, okEnd := pricing.ParseDate(a.EndDate)
		if !okStart || !okEnd {
			return nil, pricing.ErrInvalidDate
		}
		if end.Before(start) {
			return nil, ErrInvalidAvailability
		}
		caregiver.Availability = append(caregiver.Availability, entity.AvailabilitySlot{StartDate: start, EndDate: end})
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.caregiverRepo.Create(tx, caregiver); err != nil {
		if isDuplicateKeyError(err, "caregiver_packages") {
			return nil, ErrDuplicatePackage
		}
		u.log.Warnf("Failed to create caregiver: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &adminID, entity.AuditActionCaregiverCreate, "caregiver", caregiver.ID.String(), entity.JSON{
		"name":       caregiver.Name,
		"care_types": req.CareTypes,
		"packages":   len(caregiver.Packages),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// The new profile is visible as soon as the next search reloads the roster
	if err := u.rosterCache.Invalidate(ctx); err != nil {
		u.log.Errorf("Roster cache is stale after creating caregiver %s: %+v", caregiver.ID, err)
	}

	u.log.Infof("Caregiver created: id=%s, name=%s", caregiver.ID, caregiver.Name)
	return converter.CaregiverToResponse(caregiver), nil
}
