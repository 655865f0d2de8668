package usecase

import (
	"context"
	"io"
	"testing"

	"caregiver-marketplace/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, sqlMock
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	args := m.Called(db, booking)
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockBookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(db, id)
	if b, ok := args.Get(0).(*entity.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Booking, error) {
	args := m.Called(db, userID)
	if b, ok := args.Get(0).([]entity.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) Update(db *gorm.DB, booking *entity.Booking) error {
	return m.Called(db, booking).Error(0)
}

func (m *mockBookingRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.BookingStatus, payment entity.PaymentStatus) error {
	return m.Called(db, id, status, payment).Error(0)
}

func (m *mockBookingRepository) UpdatePayment(db *gorm.DB, booking *entity.Booking, from entity.PaymentStatus) error {
	return m.Called(db, booking, from).Error(0)
}

type mockCaregiverRepository struct {
	mock.Mock
}

func (m *mockCaregiverRepository) Create(db *gorm.DB, caregiver *entity.Caregiver) error {
	args := m.Called(db, caregiver)
	if caregiver.ID == uuid.Nil {
		caregiver.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockCaregiverRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Caregiver, error) {
	args := m.Called(db, id)
	if c, ok := args.Get(0).(*entity.Caregiver); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCaregiverRepository) FindAll(db *gorm.DB) ([]entity.Caregiver, error) {
	args := m.Called(db)
	if c, ok := args.Get(0).([]entity.Caregiver); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNotificationRepository struct {
	mock.Mock
}

func (m *mockNotificationRepository) Create(db *gorm.DB, notification *entity.Notification) error {
	return m.Called(db, notification).Error(0)
}

func (m *mockNotificationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Notification, error) {
	args := m.Called(db, id)
	if n, ok := args.Get(0).(*entity.Notification); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Notification, error) {
	args := m.Called(db, userID)
	if n, ok := args.Get(0).([]entity.Notification); ok {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationRepository) MarkRead(db *gorm.DB, id uuid.UUID) error {
	return m.Called(db, id).Error(0)
}

type mockMedicineRequestRepository struct {
	mock.Mock
}

func (m *mockMedicineRequestRepository) Create(db *gorm.DB, request *entity.MedicineRequest) error {
	args := m.Called(db, request)
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockMedicineRequestRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicineRequest, error) {
	args := m.Called(db, id)
	if r, ok := args.Get(0).(*entity.MedicineRequest); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMedicineRequestRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.MedicineRequestStatus) error {
	return m.Called(db, id, status).Error(0)
}

type mockMedicineOrderRepository struct {
	mock.Mock
}

func (m *mockMedicineOrderRepository) Create(db *gorm.DB, order *entity.MedicineOrder) error {
	args := m.Called(db, order)
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockMedicineOrderRepository) UpdatePayment(db *gorm.DB, order *entity.MedicineOrder, from entity.MedicineOrderStatus) error {
	return m.Called(db, order, from).Error(0)
}

func (m *mockMedicineOrderRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicineOrder, error) {
	args := m.Called(db, id)
	if o, ok := args.Get(0).(*entity.MedicineOrder); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMedicineOrderRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.MedicineOrderStatus) error {
	return m.Called(db, id, status).Error(0)
}

type mockAuditService struct {
	mock.Mock
}

func (m *mockAuditService) LogCreate(tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return m.Called(tx, userID, action, entityName, entityID, newValue).Error(0)
}

func (m *mockAuditService) LogUpdate(tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	return m.Called(tx, userID, action, entityName, entityID, oldValue, newValue).Error(0)
}

func (m *mockAuditService) LogEvent(tx *gorm.DB, userID *uuid.UUID, action string, details entity.JSON) error {
	return m.Called(tx, userID, action, details).Error(0)
}

type mockRosterCache struct {
	mock.Mock
}

func (m *mockRosterCache) Roster(ctx context.Context) ([]entity.Caregiver, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).([]entity.Caregiver); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRosterCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockRosterCache) WarmUp(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
