package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"caregiver-marketplace/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type mockCaregiverRepository struct {
	mock.Mock
}

func (m *mockCaregiverRepository) Create(db *gorm.DB, caregiver *entity.Caregiver) error {
	return m.Called(db, caregiver).Error(0)
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

// newUnreachableRosterCache points at a closed port so every Redis call fails fast
func newUnreachableRosterCache(t *testing.T, repo *mockCaregiverRepository) (RosterCacheService, *test.Hook) {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	redisClient := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { redisClient.Close() })

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	return NewRosterCacheService(db, redisClient, log, repo, time.Minute), hook
}

func loggedMessage(hook *test.Hook, prefix string) bool {
	for _, entry := range hook.AllEntries() {
		if strings.HasPrefix(entry.Message, prefix) {
			return true
		}
	}
	return false
}

func TestRosterCacheService_Roster_FallsBackToDatabase(t *testing.T) {
	repo := new(mockCaregiverRepository)
	roster := []entity.Caregiver{
		{ID: uuid.New(), Name: "Amal"},
		{ID: uuid.New(), Name: "Dilani"},
	}
	repo.On("FindAll", mock.Anything).Return(roster, nil)

	svc, hook := newUnreachableRosterCache(t, repo)

	got, err := svc.Roster(context.Background())

	require.NoError(t, err)
	assert.Equal(t, roster, got)
	repo.AssertNumberOfCalls(t, "FindAll", 1)
	assert.True(t, loggedMessage(hook, "Failed to write roster cache"), "write-through is attempted")
}

func TestRosterCacheService_Roster_LoadOutlivesCallerCancellation(t *testing.T) {
	repo := new(mockCaregiverRepository)
	roster := []entity.Caregiver{{ID: uuid.New(), Name: "Amal"}}
	var loadCtxErr error
	repo.On("FindAll", mock.Anything).
		Run(func(args mock.Arguments) { loadCtxErr = args.Get(0).(*gorm.DB).Statement.Context.Err() }).
		Return(roster, nil)

	svc, _ := newUnreachableRosterCache(t, repo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := svc.Roster(ctx)

	require.NoError(t, err)
	assert.Equal(t, roster, got)
	assert.NoError(t, loadCtxErr)
}

func TestRosterCacheService_Invalidate_DuringLoadSkipsWriteBack(t *testing.T) {
	repo := new(mockCaregiverRepository)
	stale := []entity.Caregiver{{ID: uuid.New(), Name: "Amal"}}

	svc, hook := newUnreachableRosterCache(t, repo)
	repo.On("FindAll", mock.Anything).
		Run(func(mock.Arguments) { _ = svc.Invalidate(context.Background()) }).
		Return(stale, nil)

	got, err := svc.Roster(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stale, got)
	assert.False(t, loggedMessage(hook, "Failed to write roster cache"), "stale roster must not be written")
	assert.True(t, loggedMessage(hook, "Roster changed while loading"))
}

func TestRosterCacheService_Roster_DatabaseError(t *testing.T) {
	repo := new(mockCaregiverRepository)
	repo.On("FindAll", mock.Anything).Return(nil, errors.New("relation does not exist"))

	svc, _ := newUnreachableRosterCache(t, repo)

	got, err := svc.Roster(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "load caregiver roster")
	assert.Nil(t, got)
}

func TestRosterCacheService_Invalidate_ReportsRedisError(t *testing.T) {
	svc, _ := newUnreachableRosterCache(t, new(mockCaregiverRepository))

	err := svc.Invalidate(context.Background())

	assert.Error(t, err)
}
