package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"caregiver-marketplace/internal/domain/entity"
	"caregiver-marketplace/internal/domain/repository"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	// RedisRosterKey holds the JSON encoded caregiver roster
	RedisRosterKey = "caregivers:roster"

	// Timeout for individual Redis operations
	redisOpTimeout = 2 * time.Second

	// Upper bound for a shared roster load, independent of any one caller
	rosterLoadTimeout = 10 * time.Second
)

// RosterCacheService serves the caregiver roster from Redis, falling back to
// PostgreSQL on a miss or when Redis is unavailable.
type RosterCacheService interface {
	Roster(ctx context.Context) ([]entity.Caregiver, error)
	Invalidate(ctx context.Context) error
	WarmUp(ctx context.Context) error
}

type rosterCacheService struct {
	db            *gorm.DB
	redisClient   *redis.Client
	log           *logrus.Logger
	caregiverRepo repository.CaregiverRepository
	ttl           time.Duration

	// Collapses concurrent cache misses into one database load
	loads singleflight.Group

	// generation is bumped by Invalidate; a load that started under an older
	// generation must not write its roster back
	mu         sync.Mutex
	generation uint64
}

func NewRosterCacheService(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	caregiverRepo repository.CaregiverRepository,
	ttl time.Duration,
) RosterCacheService {
	return &rosterCacheService{
		db:            db,
		redisClient:   redisClient,
		log:           log,
		caregiverRepo: caregiverRepo,
		ttl:           ttl,
	}
}

// Roster returns the full caregiver roster in stable order.
// Redis errors are logged and never fail the call.
func (s *rosterCacheService) Roster(ctx context.Context) ([]entity.Caregiver, error) {
	roster, err := s.readCache(ctx)
	if err == nil {
		return roster, nil
	}
	if !errors.Is(err, redis.Nil) {
		s.log.Warnf("Roster cache read failed, falling back to database: %+v", err)
	}

	v, err, _ := s.loads.Do(RedisRosterKey, func() (interface{}, error) {
		// Shared by every waiting caller, so the first caller's cancellation
		// must not fail the others
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rosterLoadTimeout)
		defer cancel()
		return s.load(loadCtx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]entity.Caregiver), nil
}

// Invalidate drops the cached roster so the next read reloads it
func (s *rosterCacheService) Invalidate(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	s.mu.Unlock()
	s.loads.Forget(RedisRosterKey)

	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	if err := s.redisClient.Del(opCtx, RedisRosterKey).Err(); err != nil {
		s.log.Warnf("Failed to invalidate roster cache: %+v", err)
		return fmt.Errorf("invalidate roster cache: %w", err)
	}
	return nil
}

// WarmUp loads the roster into Redis. Should be called before accepting traffic.
func (s *rosterCacheService) WarmUp(ctx context.Context) error {
	startTime := time.Now()

	roster, err := s.load(ctx)
	if err != nil {
		return err
	}

	s.log.Infof("Roster cache warmed: %d caregivers in %v", len(roster), time.Since(startTime))
	return nil
}

// load reads the roster from the database and writes it through to Redis
func (s *rosterCacheService) load(ctx context.Context) ([]entity.Caregiver, error) {
	s.mu.Lock()
	generation := s.generation
	s.mu.Unlock()

	roster, err := s.caregiverRepo.FindAll(s.db.WithContext(ctx))
	if err != nil {
		s.log.Warnf("Failed to load caregiver roster: %+v", err)
		return nil, fmt.Errorf("load caregiver roster: %w", err)
	}

	written, err := s.writeCacheIfCurrent(ctx, generation, roster)
	if err != nil {
		s.log.Warnf("Failed to write roster cache (non-fatal): %+v", err)
	} else if !written {
		s.log.Debug("Roster changed while loading, skipping cache write")
	}
	return roster, nil
}

// writeCacheIfCurrent stores the roster unless Invalidate ran since the load
// began. Holding mu across the write orders it before any later Del.
func (s *rosterCacheService) writeCacheIfCurrent(ctx context.Context, generation uint64, roster []entity.Caregiver) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		return false, nil
	}
	return true, s.writeCache(ctx, roster)
}

func (s *rosterCacheService) readCache(ctx context.Context) ([]entity.Caregiver, error) {
	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	raw, err := s.redisClient.Get(opCtx, RedisRosterKey).Bytes()
	if err != nil {
		return nil, err
	}

	var roster []entity.Caregiver
	if err := json.Unmarshal(raw, &roster); err != nil {
		return nil, fmt.Errorf("decode cached roster: %w", err)
	}
	return roster, nil
}

func (s *rosterCacheService) writeCache(ctx context.Context, roster []entity.Caregiver) error {
	raw, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf("encode roster: %w", err)
	}

	opCtx, cancel := context.WithTimeout(ctx, redisOpTimeout)
	defer cancel()

	return s.redisClient.Set(opCtx, RedisRosterKey, raw, s.ttl).Err()
}
