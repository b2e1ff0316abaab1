package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mediflow/internal/alerts"
	"mediflow/internal/appointments"
	"mediflow/internal/patients"
	"mediflow/internal/users"
	"mediflow/pkg/cache"
)

type Service interface {
	Stats(ctx context.Context, hospitalID uuid.UUID) (*Stats, error)
	ListUsers(ctx context.Context, hospitalID uuid.UUID) ([]users.User, error)
}

type service struct {
	userRepo        users.Repository
	patientRepo     patients.Repository
	appointmentRepo appointments.Repository
	alertRepo       alerts.Repository
	cache           cache.Service
	statsTTL        time.Duration
}

func NewService(
	userRepo users.Repository,
	patientRepo patients.Repository,
	appointmentRepo appointments.Repository,
	alertRepo alerts.Repository,
	cacheService cache.Service,
	statsTTL time.Duration,
) Service {
	return &service{
		userRepo:        userRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		alertRepo:       alertRepo,
		cache:           cacheService,
		statsTTL:        statsTTL,
	}
}

func statsCacheKey(hospitalID uuid.UUID) string {
	return fmt.Sprintf("mediflow:admin:stats:%s", hospitalID)
}

// Stats serves the dashboard counts through the cache-aside helper: four
// count queries per hospital per TTL, everything else is a redis hit.
func (s *service) Stats(ctx context.Context, hospitalID uuid.UUID) (*Stats, error) {
	var stats Stats
	err := s.cache.GetOrSet(ctx, statsCacheKey(hospitalID), s.statsTTL, func() (interface{}, error) {
		return s.computeStats(ctx, hospitalID)
	}, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *service) computeStats(ctx context.Context, hospitalID uuid.UUID) (*Stats, error) {
	userCount, err := s.userRepo.CountByHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	patientCount, err := s.patientRepo.CountByHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	appointmentCount, err := s.appointmentRepo.CountByHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	alertCount, err := s.alertRepo.CountByHospital(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	return &Stats{
		Users:        userCount,
		Patients:     patientCount,
		Appointments: appointmentCount,
		Alerts:       alertCount,
	}, nil
}

func (s *service) ListUsers(ctx context.Context, hospitalID uuid.UUID) ([]users.User, error) {
	return s.userRepo.ListByHospital(ctx, hospitalID)
}
