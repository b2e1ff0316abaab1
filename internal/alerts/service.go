package alerts

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"mediflow/pkg/logger"
)

const (
	staffFeedLimit = 50
	adminFeedLimit = 20
)

type Service interface {
	StaffFeed(ctx context.Context, hospitalID uuid.UUID) ([]Alert, error)
	AdminFeed(ctx context.Context, hospitalID uuid.UUID) ([]Alert, error)
	Raise(ctx context.Context, hospitalID uuid.UUID, kind string, payload interface{}) (*Alert, error)
}

type service struct {
	repo     Repository
	producer EventProducer // nil when Kafka is disabled
	log      *logger.Logger
}

func NewService(repo Repository, producer EventProducer, log *logger.Logger) Service {
	return &service{repo: repo, producer: producer, log: log}
}

func (s *service) StaffFeed(ctx context.Context, hospitalID uuid.UUID) ([]Alert, error) {
	return s.repo.ListLatest(ctx, hospitalID, staffFeedLimit)
}

func (s *service) AdminFeed(ctx context.Context, hospitalID uuid.UUID) ([]Alert, error) {
	return s.repo.ListLatest(ctx, hospitalID, adminFeedLimit)
}

// Raise persists an alert and publishes it to the event stream. The database
// write is the source of truth; a failed publish is logged and swallowed.
func (s *service) Raise(ctx context.Context, hospitalID uuid.UUID, kind string, payload interface{}) (*Alert, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	alert := &Alert{
		HospitalID: hospitalID,
		Kind:       kind,
		Payload:    string(payloadBytes),
	}
	if err := s.repo.Create(ctx, alert); err != nil {
		return nil, err
	}
	s.log.LogAlertRaised(ctx, alert.ID.String(), hospitalID.String(), kind)

	if s.producer != nil {
		event := &Event{
			AlertID:    alert.ID,
			HospitalID: alert.HospitalID,
			Kind:       alert.Kind,
			Payload:    alert.Payload,
			CreatedAt:  alert.CreatedAt,
		}
		if err := s.producer.Publish(ctx, event); err != nil {
			s.log.LogAlertPublishFailed(ctx, alert.ID.String(), err)
		}
	}

	return alert, nil
}
