package ehr

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"mediflow/internal/users"
)

var (
	ErrNoLinkedProfile   = errors.New("no patient profile linked to this account")
	ErrPatientIDRequired = errors.New("patient_id is required")
)

type Service interface {
	ListForCaller(ctx context.Context, userID uuid.UUID, role users.Role, patientIDParam string) ([]Record, error)
	Create(ctx context.Context, authorID, hospitalID uuid.UUID, req CreateRecordRequest) (*Record, error)
}

type service struct {
	repo     Repository
	userRepo users.Repository
}

func NewService(repo Repository, userRepo users.Repository) Service {
	return &service{repo: repo, userRepo: userRepo}
}

// ListForCaller mirrors the prescriptions rule: PATIENT reads own chart only,
// doctors name the patient via query parameter.
func (s *service) ListForCaller(ctx context.Context, userID uuid.UUID, role users.Role, patientIDParam string) ([]Record, error) {
	if role == users.RolePatient {
		user, err := s.userRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user.PatientID == nil {
			return nil, ErrNoLinkedProfile
		}
		return s.repo.ListByPatient(ctx, *user.PatientID)
	}

	if patientIDParam == "" {
		return nil, ErrPatientIDRequired
	}
	patientID, err := uuid.Parse(patientIDParam)
	if err != nil {
		return nil, errors.New("patient_id must be a UUID")
	}
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *service) Create(ctx context.Context, authorID, hospitalID uuid.UUID, req CreateRecordRequest) (*Record, error) {
	record := &Record{
		HospitalID: hospitalID,
		PatientID:  req.PatientID,
		AuthorID:   authorID,
		Type:       req.Type,
		Payload:    req.Payload,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}
