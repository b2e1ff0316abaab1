package prescriptions

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
	ListForCaller(ctx context.Context, userID uuid.UUID, role users.Role, patientIDParam string) ([]Prescription, error)
}

type service struct {
	repo     Repository
	userRepo users.Repository
}

func NewService(repo Repository, userRepo users.Repository) Service {
	return &service{repo: repo, userRepo: userRepo}
}

// ListForCaller scopes the listing by role: a PATIENT always reads their own
// record regardless of query parameters, staff name the patient explicitly.
func (s *service) ListForCaller(ctx context.Context, userID uuid.UUID, role users.Role, patientIDParam string) ([]Prescription, error) {
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
