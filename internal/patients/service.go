package patients

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"mediflow/internal/users"
)

// ErrNoLinkedProfile is returned when a PATIENT account has no patient record
// attached, which only happens for accounts created outside the register flow.
var ErrNoLinkedProfile = errors.New("no patient profile linked to this account")

type Service interface {
	List(ctx context.Context, hospitalID uuid.UUID, query ListQuery) ([]Patient, error)
	Register(ctx context.Context, hospitalID uuid.UUID, req CreatePatientRequest) (*Patient, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*Patient, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*Patient, error)
}

type service struct {
	repo     Repository
	userRepo users.Repository
}

func NewService(repo Repository, userRepo users.Repository) Service {
	return &service{repo: repo, userRepo: userRepo}
}

func (s *service) List(ctx context.Context, hospitalID uuid.UUID, query ListQuery) ([]Patient, error) {
	return s.repo.List(ctx, hospitalID, query)
}

func (s *service) Register(ctx context.Context, hospitalID uuid.UUID, req CreatePatientRequest) (*Patient, error) {
	dob, err := time.Parse("2006-01-02", req.DOB)
	if err != nil {
		return nil, errors.New("dob must be in YYYY-MM-DD format")
	}

	patient := &Patient{
		HospitalID:  hospitalID,
		Name:        req.Name,
		DOB:         dob,
		ContactInfo: req.ContactInfo,
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// GetProfile resolves the caller's account to its linked patient record. The
// account id comes from verified claims, never from a request parameter.
func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*Patient, error) {
	patientID, err := s.resolvePatientID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, patientID)
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*Patient, error) {
	patientID, err := s.resolvePatientID(ctx, userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.ContactInfo != nil {
		updates["contact_info"] = *req.ContactInfo
	}
	if len(updates) == 0 {
		return s.repo.GetByID(ctx, patientID)
	}
	return s.repo.Update(ctx, patientID, updates)
}

func (s *service) resolvePatientID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if user.PatientID == nil {
		return uuid.Nil, ErrNoLinkedProfile
	}
	return *user.PatientID, nil
}
