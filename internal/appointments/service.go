package appointments

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"mediflow/internal/users"
)

var (
	// ErrNotYourAppointment means a PATIENT tried to act on someone else's
	// appointment. Controllers map it to forbidden.
	ErrNotYourAppointment = errors.New("appointment belongs to another patient")
	// ErrPatientCanOnlyCancel restricts the self-service PATCH to cancellation.
	ErrPatientCanOnlyCancel = errors.New("patients can only cancel appointments")
	// ErrNoLinkedProfile mirrors the profile case: a PATIENT account without a
	// patient record has nothing to list or cancel.
	ErrNoLinkedProfile = errors.New("no patient profile linked to this account")
)

const scheduleWindowDays = 7

type Service interface {
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]Appointment, error)
	Schedule(ctx context.Context, hospitalID uuid.UUID, doctorID *uuid.UUID) ([]Appointment, error)
	ListForFrontDesk(ctx context.Context, hospitalID uuid.UUID, status Status) ([]Appointment, error)
	ListForCaller(ctx context.Context, userID, hospitalID uuid.UUID, role users.Role) ([]Appointment, error)
	Book(ctx context.Context, hospitalID uuid.UUID, req CreateAppointmentRequest) (*Appointment, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, role users.Role, req UpdateAppointmentRequest) (*Appointment, error)
}

type service struct {
	repo     Repository
	userRepo users.Repository
}

func NewService(repo Repository, userRepo users.Repository) Service {
	return &service{repo: repo, userRepo: userRepo}
}

func (s *service) ListForDoctor(ctx context.Context, doctorID uuid.UUID) ([]Appointment, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

// Schedule returns the next seven days. Doctors see their own slots; admins
// pass a nil doctorID and see the whole hospital.
func (s *service) Schedule(ctx context.Context, hospitalID uuid.UUID, doctorID *uuid.UUID) ([]Appointment, error) {
	now := time.Now()
	return s.repo.ListInWindow(ctx, hospitalID, doctorID, now, now.AddDate(0, 0, scheduleWindowDays))
}

func (s *service) ListForFrontDesk(ctx context.Context, hospitalID uuid.UUID, status Status) ([]Appointment, error) {
	return s.repo.ListByHospital(ctx, hospitalID, status, frontDeskListLimit)
}

// ListForCaller serves the shared /patient/appointments view: PATIENT accounts
// see their own appointments, staff see the hospital's.
func (s *service) ListForCaller(ctx context.Context, userID, hospitalID uuid.UUID, role users.Role) ([]Appointment, error) {
	if role != users.RolePatient {
		return s.repo.ListByHospital(ctx, hospitalID, "", frontDeskListLimit)
	}
	patientID, err := s.linkedPatientID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *service) Book(ctx context.Context, hospitalID uuid.UUID, req CreateAppointmentRequest) (*Appointment, error) {
	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		return nil, errors.New("start_at must be an RFC 3339 timestamp")
	}
	endAt, err := time.Parse(time.RFC3339, req.EndAt)
	if err != nil {
		return nil, errors.New("end_at must be an RFC 3339 timestamp")
	}
	if !endAt.After(startAt) {
		return nil, errors.New("end_at must be after start_at")
	}

	appointment := &Appointment{
		HospitalID: hospitalID,
		PatientID:  req.PatientID,
		DoctorID:   req.DoctorID,
		StartAt:    startAt,
		EndAt:      endAt,
		Reason:     req.Reason,
		Status:     StatusScheduled,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// UpdateStatus enforces the self-service rule: staff may set any status, a
// PATIENT may only cancel an appointment that is their own.
func (s *service) UpdateStatus(ctx context.Context, userID uuid.UUID, role users.Role, req UpdateAppointmentRequest) (*Appointment, error) {
	if role != users.RolePatient {
		return s.repo.UpdateStatus(ctx, req.ID, req.Status)
	}

	if req.Status != StatusCancelled {
		return nil, ErrPatientCanOnlyCancel
	}
	patientID, err := s.linkedPatientID(ctx, userID)
	if err != nil {
		return nil, err
	}
	appointment, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if appointment.PatientID != patientID {
		return nil, ErrNotYourAppointment
	}
	return s.repo.UpdateStatus(ctx, req.ID, StatusCancelled)
}

func (s *service) linkedPatientID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if user.PatientID == nil {
		return uuid.Nil, ErrNoLinkedProfile
	}
	return *user.PatientID, nil
}
