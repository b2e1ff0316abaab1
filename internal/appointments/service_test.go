package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mediflow/internal/users"
)

type memoryRepo struct {
	byID map[uuid.UUID]*Appointment
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{byID: make(map[uuid.UUID]*Appointment)}
}

func (m *memoryRepo) Create(_ context.Context, appointment *Appointment) error {
	appointment.ID = uuid.New()
	m.byID[appointment.ID] = appointment
	return nil
}

func (m *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*Appointment, error) {
	appointment, ok := m.byID[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (m *memoryRepo) UpdateStatus(_ context.Context, id uuid.UUID, status Status) (*Appointment, error) {
	appointment, ok := m.byID[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}
	appointment.Status = status
	return appointment, nil
}

func (m *memoryRepo) ListByDoctor(_ context.Context, doctorID uuid.UUID) ([]Appointment, error) {
	var list []Appointment
	for _, a := range m.byID {
		if a.DoctorID == doctorID {
			list = append(list, *a)
		}
	}
	return list, nil
}

func (m *memoryRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]Appointment, error) {
	var list []Appointment
	for _, a := range m.byID {
		if a.PatientID == patientID {
			list = append(list, *a)
		}
	}
	return list, nil
}

func (m *memoryRepo) ListByHospital(_ context.Context, hospitalID uuid.UUID, status Status, limit int) ([]Appointment, error) {
	var list []Appointment
	for _, a := range m.byID {
		if a.HospitalID != hospitalID {
			continue
		}
		if status != "" && a.Status != status {
			continue
		}
		list = append(list, *a)
	}
	return list, nil
}

func (m *memoryRepo) ListInWindow(_ context.Context, hospitalID uuid.UUID, doctorID *uuid.UUID, from, to time.Time) ([]Appointment, error) {
	var list []Appointment
	for _, a := range m.byID {
		if a.HospitalID != hospitalID {
			continue
		}
		if doctorID != nil && a.DoctorID != *doctorID {
			continue
		}
		if a.StartAt.Before(from) || !a.StartAt.Before(to) {
			continue
		}
		list = append(list, *a)
	}
	return list, nil
}

func (m *memoryRepo) CountByHospital(_ context.Context, hospitalID uuid.UUID) (int64, error) {
	var count int64
	for _, a := range m.byID {
		if a.HospitalID == hospitalID {
			count++
		}
	}
	return count, nil
}

type stubUserRepo struct {
	byID map[uuid.UUID]*users.User
}

func (s *stubUserRepo) Create(context.Context, *users.User) error { return nil }
func (s *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*users.User, error) {
	user, ok := s.byID[id]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return user, nil
}
func (s *stubUserRepo) GetByEmail(context.Context, string) (*users.User, error) {
	return nil, users.ErrUserNotFound
}
func (s *stubUserRepo) EmailExists(context.Context, string) (bool, error) { return false, nil }
func (s *stubUserRepo) ListByHospital(context.Context, uuid.UUID) ([]users.User, error) {
	return nil, nil
}
func (s *stubUserRepo) ListByRole(context.Context, uuid.UUID, users.Role) ([]users.User, error) {
	return nil, nil
}
func (s *stubUserRepo) CountByHospital(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func patientAccount(patientID uuid.UUID) (*stubUserRepo, uuid.UUID) {
	accountID := uuid.New()
	return &stubUserRepo{byID: map[uuid.UUID]*users.User{
		accountID: {ID: accountID, Role: users.RolePatient, PatientID: &patientID},
	}}, accountID
}

func bookFor(t *testing.T, svc Service, hospitalID, patientID, doctorID uuid.UUID) *Appointment {
	t.Helper()
	start := time.Now().Add(48 * time.Hour).UTC()
	appointment, err := svc.Book(context.Background(), hospitalID, CreateAppointmentRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		StartAt:   start.Format(time.RFC3339),
		EndAt:     start.Add(30 * time.Minute).Format(time.RFC3339),
		Reason:    "checkup",
	})
	require.NoError(t, err)
	return appointment
}

func TestBookValidatesWindow(t *testing.T) {
	svc := NewService(newMemoryRepo(), &stubUserRepo{})

	start := time.Now().Add(time.Hour).UTC()
	_, err := svc.Book(context.Background(), uuid.New(), CreateAppointmentRequest{
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
		StartAt:   start.Format(time.RFC3339),
		EndAt:     start.Add(-time.Minute).Format(time.RFC3339),
	})
	require.Error(t, err)

	_, err = svc.Book(context.Background(), uuid.New(), CreateAppointmentRequest{
		PatientID: uuid.New(),
		DoctorID:  uuid.New(),
		StartAt:   "tomorrow at noon",
		EndAt:     start.Format(time.RFC3339),
	})
	require.Error(t, err)
}

func TestPatientCanCancelOwnAppointment(t *testing.T) {
	repo := newMemoryRepo()
	patientID := uuid.New()
	userRepo, accountID := patientAccount(patientID)
	svc := NewService(repo, userRepo)

	appointment := bookFor(t, svc, uuid.New(), patientID, uuid.New())

	updated, err := svc.UpdateStatus(context.Background(), accountID, users.RolePatient, UpdateAppointmentRequest{
		ID:     appointment.ID,
		Status: StatusCancelled,
	})
	require.NoError(t, err)
	require.Equal(t, StatusCancelled, updated.Status)
}

func TestPatientCannotCompleteAppointment(t *testing.T) {
	repo := newMemoryRepo()
	patientID := uuid.New()
	userRepo, accountID := patientAccount(patientID)
	svc := NewService(repo, userRepo)

	appointment := bookFor(t, svc, uuid.New(), patientID, uuid.New())

	_, err := svc.UpdateStatus(context.Background(), accountID, users.RolePatient, UpdateAppointmentRequest{
		ID:     appointment.ID,
		Status: StatusCompleted,
	})
	require.ErrorIs(t, err, ErrPatientCanOnlyCancel)
}

func TestPatientCannotCancelForeignAppointment(t *testing.T) {
	repo := newMemoryRepo()
	patientID := uuid.New()
	userRepo, accountID := patientAccount(patientID)
	svc := NewService(repo, userRepo)

	// Appointment belongs to a different patient.
	foreign := bookFor(t, svc, uuid.New(), uuid.New(), uuid.New())

	_, err := svc.UpdateStatus(context.Background(), accountID, users.RolePatient, UpdateAppointmentRequest{
		ID:     foreign.ID,
		Status: StatusCancelled,
	})
	require.ErrorIs(t, err, ErrNotYourAppointment)
	require.Equal(t, StatusScheduled, repo.byID[foreign.ID].Status)
}

func TestStaffCanSetAnyStatus(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, &stubUserRepo{})

	appointment := bookFor(t, svc, uuid.New(), uuid.New(), uuid.New())

	updated, err := svc.UpdateStatus(context.Background(), uuid.New(), users.RoleFrontDesk, UpdateAppointmentRequest{
		ID:     appointment.ID,
		Status: StatusCompleted,
	})
	require.NoError(t, err)
	require.Equal(t, StatusCompleted, updated.Status)
}

func TestScheduleWindowIsSevenDays(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, &stubUserRepo{})
	hospitalID := uuid.New()
	doctorID := uuid.New()

	inWindow := &Appointment{
		HospitalID: hospitalID,
		DoctorID:   doctorID,
		PatientID:  uuid.New(),
		StartAt:    time.Now().Add(2 * 24 * time.Hour),
		Status:     StatusScheduled,
	}
	beyond := &Appointment{
		HospitalID: hospitalID,
		DoctorID:   doctorID,
		PatientID:  uuid.New(),
		StartAt:    time.Now().Add(10 * 24 * time.Hour),
		Status:     StatusScheduled,
	}
	require.NoError(t, repo.Create(context.Background(), inWindow))
	require.NoError(t, repo.Create(context.Background(), beyond))

	list, err := svc.Schedule(context.Background(), hospitalID, &doctorID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, inWindow.ID, list[0].ID)
}
