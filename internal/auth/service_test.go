package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mediflow/internal/hospitals"
	"mediflow/internal/patients"
	"mediflow/internal/shared/config"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

type memoryAuthRepo struct {
	byEmail  map[string]*users.User
	patients []*patients.Patient
}

func newMemoryAuthRepo() *memoryAuthRepo {
	return &memoryAuthRepo{byEmail: make(map[string]*users.User)}
}

func (m *memoryAuthRepo) GetUserByEmail(_ context.Context, email string) (*users.User, error) {
	user, ok := m.byEmail[email]
	if !ok {
		return nil, users.ErrUserNotFound
	}
	return user, nil
}

func (m *memoryAuthRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *memoryAuthRepo) CreateUser(_ context.Context, user *users.User) error {
	user.ID = uuid.New()
	m.byEmail[user.Email] = user
	return nil
}

func (m *memoryAuthRepo) CreateUserWithPatient(_ context.Context, user *users.User, patient *patients.Patient) error {
	patient.ID = uuid.New()
	m.patients = append(m.patients, patient)
	user.ID = uuid.New()
	user.PatientID = &patient.ID
	m.byEmail[user.Email] = user
	return nil
}

type memoryHospitalRepo struct {
	byCode map[string]*hospitals.Hospital
}

func newMemoryHospitalRepo(list ...*hospitals.Hospital) *memoryHospitalRepo {
	repo := &memoryHospitalRepo{byCode: make(map[string]*hospitals.Hospital)}
	for _, h := range list {
		repo.byCode[h.Code] = h
	}
	return repo
}

func (m *memoryHospitalRepo) Create(_ context.Context, hospital *hospitals.Hospital) error {
	m.byCode[hospital.Code] = hospital
	return nil
}

func (m *memoryHospitalRepo) GetByCode(_ context.Context, code string) (*hospitals.Hospital, error) {
	hospital, ok := m.byCode[code]
	if !ok {
		return nil, hospitals.ErrHospitalNotFound
	}
	return hospital, nil
}

func (m *memoryHospitalRepo) GetByID(_ context.Context, id uuid.UUID) (*hospitals.Hospital, error) {
	for _, hospital := range m.byCode {
		if hospital.ID == id {
			return hospital, nil
		}
	}
	return nil, hospitals.ErrHospitalNotFound
}

func testCodec() *tokens.Codec {
	return tokens.NewCodec(config.JWTConfig{
		Secret:           "auth-service-test-secret",
		AccessExpiresIn:  15 * time.Minute,
		RefreshExpiresIn: 7 * 24 * time.Hour,
	})
}

func testHospital() *hospitals.Hospital {
	return &hospitals.Hospital{ID: uuid.New(), Code: "HOS-123", Name: "General Hospital"}
}

func seedUser(t *testing.T, repo *memoryAuthRepo, email, password string, role users.Role, hospitalID uuid.UUID) *users.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	require.NoError(t, err)
	user := &users.User{
		ID:         uuid.New(),
		Email:      email,
		Password:   string(hash),
		Role:       role,
		HospitalID: hospitalID,
	}
	repo.byEmail[email] = user
	return user
}

func TestLoginSuccess(t *testing.T) {
	repo := newMemoryAuthRepo()
	hospital := testHospital()
	codec := testCodec()
	user := seedUser(t, repo, "doctor@demo.local", "Password123!", users.RoleDoctor, hospital.ID)

	svc := NewService(repo, newMemoryHospitalRepo(hospital), codec)
	result, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "doctor@demo.local",
		Password: "Password123!",
	})
	require.NoError(t, err)
	require.Equal(t, user.ID, result.User.ID)

	// The issued access token must verify back to the same identity.
	claims, err := codec.VerifyAccess(result.Pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID.String(), claims.UserID)
	require.Equal(t, users.RoleDoctor, claims.Role)
	require.Equal(t, hospital.ID.String(), claims.HospitalID)
}

// Unknown email and wrong password must produce the same error value.
func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newMemoryAuthRepo()
	hospital := testHospital()
	seedUser(t, repo, "doctor@demo.local", "Password123!", users.RoleDoctor, hospital.ID)

	svc := NewService(repo, newMemoryHospitalRepo(hospital), testCodec())

	_, unknownErr := svc.Login(context.Background(), &LoginRequest{
		Email:    "nobody@demo.local",
		Password: "Password123!",
	})
	_, wrongErr := svc.Login(context.Background(), &LoginRequest{
		Email:    "doctor@demo.local",
		Password: "not-the-password",
	})

	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
}

func TestRegisterUnknownHospitalCode(t *testing.T) {
	svc := NewService(newMemoryAuthRepo(), newMemoryHospitalRepo(), testCodec())

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:        "new@demo.local",
		Password:     "Password123!",
		Role:         "DOCTOR",
		HospitalCode: "NO-SUCH-CODE",
	})
	require.ErrorIs(t, err, ErrUnknownHospitalCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newMemoryAuthRepo()
	hospital := testHospital()
	seedUser(t, repo, "doctor@demo.local", "Password123!", users.RoleDoctor, hospital.ID)

	svc := NewService(repo, newMemoryHospitalRepo(hospital), testCodec())
	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:        "doctor@demo.local",
		Password:     "Password123!",
		Role:         "DOCTOR",
		HospitalCode: hospital.Code,
	})
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestRegisterInvalidRole(t *testing.T) {
	hospital := testHospital()
	svc := NewService(newMemoryAuthRepo(), newMemoryHospitalRepo(hospital), testCodec())

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:        "new@demo.local",
		Password:     "Password123!",
		Role:         "SUPERUSER",
		HospitalCode: hospital.Code,
	})
	require.ErrorIs(t, err, ErrInvalidRole)
}

// Registering a PATIENT creates the linked patient record atomically.
func TestRegisterPatientCreatesLinkedProfile(t *testing.T) {
	repo := newMemoryAuthRepo()
	hospital := testHospital()

	svc := NewService(repo, newMemoryHospitalRepo(hospital), testCodec())
	result, err := svc.Register(context.Background(), &RegisterRequest{
		Email:        "jane@demo.local",
		Password:     "Password123!",
		Role:         "patient", // role parsing is case-insensitive
		HospitalCode: hospital.Code,
		Name:         "Jane Patient",
	})
	require.NoError(t, err)
	require.NotNil(t, result.User.PatientID)
	require.Len(t, repo.patients, 1)
	require.Equal(t, "Jane Patient", repo.patients[0].Name)
	require.Equal(t, *result.User.PatientID, repo.patients[0].ID)
}

// Staff registration must not create a patient record.
func TestRegisterStaffHasNoPatientLink(t *testing.T) {
	repo := newMemoryAuthRepo()
	hospital := testHospital()

	svc := NewService(repo, newMemoryHospitalRepo(hospital), testCodec())
	result, err := svc.Register(context.Background(), &RegisterRequest{
		Email:        "desk@demo.local",
		Password:     "Password123!",
		Role:         "FRONT_DESK",
		HospitalCode: hospital.Code,
	})
	require.NoError(t, err)
	require.Nil(t, result.User.PatientID)
	require.Empty(t, repo.patients)
}
