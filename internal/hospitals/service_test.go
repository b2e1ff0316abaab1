package hospitals

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	byCode map[string]*Hospital
}

func (m *memoryRepo) Create(_ context.Context, hospital *Hospital) error {
	m.byCode[hospital.Code] = hospital
	return nil
}

func (m *memoryRepo) GetByCode(_ context.Context, code string) (*Hospital, error) {
	hospital, ok := m.byCode[code]
	if !ok {
		return nil, ErrHospitalNotFound
	}
	return hospital, nil
}

func (m *memoryRepo) GetByID(_ context.Context, id uuid.UUID) (*Hospital, error) {
	for _, hospital := range m.byCode {
		if hospital.ID == id {
			return hospital, nil
		}
	}
	return nil, ErrHospitalNotFound
}

func TestVerifyCode(t *testing.T) {
	hospital := &Hospital{ID: uuid.New(), Code: "HOS-123", Name: "General Hospital"}
	svc := NewService(&memoryRepo{byCode: map[string]*Hospital{hospital.Code: hospital}})

	resp, err := svc.VerifyCode(context.Background(), "HOS-123")
	require.NoError(t, err)
	require.True(t, resp.Valid)
	require.Equal(t, hospital.ID.String(), *resp.HospitalID)
	require.Equal(t, "General Hospital", *resp.HospitalName)
}

// An unknown code is a negative answer, not an error.
func TestVerifyUnknownCode(t *testing.T) {
	svc := NewService(&memoryRepo{byCode: map[string]*Hospital{}})

	resp, err := svc.VerifyCode(context.Background(), "NO-SUCH")
	require.NoError(t, err)
	require.False(t, resp.Valid)
	require.Nil(t, resp.HospitalID)
	require.Nil(t, resp.HospitalName)
}
