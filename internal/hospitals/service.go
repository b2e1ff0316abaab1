package hospitals

import (
	"context"
	"errors"
)

type Service interface {
	VerifyCode(ctx context.Context, code string) (*VerifyResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// VerifyCode looks up a hospital code. An unknown code is a valid=false
// answer, not an error.
func (s *service) VerifyCode(ctx context.Context, code string) (*VerifyResponse, error) {
	hospital, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrHospitalNotFound) {
			return &VerifyResponse{Valid: false}, nil
		}
		return nil, err
	}

	id := hospital.ID.String()
	name := hospital.Name
	return &VerifyResponse{
		Valid:        true,
		HospitalID:   &id,
		HospitalName: &name,
	}, nil
}
