package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"mediflow/internal/hospitals"
	"mediflow/internal/patients"
	"mediflow/internal/tokens"
	"mediflow/internal/users"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses cannot be used to probe which accounts exist.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrUnknownHospitalCode = errors.New("unknown hospital code")
	ErrInvalidRole         = errors.New("invalid role")
)

const bcryptCost = 10

// LoginResult pairs the account with the freshly minted token pair so the
// controller can set cookies and build the response body.
type LoginResult struct {
	User *users.User
	Pair *tokens.Pair
}

type Service interface {
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
	Register(ctx context.Context, req *RegisterRequest) (*LoginResult, error)
}

type service struct {
	repo         Repository
	hospitalRepo hospitals.Repository
	codec        *tokens.Codec
}

func NewService(repo Repository, hospitalRepo hospitals.Repository, codec *tokens.Codec) Service {
	return &service{
		repo:         repo,
		hospitalRepo: hospitalRepo,
		codec:        codec,
	}
}

func (s *service) Login(ctx context.Context, req *LoginRequest) (*LoginResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	pair, err := s.codec.IssuePair(user.ID.String(), user.Role, user.HospitalID.String())
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Pair: pair}, nil
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*LoginResult, error) {
	role, ok := users.ParseRole(strings.ToUpper(req.Role))
	if !ok {
		return nil, ErrInvalidRole
	}

	hospital, err := s.hospitalRepo.GetByCode(ctx, req.HospitalCode)
	if err != nil {
		if errors.Is(err, hospitals.ErrHospitalNotFound) {
			return nil, ErrUnknownHospitalCode
		}
		return nil, err
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &users.User{
		Email:      req.Email,
		Password:   string(hashedPassword),
		Role:       role,
		HospitalID: hospital.ID,
	}

	if role == users.RolePatient {
		name := req.Name
		if name == "" {
			name = req.Email
		}
		patient := &patients.Patient{
			HospitalID: hospital.ID,
			Name:       name,
		}
		if err := s.repo.CreateUserWithPatient(ctx, user, patient); err != nil {
			return nil, err
		}
	} else {
		if err := s.repo.CreateUser(ctx, user); err != nil {
			return nil, err
		}
	}

	pair, err := s.codec.IssuePair(user.ID.String(), user.Role, user.HospitalID.String())
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Pair: pair}, nil
}
