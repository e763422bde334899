package user

import (
	"context"
	"fmt"
	"net/mail"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

const minPasswordLen = 8

type Servicer interface {
	Register(ctx context.Context, email, password string) (Profile, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	Get(ctx context.Context, id int64) (Profile, error)
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "user_service"),
	}
}

func (s *Service) Register(ctx context.Context, email, password string) (Profile, error) {
	if err := validateRegister(email, password); err != nil {
		s.log.Debug("registration validation failed", "email", email, "error", err)
		return Profile{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Profile{}, fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		return Profile{}, err
	}

	u, err := s.repo.Find(ctx, userID)
	if err != nil {
		return Profile{}, fmt.Errorf("load created user: %w", err)
	}

	s.log.Info("user registered", "user_id", userID)
	return u.Profile(), nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return u, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Profile, error) {
	u, err := s.repo.Find(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return u.Profile(), nil
}

func validateRegister(email, password string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address")
	}
	if len(password) < minPasswordLen {
		return fmt.Errorf("password must be at least %d characters", minPasswordLen)
	}
	return nil
}
