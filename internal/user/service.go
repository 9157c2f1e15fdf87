package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	ErrAlreadyExists = errors.New("user profile already exists")
	ErrValidation    = errors.New("validation error")
)

var validate = validator.New()

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Profile(ctx context.Context, uid string) (User, error) {
	return s.store.FindByUID(ctx, uid)
}

// CreateProfile inserts the first profile document for a subject. The guard
// against a second insert makes signup idempotent at the API level.
func (s *Service) CreateProfile(ctx context.Context, input User) (User, error) {
	if _, err := s.store.FindByUID(ctx, input.FirebaseUID); err == nil {
		return User{}, ErrAlreadyExists
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	now := time.Now().UTC()
	input.ID = uuid.NewString()
	input.CreatedAt = now
	input.UpdatedAt = now
	if input.TravelPreferences == nil {
		input.TravelPreferences = []string{}
	}

	if err := validate.Struct(input); err != nil {
		return User{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.store.Insert(ctx, input); err != nil {
		return User{}, err
	}
	return input, nil
}

func (s *Service) UpdateProfile(ctx context.Context, uid string, update Update) (User, error) {
	return s.store.Apply(ctx, uid, update)
}

// AdjustTripsPlanned shifts the denormalized planned-trip counter. The trip
// service calls it best-effort after create/delete; the counter is never
// clamped at zero.
func (s *Service) AdjustTripsPlanned(ctx context.Context, uid string, delta int) error {
	return s.store.AdjustTripsPlanned(ctx, uid, delta)
}
