package trip

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var ErrValidation = errors.New("validation error")

var validate = validator.New()

// StatsUpdater adjusts the owner's denormalized planned-trip counter.
type StatsUpdater interface {
	AdjustTripsPlanned(ctx context.Context, uid string, delta int) error
}

type Service struct {
	store Store
	stats StatsUpdater
}

func NewService(store Store, stats StatsUpdater) *Service {
	return &Service{store: store, stats: stats}
}

func (s *Service) List(ctx context.Context, uid string) ([]Trip, error) {
	return s.store.ListByOwner(ctx, uid)
}

func (s *Service) Get(ctx context.Context, uid, id string) (Trip, error) {
	return s.store.FindOne(ctx, id, uid)
}

func (s *Service) Create(ctx context.Context, uid string, input Trip) (Trip, error) {
	now := time.Now().UTC()
	input.ID = uuid.NewString()
	input.UserID = uid
	input.CreatedAt = now
	input.UpdatedAt = now
	applyDefaults(&input)

	if err := validate.Struct(input); err != nil {
		return Trip{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.store.Insert(ctx, input); err != nil {
		return Trip{}, err
	}

	// Counter update is best-effort: the trip exists even if this write
	// fails, and the two documents are not tied by a transaction.
	if err := s.stats.AdjustTripsPlanned(ctx, uid, 1); err != nil {
		log.Printf("increment trips planned for %s: %v", uid, err)
	}
	return input, nil
}

// Update replaces the whole document after validation, preserving the
// server-assigned identity and creation timestamp. Last writer wins.
func (s *Service) Update(ctx context.Context, uid, id string, input Trip) (Trip, error) {
	existing, err := s.store.FindOne(ctx, id, uid)
	if err != nil {
		return Trip{}, err
	}

	input.ID = existing.ID
	input.UserID = existing.UserID
	input.CreatedAt = existing.CreatedAt
	input.UpdatedAt = time.Now().UTC()
	applyDefaults(&input)

	if err := validate.Struct(input); err != nil {
		return Trip{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := s.store.Replace(ctx, input); err != nil {
		return Trip{}, err
	}
	return input, nil
}

func (s *Service) Delete(ctx context.Context, uid, id string) error {
	if err := s.store.Delete(ctx, id, uid); err != nil {
		return err
	}
	if err := s.stats.AdjustTripsPlanned(ctx, uid, -1); err != nil {
		log.Printf("decrement trips planned for %s: %v", uid, err)
	}
	return nil
}

func applyDefaults(t *Trip) {
	if t.Status == "" {
		t.Status = StatusPlanned
	}
	if t.Activities == nil {
		t.Activities = []Activity{}
	}
}
