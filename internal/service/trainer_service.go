package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/merajfaizan/gym-management-backend/internal/model"
	"github.com/merajfaizan/gym-management-backend/internal/repository"
)

var ErrTrainerNotFound = errors.New("trainer not found")

type TrainerService interface {
	Add(ctx context.Context, trainer *model.Trainer) (*model.Trainer, error)
	List(ctx context.Context) ([]model.Trainer, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Trainer, error)
	Update(ctx context.Context, trainer *model.Trainer) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type trainerService struct {
	trainerRepo repository.TrainerRepository
}

func NewTrainerService(trainerRepo repository.TrainerRepository) TrainerService {
	return &trainerService{trainerRepo: trainerRepo}
}

func (s *trainerService) Add(ctx context.Context, trainer *model.Trainer) (*model.Trainer, error) {
	return s.trainerRepo.Create(ctx, trainer)
}

func (s *trainerService) List(ctx context.Context) ([]model.Trainer, error) {
	return s.trainerRepo.List(ctx)
}

func (s *trainerService) Get(ctx context.Context, id uuid.UUID) (*model.Trainer, error) {
	trainer, err := s.trainerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trainer == nil {
		return nil, ErrTrainerNotFound
	}
	return trainer, nil
}

func (s *trainerService) Update(ctx context.Context, trainer *model.Trainer) error {
	updated, err := s.trainerRepo.Update(ctx, trainer)
	if err != nil {
		return err
	}
	if !updated {
		return ErrTrainerNotFound
	}
	return nil
}

func (s *trainerService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.trainerRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTrainerNotFound
	}
	return nil
}
