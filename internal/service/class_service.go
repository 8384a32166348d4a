package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/merajfaizan/gym-management-backend/internal/events"
	"github.com/merajfaizan/gym-management-backend/internal/model"
	"github.com/merajfaizan/gym-management-backend/internal/repository"
)

// ClassCapacity is the fixed roster limit per class.
const ClassCapacity = 10

var (
	ErrClassNotFound   = errors.New("class not found")
	ErrAlreadyReserved = errors.New("you have already reserved this class")
	ErrClassFull       = errors.New("class is fully reserved")
	// ErrReservationLost means the conditional write matched nothing even
	// though the re-read predicate passed: a concurrent writer won the
	// row. Retryable; never reported as success.
	ErrReservationLost = errors.New("failed to reserve the class")
)

type ClassService interface {
	Schedule(ctx context.Context, class *model.Class) (*model.Class, error)
	List(ctx context.Context) ([]model.Class, error)
	Reserve(ctx context.Context, classID, userID uuid.UUID) error
}

type classService struct {
	classRepo repository.ClassRepository
	publisher events.EventPublisher
}

func NewClassService(classRepo repository.ClassRepository, publisher events.EventPublisher) ClassService {
	return &classService{classRepo: classRepo, publisher: publisher}
}

func (s *classService) Schedule(ctx context.Context, class *model.Class) (*model.Class, error) {
	created, err := s.classRepo.Create(ctx, class)

	if err != nil {
		return nil, err
	}

	go s.publisher.PublishClassScheduled(created)

	return created, nil
}

func (s *classService) List(ctx context.Context) ([]model.Class, error) {
	return s.classRepo.List(ctx)
}

// Reserve attempts the atomic conditional write first and only consults
// a point-in-time read to classify a refusal. The read never gates the
// write, so two racing reservations on the last slot cannot both pass.
func (s *classService) Reserve(ctx context.Context, classID, userID uuid.UUID) error {
	updated, err := s.classRepo.AddTrainee(ctx, classID, userID, ClassCapacity)
	if err != nil {
		return err
	}

	if updated {
		go s.publisher.PublishClassReserved(classID, userID)
		return nil
	}

	class, err := s.classRepo.FindByID(ctx, classID)
	if err != nil {
		return err
	}
	if class == nil {
		return ErrClassNotFound
	}

	for _, id := range class.BookedTrainees {
		if id == userID.String() {
			return ErrAlreadyReserved
		}
	}
	if len(class.BookedTrainees) >= ClassCapacity {
		return ErrClassFull
	}

	return ErrReservationLost
}
