package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/merajfaizan/gym-management-backend/internal/model"
	"github.com/merajfaizan/gym-management-backend/internal/repository"
)

// Sentinels substituted when a booked class references a trainer that no
// longer exists. Kept as literal values so display logic stays total.
const (
	UnknownTrainerName  = "Unknown"
	UnknownTrainerEmail = "N/A"
)

// ScheduleService serves the read-only display aggregations. Each call
// is a point-in-time snapshot: batch reads followed by in-memory joins,
// no mutation.
type ScheduleService interface {
	ByDay(ctx context.Context) (map[string][]model.ClassView, error)
	WithTrainees(ctx context.Context) ([]model.ClassWithTrainees, error)
	ByUser(ctx context.Context, userID uuid.UUID) ([]model.BookedClassView, error)
}

type scheduleService struct {
	classRepo   repository.ClassRepository
	trainerRepo repository.TrainerRepository
	userRepo    repository.UserRepository
}

func NewScheduleService(classRepo repository.ClassRepository, trainerRepo repository.TrainerRepository, userRepo repository.UserRepository) ScheduleService {
	return &scheduleService{
		classRepo:   classRepo,
		trainerRepo: trainerRepo,
		userRepo:    userRepo,
	}
}

// ByDay groups every class exactly once under its literal day key. The
// trainer reference is replaced by a summary resolved via one batch
// lookup; a dangling reference yields an empty summary, the class is
// never dropped.
func (s *scheduleService) ByDay(ctx context.Context) (map[string][]model.ClassView, error) {
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	trainerMap, err := s.trainerSummaries(ctx, classes)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]model.ClassView)
	for _, class := range classes {
		view := model.ClassView{
			ID:             class.ID,
			Name:           class.Name,
			Time:           class.Time,
			Day:            class.Day,
			Img:            class.Img,
			Trainer:        trainerMap[class.TrainerID],
			BookedTrainees: roster(class.BookedTrainees),
		}
		byDay[class.Day] = append(byDay[class.Day], view)
	}

	return byDay, nil
}

// WithTrainees resolves every roster entry to its user record through a
// single batch lookup. Classes without bookings carry an empty slice,
// never null.
func (s *scheduleService) WithTrainees(ctx context.Context) ([]model.ClassWithTrainees, error) {
	classes, err := s.classRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{})
	var traineeIDs []uuid.UUID
	for _, class := range classes {
		for _, raw := range class.BookedTrainees {
			id, err := uuid.Parse(raw)
			if err != nil {
				continue
			}
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				traineeIDs = append(traineeIDs, id)
			}
		}
	}

	users, err := s.userRepo.FindByIDs(ctx, traineeIDs)
	if err != nil {
		return nil, err
	}
	userMap := make(map[string]model.PublicUser, len(users))
	for _, u := range users {
		userMap[u.ID.String()] = u.Public()
	}

	out := make([]model.ClassWithTrainees, 0, len(classes))
	for _, class := range classes {
		trainees := make([]model.PublicUser, 0, len(class.BookedTrainees))
		for _, raw := range class.BookedTrainees {
			if u, ok := userMap[raw]; ok {
				trainees = append(trainees, u)
			}
		}
		out = append(out, model.ClassWithTrainees{
			ID:             class.ID,
			Name:           class.Name,
			Time:           class.Time,
			Day:            class.Day,
			Img:            class.Img,
			TrainerID:      class.TrainerID,
			BookedTrainees: trainees,
		})
	}

	return out, nil
}

// ByUser returns the classes whose roster contains userID, trainer
// enriched with name and email. Unresolvable trainers surface the
// "Unknown"/"N/A" sentinels.
func (s *scheduleService) ByUser(ctx context.Context, userID uuid.UUID) ([]model.BookedClassView, error) {
	classes, err := s.classRepo.ListByTrainee(ctx, userID)
	if err != nil {
		return nil, err
	}

	trainerMap, err := s.trainerContacts(ctx, classes)
	if err != nil {
		return nil, err
	}

	out := make([]model.BookedClassView, 0, len(classes))
	for _, class := range classes {
		contact, ok := trainerMap[class.TrainerID]
		if !ok {
			contact = model.TrainerContact{Name: UnknownTrainerName, Email: UnknownTrainerEmail}
		}
		out = append(out, model.BookedClassView{
			ID:             class.ID,
			Name:           class.Name,
			Time:           class.Time,
			Day:            class.Day,
			Img:            class.Img,
			Trainer:        contact,
			BookedTrainees: roster(class.BookedTrainees),
		})
	}

	return out, nil
}

func (s *scheduleService) trainerSummaries(ctx context.Context, classes []model.Class) (map[uuid.UUID]model.TrainerSummary, error) {
	trainers, err := s.trainerRepo.FindByIDs(ctx, trainerIDs(classes))
	if err != nil {
		return nil, err
	}

	m := make(map[uuid.UUID]model.TrainerSummary, len(trainers))
	for _, t := range trainers {
		m[t.ID] = model.TrainerSummary{
			ID:      t.ID,
			Name:    t.Name,
			Subject: t.Subject,
			Avatar:  t.Avatar,
		}
	}
	return m, nil
}

func (s *scheduleService) trainerContacts(ctx context.Context, classes []model.Class) (map[uuid.UUID]model.TrainerContact, error) {
	trainers, err := s.trainerRepo.FindByIDs(ctx, trainerIDs(classes))
	if err != nil {
		return nil, err
	}

	m := make(map[uuid.UUID]model.TrainerContact, len(trainers))
	for _, t := range trainers {
		contact := model.TrainerContact{Name: t.Name, Email: UnknownTrainerEmail}
		if t.Email != nil && *t.Email != "" {
			contact.Email = *t.Email
		}
		m[t.ID] = contact
	}
	return m, nil
}

func trainerIDs(classes []model.Class) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(classes))
	var ids []uuid.UUID
	for _, class := range classes {
		if class.TrainerID == uuid.Nil {
			continue
		}
		if _, ok := seen[class.TrainerID]; !ok {
			seen[class.TrainerID] = struct{}{}
			ids = append(ids, class.TrainerID)
		}
	}
	return ids
}

func roster(ids pq.StringArray) pq.StringArray {
	if ids == nil {
		return pq.StringArray{}
	}
	return ids
}
