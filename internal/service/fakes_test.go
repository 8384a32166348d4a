package service_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/merajfaizan/gym-management-backend/internal/model"
)

var errNotFound = errors.New("not found")

// In-memory doubles for the repository and publisher interfaces. Each
// fake only implements the behavior the tests drive; unused paths stay
// trivial.

type fakeClassRepo struct {
	mu      sync.Mutex
	classes map[uuid.UUID]*model.Class

	addTraineeResult bool
	addTraineeErr    error
	findErr          error
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{classes: make(map[uuid.UUID]*model.Class)}
}

func (f *fakeClassRepo) put(class *model.Class) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.classes[class.ID] = class
}

func (f *fakeClassRepo) Create(ctx context.Context, class *model.Class) (*model.Class, error) {
	class.ID = uuid.New()
	f.put(class)
	return class, nil
}

func (f *fakeClassRepo) List(ctx context.Context) ([]model.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Class, 0, len(f.classes))
	for _, c := range f.classes {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeClassRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	class, ok := f.classes[id]
	if !ok {
		return nil, nil
	}
	copied := *class
	return &copied, nil
}

func (f *fakeClassRepo) AddTrainee(ctx context.Context, classID, userID uuid.UUID, capacity int) (bool, error) {
	return f.addTraineeResult, f.addTraineeErr
}

func (f *fakeClassRepo) ListByTrainee(ctx context.Context, userID uuid.UUID) ([]model.Class, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Class{}
	for _, c := range f.classes {
		for _, raw := range c.BookedTrainees {
			if raw == userID.String() {
				out = append(out, *c)
				break
			}
		}
	}
	return out, nil
}

type fakeTrainerRepo struct {
	trainers map[uuid.UUID]model.Trainer
}

func newFakeTrainerRepo() *fakeTrainerRepo {
	return &fakeTrainerRepo{trainers: make(map[uuid.UUID]model.Trainer)}
}

func (f *fakeTrainerRepo) Create(ctx context.Context, trainer *model.Trainer) (*model.Trainer, error) {
	trainer.ID = uuid.New()
	f.trainers[trainer.ID] = *trainer
	return trainer, nil
}

func (f *fakeTrainerRepo) List(ctx context.Context) ([]model.Trainer, error) {
	out := make([]model.Trainer, 0, len(f.trainers))
	for _, t := range f.trainers {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTrainerRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error) {
	t, ok := f.trainers[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (f *fakeTrainerRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Trainer, error) {
	out := []model.Trainer{}
	for _, id := range ids {
		if t, ok := f.trainers[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTrainerRepo) Update(ctx context.Context, trainer *model.Trainer) (bool, error) {
	if _, ok := f.trainers[trainer.ID]; !ok {
		return false, nil
	}
	f.trainers[trainer.ID] = *trainer
	return true, nil
}

func (f *fakeTrainerRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.trainers[id]; !ok {
		return false, nil
	}
	delete(f.trainers, id)
	return true, nil
}

type fakeUserRepo struct {
	users          map[uuid.UUID]model.User
	findByEmail    map[string]*model.User
	createErr      error
	findByEmailErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:       make(map[uuid.UUID]model.User),
		findByEmail: make(map[string]*model.User),
	}
}

func (f *fakeUserRepo) add(user model.User) {
	f.users[user.ID] = user
	f.findByEmail[user.Email] = &user
}

func (f *fakeUserRepo) Create(ctx context.Context, user *model.User) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	id := uuid.New()
	user.ID = id
	f.add(*user)
	return id, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if f.findByEmailErr != nil {
		return nil, f.findByEmailErr
	}
	user, ok := f.findByEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, errNotFound
	}
	return &user, nil
}

func (f *fakeUserRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	out := []model.User{}
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// fakePublisher records publishes so tests can wait on the async
// fire-and-forget goroutines.
type fakePublisher struct {
	mu        sync.Mutex
	scheduled []uuid.UUID
	reserved  []reservedEvent
}

type reservedEvent struct {
	classID uuid.UUID
	userID  uuid.UUID
}

func (f *fakePublisher) PublishClassScheduled(class *model.Class) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, class.ID)
	return nil
}

func (f *fakePublisher) PublishClassReserved(classID, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reserved = append(f.reserved, reservedEvent{classID: classID, userID: userID})
	return nil
}

func (f *fakePublisher) reservedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.reserved)
}

func (f *fakePublisher) scheduledCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.scheduled)
}
