package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/merajfaizan/gym-management-backend/internal/model"
)

type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) (*model.Class, error)
	List(ctx context.Context) ([]model.Class, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error)
	AddTrainee(ctx context.Context, classID, userID uuid.UUID, capacity int) (bool, error)
	ListByTrainee(ctx context.Context, userID uuid.UUID) ([]model.Class, error)
}

type postgresClassRepository struct {
	db *sqlx.DB
}

func NewPostgresClassRepository(db *sqlx.DB) ClassRepository {
	return &postgresClassRepository{db: db}
}

const classColumns = `id, name, time, day, img, trainer_id, booked_trainees, created_at, updated_at`

func (r *postgresClassRepository) Create(ctx context.Context, class *model.Class) (*model.Class, error) {
	query := `
		INSERT INTO classes (name, time, day, img, trainer_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, booked_trainees, created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		class.Name, class.Time, class.Day, class.Img, class.TrainerID,
	)
	if err := row.Scan(&class.ID, &class.BookedTrainees, &class.CreatedAt, &class.UpdatedAt); err != nil {
		return nil, err
	}

	return class, nil
}

func (r *postgresClassRepository) List(ctx context.Context) ([]model.Class, error) {
	var classes []model.Class
	err := r.db.SelectContext(ctx, &classes, `SELECT `+classColumns+` FROM classes ORDER BY created_at`)
	if err != nil {
		return nil, err
	}

	if classes == nil {
		classes = []model.Class{}
	}
	return classes, nil
}

func (r *postgresClassRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Class, error) {
	var class model.Class
	err := r.db.GetContext(ctx, &class, `SELECT `+classColumns+` FROM classes WHERE id = $1`, id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &class, nil
}

// AddTrainee is the atomic conditional write the reservation engine rests
// on: membership check, capacity check and insert are evaluated in a
// single statement under the class row lock, so a concurrent writer that
// commits first invalidates the predicate before this one applies. Never
// split this into a read-then-write sequence.
func (r *postgresClassRepository) AddTrainee(ctx context.Context, classID, userID uuid.UUID, capacity int) (bool, error) {
	query := `
		UPDATE classes
		SET booked_trainees = booked_trainees || $2::uuid, updated_at = now()
		WHERE id = $1
		  AND NOT (booked_trainees @> ARRAY[$2::uuid])
		  AND cardinality(booked_trainees) < $3
	`
	res, err := r.db.ExecContext(ctx, query, classID, userID, capacity)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *postgresClassRepository) ListByTrainee(ctx context.Context, userID uuid.UUID) ([]model.Class, error) {
	var classes []model.Class
	query := `SELECT ` + classColumns + ` FROM classes WHERE booked_trainees @> ARRAY[$1::uuid] ORDER BY created_at`
	err := r.db.SelectContext(ctx, &classes, query, userID)
	if err != nil {
		return nil, err
	}

	if classes == nil {
		classes = []model.Class{}
	}
	return classes, nil
}
