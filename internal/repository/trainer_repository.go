package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/merajfaizan/gym-management-backend/internal/model"
)

type TrainerRepository interface {
	Create(ctx context.Context, trainer *model.Trainer) (*model.Trainer, error)
	List(ctx context.Context) ([]model.Trainer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Trainer, error)
	Update(ctx context.Context, trainer *model.Trainer) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type postgresTrainerRepository struct {
	db *sqlx.DB
}

func NewPostgresTrainerRepository(db *sqlx.DB) TrainerRepository {
	return &postgresTrainerRepository{db: db}
}

func (r *postgresTrainerRepository) Create(ctx context.Context, trainer *model.Trainer) (*model.Trainer, error) {
	query := `
		INSERT INTO trainers (avatar, name, role, subject, email, description, gender)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	row := r.db.QueryRowxContext(ctx, query,
		trainer.Avatar, trainer.Name, trainer.Role, trainer.Subject,
		trainer.Email, trainer.Description, trainer.Gender,
	)
	if err := row.Scan(&trainer.ID, &trainer.CreatedAt, &trainer.UpdatedAt); err != nil {
		return nil, err
	}

	return trainer, nil
}

func (r *postgresTrainerRepository) List(ctx context.Context) ([]model.Trainer, error) {
	var trainers []model.Trainer
	query := `SELECT id, avatar, name, role, subject, email, description, gender, created_at, updated_at FROM trainers ORDER BY created_at`
	err := r.db.SelectContext(ctx, &trainers, query)
	if err != nil {
		return nil, err
	}

	if trainers == nil {
		trainers = []model.Trainer{}
	}
	return trainers, nil
}

// FindByID returns (nil, nil) when the trainer does not exist so callers
// can distinguish absence from store failure.
func (r *postgresTrainerRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Trainer, error) {
	var trainer model.Trainer
	query := `SELECT id, avatar, name, role, subject, email, description, gender, created_at, updated_at FROM trainers WHERE id = $1`
	err := r.db.GetContext(ctx, &trainer, query, id)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &trainer, nil
}

func (r *postgresTrainerRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Trainer, error) {
	if len(ids) == 0 {
		return []model.Trainer{}, nil
	}

	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}

	var trainers []model.Trainer
	query := `SELECT id, avatar, name, role, subject, email, description, gender, created_at, updated_at FROM trainers WHERE id = ANY($1::uuid[])`
	err := r.db.SelectContext(ctx, &trainers, query, pq.Array(strs))
	if err != nil {
		return nil, err
	}

	if trainers == nil {
		trainers = []model.Trainer{}
	}
	return trainers, nil
}

func (r *postgresTrainerRepository) Update(ctx context.Context, trainer *model.Trainer) (bool, error) {
	query := `
		UPDATE trainers
		SET avatar = $1, name = $2, role = $3, subject = $4, email = $5, description = $6, gender = $7, updated_at = now()
		WHERE id = $8
	`
	res, err := r.db.ExecContext(ctx, query,
		trainer.Avatar, trainer.Name, trainer.Role, trainer.Subject,
		trainer.Email, trainer.Description, trainer.Gender, trainer.ID,
	)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *postgresTrainerRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trainers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
