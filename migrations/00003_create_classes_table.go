package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateClassesTable, downCreateClassesTable)
}

func upCreateClassesTable(ctx context.Context, tx *sql.Tx) error {
	// trainer_id carries no foreign key: the trainer reference is weak
	// and may dangle after a trainer is deleted. The CHECK is a backstop
	// for the roster limit enforced by the conditional reservation write.
	query := `
	CREATE TABLE classes (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  name TEXT NOT NULL,
	  time TEXT NOT NULL,
	  day TEXT NOT NULL,
	  img TEXT NOT NULL DEFAULT '',
	  trainer_id UUID NOT NULL,
	  booked_trainees UUID[] NOT NULL DEFAULT '{}',
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  CHECK (cardinality(booked_trainees) <= 10)
	);
	CREATE INDEX classes_booked_trainees_idx ON classes USING GIN (booked_trainees);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateClassesTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS classes;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
