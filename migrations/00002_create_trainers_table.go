package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateTrainersTable, downCreateTrainersTable)
}

func upCreateTrainersTable(ctx context.Context, tx *sql.Tx) error {
	query := `
	CREATE TABLE trainers (
	  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	  avatar TEXT NOT NULL,
	  name TEXT NOT NULL,
	  role TEXT NOT NULL,
	  subject TEXT NOT NULL,
	  email TEXT,
	  description TEXT NOT NULL,
	  gender TEXT NOT NULL,
	  created_at TIMESTAMP WITH TIME ZONE DEFAULT now(),
	  updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
	);
	`

	_, err := tx.ExecContext(ctx, query)

	if err != nil {
		return err
	}

	return nil
}

func downCreateTrainersTable(ctx context.Context, tx *sql.Tx) error {
	query := `DROP TABLE IF EXISTS trainers;`
	_, err := tx.ExecContext(ctx, query)
	if err != nil {
		return err
	}
	return nil
}
