package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/ReeceWin/FounderMatchaV2/internal/database"
)

const lockKey = 812440372

var statements = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL DEFAULT '',
		role           TEXT NOT NULL,
		about          TEXT NOT NULL DEFAULT '',
		long_description TEXT NOT NULL DEFAULT '',
		skills         JSONB NOT NULL DEFAULT '[]'::jsonb,
		industries     JSONB NOT NULL DEFAULT '[]'::jsonb,
		degrees        JSONB NOT NULL DEFAULT '[]'::jsonb,
		companies      JSONB NOT NULL DEFAULT '[]'::jsonb,
		admired_figures JSONB NOT NULL DEFAULT '[]'::jsonb,
		hobbies        JSONB NOT NULL DEFAULT '[]'::jsonb,
		work_styles    JSONB NOT NULL DEFAULT '[]'::jsonb,
		traits         JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_profiles_role ON profiles (role)`,
	`CREATE TABLE IF NOT EXISTS matches (
		match_id       UUID PRIMARY KEY,
		created_at     TIMESTAMPTZ NOT NULL,
		founder_id     TEXT NOT NULL,
		developer_id   TEXT NOT NULL,
		initiated_by   TEXT NOT NULL,
		scores         JSONB NOT NULL,
		founder_snapshot   JSONB NOT NULL,
		developer_snapshot JSONB NOT NULL,
		status         TEXT NOT NULL,
		status_history JSONB NOT NULL DEFAULT '[]'::jsonb
	)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_founder ON matches (founder_id)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_developer ON matches (developer_id)`,
}

type Runner struct{}

// Run applies the schema. Every statement is idempotent, so running at
// each startup is safe; an advisory lock keeps concurrent replicas from
// racing on DDL.
func (Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	if _, err := db.Exec(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return fmt.Errorf("acquire migration lock: %w", err)
	}
	defer func() {
		_, _ = db.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
	}()

	for i, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
