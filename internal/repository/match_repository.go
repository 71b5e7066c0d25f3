package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ReeceWin/FounderMatchaV2/internal/database"
	"github.com/ReeceWin/FounderMatchaV2/internal/domain/match"
	"github.com/ReeceWin/FounderMatchaV2/internal/pkg/retry"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrMatchNotFound = errors.New("match not found")

type MatchRepository interface {
	Insert(ctx context.Context, rec match.Record) error
	AppendStatus(ctx context.Context, matchID uuid.UUID, entry match.StatusEntry) error
	GetByID(ctx context.Context, matchID uuid.UUID) (match.Record, error)
	FindByFounder(ctx context.Context, founderID string) ([]match.Record, error)
	FindByDeveloper(ctx context.Context, developerID string) ([]match.Record, error)
	FindByParticipant(ctx context.Context, participantID string) ([]match.Record, error)
}

type PostgresMatchRepository struct {
	db     database.DB
	policy retry.Policy
}

func NewPostgresMatchRepository(db database.DB, policy retry.Policy) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db, policy: policy}
}

const matchColumns = `match_id, created_at, founder_id, developer_id, initiated_by,
	scores, founder_snapshot, developer_snapshot, status, status_history`

func (r *PostgresMatchRepository) Insert(ctx context.Context, rec match.Record) error {
	scores, err := json.Marshal(rec.Scores)
	if err != nil {
		return err
	}
	founderSnap, err := json.Marshal(rec.FounderSnapshot)
	if err != nil {
		return err
	}
	developerSnap, err := json.Marshal(rec.DeveloperSnapshot)
	if err != nil {
		return err
	}
	history, err := json.Marshal(rec.StatusHistory)
	if err != nil {
		return err
	}

	return r.policy.Do(ctx, func() error {
		_, err := r.db.Exec(ctx,
			`INSERT INTO matches (`+matchColumns+`)
			 VALUES ($1,$2,$3,$4,$5,$6::jsonb,$7::jsonb,$8::jsonb,$9,$10::jsonb)`,
			rec.MatchID,
			rec.CreatedAt,
			rec.FounderID,
			rec.DeveloperID,
			rec.InitiatedBy,
			string(scores),
			string(founderSnap),
			string(developerSnap),
			rec.Status,
			string(history),
		)
		return err
	})
}

// AppendStatus sets the current status and appends the history entry in a
// single statement, so concurrent updates never lose an entry.
func (r *PostgresMatchRepository) AppendStatus(ctx context.Context, matchID uuid.UUID, entry match.StatusEntry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return r.policy.Do(ctx, func() error {
		n, err := r.db.Exec(ctx,
			`UPDATE matches
			 SET status = $2, status_history = status_history || $3::jsonb
			 WHERE match_id = $1`,
			matchID, entry.Status, string(raw),
		)
		if err != nil {
			return err
		}
		if n == 0 {
			return retry.Permanent(ErrMatchNotFound)
		}
		return nil
	})
}

func (r *PostgresMatchRepository) GetByID(ctx context.Context, matchID uuid.UUID) (match.Record, error) {
	var rec match.Record
	err := r.policy.Do(ctx, func() error {
		row := r.db.QueryRow(ctx,
			`SELECT `+matchColumns+` FROM matches WHERE match_id = $1`, matchID)
		got, err := scanMatch(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return retry.Permanent(ErrMatchNotFound)
		}
		if err != nil {
			return err
		}
		rec = got
		return nil
	})
	return rec, err
}

func (r *PostgresMatchRepository) FindByFounder(ctx context.Context, founderID string) ([]match.Record, error) {
	return r.find(ctx, `founder_id = $1`, founderID)
}

func (r *PostgresMatchRepository) FindByDeveloper(ctx context.Context, developerID string) ([]match.Record, error) {
	return r.find(ctx, `developer_id = $1`, developerID)
}

func (r *PostgresMatchRepository) FindByParticipant(ctx context.Context, participantID string) ([]match.Record, error) {
	return r.find(ctx, `founder_id = $1 OR developer_id = $1`, participantID)
}

func (r *PostgresMatchRepository) find(ctx context.Context, where string, arg any) ([]match.Record, error) {
	var out []match.Record
	err := r.policy.Do(ctx, func() error {
		rows, err := r.db.Query(ctx,
			`SELECT `+matchColumns+`
			 FROM matches
			 WHERE `+where+`
			 ORDER BY created_at DESC`,
			arg,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		got := make([]match.Record, 0)
		for rows.Next() {
			rec, err := scanMatch(rows)
			if err != nil {
				return err
			}
			got = append(got, rec)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		out = got
		return nil
	})
	return out, err
}

func scanMatch(row database.Row) (match.Record, error) {
	var (
		rec           match.Record
		scores        []byte
		founderSnap   []byte
		developerSnap []byte
		history       []byte
	)
	err := row.Scan(
		&rec.MatchID, &rec.CreatedAt, &rec.FounderID, &rec.DeveloperID,
		&rec.InitiatedBy, &scores, &founderSnap, &developerSnap,
		&rec.Status, &history,
	)
	if err != nil {
		return match.Record{}, err
	}

	if err := json.Unmarshal(scores, &rec.Scores); err != nil {
		return match.Record{}, err
	}
	if err := json.Unmarshal(founderSnap, &rec.FounderSnapshot); err != nil {
		return match.Record{}, err
	}
	if err := json.Unmarshal(developerSnap, &rec.DeveloperSnapshot); err != nil {
		return match.Record{}, err
	}
	if err := json.Unmarshal(history, &rec.StatusHistory); err != nil {
		return match.Record{}, err
	}
	return rec, nil
}
