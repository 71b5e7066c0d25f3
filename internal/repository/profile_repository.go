package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ReeceWin/FounderMatchaV2/internal/database"
	"github.com/ReeceWin/FounderMatchaV2/internal/domain/profile"
	"github.com/ReeceWin/FounderMatchaV2/internal/pkg/retry"

	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (profile.Profile, error)
	ListByRole(ctx context.Context, role profile.Role, limit int, afterID string) ([]profile.Profile, error)
	UpdateWorkStyles(ctx context.Context, id string, styles []string) error
}

type PostgresProfileRepository struct {
	db     database.DB
	policy retry.Policy
}

func NewPostgresProfileRepository(db database.DB, policy retry.Policy) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db, policy: policy}
}

const profileColumns = `id, name, role, about, long_description,
	skills, industries, degrees, companies, admired_figures, hobbies,
	work_styles, traits`

func (r *PostgresProfileRepository) GetByID(ctx context.Context, id string) (profile.Profile, error) {
	var p profile.Profile
	err := r.policy.Do(ctx, func() error {
		row := r.db.QueryRow(ctx,
			`SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
		got, err := scanProfile(row)
		if errors.Is(err, pgx.ErrNoRows) {
			return retry.Permanent(ErrProfileNotFound)
		}
		if err != nil {
			return err
		}
		p = got
		return nil
	})
	return p, err
}

func (r *PostgresProfileRepository) ListByRole(ctx context.Context, role profile.Role, limit int, afterID string) ([]profile.Profile, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	var out []profile.Profile
	err := r.policy.Do(ctx, func() error {
		rows, err := r.db.Query(ctx,
			`SELECT `+profileColumns+`
			 FROM profiles
			 WHERE role = $1 AND id > $2
			 ORDER BY id ASC
			 LIMIT $3`,
			string(role), afterID, limit,
		)
		if err != nil {
			return err
		}
		defer rows.Close()

		got := make([]profile.Profile, 0)
		for rows.Next() {
			p, err := scanProfile(rows)
			if err != nil {
				return err
			}
			got = append(got, p)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		out = got
		return nil
	})
	return out, err
}

func (r *PostgresProfileRepository) UpdateWorkStyles(ctx context.Context, id string, styles []string) error {
	raw, err := json.Marshal(styles)
	if err != nil {
		return err
	}
	return r.policy.Do(ctx, func() error {
		n, err := r.db.Exec(ctx,
			`UPDATE profiles
			 SET work_styles = $2::jsonb, updated_at = now()
			 WHERE id = $1`,
			id, string(raw),
		)
		if err != nil {
			return err
		}
		if n == 0 {
			return retry.Permanent(ErrProfileNotFound)
		}
		return nil
	})
}

func scanProfile(row database.Row) (profile.Profile, error) {
	var (
		p         profile.Profile
		role      string
		rawTraits []byte
		rawLists  = make([][]byte, 7)
	)
	err := row.Scan(
		&p.ID, &p.Name, &role, &p.About, &p.LongDescription,
		&rawLists[0], &rawLists[1], &rawLists[2], &rawLists[3],
		&rawLists[4], &rawLists[5], &rawLists[6],
		&rawTraits,
	)
	if err != nil {
		return profile.Profile{}, err
	}

	parsedRole, err := profile.ParseRole(role)
	if err != nil {
		return profile.Profile{}, err
	}
	p.Role = parsedRole

	targets := []*[]string{
		&p.Skills, &p.Industries, &p.Degrees, &p.Companies,
		&p.AdmiredFigures, &p.Hobbies, &p.WorkStyles,
	}
	for i, raw := range rawLists {
		if len(raw) == 0 {
			continue
		}
		if err := json.Unmarshal(raw, targets[i]); err != nil {
			return profile.Profile{}, err
		}
	}

	if len(rawTraits) > 0 {
		var loose map[string]any
		if err := json.Unmarshal(rawTraits, &loose); err != nil {
			return profile.Profile{}, err
		}
		traits, err := profile.ParseTraits(loose)
		if err != nil {
			return profile.Profile{}, err
		}
		p.Traits = traits
	}

	return p, nil
}
