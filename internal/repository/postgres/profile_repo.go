package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tradenomi-backend/internal/domain"
	"tradenomi-backend/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const profileColumns = `id, remote_id, COALESCE(data, '{}'::jsonb)::text, COALESCE(settings, '{}'::jsonb)::text, modified_at`

type profileRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

// NewProfileRepository reads and patches the users table. Every call runs
// under timeout.
func NewProfileRepository(db *pgxpool.Pool, timeout time.Duration) domain.ProfileRepository {
	return &profileRepo{db: db, timeout: timeout}
}

func (r *profileRepo) Fetch(ctx context.Context, filter domain.ProfileFilter, limit *int, offset int) ([]domain.Profile, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !filter.IncludeInactive {
		where = append(where, `COALESCE(data->'inactive', 'false'::jsonb) <> 'true'::jsonb`)
	}
	if len(filter.Categories) > 0 {
		where = append(where, `data->>'domain' = ANY(`+arg(pq.Array(filter.Categories))+`::text[])`)
	}
	if filter.Title != "" {
		where = append(where, `data->>'title' = `+arg(filter.Title))
	}
	if filter.Municipality != "" {
		where = append(where, `data->>'location' = `+arg(filter.Municipality))
	}

	query := `SELECT ` + profileColumns + ` FROM users`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, ` AND `)
	}
	query += ` ORDER BY modified_at DESC, id ASC`
	if limit != nil {
		query += ` LIMIT ` + arg(*limit)
	}
	if offset > 0 {
		query += ` OFFSET ` + arg(offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}

func (r *profileRepo) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + profileColumns + ` FROM users WHERE id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepo) MergeData(ctx context.Context, id int64, patch []byte) (*domain.Profile, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `UPDATE users SET data = COALESCE(data, '{}'::jsonb) || $2::jsonb, modified_at = NOW()
              WHERE id = $1 RETURNING ` + profileColumns
	return r.updateReturning(ctx, query, id, patch)
}

func (r *profileRepo) MergeSettings(ctx context.Context, id int64, patch []byte) (*domain.Profile, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `UPDATE users SET settings = COALESCE(settings, '{}'::jsonb) || $2::jsonb
              WHERE id = $1 RETURNING ` + profileColumns
	return r.updateReturning(ctx, query, id, patch)
}

func (r *profileRepo) updateReturning(ctx context.Context, query string, id int64, patch []byte) (*domain.Profile, error) {
	// Sent as text: under the simple protocol a []byte argument would be
	// encoded as bytea.
	p, err := scanProfile(r.db.QueryRow(ctx, query, id, string(patch)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *profileRepo) FetchByIDs(ctx context.Context, ids []int64) ([]domain.Profile, error) {
	if len(ids) == 0 {
		return []domain.Profile{}, nil
	}
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + profileColumns + ` FROM users WHERE id = ANY($1::bigint[]) ORDER BY id`
	rows, err := r.db.Query(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}

func (r *profileRepo) FetchSubscribers(ctx context.Context, setting string) ([]domain.Profile, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `SELECT ` + profileColumns + ` FROM users
              WHERE COALESCE(settings->$1::text, 'true'::jsonb) <> 'false'::jsonb
                AND COALESCE(settings->>'email_address', '') <> ''
              ORDER BY id`
	rows, err := r.db.Query(ctx, query, setting)
	if err != nil {
		return nil, err
	}
	return collectProfiles(rows)
}

func collectProfiles(rows pgx.Rows) ([]domain.Profile, error) {
	defer rows.Close()

	profiles := []domain.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return profiles, nil
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		p                    domain.Profile
		dataJSON, settingsJS string
	)
	if err := row.Scan(&p.ID, &p.RemoteID, &dataJSON, &settingsJS, &p.ModifiedAt); err != nil {
		return nil, err
	}

	data, mistyped, err := domain.DecodeProfileData([]byte(dataJSON))
	if err != nil {
		return nil, fmt.Errorf("decode data of user %d: %w", p.ID, err)
	}
	if len(mistyped) > 0 {
		logger.Log.Warn("Ignoring mistyped profile keys", "user_id", p.ID, "keys", mistyped)
	}
	p.Data = data

	settings, mistyped, err := domain.DecodeSettings([]byte(settingsJS))
	if err != nil {
		return nil, fmt.Errorf("decode settings of user %d: %w", p.ID, err)
	}
	if len(mistyped) > 0 {
		logger.Log.Warn("Ignoring mistyped settings keys", "user_id", p.ID, "keys", mistyped)
	}
	p.Settings = settings
	return &p, nil
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
