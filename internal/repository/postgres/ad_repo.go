package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"tradenomi-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type adRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewAdRepository(db *pgxpool.Pool, timeout time.Duration) domain.AdRepository {
	return &adRepo{db: db, timeout: timeout}
}

const adWithAuthorSelect = `
		SELECT
			a.id, a.user_id, COALESCE(a.data, '{}'::jsonb)::text, a.created_at,
			COALESCE(u.data->>'name', '') AS author_name,
			COALESCE(u.data->>'title', '') AS author_title,
			(SELECT COUNT(*) FROM answers an WHERE an.ad_id = a.id) AS answer_count
		FROM ads a
		LEFT JOIN users u ON a.user_id = u.id`

func (r *adRepo) Create(ctx context.Context, ad *domain.Ad) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	data, err := json.Marshal(ad.Data)
	if err != nil {
		return err
	}
	query := `INSERT INTO ads (user_id, data, created_at) VALUES ($1, $2::jsonb, $3) RETURNING id`
	return r.db.QueryRow(ctx, query, ad.UserID, string(data), ad.CreatedAt).Scan(&ad.ID)
}

func (r *adRepo) GetByID(ctx context.Context, id int64) (*domain.AdWithAuthor, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	ad, err := scanAd(r.db.QueryRow(ctx, adWithAuthorSelect+` WHERE a.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ad, nil
}

func (r *adRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.AdWithAuthor, int64, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, adWithAuthorSelect+` ORDER BY a.created_at DESC, a.id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	ads, err := collectAds(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM ads`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return ads, total, nil
}

func (r *adRepo) FetchByUserID(ctx context.Context, userID int64) ([]domain.AdWithAuthor, error) {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, adWithAuthorSelect+` WHERE a.user_id = $1 ORDER BY a.created_at DESC, a.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	return collectAds(rows)
}

func (r *adRepo) CreateAnswer(ctx context.Context, answer *domain.Answer) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	query := `INSERT INTO answers (ad_id, user_id, message, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query, answer.AdID, answer.UserID, answer.Message, answer.CreatedAt).Scan(&answer.ID)
}

func collectAds(rows pgx.Rows) ([]domain.AdWithAuthor, error) {
	defer rows.Close()

	ads := []domain.AdWithAuthor{}
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, err
		}
		ads = append(ads, *ad)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ads, nil
}

func scanAd(row pgx.Row) (*domain.AdWithAuthor, error) {
	var (
		ad       domain.AdWithAuthor
		dataJSON string
	)
	if err := row.Scan(
		&ad.ID, &ad.UserID, &dataJSON, &ad.CreatedAt,
		&ad.AuthorName, &ad.AuthorTitle, &ad.AnswerCount,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(dataJSON), &ad.Data); err != nil {
		return nil, fmt.Errorf("decode data of ad %d: %w", ad.ID, err)
	}
	return &ad, nil
}
