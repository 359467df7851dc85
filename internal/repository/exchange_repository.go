package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/curriculum-backend/internal/model"
)

// ExchangeRepository handles outcome-exchange event data access.
type ExchangeRepository struct {
	pool *pgxpool.Pool
}

// NewExchangeRepository creates a new ExchangeRepository.
func NewExchangeRepository(pool *pgxpool.Pool) *ExchangeRepository {
	return &ExchangeRepository{pool: pool}
}

func (r *ExchangeRepository) GetByID(ctx context.Context, exchangeID string) (*model.Exchange, error) {
	e := &model.Exchange{}
	err := r.pool.QueryRow(ctx,
		`SELECT exchange_id, year, round, created_at, updated_at FROM exchanges WHERE exchange_id = $1`,
		exchangeID,
	).Scan(&e.ExchangeID, &e.Year, &e.Round, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return e, nil
}

func (r *ExchangeRepository) List(ctx context.Context, filter model.ExchangeFilter) ([]model.Exchange, error) {
	var where whereClause
	if filter.Year != 0 {
		where.add("year = ?", filter.Year)
	}
	if filter.Round != 0 {
		where.add("round = ?", filter.Round)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT exchange_id, year, round, created_at, updated_at
		 FROM exchanges`+where.String()+` ORDER BY year DESC, round ASC`,
		where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exchanges := []model.Exchange{}
	for rows.Next() {
		var e model.Exchange
		if err := rows.Scan(&e.ExchangeID, &e.Year, &e.Round, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		exchanges = append(exchanges, e)
	}
	return exchanges, rows.Err()
}

func (r *ExchangeRepository) Upsert(ctx context.Context, e *model.Exchange) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO exchanges (exchange_id, year, round)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (exchange_id) DO UPDATE SET
		     year = EXCLUDED.year,
		     round = EXCLUDED.round,
		     updated_at = CURRENT_TIMESTAMP
		 RETURNING created_at, updated_at`,
		e.ExchangeID, e.Year, e.Round,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
}

func (r *ExchangeRepository) Delete(ctx context.Context, exchangeID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM exchanges WHERE exchange_id = $1`, exchangeID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
