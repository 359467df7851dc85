package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/curriculum-backend/internal/model"
)

// ProgramRepository handles co-curricular program data access.
type ProgramRepository struct {
	pool *pgxpool.Pool
}

// NewProgramRepository creates a new ProgramRepository.
func NewProgramRepository(pool *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{pool: pool}
}

func (r *ProgramRepository) GetByID(ctx context.Context, programID string) (*model.Program, error) {
	p := &model.Program{}
	err := r.pool.QueryRow(ctx,
		`SELECT program_id, program_name, year, semester, created_at, updated_at
		 FROM programs WHERE program_id = $1`, programID,
	).Scan(&p.ProgramID, &p.ProgramName, &p.Year, &p.Semester, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return p, nil
}

func (r *ProgramRepository) List(ctx context.Context, filter model.ProgramFilter) ([]model.Program, error) {
	var where whereClause
	if filter.Year != 0 {
		where.add("year = ?", filter.Year)
	}
	if filter.Semester != "" {
		where.add("semester = ?", filter.Semester)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT program_id, program_name, year, semester, created_at, updated_at
		 FROM programs`+where.String()+` ORDER BY year DESC, program_id ASC`,
		where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	programs := []model.Program{}
	for rows.Next() {
		var p model.Program
		if err := rows.Scan(&p.ProgramID, &p.ProgramName, &p.Year, &p.Semester, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

func (r *ProgramRepository) Upsert(ctx context.Context, p *model.Program) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO programs (program_id, program_name, year, semester)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (program_id) DO UPDATE SET
		     program_name = EXCLUDED.program_name,
		     year = EXCLUDED.year,
		     semester = EXCLUDED.semester,
		     updated_at = CURRENT_TIMESTAMP
		 RETURNING created_at, updated_at`,
		p.ProgramID, p.ProgramName, p.Year, p.Semester,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *ProgramRepository) Delete(ctx context.Context, programID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM programs WHERE program_id = $1`, programID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
