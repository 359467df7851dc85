package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/curriculum-backend/internal/model"
)

// RecordRepository handles the link rows that tie a student to completed
// courses, program participations and exchange attendances. Duplicate rows
// are accepted on purpose; every row counts towards eligibility.
type RecordRepository struct {
	pool *pgxpool.Pool
}

// NewRecordRepository creates a new RecordRepository.
func NewRecordRepository(pool *pgxpool.Pool) *RecordRepository {
	return &RecordRepository{pool: pool}
}

// ─── Enrollments ────────────────────────────────────────────────────────────

// AddEnrollment records a completed course and returns the new row ID.
func (r *RecordRepository) AddEnrollment(ctx context.Context, e *model.Enrollment) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO enrollments (student_id, course_id, grade)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		e.StudentID, e.CourseID, e.Grade,
	).Scan(&e.ID, &e.CreatedAt)
	return translate(err)
}

// ListEnrollmentsByStudent returns every enrollment row of a student.
func (r *RecordRepository) ListEnrollmentsByStudent(ctx context.Context, studentID string) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_id, course_id, grade, created_at
		 FROM enrollments WHERE student_id = $1 ORDER BY id`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Enrollment{}
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.StudentID, &e.CourseID, &e.Grade, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// DeleteEnrollment removes a single enrollment row.
func (r *RecordRepository) DeleteEnrollment(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, `DELETE FROM enrollments WHERE id = $1`, id)
}

// ─── Program participations ─────────────────────────────────────────────────

func (r *RecordRepository) AddParticipation(ctx context.Context, p *model.ProgramParticipation) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO program_participations (student_id, program_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		p.StudentID, p.ProgramID,
	).Scan(&p.ID, &p.CreatedAt)
	return translate(err)
}

func (r *RecordRepository) ListParticipationsByStudent(ctx context.Context, studentID string) ([]model.ProgramParticipation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_id, program_id, created_at
		 FROM program_participations WHERE student_id = $1 ORDER BY id`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ProgramParticipation{}
	for rows.Next() {
		var p model.ProgramParticipation
		if err := rows.Scan(&p.ID, &p.StudentID, &p.ProgramID, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *RecordRepository) DeleteParticipation(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, `DELETE FROM program_participations WHERE id = $1`, id)
}

// ─── Exchange attendances ───────────────────────────────────────────────────

func (r *RecordRepository) AddAttendance(ctx context.Context, a *model.ExchangeAttendance) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO exchange_attendances (student_id, exchange_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		a.StudentID, a.ExchangeID,
	).Scan(&a.ID, &a.CreatedAt)
	return translate(err)
}

func (r *RecordRepository) ListAttendancesByStudent(ctx context.Context, studentID string) ([]model.ExchangeAttendance, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, student_id, exchange_id, created_at
		 FROM exchange_attendances WHERE student_id = $1 ORDER BY id`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ExchangeAttendance{}
	for rows.Next() {
		var a model.ExchangeAttendance
		if err := rows.Scan(&a.ID, &a.StudentID, &a.ExchangeID, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *RecordRepository) DeleteAttendance(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, `DELETE FROM exchange_attendances WHERE id = $1`, id)
}

func (r *RecordRepository) deleteByID(ctx context.Context, query string, id int64) error {
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
