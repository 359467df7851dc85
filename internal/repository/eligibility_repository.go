package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/curriculum-backend/internal/eligibility"
)

var _ eligibility.Repository = (*EligibilityRepository)(nil)

// EligibilityRepository answers the four aggregate questions the eligibility
// evaluator asks. Each method is a single read-only query and yields 0 when
// the student has no matching rows, including when the student is unknown.
type EligibilityRepository struct {
	pool *pgxpool.Pool
}

// NewEligibilityRepository creates a new EligibilityRepository.
func NewEligibilityRepository(pool *pgxpool.Pool) *EligibilityRepository {
	return &EligibilityRepository{pool: pool}
}

// SumCompletedCredit sums course credit over every enrollment of the student.
// Enrollments whose course no longer exists drop out of the join.
func (r *EligibilityRepository) SumCompletedCredit(ctx context.Context, studentID string) (int64, error) {
	return r.scalar(ctx,
		`SELECT COALESCE(SUM(c.credit), 0)
		 FROM enrollments e
		 JOIN courses c ON c.course_id = e.course_id
		 WHERE e.student_id = $1`, studentID)
}

// CountCompletedRequiredCourses counts enrollment rows whose course is required.
func (r *EligibilityRepository) CountCompletedRequiredCourses(ctx context.Context, studentID string) (int64, error) {
	return r.scalar(ctx,
		`SELECT COUNT(*)
		 FROM enrollments e
		 JOIN courses c ON c.course_id = e.course_id
		 WHERE e.student_id = $1 AND c.is_required`, studentID)
}

func (r *EligibilityRepository) CountProgramParticipations(ctx context.Context, studentID string) (int64, error) {
	return r.scalar(ctx,
		`SELECT COUNT(*) FROM program_participations WHERE student_id = $1`, studentID)
}

func (r *EligibilityRepository) CountExchangeAttendances(ctx context.Context, studentID string) (int64, error) {
	return r.scalar(ctx,
		`SELECT COUNT(*) FROM exchange_attendances WHERE student_id = $1`, studentID)
}

func (r *EligibilityRepository) scalar(ctx context.Context, query, studentID string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query, studentID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
