package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/curriculum-backend/internal/model"
)

const courseColumns = `course_id, course_name, credit, year, semester, is_required, created_at, updated_at`

// CourseRepository handles course data access.
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

func scanCourse(row pgx.Row, c *model.Course) error {
	return row.Scan(&c.CourseID, &c.CourseName, &c.Credit, &c.Year, &c.Semester, &c.IsRequired, &c.CreatedAt, &c.UpdatedAt)
}

// GetByID retrieves a course by its course ID.
func (r *CourseRepository) GetByID(ctx context.Context, courseID string) (*model.Course, error) {
	c := &model.Course{}
	err := scanCourse(r.pool.QueryRow(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE course_id = $1`, courseID), c)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

// List retrieves courses matching filter, newest year first.
func (r *CourseRepository) List(ctx context.Context, filter model.CourseFilter) ([]model.Course, error) {
	var where whereClause
	if filter.Year != 0 {
		where.add("year = ?", filter.Year)
	}
	if filter.Semester != "" {
		where.add("semester = ?", filter.Semester)
	}
	if filter.IsRequired != nil {
		where.add("is_required = ?", *filter.IsRequired)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+courseColumns+` FROM courses`+where.String()+` ORDER BY year DESC, course_id ASC`,
		where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := []model.Course{}
	for rows.Next() {
		var c model.Course
		if err := scanCourse(rows, &c); err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

// Upsert registers a course or replaces an existing one with the same ID.
func (r *CourseRepository) Upsert(ctx context.Context, c *model.Course) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO courses (course_id, course_name, credit, year, semester, is_required)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (course_id) DO UPDATE SET
		     course_name = EXCLUDED.course_name,
		     credit = EXCLUDED.credit,
		     year = EXCLUDED.year,
		     semester = EXCLUDED.semester,
		     is_required = EXCLUDED.is_required,
		     updated_at = CURRENT_TIMESTAMP
		 RETURNING created_at, updated_at`,
		c.CourseID, c.CourseName, c.Credit, c.Year, c.Semester, c.IsRequired,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
}

// Delete removes a course and the enrollments that reference it.
func (r *CourseRepository) Delete(ctx context.Context, courseID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE course_id = $1`, courseID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
