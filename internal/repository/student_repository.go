package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/curriculum-backend/internal/model"
)

const studentColumns = `student_id, name, admission_year, degree_program, major, email, phone, created_at, updated_at`

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func scanStudent(row pgx.Row, s *model.Student) error {
	return row.Scan(&s.StudentID, &s.Name, &s.AdmissionYear, &s.DegreeProgram, &s.Major, &s.Email, &s.Phone, &s.CreatedAt, &s.UpdatedAt)
}

// GetByID retrieves a student by their student ID.
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*model.Student, error) {
	s := &model.Student{}
	err := scanStudent(r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE student_id = $1`, studentID), s)
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

// ListPaginated retrieves students matching filter, ordered by student ID.
func (r *StudentRepository) ListPaginated(ctx context.Context, filter model.StudentFilter, limit, offset int) ([]model.Student, int, error) {
	var where whereClause
	if filter.NameContains != "" {
		where.add("name ILIKE ?", containsPattern(filter.NameContains))
	}
	if filter.AdmissionYear != 0 {
		where.add("admission_year = ?", filter.AdmissionYear)
	}
	if filter.DegreeProgram != "" {
		where.add("degree_program = ?", filter.DegreeProgram)
	}
	if filter.Major != "" {
		where.add("major = ?", filter.Major)
	}
	cond := where.String()

	// 1. Get total count
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM students`+cond, where.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	// 2. Get paginated data
	query := `SELECT ` + studentColumns + ` FROM students` + cond +
		` ORDER BY student_id LIMIT ` + where.next(limit) + ` OFFSET ` + where.next(offset)

	rows, err := r.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, total, rows.Err()
}

// Upsert registers a student or replaces the stored attributes of an
// existing one with the same student ID.
func (r *StudentRepository) Upsert(ctx context.Context, s *model.Student) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO students (student_id, name, admission_year, degree_program, major, email, phone)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (student_id) DO UPDATE SET
		     name = EXCLUDED.name,
		     admission_year = EXCLUDED.admission_year,
		     degree_program = EXCLUDED.degree_program,
		     major = EXCLUDED.major,
		     email = EXCLUDED.email,
		     phone = EXCLUDED.phone,
		     updated_at = CURRENT_TIMESTAMP
		 RETURNING created_at, updated_at`,
		s.StudentID, s.Name, s.AdmissionYear, s.DegreeProgram, s.Major, s.Email, s.Phone,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
}

// Delete removes a student and, through cascading keys, their records.
func (r *StudentRepository) Delete(ctx context.Context, studentID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, studentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
