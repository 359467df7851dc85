// Package sqlitestore keeps curriculum records in a single SQLite file and
// answers the eligibility aggregate queries over it.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/stemsi/curriculum-backend/internal/database"
	"github.com/stemsi/curriculum-backend/internal/eligibility"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/repository"
)

var _ eligibility.Repository = (*Store)(nil)

// Store is a SQLite-backed curriculum store.
type Store struct {
	db *sql.DB
}

// New wraps an already migrated database.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open opens the database at path and applies the schema.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := database.OpenSQLite(path, log)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating %s: %w", path, err)
	}
	return New(db), nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// translate maps SQLite constraint failures onto the repository sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	if strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
		return repository.ErrUnknownReference
	}
	return err
}

// ─── Records ────────────────────────────────────────────────────────────────

// UpsertStudent registers a student or replaces the attributes of an existing
// one. Linked records are kept.
func (s *Store) UpsertStudent(ctx context.Context, st *model.Student) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO students (student_id, name, admission_year, degree_program, major, email, phone)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(student_id) DO UPDATE SET
		     name = excluded.name,
		     admission_year = excluded.admission_year,
		     degree_program = excluded.degree_program,
		     major = excluded.major,
		     email = excluded.email,
		     phone = excluded.phone`,
		st.StudentID, st.Name, st.AdmissionYear, string(st.DegreeProgram), st.Major, st.Email, st.Phone)
	if err != nil {
		return fmt.Errorf("upserting student: %w", err)
	}
	return nil
}

// GetStudent returns the student with the given ID.
func (s *Store) GetStudent(ctx context.Context, studentID string) (*model.Student, error) {
	st := &model.Student{}
	var degree string
	err := s.db.QueryRowContext(ctx,
		`SELECT student_id, name, admission_year, degree_program, major, email, phone
		 FROM students WHERE student_id = ?`, studentID,
	).Scan(&st.StudentID, &st.Name, &st.AdmissionYear, &degree, &st.Major, &st.Email, &st.Phone)
	if err != nil {
		return nil, translate(err)
	}
	st.DegreeProgram = model.DegreeProgram(degree)
	return st, nil
}

func (s *Store) UpsertCourse(ctx context.Context, c *model.Course) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO courses (course_id, course_name, credit, year, semester, is_required)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(course_id) DO UPDATE SET
		     course_name = excluded.course_name,
		     credit = excluded.credit,
		     year = excluded.year,
		     semester = excluded.semester,
		     is_required = excluded.is_required`,
		c.CourseID, c.CourseName, c.Credit, c.Year, string(c.Semester), c.IsRequired)
	if err != nil {
		return fmt.Errorf("upserting course: %w", err)
	}
	return nil
}

func (s *Store) UpsertProgram(ctx context.Context, p *model.Program) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO programs (program_id, program_name, year, semester)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(program_id) DO UPDATE SET
		     program_name = excluded.program_name,
		     year = excluded.year,
		     semester = excluded.semester`,
		p.ProgramID, p.ProgramName, p.Year, string(p.Semester))
	if err != nil {
		return fmt.Errorf("upserting program: %w", err)
	}
	return nil
}

func (s *Store) UpsertExchange(ctx context.Context, e *model.Exchange) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO exchanges (exchange_id, year, round)
		 VALUES (?, ?, ?)
		 ON CONFLICT(exchange_id) DO UPDATE SET
		     year = excluded.year,
		     round = excluded.round`,
		e.ExchangeID, e.Year, e.Round)
	if err != nil {
		return fmt.Errorf("upserting exchange: %w", err)
	}
	return nil
}

// AddEnrollment records a completed course and returns the new row ID.
func (s *Store) AddEnrollment(ctx context.Context, studentID, courseID string, grade *string) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO enrollments (student_id, course_id, grade) VALUES (?, ?, ?)`,
		studentID, courseID, grade)
}

// AddParticipation records a program participation and returns the new row ID.
func (s *Store) AddParticipation(ctx context.Context, studentID, programID string) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO program_participations (student_id, program_id) VALUES (?, ?)`,
		studentID, programID)
}

// AddAttendance records an exchange attendance and returns the new row ID.
func (s *Store) AddAttendance(ctx context.Context, studentID, exchangeID string) (int64, error) {
	return s.insert(ctx,
		`INSERT INTO exchange_attendances (student_id, exchange_id) VALUES (?, ?)`,
		studentID, exchangeID)
}

func (s *Store) insert(ctx context.Context, query string, args ...interface{}) (int64, error) {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translate(err)
	}
	return res.LastInsertId()
}

// ─── Eligibility aggregates ─────────────────────────────────────────────────

func (s *Store) SumCompletedCredit(ctx context.Context, studentID string) (int64, error) {
	return s.scalar(ctx,
		`SELECT COALESCE(SUM(c.credit), 0)
		 FROM enrollments e
		 JOIN courses c ON c.course_id = e.course_id
		 WHERE e.student_id = ?`, studentID)
}

func (s *Store) CountCompletedRequiredCourses(ctx context.Context, studentID string) (int64, error) {
	return s.scalar(ctx,
		`SELECT COUNT(*)
		 FROM enrollments e
		 JOIN courses c ON c.course_id = e.course_id
		 WHERE e.student_id = ? AND c.is_required = 1`, studentID)
}

func (s *Store) CountProgramParticipations(ctx context.Context, studentID string) (int64, error) {
	return s.scalar(ctx,
		`SELECT COUNT(*) FROM program_participations WHERE student_id = ?`, studentID)
}

func (s *Store) CountExchangeAttendances(ctx context.Context, studentID string) (int64, error) {
	return s.scalar(ctx,
		`SELECT COUNT(*) FROM exchange_attendances WHERE student_id = ?`, studentID)
}

func (s *Store) scalar(ctx context.Context, query, studentID string) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, query, studentID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
