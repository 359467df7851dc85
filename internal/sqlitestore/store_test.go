package sqlitestore

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/curriculum-backend/internal/eligibility"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedStudent(t *testing.T, s *Store, id string) {
	t.Helper()
	require.NoError(t, s.UpsertStudent(context.Background(), &model.Student{
		StudentID:     id,
		Name:          "Student " + id,
		AdmissionYear: 2022,
		DegreeProgram: model.DegreeBachelor,
		Major:         "Physics",
	}))
}

func seedCourse(t *testing.T, s *Store, id string, credit int, required bool) {
	t.Helper()
	require.NoError(t, s.UpsertCourse(context.Background(), &model.Course{
		CourseID:   id,
		CourseName: "Course " + id,
		Credit:     credit,
		Year:       2023,
		Semester:   model.SemesterFirst,
		IsRequired: required,
	}))
}

func TestStore_EmptyStudentEvaluatesToZero(t *testing.T) {
	s := newTestStore(t)

	res, err := eligibility.NewEvaluator(s).Evaluate(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, eligibility.Result{}, res)
}

func TestStore_CreditSumAndRequiredCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedStudent(t, s, "S1")
	seedCourse(t, s, "C1", 3, true)
	seedCourse(t, s, "C2", 4, false)
	seedCourse(t, s, "C3", 5, false)

	for _, c := range []string{"C1", "C2", "C3"} {
		_, err := s.AddEnrollment(ctx, "S1", c, nil)
		require.NoError(t, err)
	}

	credit, err := s.SumCompletedCredit(ctx, "S1")
	require.NoError(t, err)
	assert.EqualValues(t, 12, credit)

	required, err := s.CountCompletedRequiredCourses(ctx, "S1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, required)
}

func TestStore_DuplicateRowsCount(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedStudent(t, s, "S1")
	seedCourse(t, s, "C1", 3, true)
	require.NoError(t, s.UpsertProgram(ctx, &model.Program{ProgramID: "P1", ProgramName: "Mentoring", Year: 2023, Semester: model.SemesterFirst}))
	require.NoError(t, s.UpsertExchange(ctx, &model.Exchange{ExchangeID: "X1", Year: 2023, Round: 1}))

	grade := "A"
	first, err := s.AddEnrollment(ctx, "S1", "C1", &grade)
	require.NoError(t, err)
	second, err := s.AddEnrollment(ctx, "S1", "C1", nil)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	for i := 0; i < 4; i++ {
		_, err := s.AddParticipation(ctx, "S1", "P1")
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := s.AddAttendance(ctx, "S1", "X1")
		require.NoError(t, err)
	}

	res, err := eligibility.NewEvaluator(s).Evaluate(ctx, "S1")
	require.NoError(t, err)
	assert.EqualValues(t, 6, res.TotalCredit)
	assert.EqualValues(t, 2, res.RequiredCount)
	assert.EqualValues(t, 4, res.ProgramCount)
	assert.EqualValues(t, 2, res.ExchangeCount)
	assert.False(t, res.Passed)
}

func TestStore_PassingStudent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedStudent(t, s, "S1")
	seedCourse(t, s, "C1", 12, false)
	require.NoError(t, s.UpsertProgram(ctx, &model.Program{ProgramID: "P1", ProgramName: "Mentoring", Year: 2023, Semester: model.SemesterFirst}))
	require.NoError(t, s.UpsertExchange(ctx, &model.Exchange{ExchangeID: "X1", Year: 2023, Round: 1}))

	_, err := s.AddEnrollment(ctx, "S1", "C1", nil)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err := s.AddParticipation(ctx, "S1", "P1")
		require.NoError(t, err)
	}
	for i := 0; i < 2; i++ {
		_, err := s.AddAttendance(ctx, "S1", "X1")
		require.NoError(t, err)
	}

	res, err := eligibility.NewEvaluator(s).Evaluate(ctx, "S1")
	require.NoError(t, err)
	assert.True(t, res.Passed)
	assert.Zero(t, res.RequiredCount)
}

func TestStore_UnknownReferenceRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedStudent(t, s, "S1")

	_, err := s.AddEnrollment(ctx, "S1", "missing", nil)
	assert.ErrorIs(t, err, repository.ErrUnknownReference)

	_, err = s.AddParticipation(ctx, "ghost", "missing")
	assert.ErrorIs(t, err, repository.ErrUnknownReference)

	_, err = s.AddAttendance(ctx, "S1", "missing")
	assert.ErrorIs(t, err, repository.ErrUnknownReference)
}

func TestStore_UpsertStudentKeepsRecords(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedStudent(t, s, "S1")
	seedCourse(t, s, "C1", 3, false)
	_, err := s.AddEnrollment(ctx, "S1", "C1", nil)
	require.NoError(t, err)

	require.NoError(t, s.UpsertStudent(ctx, &model.Student{
		StudentID:     "S1",
		Name:          "Renamed",
		AdmissionYear: 2023,
		DegreeProgram: model.DegreeMaster,
		Major:         "Chemistry",
	}))

	st, err := s.GetStudent(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", st.Name)
	assert.Equal(t, model.DegreeMaster, st.DegreeProgram)

	credit, err := s.SumCompletedCredit(ctx, "S1")
	require.NoError(t, err)
	assert.EqualValues(t, 3, credit)
}

func TestStore_CourseCreditChangeIsReflected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seedStudent(t, s, "S1")
	seedCourse(t, s, "C1", 3, false)
	_, err := s.AddEnrollment(ctx, "S1", "C1", nil)
	require.NoError(t, err)

	seedCourse(t, s, "C1", 5, true)

	res, err := eligibility.NewEvaluator(s).Evaluate(ctx, "S1")
	require.NoError(t, err)
	assert.EqualValues(t, 5, res.TotalCredit)
	assert.EqualValues(t, 1, res.RequiredCount)
}

func TestStore_GetStudentNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetStudent(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestStore_ClosedDatabaseFailsEvaluation(t *testing.T) {
	s, err := Open(":memory:", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	_, err = eligibility.NewEvaluator(s).Evaluate(context.Background(), "S1")
	var dae *eligibility.DataAccessError
	require.ErrorAs(t, err, &dae)
	assert.Equal(t, eligibility.OpSumCompletedCredit, dae.Op)
}

func TestMigrate_Idempotent(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, Migrate(s.db))
}
