package eligibility_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stemsi/curriculum-backend/internal/eligibility"
	"github.com/stemsi/curriculum-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ eligibility.Repository = (*testutil.MemoryStore)(nil)

// seedStudent gives studentID the requested number of 1-credit elective
// enrollments, program participations, and exchange attendances.
func seedStudent(store *testutil.MemoryStore, studentID string, credits, programs, exchanges int) {
	store.AddCourse("ELEC1", 1, false)
	for i := 0; i < credits; i++ {
		store.Enroll(studentID, "ELEC1")
	}
	for i := 0; i < programs; i++ {
		store.Participate(studentID, fmt.Sprintf("P%d", i))
	}
	for i := 0; i < exchanges; i++ {
		store.Attend(studentID, fmt.Sprintf("X%d", i))
	}
}

func TestEvaluate_ZeroState(t *testing.T) {
	ev := eligibility.NewEvaluator(testutil.NewMemoryStore())

	got, err := ev.Evaluate(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, eligibility.Result{}, got)
	assert.False(t, got.Passed)
}

func TestEvaluate_CreditsAreAdditive(t *testing.T) {
	store := testutil.NewMemoryStore().
		AddCourse("C3", 3, true).
		AddCourse("C4", 4, false).
		AddCourse("C5", 5, false).
		Enroll("S001", "C3").
		Enroll("S001", "C4").
		Enroll("S001", "C5")

	got, err := eligibility.NewEvaluator(store).Evaluate(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.TotalCredit)
	assert.Equal(t, int64(1), got.RequiredCount)
}

func TestEvaluate_DuplicateRowsAreCounted(t *testing.T) {
	store := testutil.NewMemoryStore()
	ev := eligibility.NewEvaluator(store)
	ctx := context.Background()

	before, err := ev.Evaluate(ctx, "S001")
	require.NoError(t, err)

	store.Participate("S001", "P1").Participate("S001", "P1")
	store.AddCourse("REQ", 3, true).Enroll("S001", "REQ").Enroll("S001", "REQ")

	after, err := ev.Evaluate(ctx, "S001")
	require.NoError(t, err)
	assert.Equal(t, before.ProgramCount+2, after.ProgramCount)
	assert.Equal(t, int64(2), after.RequiredCount)
	assert.Equal(t, int64(6), after.TotalCredit)
}

func TestEvaluate_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		name      string
		credits   int
		programs  int
		exchanges int
		passed    bool
	}{
		{"all thresholds met exactly", 12, 4, 2, true},
		{"one credit short", 11, 4, 2, false},
		{"one program short", 12, 3, 2, false},
		{"one exchange short", 12, 4, 1, false},
		{"well above thresholds", 30, 9, 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMemoryStore()
			seedStudent(store, "S001", tt.credits, tt.programs, tt.exchanges)

			got, err := eligibility.NewEvaluator(store).Evaluate(context.Background(), "S001")
			require.NoError(t, err)
			assert.Equal(t, int64(tt.credits), got.TotalCredit)
			assert.Equal(t, int64(tt.programs), got.ProgramCount)
			assert.Equal(t, int64(tt.exchanges), got.ExchangeCount)
			assert.Equal(t, tt.passed, got.Passed)
		})
	}
}

func TestEvaluate_RequiredCountDoesNotGateVerdict(t *testing.T) {
	store := testutil.NewMemoryStore()
	seedStudent(store, "S001", 12, 4, 2)

	got, err := eligibility.NewEvaluator(store).Evaluate(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), got.RequiredCount)
	assert.True(t, got.Passed)
}

func TestEvaluate_Idempotent(t *testing.T) {
	store := testutil.NewMemoryStore()
	seedStudent(store, "S001", 7, 5, 1)
	ev := eligibility.NewEvaluator(store)

	first, err := ev.Evaluate(context.Background(), "S001")
	require.NoError(t, err)
	second, err := ev.Evaluate(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestEvaluate_UnknownIdentifierOnPopulatedStore(t *testing.T) {
	store := testutil.NewMemoryStore()
	seedStudent(store, "S001", 12, 4, 2)

	got, err := eligibility.NewEvaluator(store).Evaluate(context.Background(), "NO_SUCH_ID")
	require.NoError(t, err)
	assert.Equal(t, eligibility.Result{}, got)
}

func TestEvaluate_EnrollmentWithoutCourseIsSkipped(t *testing.T) {
	store := testutil.NewMemoryStore().
		AddCourse("C3", 3, true).
		Enroll("S001", "C3").
		Enroll("S001", "GONE")

	got, err := eligibility.NewEvaluator(store).Evaluate(context.Background(), "S001")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.TotalCredit)
	assert.Equal(t, int64(1), got.RequiredCount)
}

// failingRepo answers every query from inner except failOn.
type failingRepo struct {
	inner  eligibility.Repository
	failOn eligibility.Op
	err    error
}

func (f failingRepo) fail(op eligibility.Op) error {
	if op == f.failOn {
		return f.err
	}
	return nil
}

func (f failingRepo) SumCompletedCredit(ctx context.Context, id string) (int64, error) {
	if err := f.fail(eligibility.OpSumCompletedCredit); err != nil {
		return 0, err
	}
	return f.inner.SumCompletedCredit(ctx, id)
}

func (f failingRepo) CountCompletedRequiredCourses(ctx context.Context, id string) (int64, error) {
	if err := f.fail(eligibility.OpCountRequiredCourses); err != nil {
		return 0, err
	}
	return f.inner.CountCompletedRequiredCourses(ctx, id)
}

func (f failingRepo) CountProgramParticipations(ctx context.Context, id string) (int64, error) {
	if err := f.fail(eligibility.OpCountProgramParticipations); err != nil {
		return 0, err
	}
	return f.inner.CountProgramParticipations(ctx, id)
}

func (f failingRepo) CountExchangeAttendances(ctx context.Context, id string) (int64, error) {
	if err := f.fail(eligibility.OpCountExchangeAttendances); err != nil {
		return 0, err
	}
	return f.inner.CountExchangeAttendances(ctx, id)
}

func TestEvaluate_DataAccessErrorPerQuery(t *testing.T) {
	connErr := errors.New("connection refused")
	ops := []eligibility.Op{
		eligibility.OpSumCompletedCredit,
		eligibility.OpCountRequiredCourses,
		eligibility.OpCountProgramParticipations,
		eligibility.OpCountExchangeAttendances,
	}

	for _, op := range ops {
		t.Run(string(op), func(t *testing.T) {
			store := testutil.NewMemoryStore()
			seedStudent(store, "S001", 12, 4, 2)
			ev := eligibility.NewEvaluator(failingRepo{inner: store, failOn: op, err: connErr})

			got, err := ev.Evaluate(context.Background(), "S001")
			require.Error(t, err)
			assert.Equal(t, eligibility.Result{}, got)

			var dae *eligibility.DataAccessError
			require.True(t, errors.As(err, &dae))
			assert.Equal(t, op, dae.Op)
			assert.Equal(t, "S001", dae.StudentID)
			assert.ErrorIs(t, err, connErr)
		})
	}
}

func TestEvaluate_NoRetryOnFailure(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.Err = errors.New("boom")

	_, err := eligibility.NewEvaluator(store).Evaluate(context.Background(), "S001")
	require.Error(t, err)
	assert.Equal(t, 1, store.Calls)
}

func TestEvaluate_ConcurrentCallers(t *testing.T) {
	store := testutil.NewMemoryStore()
	seedStudent(store, "PASS", 12, 4, 2)
	seedStudent(store, "FAIL", 3, 1, 0)
	ev := eligibility.NewEvaluator(store)

	var wg sync.WaitGroup
	results := make([]eligibility.Result, 40)
	errs := make([]error, 40)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := "PASS"
			if i%2 == 1 {
				id = "FAIL"
			}
			results[i], errs[i] = ev.Evaluate(context.Background(), id)
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		require.NoError(t, errs[i])
		assert.Equal(t, i%2 == 0, r.Passed)
	}
}

func TestPasses(t *testing.T) {
	assert.True(t, eligibility.Passes(12, 4, 2))
	assert.False(t, eligibility.Passes(11, 4, 2))
	assert.False(t, eligibility.Passes(12, 3, 2))
	assert.False(t, eligibility.Passes(12, 4, 1))
	assert.False(t, eligibility.Passes(0, 0, 0))
}
