package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stemsi/curriculum-backend/internal/eligibility"
	"github.com/stemsi/curriculum-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEligibilityService_Passing(t *testing.T) {
	store := testutil.NewMemoryStore().
		AddCourse("MATH101", 12, true).
		Enroll("S1", "MATH101").
		Participate("S1", "P1").Participate("S1", "P2").Participate("S1", "P3").Participate("S1", "P4").
		Attend("S1", "X1").Attend("S1", "X2")
	svc := NewEligibilityService(store, zerolog.Nop())

	v, err := svc.Evaluate(context.Background(), "S1")
	require.NoError(t, err)
	assert.True(t, v.Eligibility.Passed)
	assert.Empty(t, v.Shortfalls)
	assert.NotNil(t, v.Shortfalls)
	assert.Equal(t, msgEligible, v.Message)
}

func TestEligibilityService_FailingListsShortfalls(t *testing.T) {
	store := testutil.NewMemoryStore().
		AddCourse("MATH101", 3, true).
		Enroll("S1", "MATH101").
		Attend("S1", "X1").Attend("S1", "X2")
	svc := NewEligibilityService(store, zerolog.Nop())

	v, err := svc.Evaluate(context.Background(), "S1")
	require.NoError(t, err)
	assert.False(t, v.Eligibility.Passed)
	assert.Equal(t, msgIneligible, v.Message)

	metrics := make([]eligibility.Metric, 0, len(v.Shortfalls))
	for _, s := range v.Shortfalls {
		metrics = append(metrics, s.Metric)
	}
	assert.Equal(t, []eligibility.Metric{eligibility.MetricTotalCredit, eligibility.MetricProgramCount}, metrics)
}

func TestEligibilityService_UnknownStudent(t *testing.T) {
	svc := NewEligibilityService(testutil.NewMemoryStore(), zerolog.Nop())

	v, err := svc.Evaluate(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, eligibility.Result{}, v.Eligibility)
	assert.Len(t, v.Shortfalls, 3)
}

func TestEligibilityService_DataAccessFailure(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.Err = errors.New("connection reset")
	svc := NewEligibilityService(store, zerolog.Nop())

	v, err := svc.Evaluate(context.Background(), "S1")
	assert.Nil(t, v)
	var dae *eligibility.DataAccessError
	require.ErrorAs(t, err, &dae)
	assert.Equal(t, "S1", dae.StudentID)
}

func TestEligibilityService_FailureLogCarriesRequestID(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.Err = errors.New("connection reset")

	var base, scoped bytes.Buffer
	svc := NewEligibilityService(store, zerolog.New(&base))

	reqLog := zerolog.New(&scoped).With().Str("request_id", "req-7").Logger()
	_, err := svc.Evaluate(reqLog.WithContext(context.Background()), "S1")
	require.Error(t, err)

	assert.Empty(t, base.String())
	var line map[string]any
	require.NoError(t, json.Unmarshal(scoped.Bytes(), &line))
	assert.Equal(t, "req-7", line["request_id"])
	assert.Equal(t, "error", line["level"])
	assert.Equal(t, "eligibility_service", line["component"])
	assert.Equal(t, "S1", line["student_id"])
}

func TestEligibilityService_FallsBackToServiceLogger(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.Err = errors.New("connection reset")

	var base bytes.Buffer
	svc := NewEligibilityService(store, zerolog.New(&base))

	_, err := svc.Evaluate(context.Background(), "S1")
	require.Error(t, err)
	assert.Contains(t, base.String(), "Eligibility evaluation failed")
}
