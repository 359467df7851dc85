// Package eligibility decides whether a student has completed the curriculum.
//
// The evaluator aggregates four facts about a student through a Repository
// and applies a fixed threshold rule. It holds no state between calls and
// never writes, so a single Evaluator may be shared by concurrent callers.
package eligibility

import (
	"context"
)

// Graduation thresholds. These are policy, not configuration.
const (
	MinTotalCredit           = 12
	MinProgramParticipations = 4
	MinExchangeAttendances   = 2
)

// Repository exposes the aggregate queries the evaluator needs. Every method
// returns 0 when the student has no matching rows.
type Repository interface {
	SumCompletedCredit(ctx context.Context, studentID string) (int64, error)
	CountCompletedRequiredCourses(ctx context.Context, studentID string) (int64, error)
	CountProgramParticipations(ctx context.Context, studentID string) (int64, error)
	CountExchangeAttendances(ctx context.Context, studentID string) (int64, error)
}

// Result is the verdict for one student together with the metrics it was
// derived from.
type Result struct {
	TotalCredit   int64 `json:"total_credit"`
	RequiredCount int64 `json:"required_count"`
	ProgramCount  int64 `json:"program_count"`
	ExchangeCount int64 `json:"exchange_count"`
	Passed        bool  `json:"passed"`
}

// Evaluator applies the graduation rule to data read from a Repository.
type Evaluator struct {
	repo Repository
}

// NewEvaluator creates an Evaluator backed by repo.
func NewEvaluator(repo Repository) *Evaluator {
	return &Evaluator{repo: repo}
}

// Evaluate computes the eligibility result for studentID.
//
// An identifier with no records yields a zero, failing result rather than an
// error. Any repository failure is returned as a *DataAccessError without
// retrying.
func (e *Evaluator) Evaluate(ctx context.Context, studentID string) (Result, error) {
	var r Result
	var err error

	if r.TotalCredit, err = e.repo.SumCompletedCredit(ctx, studentID); err != nil {
		return Result{}, &DataAccessError{Op: OpSumCompletedCredit, StudentID: studentID, Err: err}
	}
	if r.RequiredCount, err = e.repo.CountCompletedRequiredCourses(ctx, studentID); err != nil {
		return Result{}, &DataAccessError{Op: OpCountRequiredCourses, StudentID: studentID, Err: err}
	}
	if r.ProgramCount, err = e.repo.CountProgramParticipations(ctx, studentID); err != nil {
		return Result{}, &DataAccessError{Op: OpCountProgramParticipations, StudentID: studentID, Err: err}
	}
	if r.ExchangeCount, err = e.repo.CountExchangeAttendances(ctx, studentID); err != nil {
		return Result{}, &DataAccessError{Op: OpCountExchangeAttendances, StudentID: studentID, Err: err}
	}

	r.Passed = Passes(r.TotalCredit, r.ProgramCount, r.ExchangeCount)
	return r, nil
}

// Passes reports whether the given metrics meet every graduation threshold.
// The required-course count is intentionally not an input: it is reported
// alongside the verdict but does not gate it.
func Passes(totalCredit, programCount, exchangeCount int64) bool {
	return totalCredit >= MinTotalCredit &&
		programCount >= MinProgramParticipations &&
		exchangeCount >= MinExchangeAttendances
}
