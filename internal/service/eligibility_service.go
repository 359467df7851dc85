package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/stemsi/curriculum-backend/internal/eligibility"
)

// Verdict is an eligibility result together with the thresholds it missed.
type Verdict struct {
	Eligibility eligibility.Result      `json:"eligibility"`
	Shortfalls  []eligibility.Shortfall `json:"shortfalls"`
	Message     string                  `json:"message"`
}

const (
	msgEligible   = "The student satisfies the graduation requirements."
	msgIneligible = "The student does not yet satisfy the graduation requirements."
)

// EligibilityService evaluates graduation eligibility and logs the outcome.
type EligibilityService struct {
	evaluator *eligibility.Evaluator
	log       zerolog.Logger
}

// NewEligibilityService creates a new EligibilityService over repo.
func NewEligibilityService(repo eligibility.Repository, log zerolog.Logger) *EligibilityService {
	return &EligibilityService{
		evaluator: eligibility.NewEvaluator(repo),
		log:       log.With().Str("component", "eligibility_service").Logger(),
	}
}

// Evaluate returns the verdict for studentID. A student with no records is
// not an error; it yields a failing verdict with zero metrics.
func (s *EligibilityService) Evaluate(ctx context.Context, studentID string) (*Verdict, error) {
	log := s.logger(ctx)

	res, err := s.evaluator.Evaluate(ctx, studentID)
	if err != nil {
		var dae *eligibility.DataAccessError
		if errors.As(err, &dae) {
			log.Error().Err(dae.Err).Str("student_id", studentID).Str("op", string(dae.Op)).Msg("Eligibility evaluation failed")
		}
		return nil, err
	}

	log.Debug().
		Str("student_id", studentID).
		Int64("total_credit", res.TotalCredit).
		Int64("required_count", res.RequiredCount).
		Int64("program_count", res.ProgramCount).
		Int64("exchange_count", res.ExchangeCount).
		Bool("passed", res.Passed).
		Msg("Eligibility evaluated")

	v := &Verdict{
		Eligibility: res,
		Shortfalls:  eligibility.Shortfalls(res),
		Message:     msgIneligible,
	}
	if res.Passed {
		v.Message = msgEligible
	}
	return v, nil
}

// logger prefers the request-scoped logger so entries carry the request ID.
func (s *EligibilityService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		scoped := l.With().Str("component", "eligibility_service").Logger()
		return &scoped
	}
	return &s.log
}
