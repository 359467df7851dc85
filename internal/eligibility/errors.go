package eligibility

import "fmt"

// Op names the aggregate query that failed.
type Op string

const (
	OpSumCompletedCredit         Op = "sum_completed_credit"
	OpCountRequiredCourses       Op = "count_completed_required_courses"
	OpCountProgramParticipations Op = "count_program_participations"
	OpCountExchangeAttendances   Op = "count_exchange_attendances"
)

// DataAccessError reports that the repository could not answer one of the
// aggregate queries.
type DataAccessError struct {
	Op        Op
	StudentID string
	Err       error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("eligibility: %s for student %q: %v", e.Op, e.StudentID, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}
