package model

import "time"

// Enrollment is one completed course instance. A student may hold several
// enrollments for the same course; each row counts.
type Enrollment struct {
	ID        int64     `json:"id"`
	StudentID string    `json:"student_id"`
	CourseID  string    `json:"course_id"`
	Grade     *string   `json:"grade"`
	CreatedAt time.Time `json:"created_at"`
}

// ProgramParticipation is one attendance of a co-curricular program.
type ProgramParticipation struct {
	ID        int64     `json:"id"`
	StudentID string    `json:"student_id"`
	ProgramID string    `json:"program_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ExchangeAttendance is one attendance of an outcome-exchange event.
type ExchangeAttendance struct {
	ID         int64     `json:"id"`
	StudentID  string    `json:"student_id"`
	ExchangeID string    `json:"exchange_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// AddEnrollmentRequest is the payload for recording a completed course.
type AddEnrollmentRequest struct {
	CourseID string  `json:"course_id" binding:"required,record_id"`
	Grade    *string `json:"grade" binding:"omitempty,max=5"`
}

// AddParticipationRequest is the payload for recording a program participation.
type AddParticipationRequest struct {
	ProgramID string `json:"program_id" binding:"required,record_id"`
}

// AddAttendanceRequest is the payload for recording an exchange attendance.
type AddAttendanceRequest struct {
	ExchangeID string `json:"exchange_id" binding:"required,record_id"`
}
