package model

import "time"

// DegreeProgram is the degree track a student is admitted to.
type DegreeProgram string

const (
	DegreeBachelor  DegreeProgram = "BACHELOR"
	DegreeMaster    DegreeProgram = "MASTER"
	DegreeDoctorate DegreeProgram = "DOCTORATE"
)

// Student is a person whose curriculum completion is tracked.
type Student struct {
	StudentID     string        `json:"student_id"`
	Name          string        `json:"name"`
	AdmissionYear int           `json:"admission_year"`
	DegreeProgram DegreeProgram `json:"degree_program"`
	Major         string        `json:"major"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// UpsertStudentRequest is the payload for registering or replacing a student.
type UpsertStudentRequest struct {
	Name          string        `json:"name" binding:"required,min=1,max=100"`
	AdmissionYear int           `json:"admission_year" binding:"required,min=2000,max=2100"`
	DegreeProgram DegreeProgram `json:"degree_program" binding:"required,oneof=BACHELOR MASTER DOCTORATE"`
	Major         string        `json:"major" binding:"omitempty,max=100"`
	Email         string        `json:"email" binding:"omitempty,email,max=255"`
	Phone         string        `json:"phone" binding:"omitempty,max=30"`
}

// StudentFilter narrows a student listing. Zero values mean "any".
type StudentFilter struct {
	NameContains  string
	AdmissionYear int
	DegreeProgram DegreeProgram
	Major         string
}
