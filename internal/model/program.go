package model

import "time"

// Program is a co-curricular, non-credit activity.
type Program struct {
	ProgramID   string    `json:"program_id"`
	ProgramName string    `json:"program_name"`
	Year        int       `json:"year"`
	Semester    Semester  `json:"semester"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// UpsertProgramRequest is the payload for registering or replacing a program.
type UpsertProgramRequest struct {
	ProgramName string   `json:"program_name" binding:"required,min=1,max=200"`
	Year        int      `json:"year" binding:"required,min=2000,max=2100"`
	Semester    Semester `json:"semester" binding:"required,oneof=FIRST SECOND SUMMER WINTER"`
}

// ProgramFilter narrows a program listing.
type ProgramFilter struct {
	Year     int
	Semester Semester
}
