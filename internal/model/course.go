package model

import "time"

// Semester is the academic term a course or program runs in.
type Semester string

const (
	SemesterFirst  Semester = "FIRST"
	SemesterSecond Semester = "SECOND"
	SemesterSummer Semester = "SUMMER"
	SemesterWinter Semester = "WINTER"
)

// Course is a credit-bearing unit of coursework.
type Course struct {
	CourseID   string    `json:"course_id"`
	CourseName string    `json:"course_name"`
	Credit     int       `json:"credit"`
	Year       int       `json:"year"`
	Semester   Semester  `json:"semester"`
	IsRequired bool      `json:"is_required"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpsertCourseRequest is the payload for registering or replacing a course.
type UpsertCourseRequest struct {
	CourseName string   `json:"course_name" binding:"required,min=1,max=200"`
	Credit     int      `json:"credit" binding:"required,min=1,max=30"`
	Year       int      `json:"year" binding:"required,min=2000,max=2100"`
	Semester   Semester `json:"semester" binding:"required,oneof=FIRST SECOND SUMMER WINTER"`
	IsRequired bool     `json:"is_required"`
}

// CourseFilter narrows a course listing. Nil or zero values mean "any".
type CourseFilter struct {
	Year       int
	Semester   Semester
	IsRequired *bool
}
