package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/repository"
)

// RecordService records what a student has completed: courses, program
// participations and exchange attendances.
type RecordService struct {
	recordRepo *repository.RecordRepository
	log        zerolog.Logger
}

// NewRecordService creates a new RecordService.
func NewRecordService(recordRepo *repository.RecordRepository, log zerolog.Logger) *RecordService {
	return &RecordService{
		recordRepo: recordRepo,
		log:        log.With().Str("component", "record_service").Logger(),
	}
}

// AddEnrollment records a completed course for a student. Recording the same
// course twice yields two rows.
func (s *RecordService) AddEnrollment(ctx context.Context, studentID string, req *model.AddEnrollmentRequest) (*model.Enrollment, error) {
	e := &model.Enrollment{StudentID: studentID, CourseID: req.CourseID, Grade: req.Grade}
	if err := s.recordRepo.AddEnrollment(ctx, e); err != nil {
		return nil, fmt.Errorf("add enrollment: %w", err)
	}
	s.log.Info().Str("student_id", studentID).Str("course_id", e.CourseID).Int64("id", e.ID).Msg("Enrollment recorded")
	return e, nil
}

func (s *RecordService) ListEnrollments(ctx context.Context, studentID string) ([]model.Enrollment, error) {
	return s.recordRepo.ListEnrollmentsByStudent(ctx, studentID)
}

func (s *RecordService) DeleteEnrollment(ctx context.Context, id int64) error {
	return s.recordRepo.DeleteEnrollment(ctx, id)
}

// AddParticipation records a program participation for a student.
func (s *RecordService) AddParticipation(ctx context.Context, studentID string, req *model.AddParticipationRequest) (*model.ProgramParticipation, error) {
	p := &model.ProgramParticipation{StudentID: studentID, ProgramID: req.ProgramID}
	if err := s.recordRepo.AddParticipation(ctx, p); err != nil {
		return nil, fmt.Errorf("add participation: %w", err)
	}
	s.log.Info().Str("student_id", studentID).Str("program_id", p.ProgramID).Int64("id", p.ID).Msg("Program participation recorded")
	return p, nil
}

func (s *RecordService) ListParticipations(ctx context.Context, studentID string) ([]model.ProgramParticipation, error) {
	return s.recordRepo.ListParticipationsByStudent(ctx, studentID)
}

func (s *RecordService) DeleteParticipation(ctx context.Context, id int64) error {
	return s.recordRepo.DeleteParticipation(ctx, id)
}

// AddAttendance records an exchange attendance for a student.
func (s *RecordService) AddAttendance(ctx context.Context, studentID string, req *model.AddAttendanceRequest) (*model.ExchangeAttendance, error) {
	a := &model.ExchangeAttendance{StudentID: studentID, ExchangeID: req.ExchangeID}
	if err := s.recordRepo.AddAttendance(ctx, a); err != nil {
		return nil, fmt.Errorf("add attendance: %w", err)
	}
	s.log.Info().Str("student_id", studentID).Str("exchange_id", a.ExchangeID).Int64("id", a.ID).Msg("Exchange attendance recorded")
	return a, nil
}

func (s *RecordService) ListAttendances(ctx context.Context, studentID string) ([]model.ExchangeAttendance, error) {
	return s.recordRepo.ListAttendancesByStudent(ctx, studentID)
}

func (s *RecordService) DeleteAttendance(ctx context.Context, id int64) error {
	return s.recordRepo.DeleteAttendance(ctx, id)
}
