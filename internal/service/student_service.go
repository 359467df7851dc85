package service

import (
	"context"

	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/repository"
	"github.com/stemsi/curriculum-backend/internal/response"
)

// StudentService handles student business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// GetByID retrieves a student by their student ID.
func (s *StudentService) GetByID(ctx context.Context, studentID string) (*model.Student, error) {
	return s.studentRepo.GetByID(ctx, studentID)
}

// ListStudents retrieves students matching filter with pagination.
func (s *StudentService) ListStudents(ctx context.Context, filter model.StudentFilter, page, perPage int) ([]model.Student, *response.Pagination, error) {
	page, perPage = response.ClampPage(page, perPage)

	limit := perPage
	offset := (page - 1) * perPage

	students, total, err := s.studentRepo.ListPaginated(ctx, filter, limit, offset)
	if err != nil {
		return nil, nil, err
	}

	if students == nil {
		students = []model.Student{}
	}

	return students, response.NewPagination(page, perPage, total), nil
}

// Register inserts a student or replaces the stored attributes of an existing
// one. Linked records survive a replacement.
func (s *StudentService) Register(ctx context.Context, studentID string, req *model.UpsertStudentRequest) (*model.Student, error) {
	student := &model.Student{
		StudentID:     studentID,
		Name:          req.Name,
		AdmissionYear: req.AdmissionYear,
		DegreeProgram: req.DegreeProgram,
		Major:         req.Major,
		Email:         req.Email,
		Phone:         req.Phone,
	}
	if err := s.studentRepo.Upsert(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Delete removes a student by student ID.
func (s *StudentService) Delete(ctx context.Context, studentID string) error {
	return s.studentRepo.Delete(ctx, studentID)
}
