package service

import (
	"context"

	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/repository"
)

// CourseService handles course catalogue logic.
type CourseService struct {
	courseRepo *repository.CourseRepository
}

// NewCourseService creates a new CourseService.
func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

func (s *CourseService) GetByID(ctx context.Context, courseID string) (*model.Course, error) {
	return s.courseRepo.GetByID(ctx, courseID)
}

func (s *CourseService) List(ctx context.Context, filter model.CourseFilter) ([]model.Course, error) {
	return s.courseRepo.List(ctx, filter)
}

// Register inserts a course or replaces an existing one. A changed credit or
// required flag applies to every enrollment already recorded against it.
func (s *CourseService) Register(ctx context.Context, courseID string, req *model.UpsertCourseRequest) (*model.Course, error) {
	course := &model.Course{
		CourseID:   courseID,
		CourseName: req.CourseName,
		Credit:     req.Credit,
		Year:       req.Year,
		Semester:   req.Semester,
		IsRequired: req.IsRequired,
	}
	if err := s.courseRepo.Upsert(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) Delete(ctx context.Context, courseID string) error {
	return s.courseRepo.Delete(ctx, courseID)
}
