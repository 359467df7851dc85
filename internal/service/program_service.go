package service

import (
	"context"

	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/repository"
)

type ProgramService struct {
	programRepo *repository.ProgramRepository
}

func NewProgramService(programRepo *repository.ProgramRepository) *ProgramService {
	return &ProgramService{programRepo: programRepo}
}

func (s *ProgramService) GetByID(ctx context.Context, programID string) (*model.Program, error) {
	return s.programRepo.GetByID(ctx, programID)
}

func (s *ProgramService) List(ctx context.Context, filter model.ProgramFilter) ([]model.Program, error) {
	return s.programRepo.List(ctx, filter)
}

func (s *ProgramService) Register(ctx context.Context, programID string, req *model.UpsertProgramRequest) (*model.Program, error) {
	program := &model.Program{
		ProgramID:   programID,
		ProgramName: req.ProgramName,
		Year:        req.Year,
		Semester:    req.Semester,
	}
	if err := s.programRepo.Upsert(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

func (s *ProgramService) Delete(ctx context.Context, programID string) error {
	return s.programRepo.Delete(ctx, programID)
}
