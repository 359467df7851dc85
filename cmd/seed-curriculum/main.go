package main

import (
	"context"
	"fmt"
	"time"

	"github.com/stemsi/curriculum-backend/internal/config"
	"github.com/stemsi/curriculum-backend/internal/database"
	"github.com/stemsi/curriculum-backend/internal/logger"
	"github.com/stemsi/curriculum-backend/internal/model"
	"github.com/stemsi/curriculum-backend/internal/repository"
	"github.com/stemsi/curriculum-backend/internal/service"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	studentService := service.NewStudentService(repository.NewStudentRepository(pool))
	courseService := service.NewCourseService(repository.NewCourseRepository(pool))
	programService := service.NewProgramService(repository.NewProgramRepository(pool))
	exchangeService := service.NewExchangeService(repository.NewExchangeRepository(pool))
	recordService := service.NewRecordService(repository.NewRecordRepository(pool), log)
	eligibilityService := service.NewEligibilityService(repository.NewEligibilityRepository(pool), log)

	// ─── Catalogue ─────────────────────────────────────────────────────
	fmt.Println("=== Seeding catalogue ===")

	courses := map[string]model.UpsertCourseRequest{
		"CS101":   {CourseName: "Introduction to Programming", Credit: 3, Year: 2024, Semester: model.SemesterFirst, IsRequired: true},
		"CS102":   {CourseName: "Data Structures", Credit: 3, Year: 2024, Semester: model.SemesterSecond, IsRequired: true},
		"MATH201": {CourseName: "Linear Algebra", Credit: 4, Year: 2024, Semester: model.SemesterFirst, IsRequired: false},
		"HUM110":  {CourseName: "Academic Writing", Credit: 2, Year: 2024, Semester: model.SemesterSummer, IsRequired: false},
	}
	for id, req := range courses {
		if _, err := courseService.Register(ctx, id, &req); err != nil {
			log.Fatal().Err(err).Str("course_id", id).Msg("Failed to seed course")
		}
	}

	programIDs := []string{"MENTOR", "LEADERSHIP", "VOLUNTEER", "CAREER", "RESEARCH"}
	for i, id := range programIDs {
		req := model.UpsertProgramRequest{
			ProgramName: fmt.Sprintf("Co-curricular program %d", i+1),
			Year:        2024,
			Semester:    model.SemesterFirst,
		}
		if _, err := programService.Register(ctx, id, &req); err != nil {
			log.Fatal().Err(err).Str("program_id", id).Msg("Failed to seed program")
		}
	}

	exchangeIDs := []string{"EX2024-1", "EX2024-2", "EX2024-3"}
	for i, id := range exchangeIDs {
		req := model.UpsertExchangeRequest{Year: 2024, Round: i + 1}
		if _, err := exchangeService.Register(ctx, id, &req); err != nil {
			log.Fatal().Err(err).Str("exchange_id", id).Msg("Failed to seed exchange")
		}
	}

	// ─── Students ──────────────────────────────────────────────────────
	fmt.Println("=== Seeding students ===")

	names := []string{
		"Alex Morgan", "Jordan Lee", "Sam Rivera", "Taylor Kim", "Casey Chen",
		"Riley Novak", "Jamie Okafor", "Avery Singh", "Quinn Larsen", "Drew Alvarez",
	}
	courseIDs := []string{"CS101", "CS102", "MATH201", "HUM110"}

	for i, name := range names {
		studentID := fmt.Sprintf("2024-%04d", i+1)
		if _, err := studentService.Register(ctx, studentID, &model.UpsertStudentRequest{
			Name:          name,
			AdmissionYear: 2024,
			DegreeProgram: model.DegreeBachelor,
			Major:         "Computer Science",
		}); err != nil {
			log.Fatal().Err(err).Str("student_id", studentID).Msg("Failed to seed student")
		}

		// Spread progress so the seeded cohort has both outcomes.
		for _, courseID := range courseIDs[:1+i%len(courseIDs)] {
			if _, err := recordService.AddEnrollment(ctx, studentID, &model.AddEnrollmentRequest{CourseID: courseID}); err != nil {
				log.Fatal().Err(err).Msg("Failed to seed enrollment")
			}
		}
		for _, programID := range programIDs[:i%len(programIDs)] {
			if _, err := recordService.AddParticipation(ctx, studentID, &model.AddParticipationRequest{ProgramID: programID}); err != nil {
				log.Fatal().Err(err).Msg("Failed to seed participation")
			}
		}
		for _, exchangeID := range exchangeIDs[:i%len(exchangeIDs)] {
			if _, err := recordService.AddAttendance(ctx, studentID, &model.AddAttendanceRequest{ExchangeID: exchangeID}); err != nil {
				log.Fatal().Err(err).Msg("Failed to seed attendance")
			}
		}

		verdict, err := eligibilityService.Evaluate(ctx, studentID)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to evaluate seeded student")
		}
		fmt.Printf("[%d/%d] %s %-14s passed=%t\n", i+1, len(names), studentID, name, verdict.Eligibility.Passed)
	}

	fmt.Println("=== Seeding Complete ===")
}
