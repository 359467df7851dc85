// Package cli implements the curriculum command-line tool over a local
// SQLite store.
package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/stemsi/curriculum-backend/internal/eligibility"
	"github.com/stemsi/curriculum-backend/internal/model"
)

// Store is the persistence the CLI needs.
type Store interface {
	eligibility.Repository

	UpsertStudent(ctx context.Context, st *model.Student) error
	GetStudent(ctx context.Context, studentID string) (*model.Student, error)
	UpsertCourse(ctx context.Context, c *model.Course) error
	UpsertProgram(ctx context.Context, p *model.Program) error
	UpsertExchange(ctx context.Context, e *model.Exchange) error
	AddEnrollment(ctx context.Context, studentID, courseID string, grade *string) (int64, error)
	AddParticipation(ctx context.Context, studentID, programID string) (int64, error)
	AddAttendance(ctx context.Context, studentID, exchangeID string) (int64, error)
}

// App holds what CLI commands run against.
type App struct {
	Store Store
}

// NewRootCmd creates the top-level "curriculum" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "curriculum",
		Short:         "Track curriculum completion and check graduation eligibility",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newStudentCmd(app),
		newCourseCmd(app),
		newProgramCmd(app),
		newExchangeCmd(app),
		newEnrollCmd(app),
		newParticipateCmd(app),
		newAttendCmd(app),
		newEvaluateCmd(app),
	)

	return root
}
