package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stemsi/curriculum-backend/internal/repository"
)

// linkError rewrites an unknown reference into something a user can act on.
func linkError(err error, what string) error {
	if errors.Is(err, repository.ErrUnknownReference) {
		return fmt.Errorf("%s: register the student and the referenced record first", what)
	}
	return err
}

func newEnrollCmd(app *App) *cobra.Command {
	var grade string

	cmd := &cobra.Command{
		Use:   "enroll <student-id> <course-id>",
		Short: "Record a completed course",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var g *string
			if grade != "" {
				g = &grade
			}
			id, err := app.Store.AddEnrollment(cmd.Context(), args[0], args[1], g)
			if err != nil {
				return linkError(err, "cannot record enrollment")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded enrollment #%d: %s completed %s\n", id, args[0], args[1])
			return nil
		},
	}

	cmd.Flags().StringVar(&grade, "grade", "", "Grade obtained")
	return cmd
}

func newParticipateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "participate <student-id> <program-id>",
		Short: "Record a program participation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Store.AddParticipation(cmd.Context(), args[0], args[1])
			if err != nil {
				return linkError(err, "cannot record participation")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded participation #%d: %s in %s\n", id, args[0], args[1])
			return nil
		},
	}
}

func newAttendCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "attend <student-id> <exchange-id>",
		Short: "Record an exchange attendance",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := app.Store.AddAttendance(cmd.Context(), args[0], args[1])
			if err != nil {
				return linkError(err, "cannot record attendance")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded attendance #%d: %s at %s\n", id, args[0], args[1])
			return nil
		},
	}
}
