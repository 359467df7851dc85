package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stemsi/curriculum-backend/internal/cli/formatter"
	"github.com/stemsi/curriculum-backend/internal/eligibility"
	"github.com/stemsi/curriculum-backend/internal/repository"
)

func newEvaluateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <student-id>",
		Short: "Check whether a student is eligible to graduate",
		Long: fmt.Sprintf("Graduation requires at least %d credits, %d program participations and %d exchange attendances.",
			eligibility.MinTotalCredit, eligibility.MinProgramParticipations, eligibility.MinExchangeAttendances),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			studentID := args[0]

			res, err := eligibility.NewEvaluator(app.Store).Evaluate(cmd.Context(), studentID)
			if err != nil {
				return fmt.Errorf("eligibility could not be determined: %w", err)
			}

			// An unregistered student is evaluated like any other; only the name is missing.
			var name string
			st, err := app.Store.GetStudent(cmd.Context(), studentID)
			switch {
			case err == nil:
				name = st.Name
			case !errors.Is(err, repository.ErrNotFound):
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatEligibility(studentID, name, res))
			return nil
		},
	}
}
