package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/stemsi/curriculum-backend/internal/model"
)

func newStudentCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage students",
	}
	cmd.AddCommand(newStudentAddCmd(app))
	return cmd
}

func newStudentAddCmd(app *App) *cobra.Command {
	var st model.Student
	var degree string

	cmd := &cobra.Command{
		Use:   "add <student-id>",
		Short: "Register a student, replacing an existing one with the same ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkID("student", args[0]); err != nil {
				return err
			}
			if err := checkYear(st.AdmissionYear); err != nil {
				return err
			}
			d, err := parseDegree(degree)
			if err != nil {
				return err
			}
			st.StudentID = args[0]
			st.DegreeProgram = d

			if err := app.Store.UpsertStudent(cmd.Context(), &st); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered student %s (%s)\n", st.StudentID, st.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&st.Name, "name", "", "Full name")
	cmd.Flags().IntVar(&st.AdmissionYear, "year", 0, "Admission year")
	cmd.Flags().StringVar(&degree, "degree", string(model.DegreeBachelor), "BACHELOR, MASTER or DOCTORATE")
	cmd.Flags().StringVar(&st.Major, "major", "", "Major")
	cmd.Flags().StringVar(&st.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&st.Phone, "phone", "", "Phone number")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func newCourseCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
	}
	cmd.AddCommand(newCourseAddCmd(app))
	return cmd
}

func newCourseAddCmd(app *App) *cobra.Command {
	var c model.Course
	var semester string

	cmd := &cobra.Command{
		Use:   "add <course-id>",
		Short: "Register a course, replacing an existing one with the same ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkID("course", args[0]); err != nil {
				return err
			}
			if c.Credit < 1 {
				return fmt.Errorf("credit must be at least 1, got %d", c.Credit)
			}
			if err := checkYear(c.Year); err != nil {
				return err
			}
			s, err := parseSemester(semester)
			if err != nil {
				return err
			}
			c.CourseID = args[0]
			c.Semester = s

			if err := app.Store.UpsertCourse(cmd.Context(), &c); err != nil {
				return err
			}
			kind := "elective"
			if c.IsRequired {
				kind = "required"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %s course %s (%d credits)\n", kind, c.CourseID, c.Credit)
			return nil
		},
	}

	cmd.Flags().StringVar(&c.CourseName, "name", "", "Course name")
	cmd.Flags().IntVar(&c.Credit, "credit", 0, "Credit value")
	cmd.Flags().IntVar(&c.Year, "year", 0, "Academic year")
	cmd.Flags().StringVar(&semester, "semester", string(model.SemesterFirst), "FIRST, SECOND, SUMMER or WINTER")
	cmd.Flags().BoolVar(&c.IsRequired, "required", false, "Mark the course as required")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("credit")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func newProgramCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program",
		Short: "Manage co-curricular programs",
	}
	cmd.AddCommand(newProgramAddCmd(app))
	return cmd
}

func newProgramAddCmd(app *App) *cobra.Command {
	var p model.Program
	var semester string

	cmd := &cobra.Command{
		Use:   "add <program-id>",
		Short: "Register a program, replacing an existing one with the same ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkID("program", args[0]); err != nil {
				return err
			}
			if err := checkYear(p.Year); err != nil {
				return err
			}
			s, err := parseSemester(semester)
			if err != nil {
				return err
			}
			p.ProgramID = args[0]
			p.Semester = s

			if err := app.Store.UpsertProgram(cmd.Context(), &p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered program %s\n", p.ProgramID)
			return nil
		},
	}

	cmd.Flags().StringVar(&p.ProgramName, "name", "", "Program name")
	cmd.Flags().IntVar(&p.Year, "year", 0, "Academic year")
	cmd.Flags().StringVar(&semester, "semester", string(model.SemesterFirst), "FIRST, SECOND, SUMMER or WINTER")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}

func newExchangeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Manage outcome-exchange events",
	}
	cmd.AddCommand(newExchangeAddCmd(app))
	return cmd
}

func newExchangeAddCmd(app *App) *cobra.Command {
	var e model.Exchange

	cmd := &cobra.Command{
		Use:   "add <exchange-id>",
		Short: "Register an exchange event, replacing an existing one with the same ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkID("exchange", args[0]); err != nil {
				return err
			}
			if err := checkYear(e.Year); err != nil {
				return err
			}
			if e.Round < 1 {
				return fmt.Errorf("round must be at least 1, got %d", e.Round)
			}
			e.ExchangeID = args[0]

			if err := app.Store.UpsertExchange(cmd.Context(), &e); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered exchange %s (%d round %d)\n", e.ExchangeID, e.Year, e.Round)
			return nil
		},
	}

	cmd.Flags().IntVar(&e.Year, "year", 0, "Year")
	cmd.Flags().IntVar(&e.Round, "round", 1, "Round within the year")
	_ = cmd.MarkFlagRequired("year")

	return cmd
}
