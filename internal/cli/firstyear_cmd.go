package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/cli/formatter"
	"github.com/alexanderramin/degreeplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newFirstYearCmd(app *App) *cobra.Command {
	var (
		fallWinter int
		spring     int
		reset      bool
	)
	cmd := &cobra.Command{
		Use:   "first-year",
		Short: "View or change the first-year credit limits",
		Long: fmt.Sprintf(`View or change the credit caps applied to the first three semesters
when a schedule is generated with --limit-first-year.

Fall/Winter allows %d-%d credits and Spring %d-%d. Without flags on a
terminal an interactive form is shown.`,
			domain.MinFirstYearFallWinter, domain.MaxFirstYearFallWinter,
			domain.MinFirstYearSpring, domain.MaxFirstYearSpring),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if reset {
				if err := app.FirstYear.Reset(ctx); err != nil {
					return err
				}
				fmt.Fprintln(out, formatter.StyleGreen.Render("First-year limits reset to defaults."))
				fmt.Fprint(out, formatter.FormatFirstYearLimits(domain.DefaultFirstYearLimits()))
				return nil
			}

			limits, err := app.FirstYear.Limits(ctx)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			switch {
			case flags.Changed("fall-winter") || flags.Changed("spring"):
				if flags.Changed("fall-winter") {
					limits.FallWinterCredits = fallWinter
				}
				if flags.Changed("spring") {
					limits.SpringCredits = spring
				}
			case app.interactive():
				in := newFirstYearInputs(limits)
				if err := app.runForm(wizardFirstYear(in)); err != nil {
					if errors.Is(err, huh.ErrUserAborted) {
						return nil
					}
					return err
				}
				limits = in.Limits()
			default:
				fmt.Fprint(out, formatter.FormatFirstYearLimits(limits))
				return nil
			}

			if err := app.FirstYear.Save(ctx, limits); err != nil {
				return err
			}
			fmt.Fprintln(out, formatter.StyleGreen.Render("First-year limits saved."))
			fmt.Fprint(out, formatter.FormatFirstYearLimits(limits))
			return nil
		},
	}
	cmd.Flags().IntVar(&fallWinter, "fall-winter", 0, "Fall/Winter credit cap")
	cmd.Flags().IntVar(&spring, "spring", 0, "Spring credit cap")
	cmd.Flags().BoolVar(&reset, "reset", false, "Restore the default limits")
	cmd.MarkFlagsMutuallyExclusive("reset", "fall-winter")
	cmd.MarkFlagsMutuallyExclusive("reset", "spring")
	return cmd
}
