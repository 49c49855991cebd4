package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/degreeplan/internal/cli/formatter"
	"github.com/alexanderramin/degreeplan/internal/service"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	var out outputFlags
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the most recently generated schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Planner.LastSchedule(cmd.Context())
			if errors.Is(err, service.ErrNoSavedSchedule) {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No schedule yet. Run 'degreeplan generate' or 'degreeplan plan' first."))
				return nil
			}
			if err != nil {
				return err
			}
			return emitSchedule(cmd, app, resp, out)
		},
	}
	out.register(cmd, app)
	return cmd
}
