package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tracksplitter/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the external tools can be found",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			statuses, checkErr := preflight.CheckTools(cfg)

			rows := make([][]string, 0, len(statuses))
			for _, status := range statuses {
				state := "ok"
				detail := status.Path
				switch {
				case !status.Available && status.Optional:
					state = "skipped"
					detail = status.Detail
				case !status.Available:
					state = "missing"
					detail = status.Detail
				}
				rows = append(rows, []string{status.Name, status.Command, yesNo(!status.Optional), state, detail})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable([]string{"Tool", "Command", "Required", "Status", "Location"}, rows, !isTerminal(out)))
			if checkErr != nil {
				return checkErr
			}
			fmt.Fprintln(out, "All required tools found")
			return nil
		},
	}
}
