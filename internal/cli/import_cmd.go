package cli

import (
	"fmt"

	"github.com/alexanderramin/quorum/internal/cli/formatter"
	"github.com/alexanderramin/quorum/internal/generation"
	"github.com/spf13/cobra"
)

func newImportCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load people and busy time from files",
	}

	cmd.AddCommand(
		newImportRosterCmd(a),
		newImportICSCmd(a),
	)

	return cmd
}

func newImportRosterCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "roster <file>",
		Short: "Import people and busy time from a JSON or YAML roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Import.ImportRoster(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult("Imported "+args[0], res))
			return nil
		},
	}
}

func newImportICSCmd(a *App) *cobra.Command {
	var person string

	cmd := &cobra.Command{
		Use:   "ics <file>",
		Short: "Import busy time for one person from an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Import.ImportICS(cmd.Context(), person, args[0], a.location())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult("Imported "+args[0], res))
			return nil
		},
	}

	cmd.Flags().StringVarP(&person, "person", "p", "", "person who owns the calendar")
	_ = cmd.MarkFlagRequired("person")

	return cmd
}

func newSeedCmd(a *App) *cobra.Command {
	var seed int64
	var busyPeople, days int
	var start string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill the database with a synthetic organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			from := a.now()
			if start != "" {
				d, err := parseDate(start, a.location())
				if err != nil {
					return err
				}
				from = d
			}
			opts := generation.DefaultSeedOptions(from)
			opts.Seed = seed
			opts.BusyPeople = busyPeople
			opts.HorizonDays = days
			if err := opts.Validate(); err != nil {
				return err
			}

			res, err := a.Import.Seed(cmd.Context(), opts)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult("Seeded", res))
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&busyPeople, "busy-people", 10, "how many people get busy time")
	cmd.Flags().IntVar(&days, "days", 21, "days of busy time to generate")
	cmd.Flags().StringVar(&start, "start", "", "first day of generated busy time (YYYY-MM-DD, default today)")

	return cmd
}
