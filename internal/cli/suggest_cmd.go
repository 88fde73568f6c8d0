package cli

import (
	"fmt"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/alexanderramin/quorum/internal/cli/formatter"
	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/spf13/cobra"
)

func newSuggestCmd(a *App) *cobra.Command {
	var (
		attendees []string
		date      string
		duration  string
		max       int
		explain   bool
	)

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Rank meeting times around a target date",
		Example: `  quorum suggest --attendee emp_001:organizer --attendee emp_002,emp_003 --date 2025-03-19 --duration 60m
  quorum suggest -a emp_004 -a emp_005:optional --date 2025-03-19 --duration 90 --explain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			meeting := domain.MeetingRequest{}
			for _, raw := range splitIDs(attendees) {
				att, err := parseAttendee(raw)
				if err != nil {
					return err
				}
				meeting.Attendees = append(meeting.Attendees, att)
			}

			target, err := parseDate(date, a.location())
			if err != nil {
				return err
			}
			meeting.TargetDate = target

			meeting.Duration, err = parseMeetingDuration(duration)
			if err != nil {
				return err
			}

			req := app.NewSuggestRequest(meeting)
			req.MaxSuggestions = a.maxSuggestions()
			if max > 0 {
				req.MaxSuggestions = max
			}
			if a.Now != nil {
				now := a.now()
				req.Now = &now
			}

			resp, err := a.Suggest.Suggest(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("suggesting times: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatSuggestions(resp))
			if explain {
				fmt.Fprint(out, formatter.FormatExplanations(resp))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&attendees, "attendee", "a", nil, "attendee as id[:organizer|required|optional]; repeatable or comma-separated")
	cmd.Flags().StringVarP(&date, "date", "d", "", "target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&duration, "duration", "60m", "meeting length (e.g. 30m, 1h30m, or minutes)")
	cmd.Flags().IntVarP(&max, "max", "n", 0, "maximum suggestions to show (at most 10)")
	cmd.Flags().BoolVar(&explain, "explain", false, "explain each suggestion")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
