package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/quorum/internal/cli/formatter"
	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/alexanderramin/quorum/internal/service"
	"github.com/spf13/cobra"
)

func newBusyCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "busy",
		Short: "Manage calendar busy time",
	}

	cmd.AddCommand(
		newBusyAddCmd(a),
		newBusyListCmd(a),
		newBusyRemoveCmd(a),
		newBusyConflictsCmd(a),
		newBusyFreeCmd(a),
	)

	return cmd
}

// window resolves --start with either --end or --duration.
func window(a *App, start, end, duration string) (time.Time, time.Time, error) {
	s, err := parseDateTime(start, a.location())
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end != "" {
		e, err := parseDateTime(end, a.location())
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return s, e, nil
	}
	d, err := parseMeetingDuration(duration)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, s.Add(d), nil
}

func newBusyAddCmd(a *App) *cobra.Command {
	var person, title, start, end, duration string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Block time on a person's calendar",
		Example: `  quorum busy add --person emp_001 --start "2025-03-19 10:00" --duration 90m --title "Design review"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, e, err := window(a, start, end, duration)
			if err != nil {
				return err
			}
			b := &domain.BusyInterval{OwnerID: person, Title: title, Start: s.UTC(), End: e.UTC()}
			if err := a.Busy.Add(cmd.Context(), b); err != nil {
				return fmt.Errorf("adding busy time: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Blocked %s for %s (%s)\n",
				formatter.TimeRange(s, e), person, b.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&person, "person", "p", "", "person id")
	cmd.Flags().StringVar(&title, "title", "", "event title")
	cmd.Flags().StringVar(&start, "start", "", "start time (\"YYYY-MM-DD HH:MM\")")
	cmd.Flags().StringVar(&end, "end", "", "end time; overrides --duration")
	cmd.Flags().StringVar(&duration, "duration", "60m", "length when --end is not given")
	_ = cmd.MarkFlagRequired("person")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newBusyListCmd(a *App) *cobra.Command {
	var person, from string
	var days int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a person's busy time",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := a.now().In(a.location())
			start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, a.location())
			if from != "" {
				d, err := parseDate(from, a.location())
				if err != nil {
					return err
				}
				start = d
			}
			intervals, err := a.Busy.List(cmd.Context(), person, start, start.AddDate(0, 0, days))
			if err != nil {
				return fmt.Errorf("listing busy time: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBusyList(intervals))
			return nil
		},
	}

	cmd.Flags().StringVarP(&person, "person", "p", "", "person id")
	cmd.Flags().StringVar(&from, "from", "", "first day (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 14, "number of days to show")
	_ = cmd.MarkFlagRequired("person")

	return cmd
}

func newBusyRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a busy interval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Busy.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("removing busy time: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func newBusyConflictsCmd(a *App) *cobra.Command {
	var attendees []string
	var start, end, duration string

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "Show who is busy during a proposed window",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, e, err := window(a, start, end, duration)
			if err != nil {
				return err
			}
			conflicts, err := a.Busy.Conflicts(cmd.Context(), splitIDs(attendees), s, e)
			if err != nil {
				return fmt.Errorf("checking conflicts: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConflicts(conflicts))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&attendees, "attendee", "a", nil, "person ids; repeatable or comma-separated")
	cmd.Flags().StringVar(&start, "start", "", "window start (\"YYYY-MM-DD HH:MM\")")
	cmd.Flags().StringVar(&end, "end", "", "window end; overrides --duration")
	cmd.Flags().StringVar(&duration, "duration", "60m", "window length when --end is not given")
	_ = cmd.MarkFlagRequired("attendee")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newBusyFreeCmd(a *App) *cobra.Command {
	var attendees []string
	var date, duration string
	var fromHour, toHour int

	cmd := &cobra.Command{
		Use:   "free",
		Short: "Find the least conflicted windows on one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseDate(date, a.location())
			if err != nil {
				return err
			}
			d, err := parseMeetingDuration(duration)
			if err != nil {
				return err
			}
			alts, err := a.Busy.Alternatives(cmd.Context(), service.AlternativeRequest{
				PersonIDs: splitIDs(attendees),
				Day:       day,
				Duration:  d,
				StartHour: fromHour,
				EndHour:   toHour,
			})
			if err != nil {
				return fmt.Errorf("finding open windows: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAlternatives(alts))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&attendees, "attendee", "a", nil, "person ids; repeatable or comma-separated")
	cmd.Flags().StringVarP(&date, "date", "d", "", "day to search (YYYY-MM-DD)")
	cmd.Flags().StringVar(&duration, "duration", "60m", "meeting length")
	cmd.Flags().IntVar(&fromHour, "from-hour", 9, "first hour of the search")
	cmd.Flags().IntVar(&toHour, "to-hour", 18, "hour the meeting must end by")
	_ = cmd.MarkFlagRequired("attendee")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}
