package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quorum/internal/cli/formatter"
	"github.com/alexanderramin/quorum/internal/domain"
	"github.com/spf13/cobra"
)

func newPersonCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "person",
		Aliases: []string{"people"},
		Short:   "Manage the people directory",
	}

	cmd.AddCommand(
		newPersonAddCmd(a),
		newPersonListCmd(a),
		newPersonShowCmd(a),
		newPersonSearchCmd(a),
		newPersonTeamsCmd(a),
		newPersonRemoveCmd(a),
	)

	return cmd
}

func newPersonAddCmd(a *App) *cobra.Command {
	var id, name, team, email, role string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a person",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Person{ID: id, Name: name, Team: team, Email: email, Role: domain.Role(role)}
			if err := a.People.Add(cmd.Context(), p); err != nil {
				return fmt.Errorf("adding person: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "person id (generated when empty)")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&team, "team", "", "team name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&role, "role", "", "seniority role (e.g. president, vp, team_lead)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPersonListCmd(a *App) *cobra.Command {
	var team, role string
	var executives, leaders bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List people",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var (
				people []*domain.Person
				err    error
			)
			switch {
			case executives:
				people, err = a.People.ListExecutives(ctx)
			case leaders:
				people, err = a.People.ListLeaders(ctx)
			case role != "":
				r, ok := domain.ParseRole(role)
				if !ok {
					return fmt.Errorf("unknown role %q", role)
				}
				people, err = a.People.ListByRole(ctx, r)
			case team != "":
				people, err = a.People.ListTeam(ctx, team)
			default:
				people, err = a.People.List(ctx)
			}
			if err != nil {
				return fmt.Errorf("listing people: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPersonList(people))
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "only this team")
	cmd.Flags().StringVar(&role, "role", "", "only this role")
	cmd.Flags().BoolVar(&executives, "executives", false, "only executives")
	cmd.Flags().BoolVar(&leaders, "leaders", false, "only executives and senior leaders")
	cmd.MarkFlagsMutuallyExclusive("team", "role", "executives", "leaders")

	return cmd
}

func newPersonShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one person",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.People.Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("getting person: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPerson(p))
			return nil
		},
	}
}

func newPersonSearchCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <name>",
		Short: "Find people by part of their name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := a.People.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("searching people: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPersonList(people))
			return nil
		},
	}
}

func newPersonTeamsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "teams",
		Short: "List team names",
		RunE: func(cmd *cobra.Command, args []string) error {
			teams, err := a.People.ListTeams(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing teams: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTeams(teams))
			return nil
		},
	}
}

func newPersonRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a person and their busy time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.People.Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("removing person: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}
