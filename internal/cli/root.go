package cli

import (
	"time"

	"github.com/alexanderramin/quorum/internal/app"
	"github.com/alexanderramin/quorum/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	People  service.PersonService
	Busy    service.BusyService
	Suggest service.SuggestService
	Import  service.ImportService

	// Location is used to read dates and clock times typed on the command line.
	Location       *time.Location
	MaxSuggestions int
	// Now pins the suggestion clock; nil means wall time.
	Now func() time.Time
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

func (a *App) maxSuggestions() int {
	if a.MaxSuggestions <= 0 {
		return app.DefaultMaxSuggestions
	}
	return a.MaxSuggestions
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "quorum" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "quorum",
		Short:         "Meeting time recommender",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newSuggestCmd(app),
		newPersonCmd(app),
		newBusyCmd(app),
		newImportCmd(app),
		newSeedCmd(app),
	)

	return root
}
