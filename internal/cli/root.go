package cli

import (
	"github.com/alexanderramin/timeline/internal/geometry"
	"github.com/alexanderramin/timeline/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services and settings used by CLI commands and the TUI.
type App struct {
	Items  service.ItemService
	Layout service.LayoutService
	Import service.ImportService
	Export service.ExportService

	// Zoom is the starting zoom for `lanes` and the TUI.
	Zoom float64
	// ChartWidth is the track width of the `lanes` chart.
	ChartWidth int

	// IsInteractive reports whether stdin is a terminal. When nil the root
	// command always prints help.
	IsInteractive func() bool
	// RunTUI starts the full-screen program. Tests replace it.
	RunTUI func(app *App) error
}

// NewRootCmd creates the top-level "timeline" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	if app.Zoom == 0 {
		app.Zoom = geometry.DefaultZoom
	}
	if app.RunTUI == nil {
		app.RunTUI = runTUI
	}

	root := &cobra.Command{
		Use:           "timeline",
		Short:         "Lay out dated items in non-overlapping lanes and edit them",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return app.RunTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newItemCmd(app),
		newLanesCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newViewCmd(app),
	)

	return root
}
