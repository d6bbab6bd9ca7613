package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timeline/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLanesCmd(app *App) *cobra.Command {
	var zoom float64
	var width int

	cmd := &cobra.Command{
		Use:   "lanes",
		Short: "Print the lane layout as a chart",
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 10 {
				return fmt.Errorf("width must be at least 10, got %d", width)
			}
			layout, err := app.Layout.Layout(context.Background(), zoom)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatLanes(layout, width))
			return nil
		},
	}

	cmd.Flags().Var(newZoomValue(app.Zoom, &zoom), "zoom", "Zoom factor (0.5-10) or percentage")
	cmd.Flags().IntVar(&width, "width", app.ChartWidth, "Chart track width in columns")
	return cmd
}
