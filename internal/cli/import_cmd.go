package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timeline/internal/cli/formatter"
	"github.com/alexanderramin/timeline/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import items from a JSON, JSONC or YAML file",
		Long: `Import items from a file. The format is chosen by extension
(.yaml/.yml, otherwise JSON with comments allowed). Either every item
is imported or none is.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.Import(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items\n", len(result.Items))
			for _, it := range result.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", formatter.FormatItem(it))
			}
			return nil
		},
	}
}

func newExportCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all items to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := importer.ParseFormat(format)
			if err != nil {
				return err
			}
			data, err := app.Export.Export(context.Background(), f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: json or yaml")
	return cmd
}
