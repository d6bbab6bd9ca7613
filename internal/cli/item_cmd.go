package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timeline/internal/cli/formatter"
	"github.com/alexanderramin/timeline/internal/domain"
	"github.com/alexanderramin/timeline/internal/interaction"
	"github.com/spf13/cobra"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage timeline items",
	}

	cmd.AddCommand(
		newItemAddCmd(app),
		newItemListCmd(app),
		newItemRenameCmd(app),
		newItemMoveCmd(app),
		newItemResizeCmd(app),
		newItemRemoveCmd(app),
	)

	return cmd
}

func newItemAddCmd(app *App) *cobra.Command {
	var name, start, end, color string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := domain.ParseDate(start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}
			endDate, err := domain.ParseDate(end)
			if err != nil {
				return fmt.Errorf("invalid end date %q: %w", end, err)
			}

			item, err := app.Items.Create(context.Background(), domain.Item{
				Name:      name,
				StartDate: startDate,
				EndDate:   endDate,
				Color:     color,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", formatter.FormatItem(item))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Item name")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD), inclusive")
	cmd.Flags().StringVar(&color, "color", "", "Bar color, e.g. #3b82f6")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newItemListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List items with their lanes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			items, err := app.Items.List(ctx)
			if err != nil {
				return err
			}
			layout, err := app.Layout.Layout(ctx, app.Zoom)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItemList(items, layout))
			return nil
		},
	}
}

func newItemRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			item, err := app.Items.Get(ctx, args[0])
			if err != nil {
				return err
			}

			var patch *domain.ItemPatch
			editor := interaction.NewEditor(func(_ string, p domain.ItemPatch) { patch = &p })
			editor.Begin(item)
			editor.SetDraft(args[1])
			if !editor.Commit(item) {
				return printNoChange(cmd)
			}
			return applyPatch(cmd, app, item.ID, *patch, "Renamed")
		},
	}
}

func newItemMoveCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Shift an item by whole days, keeping its duration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return nudge(cmd, app, args[0], interaction.ModeMove, days, "Moved")
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "Days to shift (negative moves earlier)")
	_ = cmd.MarkFlagRequired("days")
	return cmd
}

func newItemResizeCmd(app *App) *cobra.Command {
	var days int
	var edge string

	cmd := &cobra.Command{
		Use:   "resize <id>",
		Short: "Move one edge of an item by whole days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var mode interaction.Mode
			switch edge {
			case "start":
				mode = interaction.ModeResizeStart
			case "end":
				mode = interaction.ModeResizeEnd
			default:
				return fmt.Errorf("invalid edge %q: use start or end", edge)
			}
			return nudge(cmd, app, args[0], mode, days, "Resized")
		},
	}

	cmd.Flags().StringVar(&edge, "edge", "end", "Edge to move: start or end")
	cmd.Flags().IntVar(&days, "days", 0, "Days to move the edge by")
	_ = cmd.MarkFlagRequired("days")
	return cmd
}

func newItemRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an item",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Items.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

// nudge applies the same rule a pointer drag of days would, measured from
// the item's stored dates.
func nudge(cmd *cobra.Command, app *App, id string, mode interaction.Mode, days int, verb string) error {
	item, err := app.Items.Get(context.Background(), id)
	if err != nil {
		return err
	}
	patch, ok := interaction.Propose(mode, interaction.SnapshotOf(item), item, days)
	if !ok {
		return printNoChange(cmd)
	}
	return applyPatch(cmd, app, id, patch, verb)
}

func applyPatch(cmd *cobra.Command, app *App, id string, patch domain.ItemPatch, verb string) error {
	updated, err := app.Items.Update(context.Background(), id, patch)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", verb, formatter.FormatItem(updated))
	return nil
}

func printNoChange(cmd *cobra.Command) error {
	fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("no change"))
	return nil
}
