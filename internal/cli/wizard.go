package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/timeline/internal/cli/formatter"
	"github.com/alexanderramin/timeline/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// timelineHuhTheme returns a huh theme in the chart's Gruvbox palette.
func timelineHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

type addItemInput struct {
	name  string
	start string
	end   string
	color string
}

// addItemForm collects a new item. The end date is checked against whatever
// start date has been entered so far.
func addItemForm(in *addItemInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&in.name).
				Validate(validateRequired),
			dateInput("Start (YYYY-MM-DD)", &in.start).
				Validate(validateDate),
			dateInput("End (YYYY-MM-DD)", &in.end).
				Validate(func(s string) error { return validateEndDate(in.start, s) }),
			huh.NewInput().
				Title("Color").
				Description("blank for the lane color").
				Placeholder("#83a598").
				Value(&in.color),
		),
	).WithTheme(timelineHuhTheme()).WithShowHelp(false)
}

func dateInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(domain.FormatDate(domain.Today())).
		Value(value)
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := domain.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}

func validateEndDate(start, end string) error {
	if err := validateDate(end); err != nil {
		return err
	}
	s, err := domain.ParseDate(strings.TrimSpace(start))
	if err != nil {
		return nil
	}
	e, _ := domain.ParseDate(strings.TrimSpace(end))
	if e.Before(s) {
		return fmt.Errorf("end is before start")
	}
	return nil
}

// startAddItemWizard pushes the add-item form. The item is stored when the
// form completes, before the timeline reloads.
func startAddItemWizard(state *SharedState) tea.Cmd {
	in := &addItemInput{}
	done := func() tea.Cmd {
		start, _ := domain.ParseDate(strings.TrimSpace(in.start))
		end, _ := domain.ParseDate(strings.TrimSpace(in.end))
		created, err := state.App.Items.Create(context.Background(), domain.Item{
			Name:      strings.TrimSpace(in.name),
			StartDate: start,
			EndDate:   end,
			Color:     strings.TrimSpace(in.color),
		})
		if err != nil {
			return setStatus("add failed: " + err.Error())
		}
		return setStatus("Added " + created.Name)
	}
	return pushView(newWizardView(state, "Add item", addItemForm(in), done))
}
