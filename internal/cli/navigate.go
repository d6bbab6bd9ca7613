package cli

import tea "github.com/charmbracelet/bubbletea"

// Messages views use to drive the appModel.

type pushViewMsg struct {
	view View
}

// statusMsg replaces the transient line in the status bar.
type statusMsg struct {
	text string
}

// refreshViewMsg asks every view on the stack to reload from the store.
type refreshViewMsg struct{}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel pops the wizard, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func setStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}
