package view

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

const jobTimeout = 10 * time.Minute

type jobState int

const (
	jobStateSelect jobState = iota
	jobStateConfirm
	jobStateRunning
	jobStateResult
)

type jobAction int

const (
	jobClassifyPending jobAction = iota
	jobResetFailed
	jobResetAll
)

var jobActionLabels = []string{
	"Classify pending offers",
	"Reset failed classifications",
	"Reset all classifications",
}

type JobModel struct {
	CommonModel
	offerService *offer.Service

	state   jobState
	cursor  int
	form    *huh.Form
	confirm *bool
	spinner spinner.Model

	status string
	err    error
}

func NewJobModel(offerSvc *offer.Service) JobModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return JobModel{
		offerService: offerSvc,
		spinner:      s,
		confirm:      new(false),
	}
}

func (m JobModel) Title() string { return "Classification Job" }

func (m JobModel) ShortHelp() string {
	switch m.state {
	case jobStateRunning:
		return "Running..."
	case jobStateResult:
		return "Esc: back"
	}

	return "Esc: back | Enter: select"
}

func (m JobModel) Init() tea.Cmd {
	return nil
}

func (m JobModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case jobStateSelect:
		return m.updateSelect(msg)
	case jobStateConfirm:
		return m.updateConfirm(msg)
	case jobStateRunning:
		return m.updateRunning(msg)
	case jobStateResult:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
			m.state = jobStateSelect
			m.status = ""
			m.err = nil

			return m, nil
		}
	}

	return m, nil
}

func (m JobModel) updateSelect(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyEsc:
		return m, Back
	case tea.KeyUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case tea.KeyDown:
		if m.cursor < len(jobActionLabels)-1 {
			m.cursor++
		}
	case tea.KeyEnter:
		if jobAction(m.cursor) != jobResetAll {
			return m.start()
		}

		*m.confirm = false
		m.form = huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Key("confirm").
					Title("Reset every classification?").
					Description("All offers will be classified again on the next run.").
					Value(m.confirm),
			),
		).WithWidth(50).WithShowHelp(false)
		m.state = jobStateConfirm

		return m, m.form.Init()
	}

	return m, nil
}

func (m JobModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = jobStateSelect
		m.form = nil

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.form = nil

	if !*m.confirm {
		m.state = jobStateSelect
		return m, nil
	}

	return m.start()
}

func (m JobModel) start() (tea.Model, tea.Cmd) {
	m.state = jobStateRunning
	m.err = nil

	return m, tea.Batch(m.spinner.Tick, m.runCmd(jobAction(m.cursor)))
}

func (m JobModel) updateRunning(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(jobResultMsg); ok {
		m.state = jobStateResult
		m.err = result.err
		m.status = result.summary

		return m, nil
	}

	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)

	return m, cmd
}

func (m JobModel) View() string {
	style := lipgloss.NewStyle().Padding(2)

	switch m.state {
	case jobStateSelect:
		s := "Select job:\n\n"

		for i, label := range jobActionLabels {
			cursor := " "
			if i == m.cursor {
				cursor = ">"
			}

			s += fmt.Sprintf("%s %s\n", cursor, label)
		}

		return style.Render(s)

	case jobStateConfirm:
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())

	case jobStateRunning:
		return style.Render(fmt.Sprintf("%s %s...", m.spinner.View(), jobActionLabels[m.cursor]))

	case jobStateResult:
		if m.err != nil {
			return style.Render(errorStyle(fmt.Sprintf("Error: %v", m.err)) + "\n" + m.status + "\n\n(Esc to go back)")
		}

		return style.Render(successStyle(m.status) + "\n\n(Esc to go back)")
	}

	return ""
}

// Messages

type jobResultMsg struct {
	summary string
	err     error
}

func (m JobModel) runCmd(action jobAction) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		switch action {
		case jobClassifyPending:
			n, err := m.offerService.ClassifyPending(ctx)
			return jobResultMsg{summary: fmt.Sprintf("Classified %d offers.", n), err: err}
		case jobResetFailed:
			n, err := m.offerService.ResetFailed(ctx, 0)
			return jobResultMsg{summary: fmt.Sprintf("Reset %d failed classifications.", n), err: err}
		case jobResetAll:
			n, err := m.offerService.ResetAll(ctx)
			return jobResultMsg{summary: fmt.Sprintf("Reset %d classifications.", n), err: err}
		}

		return jobResultMsg{err: fmt.Errorf("unknown job %d", action)}
	}
}
