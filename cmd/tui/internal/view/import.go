package view

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/aerooffers/internal/importer"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

const importTimeout = 2 * time.Minute

type importState int

const (
	importStateFormatSelect importState = iota
	importStateFilePick
	importStateImporting
	importStateResult
)

type ImportModel struct {
	CommonModel
	offerService  *offer.Service
	importService *importer.Service

	state          importState
	filePicker     filepicker.Model
	selectedFormat importer.Format
	formatCursor   int

	status string
	err    error
}

func NewImportModel(offerSvc *offer.Service, impSvc *importer.Service) ImportModel {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{".csv", ".txt", ".jsonl", ".json"}
	fp.ShowHidden = false
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return ImportModel{
		offerService:  offerSvc,
		importService: impSvc,
		filePicker:    fp,
	}
}

func (m ImportModel) Title() string { return "Import Feed" }

func (m ImportModel) ShortHelp() string {
	if m.state == importStateResult && m.err == nil {
		return "c: classify now | Esc: back"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return nil
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m.handleEsc()
		}

		if m.state == importStateFormatSelect {
			return m.updateFormatSelect(msg)
		}

		if m.state == importStateResult && m.err == nil && msg.String() == "c" {
			m.state = importStateImporting
			m.status = "Classifying pending offers..."

			return m, m.classifyCmd()
		}

	case importResultMsg:
		m.state = importStateResult
		if msg.err != nil {
			m.err = msg.err
			m.status = fmt.Sprintf("Error: %v", msg.err)

			return m, nil
		}

		m.status = fmt.Sprintf("Imported %d of %d offers.", msg.imported, msg.parsed)

		return m, nil

	case jobResultMsg:
		m.state = importStateResult
		m.err = msg.err
		m.status = msg.summary

		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		return m, nil
	}

	if m.state != importStateFilePick {
		return m, nil
	}

	var cmd tea.Cmd
	m.filePicker, cmd = m.filePicker.Update(msg)

	if didSelect, path := m.filePicker.DidSelectFile(msg); didSelect {
		m.state = importStateImporting
		m.status = fmt.Sprintf("Importing from %s...", path)

		return m, m.importCmd(path)
	}

	return m, cmd
}

func (m ImportModel) handleEsc() (tea.Model, tea.Cmd) {
	switch m.state {
	case importStateFilePick:
		m.state = importStateFormatSelect
		return m, nil
	case importStateResult:
		m.state = importStateFormatSelect
		m.err = nil
		m.status = ""

		return m, nil
	}

	return m, Back
}

func (m ImportModel) updateFormatSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.formatCursor > 0 {
			m.formatCursor--
		}
	case tea.KeyDown:
		if m.formatCursor < len(importer.Formats)-1 {
			m.formatCursor++
		}
	case tea.KeyEnter:
		m.selectedFormat = importer.Formats[m.formatCursor]
		m.state = importStateFilePick

		return m, m.filePicker.Init()
	}

	return m, nil
}

func (m ImportModel) View() string {
	switch m.state {
	case importStateFormatSelect:
		s := "Select format:\n\n"

		for i, format := range importer.Formats {
			cursor := " "
			if i == m.formatCursor {
				cursor = ">"
			}

			s += fmt.Sprintf("%s %s\n", cursor, format)
		}

		return lipgloss.NewStyle().Padding(2).Render(s)
	case importStateFilePick:
		return lipgloss.NewStyle().Padding(1).Render(
			fmt.Sprintf("Select file to import (%s):\n\n%s", m.selectedFormat, m.filePicker.View()),
		)
	case importStateImporting:
		return lipgloss.NewStyle().Padding(2).Render(m.status)
	case importStateResult:
		style := lipgloss.NewStyle().Padding(2)
		if m.err != nil {
			return style.Render(errorStyle(m.status) + "\n\n(Esc to go back)")
		}

		return style.Render(successStyle(m.status) + "\n\n(Esc to go back)")
	}

	return ""
}

// Messages

type importResultMsg struct {
	parsed   int
	imported int
	err      error
}

func (m ImportModel) importCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return importResultMsg{err: err}
		}
		defer f.Close()

		offers, err := m.importService.Import(m.selectedFormat, f)
		if err != nil {
			return importResultMsg{err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		n, err := m.offerService.Import(ctx, offers)
		if err != nil {
			return importResultMsg{err: err}
		}

		return importResultMsg{parsed: len(offers), imported: n}
	}
}

func (m ImportModel) classifyCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		n, err := m.offerService.ClassifyPending(ctx)

		return jobResultMsg{summary: fmt.Sprintf("Classified %d offers.", n), err: err}
	}
}
