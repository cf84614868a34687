package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/classifier"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

type classifyState int

const (
	classifyStateForm classifyState = iota
	classifyStateResult
)

// classifyInput is shared with the form, which keeps pointers to its fields.
type classifyInput struct {
	title    string
	category string
}

type ClassifyModel struct {
	CommonModel
	classifier *classifier.Classifier

	state classifyState
	form  *huh.Form
	input *classifyInput

	explanation classifier.Explanation
	result      offer.ClassificationResult
}

func NewClassifyModel(c *classifier.Classifier) ClassifyModel {
	m := ClassifyModel{
		classifier: c,
		input:      &classifyInput{},
	}
	m.form = m.buildForm()

	return m
}

func (m ClassifyModel) Title() string { return "Classify Title" }

func (m ClassifyModel) ShortHelp() string {
	if m.state == classifyStateResult {
		return "Enter: classify another | Esc: back"
	}

	return "Enter: next | Esc: back"
}

func (m ClassifyModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ClassifyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	switch m.state {
	case classifyStateForm:
		return m.updateForm(msg)
	case classifyStateResult:
		return m.updateResult(msg)
	}

	return m, nil
}

func (m ClassifyModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	category := catalog.Category(m.input.category)

	m.explanation = m.classifier.Explain(m.input.title, category)
	m.result = m.classifier.Classify(m.input.title, category)
	m.state = classifyStateResult

	return m, nil
}

func (m ClassifyModel) updateResult(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || keyMsg.Type != tea.KeyEnter {
		return m, nil
	}

	// The category hint is kept for the next title.
	m.input.title = ""
	m.form = m.buildForm()
	m.state = classifyStateForm

	return m, m.form.Init()
}

func (m ClassifyModel) buildForm() *huh.Form {
	options := []huh.Option[string]{huh.NewOption("any", "")}
	for _, c := range catalog.Categories {
		options = append(options, huh.NewOption(c.String(), c.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Offer Title").
				Placeholder("ASW 27-18 E").
				Value(&m.input.title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(options...).
				Value(&m.input.category),
		),
	).WithWidth(45).WithShowHelp(false)
}

func (m ClassifyModel) View() string {
	if m.state == classifyStateForm {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	label := lipgloss.NewStyle().Faint(true).Width(10)

	lines := []string{
		label.Render("Title") + m.input.title,
		label.Render("Hint") + orDash(m.input.category),
		label.Render("Tokens") + strings.Join(quoteAll(m.explanation.Tokens), " "),
		label.Render("Grams") + strings.Join(quoteAll(m.explanation.Grams), " "),
		"",
	}

	if m.result.IsUnknown() {
		lines = append(lines, errorStyle(fmt.Sprintf("No match (category: %s)", FormatCategory(m.result.Category))))
	} else {
		lines = append(lines, successStyle(fmt.Sprintf("%s %s", m.result.Manufacturer, m.result.Model)))
		lines = append(lines, label.Render("Category")+activeStyle(m.result.Category.String()))
	}

	if match := m.explanation.Match; match != nil {
		lines = append(lines, label.Render("Score")+fmt.Sprintf("%q ~ %q %.3f", match.Gram, match.Model, match.Score))
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func quoteAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = fmt.Sprintf("%q", s)
	}

	return out
}
