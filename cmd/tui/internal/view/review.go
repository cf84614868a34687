package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/aerooffers/internal/classifier"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
)

const reviewLimit = 200

var reviewFilterLabels = []string{"Pending", "Classified", "All"}

type ReviewModel struct {
	CommonModel
	offerService *offer.Service
	classifier   *classifier.Classifier

	table  table.Model
	offers []*offer.Offer

	filterIdx int
	filter    offer.ListFilter

	// preview holds a dry-run classification of the selected offer.
	preview *offer.ClassificationResult

	loading bool
	err     error
}

func NewReviewModel(offerSvc *offer.Service, c *classifier.Classifier) ReviewModel {
	columns := []table.Column{
		{Title: "Created", Width: 16},
		{Title: "Category", Width: 11},
		{Title: "Title", Width: 40},
		{Title: "Manufacturer", Width: 22},
		{Title: "Model", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := ReviewModel{
		offerService: offerSvc,
		classifier:   c,
		table:        t,
		loading:      true,
	}
	m.applyFilter()

	return m
}

func (m ReviewModel) Title() string { return "Review Offers" }

func (m ReviewModel) ShortHelp() string {
	return "Esc: back | p: preview | f: filter | r: refresh"
}

func (m ReviewModel) Init() tea.Cmd {
	return m.loadOffersCmd()
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadOffersMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.err = nil
		m.offers = msg.offers
		m.preview = nil
		m.refreshTable()

		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.preview != nil {
				m.preview = nil
				return m, nil
			}

			return m, Back
		case "r":
			m.loading = true
			return m, m.loadOffersCmd()
		case "f":
			m.filterIdx = (m.filterIdx + 1) % len(reviewFilterLabels)
			m.applyFilter()
			m.loading = true

			return m, m.loadOffersCmd()
		case "p":
			m.previewSelected()
			return m, nil
		}
	}

	prev := m.table.Cursor()

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	if m.table.Cursor() != prev {
		m.preview = nil
	}

	return m, cmd
}

func (m *ReviewModel) applyFilter() {
	m.filter = offer.ListFilter{Limit: reviewLimit}

	switch m.filterIdx {
	case 0:
		m.filter.Classified = new(false)
	case 1:
		m.filter.Classified = new(true)
	}
}

func (m *ReviewModel) previewSelected() {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.offers) {
		return
	}

	o := m.offers[idx]
	result := m.classifier.Classify(o.Title, o.Category)
	m.preview = &result
}

func (m *ReviewModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.offers))
	for _, o := range m.offers {
		rows = append(rows, table.Row{
			FormatTime(o.CreatedAt),
			FormatCategory(o.Category),
			o.Title,
			deref(o.Manufacturer),
			deref(o.Model),
		})
	}

	m.table.SetRows(rows)
}

func (m ReviewModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading offers...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Filter: [f] %s | %d offers",
		activeStyle(reviewFilterLabels[m.filterIdx]),
		len(m.offers),
	)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.preview != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, m.viewPreview())
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m ReviewModel) viewPreview() string {
	var b strings.Builder

	b.WriteString("Preview\n\n")

	if m.preview.IsUnknown() {
		b.WriteString(errorStyle("No match"))
		fmt.Fprintf(&b, "\nCategory: %s", FormatCategory(m.preview.Category))
	} else {
		b.WriteString(successStyle(m.preview.Manufacturer + " " + m.preview.Model))
		fmt.Fprintf(&b, "\nCategory: %s", m.preview.Category)
	}

	return lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(40).
		Render(b.String())
}

// Messages

type loadOffersMsg struct {
	offers []*offer.Offer
	err    error
}

func (m ReviewModel) loadOffersCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		offers, err := m.offerService.List(ctx, filter)
		return loadOffersMsg{offers: offers, err: err}
	}
}
