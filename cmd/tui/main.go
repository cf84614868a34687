package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/aerooffers/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/aerooffers/internal/catalog"
	"github.com/MrJamesThe3rd/aerooffers/internal/classifier"
	"github.com/MrJamesThe3rd/aerooffers/internal/config"
	"github.com/MrJamesThe3rd/aerooffers/internal/database"
	"github.com/MrJamesThe3rd/aerooffers/internal/importer"
	"github.com/MrJamesThe3rd/aerooffers/internal/offer"
	offerStore "github.com/MrJamesThe3rd/aerooffers/internal/offer/store"
)

type model struct {
	appName       string
	classifier    *classifier.Classifier
	offerService  *offer.Service
	importService *importer.Service

	currentView View

	classifyView view.ClassifyModel
	reviewView   view.ReviewModel
	jobView      view.JobModel
	importView   view.ImportModel
}

type View int

const (
	ViewMenu     View = 0
	ViewClassify View = 1
	ViewReview   View = 2
	ViewJob      View = 3
	ViewImport   View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Log output would corrupt the screen.
	slog.SetLogLoggerLevel(slog.LevelError)

	cat, err := catalog.LoadFile(cfg.Classifier.CatalogPath)
	if err != nil {
		slog.Error("failed to load catalog", "path", cfg.Classifier.CatalogPath, "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.DB.Migrate {
		if err := database.Migrate(db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	ruleBased := classifier.New(cat, classifier.WithWorkers(cfg.Classifier.Workers))
	offerSvc := offer.NewService(offerStore.New(db), ruleBased, cfg.Classifier.BatchSize)
	impSvc := importer.NewService()

	return model{
		appName:       cfg.App.Name,
		classifier:    ruleBased,
		offerService:  offerSvc,
		importService: impSvc,
		currentView:   ViewMenu,
		classifyView:  view.NewClassifyModel(ruleBased),
		reviewView:    view.NewReviewModel(offerSvc, ruleBased),
		jobView:       view.NewJobModel(offerSvc),
		importView:    view.NewImportModel(offerSvc, impSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewClassify
				m.classifyView = view.NewClassifyModel(m.classifier)

				return m, m.classifyView.Init()
			case "2":
				m.currentView = ViewReview
				m.reviewView = view.NewReviewModel(m.offerService, m.classifier)

				return m, m.reviewView.Init()
			case "3":
				m.currentView = ViewJob
				m.jobView = view.NewJobModel(m.offerService)

				return m, m.jobView.Init()
			case "4":
				m.currentView = ViewImport
				m.importView = view.NewImportModel(m.offerService, m.importService)

				return m, m.importView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewClassify:
		var newModel tea.Model
		newModel, cmd = m.classifyView.Update(msg)
		m.classifyView = newModel.(view.ClassifyModel)
	case ViewReview:
		var newModel tea.Model
		newModel, cmd = m.reviewView.Update(msg)
		m.reviewView = newModel.(view.ReviewModel)
	case ViewJob:
		var newModel tea.Model
		newModel, cmd = m.jobView.Update(msg)
		m.jobView = newModel.(view.JobModel)
	case ViewImport:
		var newModel tea.Model
		newModel, cmd = m.importView.Update(msg)
		m.importView = newModel.(view.ImportModel)
	}

	return m, cmd
}

func (m model) View() string {
	var current view.View

	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			m.appName + "\n\n" +
				"1. Classify Title\n" +
				"2. Review Offers\n" +
				"3. Run Classification Job\n" +
				"4. Import Feed\n\n" +
				"q. Quit",
		)
	case ViewClassify:
		current = m.classifyView
	case ViewReview:
		current = m.reviewView
	case ViewJob:
		current = m.jobView
	case ViewImport:
		current = m.importView
	default:
		return "Unknown View"
	}

	header := lipgloss.NewStyle().Bold(true).PaddingLeft(1).Render(current.Title())
	help := lipgloss.NewStyle().Faint(true).PaddingLeft(1).Render(current.ShortHelp())

	return lipgloss.JoinVertical(lipgloss.Left, header, current.View(), help)
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
