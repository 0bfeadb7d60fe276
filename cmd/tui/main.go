package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/benchlane/benchlane/cmd/tui/internal/view"
	"github.com/benchlane/benchlane/internal/company"
	companyStore "github.com/benchlane/benchlane/internal/company/store"
	"github.com/benchlane/benchlane/internal/config"
	"github.com/benchlane/benchlane/internal/contract"
	contractStore "github.com/benchlane/benchlane/internal/contract/store"
	"github.com/benchlane/benchlane/internal/conversation"
	conversationStore "github.com/benchlane/benchlane/internal/conversation/store"
	"github.com/benchlane/benchlane/internal/database"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/notify"
	"github.com/benchlane/benchlane/internal/request"
	requestStore "github.com/benchlane/benchlane/internal/request/store"
	"github.com/benchlane/benchlane/internal/timesheet"
	timesheetStore "github.com/benchlane/benchlane/internal/timesheet/store"
)

type model struct {
	requestService   *request.Service
	contractService  *contract.Service
	timesheetService *timesheet.Service
	acting           identity.ActingCompany

	currentView View

	requestsView   view.RequestsModel
	timesheetsView view.TimesheetsModel
}

type View int

const (
	ViewMenu       View = 0
	ViewRequests   View = 1
	ViewTimesheets View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	userID, err := uuid.Parse(cfg.Operator.UserID)
	if err != nil {
		slog.Error("invalid OPERATOR_USER_ID", "error", err)
		os.Exit(1)
	}

	companyID, err := uuid.Parse(cfg.Operator.CompanyID)
	if err != nil {
		slog.Error("invalid OPERATOR_COMPANY_ID", "error", err)
		os.Exit(1)
	}

	acting := identity.ActingCompany{UserID: userID, CompanyID: companyID}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	companySvc := company.NewService(companyStore.New(db))
	dispatcher := notify.NewDispatcher(notify.SlogSink{}, companySvc)
	conversationSvc := conversation.NewService(conversationStore.New(db))
	requestSvc := request.NewService(requestStore.New(db), companySvc, conversationSvc, dispatcher)
	contractSvc := contract.NewService(contractStore.New(db), dispatcher)
	timesheetSvc := timesheet.NewService(timesheetStore.New(db), contractSvc, dispatcher)

	return model{
		requestService:   requestSvc,
		contractService:  contractSvc,
		timesheetService: timesheetSvc,
		acting:           acting,
		currentView:      ViewMenu,
		requestsView:     view.NewRequestsModel(requestSvc, acting),
		timesheetsView:   view.NewTimesheetsModel(timesheetSvc, contractSvc, acting),
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
				m.currentView = ViewRequests
				m.requestsView = view.NewRequestsModel(m.requestService, m.acting)

				return m, m.requestsView.Init()
			case "2":
				m.currentView = ViewTimesheets
				m.timesheetsView = view.NewTimesheetsModel(m.timesheetService, m.contractService, m.acting)

				return m, m.timesheetsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewRequests:
		var newModel tea.Model
		newModel, cmd = m.requestsView.Update(msg)
		m.requestsView = newModel.(view.RequestsModel)
	case ViewTimesheets:
		var newModel tea.Model
		newModel, cmd = m.timesheetsView.Update(msg)
		m.timesheetsView = newModel.(view.TimesheetsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Benchlane TUI\n\n" +
				"1. Engagement Requests\n" +
				"2. Review Timesheets\n\n" +
				"q. Quit",
		)
	case ViewRequests:
		return m.requestsView.View()
	case ViewTimesheets:
		return m.timesheetsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
