package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/request"
)

type requestsState int

const (
	requestsStateBrowse requestsState = iota
	requestsStateOffer
)

// RequestsModel browses the operator's engagement requests and drives the
// offer workflow on them.
type RequestsModel struct {
	CommonModel
	svc    *request.Service
	acting identity.ActingCompany

	state    requestsState
	table    table.Model
	requests []*request.Request
	form     *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formRate  string
	formStart string
	formEnd   string
	formNotes string
}

func NewRequestsModel(svc *request.Service, acting identity.ActingCompany) RequestsModel {
	columns := []table.Column{
		{Title: "Created", Width: 12},
		{Title: "Status", Width: 14},
		{Title: "Rate", Width: 12},
		{Title: "Offered", Width: 12},
		{Title: "Window", Width: 24},
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

	return RequestsModel{
		svc:    svc,
		acting: acting,
		table:  t,
	}
}

func (m RequestsModel) Title() string { return "Engagement Requests" }
func (m RequestsModel) ShortHelp() string {
	if m.state == requestsStateOffer {
		return "Navigate form | Esc: cancel"
	}
	return "Esc: back | o: send offer | w: withdraw offer | r: refresh"
}

func (m RequestsModel) Init() tea.Cmd {
	return m.loadRequestsCmd()
}

func (m RequestsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRequestsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.requests = msg.requests
		m.refreshTable()
		return m, nil

	case offerResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = "Done."
		}
		m.state = requestsStateBrowse
		m.form = nil
		m.table.Focus()
		return m, m.loadRequestsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case requestsStateBrowse:
		return m.updateBrowse(msg)
	case requestsStateOffer:
		return m.updateOffer(msg)
	}

	return m, nil
}

func (m RequestsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadRequestsCmd()
		case "o":
			return m.enterOfferMode()
		case "w":
			if req := m.selected(); req != nil {
				return m, m.withdrawOfferCmd(req)
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m RequestsModel) selected() *request.Request {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.requests) {
		return nil
	}

	return m.requests[idx]
}

func (m RequestsModel) enterOfferMode() (tea.Model, tea.Cmd) {
	req := m.selected()
	if req == nil {
		return m, nil
	}

	m.formRate = strconv.FormatInt(req.AgreedRateCents, 10)
	m.formStart = FormatDate(req.StartDate)
	m.formEnd = FormatDate(req.EndDate)
	m.formNotes = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("rate").
				Title("Rate (cents/h)").
				Value(&m.formRate).
				Validate(func(s string) error {
					n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
					if err != nil || n <= 0 {
						return fmt.Errorf("rate must be a positive integer")
					}
					return nil
				}),

			huh.NewInput().
				Key("start").
				Title("Start date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formStart).
				Validate(validateDate),

			huh.NewInput().
				Key("end").
				Title("End date").
				Placeholder("YYYY-MM-DD").
				Value(&m.formEnd).
				Validate(validateDate),

			huh.NewInput().
				Key("notes").
				Title("Notes").
				Value(&m.formNotes),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = requestsStateOffer
	m.table.Blur()
	return m, m.form.Init()
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

func (m RequestsModel) updateOffer(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = requestsStateBrowse
			m.form = nil
			m.table.Focus()
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.state = requestsStateBrowse
	m.form = nil
	m.table.Focus()
	m.status = "Sending offer..."

	return m, m.sendOfferCmd()
}

func (m RequestsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading requests...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).PaddingBottom(1).Render(m.Title()),
		lipgloss.NewStyle().PaddingBottom(1).Render(m.status),
		tableView,
	)

	if m.state == requestsStateOffer && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Send Offer\n\n" + m.form.View())

		content = lipgloss.JoinVertical(lipgloss.Left, content, panel)
	}

	content = lipgloss.JoinVertical(lipgloss.Left,
		content,
		lipgloss.NewStyle().Faint(true).PaddingTop(1).Render(m.ShortHelp()),
	)

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *RequestsModel) refreshTable() {
	rows := make([]table.Row, len(m.requests))

	for i, req := range m.requests {
		offered := "-"
		if req.OfferedRateCents != nil {
			offered = FormatRate(*req.OfferedRateCents)
		}

		rows[i] = table.Row{
			FormatDate(req.CreatedAt),
			string(req.Status),
			FormatRate(req.AgreedRateCents),
			offered,
			fmt.Sprintf("%s → %s", FormatDate(req.StartDate), FormatDate(req.EndDate)),
		}
	}

	m.table.SetRows(rows)
}

type loadRequestsMsg struct {
	requests []*request.Request
	err      error
}

func (m RequestsModel) loadRequestsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		requests, err := m.svc.List(ctx, m.acting, nil)

		return loadRequestsMsg{requests: requests, err: err}
	}
}

type offerResultMsg struct {
	err error
}

func (m RequestsModel) sendOfferCmd() tea.Cmd {
	req := m.selected()

	return func() tea.Msg {
		if req == nil {
			return offerResultMsg{}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		rate, _ := strconv.ParseInt(strings.TrimSpace(m.formRate), 10, 64)
		start, _ := time.Parse("2006-01-02", strings.TrimSpace(m.formStart))
		end, _ := time.Parse("2006-01-02", strings.TrimSpace(m.formEnd))

		_, err := m.svc.SendOffer(ctx, m.acting, req.ID, request.OfferParams{
			RateCents: rate,
			StartDate: start,
			EndDate:   end,
			Notes:     m.formNotes,
		})

		return offerResultMsg{err: err}
	}
}

func (m RequestsModel) withdrawOfferCmd(req *request.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.svc.ReviseOffer(ctx, m.acting, req.ID)

		return offerResultMsg{err: err}
	}
}
