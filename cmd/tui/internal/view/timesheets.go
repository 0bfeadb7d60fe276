package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/benchlane/benchlane/internal/contract"
	"github.com/benchlane/benchlane/internal/identity"
	"github.com/benchlane/benchlane/internal/timesheet"
)

type timesheetsState int

const (
	timesheetsStateReview timesheetsState = iota
	timesheetsStateReject
)

// TimesheetsModel reviews submitted timesheets one at a time, approving or
// rejecting each in turn.
type TimesheetsModel struct {
	CommonModel
	timesheets *timesheet.Service
	contracts  *contract.Service
	acting     identity.ActingCompany

	state timesheetsState

	queue   []*timesheet.Timesheet
	total   int
	current *timesheet.Timesheet

	reasonInput textinput.Model

	loading bool
	err     error
	status  string
}

func NewTimesheetsModel(timesheets *timesheet.Service, contracts *contract.Service, acting identity.ActingCompany) TimesheetsModel {
	ti := textinput.New()
	ti.Placeholder = "Reason for rejection"
	ti.CharLimit = 200
	ti.Width = 50

	return TimesheetsModel{
		timesheets:  timesheets,
		contracts:   contracts,
		acting:      acting,
		reasonInput: ti,
		loading:     true,
	}
}

func (m TimesheetsModel) Title() string { return "Review Timesheets" }
func (m TimesheetsModel) ShortHelp() string {
	if m.state == timesheetsStateReject {
		return "Enter: confirm rejection | Esc: cancel"
	}
	return "Enter: approve | x: reject | s: skip | Esc: back"
}

func (m TimesheetsModel) Init() tea.Cmd {
	return m.loadSubmittedCmd()
}

func (m TimesheetsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadSubmittedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.queue = msg.timesheets
		m.total = len(msg.timesheets)
		return m.next()

	case decisionResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		return m.next()
	}

	switch m.state {
	case timesheetsStateReview:
		return m.updateReview(msg)
	case timesheetsStateReject:
		return m.updateReject(msg)
	}

	return m, nil
}

// next pops the queue into current, or finishes when it is empty.
func (m TimesheetsModel) next() (tea.Model, tea.Cmd) {
	m.state = timesheetsStateReview

	if len(m.queue) == 0 {
		m.current = nil
		m.status = "All caught up."
		return m, nil
	}

	m.current = m.queue[0]
	m.queue = m.queue[1:]
	m.status = fmt.Sprintf("Reviewing %d/%d", m.total-len(m.queue), m.total)

	return m, nil
}

func (m TimesheetsModel) updateReview(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "enter":
		if m.current != nil {
			return m, m.approveCmd(m.current)
		}
	case "s":
		if m.current != nil {
			return m.next()
		}
	case "x", "r":
		if m.current != nil {
			m.state = timesheetsStateReject
			m.reasonInput.SetValue("")
			m.reasonInput.Focus()
			return m, textinput.Blink
		}
	}

	return m, nil
}

func (m TimesheetsModel) updateReject(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			m.state = timesheetsStateReview
			m.reasonInput.Blur()
			return m, nil
		case tea.KeyEnter:
			reason := strings.TrimSpace(m.reasonInput.Value())
			if reason == "" {
				return m, nil
			}

			m.state = timesheetsStateReview
			m.reasonInput.Blur()
			return m, m.rejectCmd(m.current, reason)
		}
	}

	var cmd tea.Cmd
	m.reasonInput, cmd = m.reasonInput.Update(msg)
	return m, cmd
}

func (m TimesheetsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading submitted timesheets...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.current == nil {
		return lipgloss.NewStyle().Padding(2).Render(m.status + "\n\nEsc to go back.")
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n\n", m.Title(), m.status)
	fmt.Fprintf(&b, "Week:     %s → %s\n", FormatDate(m.current.WeekStart), FormatDate(m.current.WeekEnd))
	fmt.Fprintf(&b, "Hours:    %.2f\n", m.current.TotalHours)
	fmt.Fprintf(&b, "Contract: %s\n", m.current.ContractID)

	if len(m.current.Entries) > 0 {
		b.WriteString("\nEntries:\n")
		for _, e := range m.current.Entries {
			fmt.Fprintf(&b, "  %s  %.2fh\n", FormatDate(e.Date), e.Hours)
		}
	}

	card := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(b.String())

	if m.state == timesheetsStateReject {
		card = lipgloss.JoinVertical(lipgloss.Left,
			card,
			lipgloss.NewStyle().
				Padding(1, 2).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Render("Reject timesheet\n\n"+m.reasonInput.View()),
		)
	}

	card = lipgloss.JoinVertical(lipgloss.Left,
		card,
		lipgloss.NewStyle().Faint(true).PaddingTop(1).Render(m.ShortHelp()),
	)

	return lipgloss.NewStyle().Padding(1).Render(card)
}

type loadSubmittedMsg struct {
	timesheets []*timesheet.Timesheet
	err        error
}

// loadSubmittedCmd gathers the submitted timesheets across every contract
// the operator's company is a party to.
func (m TimesheetsModel) loadSubmittedCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		contracts, err := m.contracts.List(ctx, m.acting)
		if err != nil {
			return loadSubmittedMsg{err: err}
		}

		var submitted []*timesheet.Timesheet

		for _, c := range contracts {
			sheets, err := m.timesheets.ListByContract(ctx, m.acting, c.ID)
			if err != nil {
				return loadSubmittedMsg{err: err}
			}

			for _, ts := range sheets {
				if ts.Status == timesheet.StatusSubmitted {
					submitted = append(submitted, ts)
				}
			}
		}

		return loadSubmittedMsg{timesheets: submitted}
	}
}

type decisionResultMsg struct {
	err error
}

func (m TimesheetsModel) approveCmd(ts *timesheet.Timesheet) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.timesheets.Approve(ctx, m.acting, ts.ID)

		return decisionResultMsg{err: err}
	}
}

func (m TimesheetsModel) rejectCmd(ts *timesheet.Timesheet, reason string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := m.timesheets.Reject(ctx, m.acting, ts.ID, reason)

		return decisionResultMsg{err: err}
	}
}
