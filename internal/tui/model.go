// Package tui implements an interactive browser for ranked plan
// comparisons: a ranking table on top, a scenario breakdown pane for the
// selected plan below it.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/planrank/internal/compare"
	"github.com/rgehrsitz/planrank/internal/config"
)

// ConfigLoadedMsg carries the parsed configuration and its comparison.
type ConfigLoadedMsg struct {
	Config  *config.Configuration
	Results *compare.ComparisonSet
}

// ErrorMsg carries a load or calculation failure.
type ErrorMsg struct {
	Err error
}

// Model represents the application state.
type Model struct {
	configPath string
	config     *config.Configuration
	results    *compare.ComparisonSet

	table table.Model

	width  int
	height int

	err     error
	loading bool
}

// NewModel creates the application model for a configuration file path. An
// empty path loads the built-in example catalog.
func NewModel(configPath string) Model {
	return Model{
		configPath: configPath,
		loading:    true,
		width:      80,
		height:     24,
	}
}

// Init kicks off the configuration load.
func (m Model) Init() tea.Cmd {
	return loadConfigCmd(m.configPath)
}

// loadConfigCmd loads the configuration and runs the comparison.
func loadConfigCmd(path string) tea.Cmd {
	return func() tea.Msg {
		var cfg *config.Configuration
		if path == "" {
			cfg = config.ExampleConfiguration()
		} else {
			parser := config.NewInputParser()
			loaded, err := parser.LoadFromFile(path)
			if err != nil {
				return ErrorMsg{Err: err}
			}
			cfg = loaded
		}

		engine := compare.NewEngine()
		results := engine.Compare(cfg.Plans, cfg.CompareInput())

		return ConfigLoadedMsg{Config: cfg, Results: results}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ConfigLoadedMsg:
		m.config = msg.Config
		m.results = msg.Results
		m.loading = false
		m.table = m.buildTable()
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "r":
			m.loading = true
			return m, loadConfigCmd(m.configPath)
		}
	}

	if !m.loading && m.err == nil {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// buildTable constructs the ranking table from the comparison results.
func (m Model) buildTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 4},
		{Title: "Plan", Width: 32},
		{Title: "Premium", Width: 10},
		{Title: "OOP Max", Width: 10},
		{Title: "GM Wealth", Width: 10},
		{Title: "E[log W]", Width: 9},
	}

	rows := make([]table.Row, 0, len(m.results.Results))
	for i, r := range m.results.Results {
		logStr := "-inf"
		if !r.ExpectedLogWealth.IsRuin() {
			logStr = fmt.Sprintf("%.4f", float64(r.ExpectedLogWealth))
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			r.PlanName,
			"$" + r.TotalAnnualPremium.StringFixed(0),
			"$" + r.InNetworkOOPMax.StringFixed(0),
			"$" + r.GeometricMean.StringFixed(0),
			logStr,
		})
	}

	height := len(rows)
	if height > 10 {
		height = 10
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// View renders the application.
func (m Model) View() string {
	if m.loading {
		return AppStyle.Render("Loading plan catalog...")
	}
	if m.err != nil {
		return AppStyle.Render(ErrorStyle.Render("Error: ") + m.err.Error() + "\n\n" +
			HelpStyle.Render("q quit"))
	}

	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("planrank") + " " +
		SubtitleStyle.Render("geometric-mean plan ranking") + "\n")
	sb.WriteString(SubtitleStyle.Render(fmt.Sprintf("Disposable income: $%s",
		m.results.DisposableIncome.StringFixed(0))) + "\n\n")

	sb.WriteString(m.table.View() + "\n\n")
	sb.WriteString(m.detailView() + "\n\n")

	sb.WriteString(HelpStyle.Render("up/down select plan - r reload - q quit"))

	return AppStyle.Render(sb.String())
}

// detailView renders the scenario breakdown for the selected plan.
func (m Model) detailView() string {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.results.Results) {
		return ""
	}
	r := m.results.Results[idx]

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(r.PlanName) + "\n")

	for _, name := range r.ScenarioOrder {
		outcome := r.ScenarioWealth[name]
		pct := outcome.Ratio.Mul(decimal.NewFromInt(100)).StringFixed(1)

		value := fmt.Sprintf("$%s  (%s%%)", outcome.Wealth.StringFixed(0), pct)
		if outcome.Ratio.IsZero() {
			value = RuinStyle.Render("$0  (ruin)")
		} else {
			value = MetricValueStyle.Render(value)
		}

		sb.WriteString(MetricLabelStyle.Render(name) + value + "\n")
	}

	return DetailPaneStyle.Render(sb.String())
}
