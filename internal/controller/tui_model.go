package controller

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxTableRows = 15

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 0, 0, 2)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 2)

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Margin(0, 1).
			Padding(0, 1)
)

// traceModel renders a tracing or scoring run.
type traceModel struct {
	mode        StartMode
	width       int
	spinner     spinner.Model
	progressBar progress.Model
	source      string
	peaks       int
	threads     int
	stages      []stageRow
	current     string
	total       int
	completed   int
	finished    bool
	err         error
	chains      []chainRow
	residues    int
	saved       string
	links       [][]string
}

func newTraceModel(mode StartMode) traceModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = accentStyle

	return traceModel{
		mode:        mode,
		width:       80,
		spinner:     spin,
		progressBar: prog,
	}
}

func (m traceModel) resize(width int) traceModel {
	m.width = width

	barWidth := width - 20
	if barWidth > 60 {
		barWidth = 60
	}

	if barWidth < 10 {
		barWidth = 10
	}

	m.progressBar.Width = barWidth

	return m
}

func (m traceModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m traceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case spinner.TickMsg:
		if m.finished {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case runInfoMsg:
		m.source = msg.source
		m.peaks = msg.peaks
		m.threads = msg.threads

	case stageStartedMsg:
		m = m.handleStageStarted(msg)

	case stageCompletedMsg:
		m = m.handleStageCompleted(msg)

	case modelMsg:
		m.finished = true
		m.err = msg.err
		m.chains = msg.chains
		m.residues = msg.residues
		m.saved = msg.saved

	case linksMsg:
		m.finished = true
		m.err = msg.err
		m.links = msg.links
	}

	return m, nil
}

func (m traceModel) handleStageStarted(msg stageStartedMsg) traceModel {
	m.current = msg.stage
	m.total = msg.total
	m.stages = append(m.stages, stageRow{name: msg.stage})

	return m
}

func (m traceModel) handleStageCompleted(msg stageCompletedMsg) traceModel {
	for i := range m.stages {
		if m.stages[i].name == msg.stage && !m.stages[i].done {
			m.stages[i] = stageRow{name: msg.stage, items: msg.items, elapsed: msg.elapsed, done: true}
			m.completed++

			break
		}
	}

	return m
}

func (m traceModel) percent() float64 {
	if m.total == 0 {
		return 0
	}

	return float64(m.completed) / float64(m.total)
}

func (m traceModel) View() string {
	title := "🧬 Peptrace Main Chain Tracing"
	if m.mode == ModeScore {
		title = "🧬 Peptrace Link Scoring"
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Source: %s  •  Peaks: %s  •  Threads: %s",
		accentStyle.Render(m.source),
		accentStyle.Render(fmt.Sprintf("%d", m.peaks)),
		accentStyle.Render(fmt.Sprintf("%d", m.threads)),
	))

	parts := []string{titleStyle.Render(title), summary, m.viewProgress(), boxStyle.Render(m.viewStages())}

	if m.finished {
		parts = append(parts, m.viewResult())
		parts = append(parts, mutedStyle.Render("  Press q to quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m traceModel) viewProgress() string {
	status := m.spinner.View() + " " + m.current
	if m.finished {
		status = doneStyle.Render("✓") + " finished"
	}

	return fmt.Sprintf("  %s %s / %s  %s\n",
		m.progressBar.ViewAs(m.percent()),
		accentStyle.Render(fmt.Sprintf("%d", m.completed)),
		accentStyle.Render(fmt.Sprintf("%d", m.total)),
		status,
	)
}

func (m traceModel) viewStages() string {
	if len(m.stages) == 0 {
		return mutedStyle.Render("Waiting for the first stage…")
	}

	var b strings.Builder

	for i, st := range m.stages {
		if i > 0 {
			b.WriteString("\n")
		}

		if !st.done {
			fmt.Fprintf(&b, "%s %-16s", m.spinner.View(), st.name)
			continue
		}

		fmt.Fprintf(&b, "%s %-16s %8d  %s", doneStyle.Render("✓"), st.name, st.items,
			mutedStyle.Render(st.elapsed.Round(time.Millisecond).String()))
	}

	return b.String()
}

func (m traceModel) viewResult() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("  Error: %v", m.err))
	}

	if m.mode == ModeScore {
		return boxStyle.Render(m.viewLinks())
	}

	out := boxStyle.Render(m.viewChains())
	if m.saved != "" {
		out += "\n" + summaryStyle.Render("Model saved to "+accentStyle.Render(m.saved))
	}

	return out
}

func (m traceModel) viewChains() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s", mutedStyle.Render(fmt.Sprintf("%-6s %9s %10s", "Chain", "Residues", "Score")))

	for i, c := range m.chains {
		if i == maxTableRows {
			fmt.Fprintf(&b, "\n%s", mutedStyle.Render(fmt.Sprintf("… %d more", len(m.chains)-maxTableRows)))
			break
		}

		fmt.Fprintf(&b, "\n%-6s %9d %10.2f", c.id, c.residues, c.score)
	}

	fmt.Fprintf(&b, "\n%s", accentStyle.Render(fmt.Sprintf("%d chains, %d residues", len(m.chains), m.residues)))

	return b.String()
}

func (m traceModel) viewLinks() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s", mutedStyle.Render(fmt.Sprintf("%4s %6s %6s %8s %8s %6s", "Rank", "From", "To", "Score", "Reverse", "Alpha")))

	for i, row := range m.links {
		if i == maxTableRows {
			fmt.Fprintf(&b, "\n%s", mutedStyle.Render(fmt.Sprintf("… %d more", len(m.links)-maxTableRows)))
			break
		}

		fmt.Fprintf(&b, "\n%4s %6s %6s %8s %8s %6s", row[0], row[1], row[2], row[3], row[4], row[5])
	}

	return b.String()
}
