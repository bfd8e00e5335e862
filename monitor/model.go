package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/robmorgan/helios/engine"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	fixtureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type snapMsg engine.Snapshot

type streamClosedMsg struct{}

type model struct {
	spinner  spinner.Model
	diag     <-chan engine.Snapshot
	snap     engine.Snapshot
	haveSnap bool
	quitting bool
	onQuit   func()
}

func newModel(diag <-chan engine.Snapshot, onQuit func()) model {
	s := spinner.New()
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	return model{
		spinner: s,
		diag:    diag,
		onQuit:  onQuit,
	}
}

func waitForSnapshot(diag <-chan engine.Snapshot) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-diag
		if !ok {
			return streamClosedMsg{}
		}
		return snapMsg(snap)
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForSnapshot(m.diag))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			if m.onQuit != nil {
				m.onQuit()
			}
			// keep draining until the render loop closes the stream, so the
			// final frame is still displayed
			return m, nil
		}
		return m, nil

	case snapMsg:
		m.snap = engine.Snapshot(msg)
		m.haveSnap = true
		return m, waitForSnapshot(m.diag)

	case streamClosedMsg:
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("helios"))
	b.WriteString("  ")
	b.WriteString(m.spinner.View())
	b.WriteString("\n\n")

	if !m.haveSnap {
		b.WriteString(statusStyle.Render("waiting for first frame..."))
		b.WriteString("\n")
		return b.String()
	}

	status := fmt.Sprintf("frame %d  %s  %.1f fps  %d dropped", m.snap.Frame, m.snap.State, m.snap.FPS, m.snap.Dropped)
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")
	if m.snap.TxError != "" {
		b.WriteString(errorStyle.Render("tx: " + m.snap.TxError))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, f := range m.snap.Fixtures {
		line := fmt.Sprintf("%-16s @%03d  % x", f.Name, f.Base, f.Channels)
		b.WriteString(fixtureStyle.Render(line))
		if f.Summary != "" {
			b.WriteString("  " + f.Summary)
		}
		b.WriteString("\n")
	}

	if m.quitting {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("shutting down..."))
		b.WriteString("\n")
	} else {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("press q to quit"))
		b.WriteString("\n")
	}
	return b.String()
}
