package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	orrery "github.com/WinnCook/real-time-iss-visualization-sub003"
)

// frameMsg drives the animation at a fixed frame rate.
type frameMsg time.Time

const frameInterval = time.Second / 30

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	clockStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type model struct {
	sys    *orrery.System
	width  int
	height int
	status string
}

func newModel(sys *orrery.System) model {
	return model{sys: sys}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return frameCmd()
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		if err := m.sys.Frame(time.Time(msg)); err != nil {
			m.status = err.Error()
		}
		return m, frameCmd()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.sys.Clock().Paused() {
				m.sys.Resume()
			} else {
				m.sys.Pause()
			}
		case "+", "=":
			if err := m.sys.SetTimeSpeed(m.sys.TimeSpeed() * 10); err != nil {
				m.status = err.Error()
			}
		case "-", "_":
			if err := m.sys.SetTimeSpeed(m.sys.TimeSpeed() / 10); err != nil {
				m.status = err.Error()
			}
		case "r":
			m.sys.Reset()
		case "n":
			m.sys.SeekToRealNow()
		}
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	clock := m.sys.Clock()
	header := titleStyle.Render("orrery") + "  " + clockStyle.Render(fmt.Sprintf("%s  elapsed %s  %s",
		clock.SimulationDate().Format("2006-01-02 15:04:05 UTC"),
		clock.FormatElapsed(),
		clock.FormatSpeed()))

	rows := []string{headerStyle.Render(fmt.Sprintf("%-10s %14s %14s %14s %14s", "body", "x", "y", "z", "dist (AU)"))}
	for _, name := range m.sys.Bodies() {
		pos, err := m.sys.Position(name)
		if err != nil {
			rows = append(rows, errStyle.Render(fmt.Sprintf("%-10s %s", name, err)))
			continue
		}
		dist, _ := m.sys.Distance(name)
		rows = append(rows, fmt.Sprintf("%-10s %14.5f %14.5f %14.5f %14.6f", name, pos[0], pos[1], pos[2], dist))
	}

	status := ""
	if m.status != "" {
		status = errStyle.Render(m.status)
	}
	help := helpStyle.Render("space pause/resume · +/- speed · r reset · n now · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, "", lipgloss.JoinVertical(lipgloss.Left, rows...), "", status, help)
}
