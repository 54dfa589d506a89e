package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jasontate/emotrix/internal/config"
	"github.com/jasontate/emotrix/internal/glyphs"
	"github.com/jasontate/emotrix/internal/rain"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type TickMsg time.Time

// Model drives the rain engine from Bubble Tea's event loop.
type Model struct {
	cfg        *config.Config
	corpusText string

	engine *rain.Engine
	canvas *Canvas
	theme  Theme

	paused bool
	frame  uint64
}

// NewModel prepares a terminal rain session. The engine is built on
// the first WindowSizeMsg, when the real terminal size is known.
func NewModel(cfg *config.Config, corpusText string) Model {
	m := Model{
		cfg:        cfg,
		corpusText: corpusText,
		theme:      GetTheme(cfg.Theme),
	}
	m.rebuild(80, 24)
	return m
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	fps := m.cfg.FPS
	if fps < 1 {
		fps = rain.DefaultFPS
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// rebuild sizes the engine to the terminal: two terminal columns and
// one row per engine cell, minus the header and help lines.
func (m *Model) rebuild(termW, termH int) {
	cols := termW / 2
	rows := termH - 3
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	met := glyphs.Measure(m.cfg.FontSize)
	width := float64(cols) * met.CellWidth
	height := float64(rows) * met.CellHeight

	m.engine = rain.New(m.cfg.Engine(width, height), nil)
	m.engine.SetRamp(m.theme.Ramp)
	m.engine.LoadCorpus(m.corpusText)
	m.canvas = NewCanvas(cols, rows, met)
}

// Update handles input, resizes and tick cadence.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.engine.LoadCorpus(m.corpusText)
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == m.theme.Name {
					m.theme = GetTheme(names[(i+1)%len(names)])
					break
				}
			}
			m.engine.SetRamp(m.theme.Ramp)
		}
	case tea.WindowSizeMsg:
		m.rebuild(msg.Width, msg.Height)
	case TickMsg:
		if m.paused {
			m.engine.Render(m.canvas)
		} else {
			m.engine.Tick(m.canvas)
			m.frame++
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the current frame plus a minimal status line.
func (m Model) View() string {
	status := "RUNNING"
	if m.paused {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(headerStyle.Render("EMOTRIX"))
	s.WriteString(statusStyle.Render(fmt.Sprintf("  %s  theme:%s  frame:%d", status, m.theme.Name, m.frame)))
	s.WriteByte('\n')
	s.WriteString(m.canvas.String())
	s.WriteString(helpStyle.Render("space pause · t theme · r reseed · q quit"))
	return s.String()
}

// RunInteractive starts the TUI and blocks until quit.
func RunInteractive(cfg *config.Config, corpusText string) error {
	p := tea.NewProgram(NewModel(cfg, corpusText), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
