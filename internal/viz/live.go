package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/boxdiff/internal/lattice"
	"github.com/san-kum/boxdiff/internal/master"
)

const (
	canvasWidth     = 60
	canvasHeight    = 18
	historyCapacity = 600
)

type TickMsg time.Time

// Model drives the live terminal view of a running integration.
type Model struct {
	scenario      string
	initial       lattice.Dist
	dist          lattice.Dist
	scratch       lattice.Dist
	k, initialK   float64
	dt            float64
	step          int
	stepsPerFrame int
	running       bool
	showHelp      bool
	canvas        *Canvas
	flatHistory   []float64
}

func NewModel(scenarioName string, initial lattice.Dist, k, dt float64, stepsPerFrame int) Model {
	if stepsPerFrame < 1 {
		stepsPerFrame = 1
	}
	return Model{
		scenario:      scenarioName,
		initial:       initial.Clone(),
		dist:          initial.Clone(),
		scratch:       make(lattice.Dist, len(initial)),
		k:             k,
		initialK:      k,
		dt:            dt,
		stepsPerFrame: stepsPerFrame,
		running:       true,
		canvas:        NewCanvas(canvasWidth, canvasHeight),
		flatHistory:   make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "up", "k":
			m.k *= 1.05
		case "down", "j":
			m.k *= 0.95
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.advance()
		}
		return m, tea.Tick(time.Second/30, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) advance() {
	for i := 0; i < m.stepsPerFrame; i++ {
		master.Step(m.dist, m.scratch, m.k, m.dt)
		m.dist, m.scratch = m.scratch, m.dist
		m.step++
	}

	m.flatHistory = append(m.flatHistory, m.dist.MaxDeviation())
	if len(m.flatHistory) > historyCapacity {
		m.flatHistory = m.flatHistory[1:]
	}
}

func (m *Model) reset() {
	copy(m.dist, m.initial)
	m.step = 0
	m.k = m.initialK
	m.flatHistory = m.flatHistory[:0]
}

func (m *Model) draw() {
	m.canvas.Clear()

	cw, ch := m.canvas.Width*2, m.canvas.Height*4
	n := len(m.dist)
	yMax := 0.0
	for _, v := range m.dist {
		if v > yMax {
			yMax = v
		}
	}
	if yMax <= 0 {
		yMax = 1
	}

	for x := 0; x < cw; x++ {
		i := x * n / cw
		h := int(m.dist[i] / yMax * float64(ch-1))
		m.canvas.VLine(x, ch-1-h, ch-1)
	}
}

func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.scenario)) + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString("PAUSED\n\n")
	}

	if len(m.flatHistory) > 1 {
		chart := asciigraph.Plot(m.flatHistory,
			asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Flatness"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Time") + valueStyle.Render(fmt.Sprintf("%.2f", float64(m.step)*m.dt)) + "\n")
	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprint(m.step)) + "\n")
	s.WriteString(labelStyle.Render("Mass") + valueStyle.Render(fmt.Sprintf("%.9f", m.dist.Sum())) + "\n")
	s.WriteString(labelStyle.Render("Flatness") + valueStyle.Render(fmt.Sprintf("%.6f", m.dist.MaxDeviation())) + "\n")
	s.WriteString(labelStyle.Render("K") + valueStyle.Render(fmt.Sprintf("%.4f", m.k)) + "\n")

	kdt := m.k * m.dt
	if kdt < 0.5 {
		s.WriteString(labelStyle.Render("K*Dt") + valueStyle.Render(fmt.Sprintf("%.4f", kdt)) + "\n")
	} else {
		s.WriteString(labelStyle.Render("K*Dt") + warnStyle.Render(fmt.Sprintf("%.4f UNSTABLE", kdt)) + "\n")
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\n↑↓:Tune K ?:Help"))
	statsView := statsStyle.Render(s.String())

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset to initial state   ║
║  Up/K     - Increase hop rate (+5%)  ║
║  Down/J   - Decrease hop rate (-5%)  ║
║  Q        - Quit                     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}
