// Package tui implements the interactive terminal view: a braille
// canvas on the left, live figure stats and tunable parameters on the
// right.
package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lissa/internal/anim"
	"github.com/san-kum/lissa/internal/audio"
	"github.com/san-kum/lissa/internal/config"
	"github.com/san-kum/lissa/internal/figure"
	"github.com/san-kum/lissa/internal/render"
)

const (
	canvasWidth     = 50
	canvasHeight    = 25
	historyCapacity = 120

	freqStep  = 50.0
	phaseStep = 5.0
	speedStep = 0.1
	trailStep = 500
	gainStep  = 0.05
)

// Selectable parameters, in display order.
const (
	selLeftFreq = iota
	selRightFreq
	selPhase
	selSpeed
	selTrail
	selCount
)

type TickMsg time.Time

// Model holds the session state: shared parameters, the frame
// scheduler, and the optional audio engine.
type Model struct {
	store  *figure.Store
	sched  *anim.Scheduler
	canvas *render.Canvas

	eng     audio.Engine
	backend string
	gain    float64
	muted   bool

	selected int
	showHelp bool
	pausedAt time.Time
	fpsHist  []float64
	lastErr  error
}

// NewModel builds the session from a validated config and starts the
// animation immediately.
func NewModel(cfg *config.Config) Model {
	SetTheme(cfg.Theme)
	store := figure.NewStore(cfg.Params())
	canvas := render.NewCanvas(canvasWidth, canvasHeight)
	sched := anim.New(store, render.NewRenderer(), canvas)
	sched.Start(time.Now())

	m := Model{
		store:   store,
		sched:   sched,
		canvas:  canvas,
		backend: cfg.Audio.Backend,
		gain:    cfg.Audio.Gain,
		fpsHist: make([]float64, 0, historyCapacity),
	}
	if cfg.Audio.Enabled {
		m.toggleAudio()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.shutdown()
			return m, tea.Quit
		case " ":
			if m.sched.Running() {
				m.sched.Stop()
				m.pausedAt = time.Now()
			} else {
				m.sched.Start(time.Now())
			}
		case "tab":
			m.selected = (m.selected + 1) % selCount
		case "up", "k":
			m.adjustParam(1)
		case "down", "j":
			m.adjustParam(-1)
		case "r":
			p := m.store.Update(func(p *figure.Params) { *p = figure.Defaults() })
			m.retune(p)
		case "g":
			m.store.Update(func(p *figure.Params) { p.ShowGrid = !p.ShowGrid })
		case "x":
			m.store.Update(func(p *figure.Params) { p.ShowAxes = !p.ShowAxes })
		case "a":
			m.toggleAudio()
		case "m":
			m.muted = !m.muted
			if m.eng != nil {
				m.eng.SetMuted(m.muted)
			}
		case "+", "=":
			m.setGain(m.gain + gainStep)
		case "-", "_":
			m.setGain(m.gain - gainStep)
		case "t":
			names := ThemeNames()
			for i, name := range names {
				if name == CurrentTheme.Name {
					SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		now := time.Time(msg)
		if m.sched.Running() {
			if rate, published := m.sched.Tick(now); published {
				m.fpsHist = append(m.fpsHist, float64(rate))
				if len(m.fpsHist) > historyCapacity {
					m.fpsHist = m.fpsHist[1:]
				}
			}
		} else {
			// keep the frozen frame current while parameters change
			m.sched.Redraw(m.pausedAt)
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) adjustParam(dir float64) {
	p := m.store.Update(func(p *figure.Params) {
		switch m.selected {
		case selLeftFreq:
			p.LeftFreq += dir * freqStep
		case selRightFreq:
			p.RightFreq += dir * freqStep
		case selPhase:
			p.PhaseDeg = math.Mod(p.PhaseDeg+dir*phaseStep+360, 360)
		case selSpeed:
			p.Speed += dir * speedStep
		case selTrail:
			p.Trail += int(dir) * trailStep
		}
	})
	m.retune(p)
}

func (m *Model) retune(p figure.Params) {
	if m.eng == nil {
		return
	}
	m.eng.SetTones(p.LeftFreq, p.RightFreq, p.PhaseDeg*math.Pi/180)
}

func (m *Model) toggleAudio() {
	if m.eng != nil {
		m.eng.Close()
		m.eng = nil
		return
	}
	eng, err := audio.Open(m.backend)
	m.lastErr = err
	if err != nil {
		return
	}
	m.eng = eng
	m.eng.SetGains(m.gain, m.gain)
	m.eng.SetMuted(m.muted)
	m.retune(m.store.Snapshot())
}

func (m *Model) setGain(g float64) {
	if g < 0 {
		g = 0
	} else if g > 1 {
		g = 1
	}
	m.gain = g
	if m.eng != nil {
		m.eng.SetGains(g, g)
	}
}

// shutdown stops the frame loop before the audio device goes away, so
// no tick retunes a closed engine.
func (m *Model) shutdown() {
	m.sched.Stop()
	if m.eng != nil {
		m.eng.Close()
		m.eng = nil
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	p := m.store.Snapshot()
	r := figure.Reduce(p.LeftFreq, p.RightFreq)
	pat := figure.Classify(p)

	canvasView := canvasStyle.Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(pat.Name)) + "\n")
	status := "RUNNING"
	if !m.sched.Running() {
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s\n\n", status))

	if len(m.fpsHist) > 1 {
		chart := asciigraph.Plot(m.fpsHist, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("FPS"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(labelStyle.Render("Ratio") + valueStyle.Render(r.String()) + "\n")
	s.WriteString(labelStyle.Render("Symmetry") + valueStyle.Render(pat.Symmetry) + "\n")
	s.WriteString(labelStyle.Render("Period") + valueStyle.Render(fmt.Sprintf("%d cycles", figure.PeriodCycles(r))) + "\n")
	s.WriteString(labelStyle.Render("FPS") + valueStyle.Render(fmt.Sprintf("%d", m.sched.Rate())) + "\n")

	audioLine := "off"
	if m.eng != nil {
		audioLine = fmt.Sprintf("%s  gain %.2f", m.eng.Name(), m.gain)
		if m.muted {
			audioLine += "  muted"
		}
	}
	s.WriteString(labelStyle.Render("Audio") + valueStyle.Render(audioLine) + "\n")
	if m.lastErr != nil {
		s.WriteString(errorStyle.Render(m.lastErr.Error()) + "\n")
	}

	s.WriteString("\nPARAMETERS\n")
	for i, row := range paramRows(p) {
		if i == m.selected {
			s.WriteString(activeParamStyle.Render("> "+row) + "\n")
		} else {
			s.WriteString("  " + labelStyle.Render(row) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("\n─────────────────────\nSP:Pause R:Reset Q:Quit\nT:Theme  A:Audio ?:Help\nTab:Select ↑↓:Tune"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter       ║
║  Down/J   - Decrease parameter       ║
║  R        - Reset parameters         ║
║  G        - Toggle grid              ║
║  X        - Toggle axes              ║
║  A        - Toggle audio             ║
║  M        - Mute audio               ║
║  +/-      - Adjust gain              ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func paramRows(p figure.Params) []string {
	return []string{
		fmt.Sprintf("%-10s %s %.0f Hz", "left freq", bar(norm(p.LeftFreq, figure.MinFreq, figure.MaxFreq)), p.LeftFreq),
		fmt.Sprintf("%-10s %s %.0f Hz", "right freq", bar(norm(p.RightFreq, figure.MinFreq, figure.MaxFreq)), p.RightFreq),
		fmt.Sprintf("%-10s %s %.0f°", "phase", bar(p.PhaseDeg/360), p.PhaseDeg),
		fmt.Sprintf("%-10s %s %.1fx", "speed", bar(norm(p.Speed, figure.MinSpeed, figure.MaxSpeed)), p.Speed),
		fmt.Sprintf("%-10s %s %d", "trail", bar(norm(float64(p.Trail), figure.MinTrail, figure.MaxTrail)), p.Trail),
	}
}

func norm(v, lo, hi float64) float64 {
	return (v - lo) / (hi - lo)
}

func bar(ratio float64) string {
	const barWidth = 10
	if ratio > 1 {
		ratio = 1
	} else if ratio < 0 {
		ratio = 0
	}
	filled := int(ratio * float64(barWidth))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled) + "]"
}

// Run opens the interactive view and blocks until it exits.
func Run(cfg *config.Config) error {
	m := NewModel(cfg)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if fm, ok := final.(Model); ok {
		fm.shutdown()
	}
	return err
}
