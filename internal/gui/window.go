// Package gui renders the figure in a raylib window with a glow
// marker and a faded trail, mirroring the terminal view's key map.
package gui

import (
	"fmt"
	"math"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/lissa/internal/anim"
	"github.com/san-kum/lissa/internal/audio"
	"github.com/san-kum/lissa/internal/config"
	"github.com/san-kum/lissa/internal/figure"
	"github.com/san-kum/lissa/internal/render"
)

const winSize = 500

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	colBg      = rl.NewColor(10, 10, 10, 255)    // Deep Black
	colGrid    = rl.NewColor(30, 30, 30, 255)    // Barely visible grid
	colAxis    = rl.NewColor(60, 60, 60, 255)    // Dark Gray
	colTrail   = rl.NewColor(255, 255, 255, 255) // Bright White
	colAccent  = rl.NewColor(180, 180, 180, 255) // Soft White
	colSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
	colText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	colTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
)

// Parameter adjustment steps, matching the terminal view.
const (
	freqStep  = 50.0
	phaseStep = 5.0
	speedStep = 0.1
	trailStep = 500
	gainStep  = 0.05
)

// Selectable parameters, in tab order.
const (
	selLeftFreq = iota
	selRightFreq
	selPhase
	selSpeed
	selTrail
	selCount
)

type App struct {
	store *figure.Store
	sched *anim.Scheduler

	eng     audio.Engine
	backend string
	gain    float64
	muted   bool

	selected int
	pausedAt time.Time
	lastErr  error
	quit     bool

	font rl.Font
}

func initWindow() {
	rl.InitWindow(winSize, winSize, "lissa")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func newApp(cfg *config.Config) *App {
	store := figure.NewStore(cfg.Params())
	sched := anim.New(store, render.NewRenderer(), canvasSurface{})
	sched.Start(time.Now())

	a := &App{
		store:   store,
		sched:   sched,
		backend: cfg.Audio.Backend,
		gain:    cfg.Audio.Gain,
		font:    loadFont(),
	}
	if cfg.Audio.Enabled {
		a.toggleAudio()
	}
	return a
}

// Run opens the window view and blocks until it closes.
func Run(cfg *config.Config) {
	initWindow()
	defer rl.CloseWindow()
	a := newApp(cfg)
	a.runLoop()
}

func (a *App) runLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.update()
		a.draw()
	}
	a.shutdown()
}

func (a *App) update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		if a.sched.Running() {
			a.sched.Stop()
			a.pausedAt = time.Now()
		} else {
			a.sched.Start(time.Now())
		}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		a.selected = (a.selected + 1) % selCount
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.adjustParam(1)
	}
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.adjustParam(-1)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		p := a.store.Update(func(p *figure.Params) { *p = figure.Defaults() })
		a.retune(p)
	}
	if rl.IsKeyPressed(rl.KeyG) {
		a.store.Update(func(p *figure.Params) { p.ShowGrid = !p.ShowGrid })
	}
	if rl.IsKeyPressed(rl.KeyX) {
		a.store.Update(func(p *figure.Params) { p.ShowAxes = !p.ShowAxes })
	}
	if rl.IsKeyPressed(rl.KeyA) {
		a.toggleAudio()
	}
	if rl.IsKeyPressed(rl.KeyM) {
		a.muted = !a.muted
		if a.eng != nil {
			a.eng.SetMuted(a.muted)
		}
	}
	if rl.IsKeyPressed(rl.KeyEqual) {
		a.setGain(a.gain + gainStep)
	}
	if rl.IsKeyPressed(rl.KeyMinus) {
		a.setGain(a.gain - gainStep)
	}
}

func (a *App) adjustParam(dir float64) {
	p := a.store.Update(func(p *figure.Params) {
		switch a.selected {
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
	a.retune(p)
}

func (a *App) retune(p figure.Params) {
	if a.eng == nil {
		return
	}
	a.eng.SetTones(p.LeftFreq, p.RightFreq, p.PhaseDeg*math.Pi/180)
}

func (a *App) toggleAudio() {
	if a.eng != nil {
		a.eng.Close()
		a.eng = nil
		return
	}
	eng, err := audio.Open(a.backend)
	a.lastErr = err
	if err != nil {
		return
	}
	a.eng = eng
	a.eng.SetGains(a.gain, a.gain)
	a.eng.SetMuted(a.muted)
	a.retune(a.store.Snapshot())
}

func (a *App) setGain(g float64) {
	if g < 0 {
		g = 0
	} else if g > 1 {
		g = 1
	}
	a.gain = g
	if a.eng != nil {
		a.eng.SetGains(g, g)
	}
}

// shutdown stops the frame loop before the audio device goes away.
func (a *App) shutdown() {
	a.sched.Stop()
	if a.eng != nil {
		a.eng.Close()
		a.eng = nil
	}
}

func (a *App) draw() {
	rl.BeginDrawing()
	if a.sched.Running() {
		a.sched.Tick(time.Now())
	} else {
		a.sched.Redraw(a.pausedAt)
	}
	a.drawHUD()
	rl.EndDrawing()
}

func (a *App) drawHUD() {
	p := a.store.Snapshot()
	r := figure.Reduce(p.LeftFreq, p.RightFreq)
	pat := figure.Classify(p)

	a.drawText("lissa", 16, 14, 20, colSelect)
	a.drawText(fmt.Sprintf(":: %s %s", pat.Name, r.String()), 82, 18, 14, colText)

	status := "RUNNING"
	col := colSelect
	if !a.sched.Running() {
		status = "PAUSED"
		col = colTextDim
	}
	a.drawText(status, 416, 16, 14, col)

	a.drawText("> "+paramLine(p, a.selected), 16, 42, 14, colAccent)

	if a.lastErr != nil {
		a.drawText(a.lastErr.Error(), 16, 438, 12, rl.Red)
	}
	audioLine := "AUDIO [OFF]"
	if a.eng != nil {
		audioLine = fmt.Sprintf("AUDIO [%s] gain %.2f", strings.ToUpper(a.eng.Name()), a.gain)
		if a.muted {
			audioLine += " muted"
		}
	}
	a.drawText(audioLine, 16, 456, 12, colText)

	a.drawText(fmt.Sprintf("%d FPS", a.sched.Rate()), 16, 476, 12, colTextDim)
	a.drawText("[SPACE] PAUSE  [TAB] PARAM  [UP/DN] TUNE  [A] AUDIO  [Q] QUIT", 90, 476, 12, colTextDim)
}

func paramLine(p figure.Params, sel int) string {
	switch sel {
	case selLeftFreq:
		return fmt.Sprintf("left freq  %.0f Hz", p.LeftFreq)
	case selRightFreq:
		return fmt.Sprintf("right freq %.0f Hz", p.RightFreq)
	case selPhase:
		return fmt.Sprintf("phase      %.0f deg", p.PhaseDeg)
	case selSpeed:
		return fmt.Sprintf("speed      %.1fx", p.Speed)
	case selTrail:
		return fmt.Sprintf("trail      %d", p.Trail)
	}
	return ""
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
