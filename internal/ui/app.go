// Package ui is the interactive terminal front-end: it feeds the pointer
// position through the smoother every frame and draws the resulting traces.
package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/geom"
	"github.com/cwbudde/algo-smooth/dsp/signal"
	"github.com/cwbudde/algo-smooth/dsp/smoother"
	"github.com/cwbudde/algo-smooth/internal/config"
	"github.com/cwbudde/algo-smooth/internal/log"
	"github.com/cwbudde/algo-smooth/plot"
)

// maxFrameStep bounds dt after stalls so simulators do not jump.
const maxFrameStep = 250 * time.Millisecond

// frameMsg drives one simulation step.
type frameMsg time.Time

// ConfigMsg delivers a reloaded configuration into the update loop.
type ConfigMsg struct {
	Config *config.Config
}

// openedMsg reports the result of opening a generated plot.
type openedMsg struct {
	path string
	err  error
}

// Options wires the model to its environment.
type Options struct {
	Config *config.Config
	Logger *zap.Logger
	// Open displays a written plot file. Nil disables opening.
	Open func(path string) error
	// Now stamps plot file names. Defaults to time.Now.
	Now func() time.Time
}

// Model is the root bubbletea model.
type Model struct {
	cfg    *config.Config
	logger *zap.Logger
	open   func(string) error
	now    func() time.Time

	smoother *smoother.Smoother
	tremor   *signal.Tremor
	drift    *signal.Drift

	view       ViewTransform
	visibility Visibility
	metrics    *Metrics
	indicator  ParamIndicator
	modal      settingsModal

	history bool
	width   int
	height  int

	pointer    geom.Point
	hasPointer bool
	dragging   bool
	dragFrom   geom.Point

	lastFrame time.Time
	sample    smoother.Sample
	hasSample bool

	status    string
	statusErr bool
}

// New builds the model from opts.Config.
func New(opts Options) (Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return Model{}, err
	}
	s, err := smoother.New(cfg.SmootherConfig())
	if err != nil {
		return Model{}, err
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	m := Model{
		cfg:      cfg,
		logger:   log.Adjust(opts.Logger),
		open:     opts.Open,
		now:      opts.Now,
		smoother: s,
		tremor:   signal.NewTremor(cfg.Tremor.Seed),
		drift:    signal.NewDrift(),
		view:     NewViewTransform(),
		metrics:  NewMetrics(cfg.Display.MetricsHistory),
		history:  cfg.Display.History,
	}
	m.modal.input = newModalInput()
	m.applySimulators()
	m.resetVisibility()
	return m, nil
}

func (m *Model) applySimulators() {
	t := m.cfg.Tremor
	m.tremor.SetIntensity(t.Intensity)
	m.tremor.SetFrequency(t.Frequency)
	m.tremor.SetEnabled(t.Enabled)

	d := m.cfg.Drift
	m.drift.SetSpeed(d.Speed)
	m.drift.SetDirection(d.Direction)
	m.drift.SetEnabled(d.Enabled)
}

func (m *Model) resetVisibility() {
	for _, v := range smoother.Variants() {
		m.visibility.Set(v, m.cfg.Visible(v))
	}
}

// Smoother exposes the engine for inspection.
func (m Model) Smoother() *smoother.Smoother { return m.smoother }

func (m Model) frameInterval() time.Duration {
	sc := core.ApplyStreamOptions(core.WithFrameRate(float64(m.cfg.Display.FrameRate)))
	return time.Duration(sc.FrameInterval() * float64(time.Second))
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frameInterval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		m.frame(time.Time(msg))
		return m, m.tick()

	case ConfigMsg:
		m.applyConfig(msg.Config)
		return m, nil

	case openedMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("open %s: %v", msg.path, msg.err), true)
			m.logger.Warn("open plot failed", log.PathField(msg.path), zap.Error(msg.err))
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// frame advances the simulators to now and feeds one sample.
func (m *Model) frame(now time.Time) {
	dt := m.frameInterval()
	if !m.lastFrame.IsZero() {
		dt = min(max(now.Sub(m.lastFrame), 0), maxFrameStep)
	}
	m.lastFrame = now

	m.indicator.Update(dt)
	m.view.Ease(zoomEase)
	if dt > 0 {
		m.metrics.AddFPS(1 / dt.Seconds())
	}
	if !m.hasPointer {
		return
	}

	start := time.Now()
	secs := dt.Seconds()
	input := m.tremor.Apply(m.pointer, secs)
	input = m.drift.Apply(input, secs)
	m.sample = m.smoother.AddSample(input.X, input.Y, m.history, m.drift.Offset())
	m.hasSample = true
	m.metrics.AddLatency(float64(time.Since(start).Microseconds()) / 1000)
}

func (m *Model) applyConfig(cfg *config.Config) {
	if cfg == nil {
		return
	}
	prev := m.cfg
	m.cfg = cfg
	if cfg.SmootherConfig() != prev.SmootherConfig() {
		s, err := smoother.New(cfg.SmootherConfig())
		if err != nil {
			m.cfg = prev
			m.setStatus("config rejected: "+err.Error(), true)
			m.logger.Error("config rejected", zap.Error(err))
			return
		}
		m.smoother = s
		m.hasSample = false
	}
	if cfg.Tremor != prev.Tremor || cfg.Drift != prev.Drift {
		m.applySimulators()
	}
	if cfg.Display.Visible != prev.Display.Visible {
		m.resetVisibility()
	}
	if cfg.Display.MetricsHistory != prev.Display.MetricsHistory {
		m.metrics = NewMetrics(cfg.Display.MetricsHistory)
	}
	m.history = cfg.Display.History
	m.setStatus("config reloaded", false)
	m.logger.Info("config reloaded", log.SmootherFields(m.smoother)...)
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func (m *Model) paramChanged() {
	m.indicator.Trigger(m.cfg.Display.IndicatorDuration)
	m.logger.Debug("parameters changed", log.SmootherFields(m.smoother)...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal.active {
		return m, m.modal.handleKey(msg)
	}

	key := msg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		m.logger.Info("quit", log.SmootherFields(m.smoother)...)
		return m, tea.Quit
	case "up":
		m.smoother.ChangeWindow(1)
		m.paramChanged()
	case "down":
		m.smoother.ChangeWindow(-1)
		m.paramChanged()
	case "right":
		m.smoother.ChangeAlpha(m.cfg.Smoother.AlphaStep)
		m.paramChanged()
	case "left":
		m.smoother.ChangeAlpha(-m.cfg.Smoother.AlphaStep)
		m.paramChanged()
	case "h":
		if m.history {
			m.smoother.ClearHistory()
		}
		m.history = !m.history
	case "r":
		m.reset()
	case "g":
		return m, m.generatePlot()
	case "t":
		m.modal.open("Tremor settings", tremorFields(m.tremor))
	case "d":
		m.modal.open("Drift settings", driftFields(m.drift))
	default:
		if v, ok := variantForKey(key); ok {
			m.visibility.Toggle(v)
			m.logger.Debug("visibility toggled", log.VariantField(v), zap.Bool("visible", m.visibility.Visible(v)))
		}
	}
	return m, nil
}

// reset restores the smoother, history, simulators, view and visibility.
func (m *Model) reset() {
	m.smoother.Reset()
	m.history = m.cfg.Display.History
	m.tremor.Reset()
	m.drift.Reset()
	m.applySimulators()
	m.view.Reset()
	m.resetVisibility()
	m.hasSample = false
	m.dragging = false
	m.setStatus("reset", false)
	m.logger.Info("reset", log.SmootherFields(m.smoother)...)
}

func (m *Model) generatePlot() tea.Cmd {
	opts := plot.DefaultOptions()
	opts.GridSize = m.cfg.Plot.GridSize
	files, err := plot.WriteFiles(m.cfg.Plot.OutputDir, m.smoother, m.now(), opts)
	if err != nil {
		m.setStatus("plot: "+err.Error(), true)
		m.logger.Warn("plot failed", zap.Error(err))
		return nil
	}
	m.setStatus("plot written to "+m.cfg.Plot.OutputDir, false)
	m.logger.Info("plot written", log.PathField(files.Trace3D), zap.String("density", files.Density))

	if !m.cfg.Plot.Open || m.open == nil {
		return nil
	}
	var cmds []tea.Cmd
	for _, path := range []string{files.Trace3D, files.Density} {
		if path == "" {
			continue
		}
		open := m.open
		cmds = append(cmds, func() tea.Msg {
			return openedMsg{path: path, err: open(path)}
		})
	}
	return tea.Batch(cmds...)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.modal.active {
		return m, nil
	}
	pos := cellToPoint(msg.X, msg.Y-headerHeight)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.view.ZoomBy(zoomFactor)
		case tea.MouseButtonWheelDown:
			m.view.ZoomBy(1 / zoomFactor)
		case tea.MouseButtonRight:
			m.dragging = true
			m.dragFrom = pos
		default:
			m.movePointer(pos)
		}
	case tea.MouseActionMotion:
		if m.dragging {
			m.view.PanBy(pos.Sub(m.dragFrom))
			m.dragFrom = pos
			return m, nil
		}
		m.movePointer(pos)
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonRight || m.dragging {
			m.dragging = false
		}
	}
	return m, nil
}

func (m *Model) movePointer(pos geom.Point) {
	m.pointer = pos
	m.hasPointer = true
}
