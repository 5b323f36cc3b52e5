package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r2"
	"robot-rig.klederson.com/internal/config"
	"robot-rig.klederson.com/internal/demo"
	"robot-rig.klederson.com/internal/render"
	"robot-rig.klederson.com/internal/rig"
	"robot-rig.klederson.com/internal/sensors"
	"robot-rig.klederson.com/internal/telemetry"
	"robot-rig.klederson.com/internal/ui"
)

// Rig content starts inside the panel border, below the menu bar.
const (
	rigOriginCol = 1
	rigOriginRow = config.MenuHeight + 1
)

// shared holds state shared between the Bubble Tea model copies and main.go.
// Because Bubble Tea uses value receivers, pointer fields ensure all copies
// see the same underlying data.
type shared struct {
	cfg      *config.Config
	tracker  *rig.Tracker
	drive    *rig.Drive
	gripper  *rig.Gripper
	history  *History
	recorder *telemetry.Recorder
	driver   *demo.Driver
	logger   *zap.Logger
	now      func() time.Time

	lastSector int
}

// Options configures optional collaborators.
type Options struct {
	Demo     bool                // drive the cursor synthetically
	Track    bool                // start with tracking enabled
	Recorder *telemetry.Recorder // nil disables recording
	Logger   *zap.Logger         // nil disables logging
}

// layout is recomputed on every resize.
type layout struct {
	rigW, sideW int
	bodyH       int
	sensorH     int
	viewport    render.Viewport
}

// AppModel is the root Bubble Tea model for the robot rig.
type AppModel struct {
	width  int
	height int
	layout layout

	demoMode bool

	shared *shared
}

// New creates a new AppModel.
func New(cfg *config.Config, opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &shared{
		cfg:        cfg,
		tracker:    rig.NewTracker(cfg.Sensors),
		drive:      rig.NewDrive(cfg.Wheels, cfg.Heading),
		gripper:    rig.NewGripper(cfg.Gripper),
		recorder:   opts.Recorder,
		logger:     logger,
		history:    NewHistory(cfg.Display.HistoryLen),
		now:        time.Now,
		lastSector: -1,
	}
	s.tracker.SetEnabled(opts.Track || opts.Demo)

	return AppModel{
		demoMode: opts.Demo,
		shared:   s,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = computeLayout(m.width, m.height, m.shared.cfg)
		m.shared.tracker.SetCenter(m.platformCenter())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.width == 0 {
			return m, nil
		}
		m.handleCursor(m.layout.viewport.PixelAt(msg.X, msg.Y))
		return m, nil

	case demo.PointerMsg:
		m.handleCursor(r2.Add(m.shared.tracker.Center(), msg.Offset))
		return m, nil

	case TickMsg:
		m.shared.drive.Step(time.Time(msg))
		return m, m.tickCmd()
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.shared
	now := s.now()

	switch rig.Lookup(msg.String()) {
	case rig.ActionQuit:
		m.Stop()
		return m, tea.Quit

	case rig.ActionToggleTracking:
		on := s.tracker.Toggle()
		s.logger.Info("tracking toggled", zap.Bool("enabled", on))

	case rig.ActionLeftPower:
		s.drive.Left.Press(now)
	case rig.ActionRightPower:
		s.drive.Right.Press(now)
	case rig.ActionStopAll:
		s.drive.StopAll()

	case rig.ActionLeftSlower:
		s.drive.Left.Slower()
	case rig.ActionLeftFaster:
		s.drive.Left.Faster()
	case rig.ActionLeftFlip:
		s.drive.Left.Flip()
	case rig.ActionRightSlower:
		s.drive.Right.Slower()
	case rig.ActionRightFaster:
		s.drive.Right.Faster()
	case rig.ActionRightFlip:
		s.drive.Right.Flip()

	case rig.ActionGripperToggle:
		s.gripper.Toggle()
	case rig.ActionGripperUp:
		s.gripper.Raise()
	case rig.ActionGripperDown:
		s.gripper.Lower()
	case rig.ActionSliderUp:
		s.gripper.Nudge(s.cfg.Gripper.SliderStep)
	case rig.ActionSliderDown:
		s.gripper.Nudge(-s.cfg.Gripper.SliderStep)
	}

	return m, nil
}

// handleCursor feeds a cursor position, in rig pixels, through the tracker
// and fans the resulting frame out to history, recording and logging.
func (m AppModel) handleCursor(cursor r2.Vec) {
	s := m.shared
	frame, ok := s.tracker.Move(cursor)
	if !ok {
		return
	}

	s.history.Record(frame)

	if idx := frame.Sector.Index(); idx != s.lastSector {
		active := frame.Sector.Active()
		s.logger.Debug("sector changed",
			zap.Int("sector", idx+1),
			zap.Float64("angle", frame.Angle),
			zap.Ints("active", active[:]))
		s.lastSector = idx
	}

	if err := s.recorder.Record(s.now(), frame); err != nil {
		s.logger.Error("recording frame", zap.Error(err))
	}
}

// platformCenter returns the rig-pixel position of the platform center in
// screen coordinates.
func (m AppModel) platformCenter() r2.Vec {
	v := m.layout.viewport
	return v.PixelAt(rigOriginCol+v.CenterCol, rigOriginRow+v.CenterRow)
}

func computeLayout(width, height int, cfg *config.Config) layout {
	bodyH := height - config.MenuHeight - config.StatusHeight
	if bodyH < 5 {
		bodyH = 5
	}

	rigW := width * 3 / 5
	if rigW < config.RigPanelMin {
		rigW = config.RigPanelMin
	}
	sideW := width - rigW
	if sideW < config.SidePanelMin {
		sideW = config.SidePanelMin
		rigW = width - sideW
	}

	sensorH := sensors.AxisCount + 4
	if sensorH > bodyH-3 {
		sensorH = max(bodyH-3, 3)
	}

	innerW := rigW - 4
	innerH := bodyH - 4
	if innerW < 5 {
		innerW = 5
	}
	if innerH < 3 {
		innerH = 3
	}

	return layout{
		rigW:     rigW,
		sideW:    sideW,
		bodyH:    bodyH,
		sensorH:  sensorH,
		viewport: render.NewViewport(innerW, innerH, cfg.Display.AspectRatio, cfg.Sensors.DonutMax),
	}
}

func (m AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing robot rig..."
	}

	s := m.shared
	now := s.now()
	frame := s.tracker.Frame()
	l := m.layout

	menuBar := ui.RenderMenuBar(m.width, s.tracker.Enabled(), m.demoMode)

	scene := render.Scene{
		Params:         s.cfg.Sensors,
		PlatformRadius: s.cfg.Display.PlatformRadius,
		ArrowLength:    s.cfg.Heading.ArrowLength,
		Readings:       frame.Readings,
		Heading:        s.drive.Heading.Angle,
		Left:           render.Wheel{Arrow: s.drive.Left.Arrow(), Powered: s.drive.Left.Powered(now)},
		Right:          render.Wheel{Arrow: s.drive.Right.Arrow(), Powered: s.drive.Right.Powered(now)},
	}
	if cursor, seen := s.tracker.Cursor(); seen && s.tracker.Enabled() {
		scene.Cursor = r2.Sub(cursor, s.tracker.Center())
		scene.ShowCursor = true
	}
	rigContent := render.Render(l.viewport, scene)
	legend := render.RenderLegend(l.viewport.Width)
	rigPanel := ui.RenderRigPanel(l.rigW, l.bodyH, rigContent, legend, s.tracker.Enabled())

	sensorPanel := ui.RenderSensorPanel(frame, s.cfg.Sensors, s.history.Snapshot(), l.sideW, l.sensorH)
	controlPanel := ui.RenderControlPanel(s.drive, s.gripper, s.tracker, now, l.sideW, l.bodyH-l.sensorH)
	side := sensorPanel + "\n" + controlPanel

	statusBar := ui.RenderStatusBar(m.width, s.tracker.Enabled(), frame,
		s.drive.Heading.Angle, s.gripper.Percent(), s.recorder.Rows())

	return ui.ComposeLayout(menuBar, rigPanel, side, statusBar)
}

// StartDemo starts the synthetic pointer driver in demo mode. Must be
// called before p.Run().
func (m *AppModel) StartDemo(p *tea.Program) {
	if !m.demoMode {
		return
	}
	m.shared.driver = demo.NewDriver(m.shared.cfg.Sensors)
	m.shared.driver.Start(p)
	m.shared.logger.Info("demo driver started")
}

// Stop halts background collaborators.
func (m AppModel) Stop() {
	if m.shared.driver != nil {
		m.shared.driver.Stop()
	}
}

func (m AppModel) tickCmd() tea.Cmd {
	return tea.Tick(m.shared.cfg.FrameInterval(), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
