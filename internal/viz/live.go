package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/strikeball/internal/config"
	"github.com/san-kum/strikeball/internal/input"
	"github.com/san-kum/strikeball/internal/sim"
)

const (
	width           = 40
	height          = 24
	historyCapacity = 600

	// Terminal cells are mapped to joystick canvas units with these
	// sizes so a drag across a few cells spans the stick's reach.
	PixelsPerColumn = 10.0
	PixelsPerRow    = 20.0
)

var (
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(44)
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
)

type TickMsg time.Time

// stickView records what the joystick would draw on screen.
type stickView struct {
	anchor mgl64.Vec2
	handle mgl64.Vec2
}

func (v *stickView) SetPosition(anchor mgl64.Vec2)       { v.anchor = anchor }
func (v *stickView) SetHandlePosition(offset mgl64.Vec2) { v.handle = offset }

// Model runs one game and renders it every tick.
type Model struct {
	cfg          *config.Config
	game         *sim.Simulator
	pointer      *input.Pointer
	stick        *stickView
	canvas       *Canvas
	lane         Lane
	frame        sim.Frame
	history      []sim.Frame
	speedHistory []float64
	playHead     int
	running      bool
	finished     bool
	showHelp     bool
	flash        int
	lastHit      string
	frameRate    int
	stepsPerTick int
}

// NewModel builds a live game from cfg rendered at fps frames per second.
func NewModel(cfg *config.Config, fps int) (Model, error) {
	if fps <= 0 {
		fps = 30
	}
	steps := int(1/(float64(fps)*cfg.Dt) + 0.5)
	if steps < 1 {
		steps = 1
	}

	canvas := NewCanvas(width, height)
	m := Model{
		cfg:          cfg,
		pointer:      input.NewPointer(),
		stick:        &stickView{},
		canvas:       canvas,
		lane:         NewLane(cfg, canvas),
		frameRate:    fps,
		stepsPerTick: steps,
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.frameRate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Game exposes the running simulator.
func (m Model) Game() *sim.Simulator { return m.game }

// Update handles input events and steps the game.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.game.Close()
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			if err := m.reset(); err != nil {
				return m, tea.Quit
			}
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			NextTheme()
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	case TickMsg:
		if m.running && !m.finished {
			if m.playHead == -1 {
				for i := 0; i < m.stepsPerTick; i++ {
					m.step()
				}
			} else {
				m.playHead++
				if m.playHead >= len(m.history) {
					m.playHead = -1
				}
			}
		}
		if m.flash > 0 {
			m.flash--
		}
		return m, m.tick()
	}
	return m, nil
}

// handleMouse forwards terminal drags to the pointer in canvas units with
// y pointing up the lane.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := mgl64.Vec2{float64(msg.X) * PixelsPerColumn, -float64(msg.Y) * PixelsPerRow}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pointer.Press(pos)
		}
	case tea.MouseActionMotion:
		m.pointer.Move(pos)
	case tea.MouseActionRelease:
		m.pointer.Release(pos)
	}
}

func (m *Model) step() {
	f := m.game.Step(m.cfg.Dt)
	m.frame = f

	if len(f.Hits) > 0 {
		h := f.Hits[len(f.Hits)-1]
		m.lastHit = fmt.Sprintf("%s %s", h.Entity, h.Hit.Kind)
		m.flash = m.frameRate / 4
	}

	m.speedHistory = append(m.speedHistory, f.Ball.Speed())
	if len(m.speedHistory) > historyCapacity {
		m.speedHistory = m.speedHistory[1:]
	}
	m.history = append(m.history, f)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}

	if f.Time >= m.cfg.Duration {
		m.finished = true
	}
}

// scrub changes the playback position in history.
func (m *Model) scrub(dir int) {
	if m.playHead == -1 {
		if len(m.history) > 0 {
			m.playHead = len(m.history) - 1
			m.running = false
		} else {
			return
		}
	}
	m.playHead += dir
	if m.playHead < 0 {
		m.playHead = 0
	}
	if m.playHead >= len(m.history) {
		m.playHead = -1
	}
}

// reset starts a fresh round with the same config.
func (m *Model) reset() error {
	if m.game != nil {
		m.game.Close()
	}
	m.pointer = input.NewPointer()
	m.stick = &stickView{}
	game, err := sim.NewGame(m.cfg, m.pointer, m.stick)
	if err != nil {
		return err
	}
	game.Serve()
	m.game = game
	m.frame = sim.Frame{}
	m.history = m.history[:0]
	m.speedHistory = m.speedHistory[:0]
	m.playHead = -1
	m.running = true
	m.finished = false
	m.flash = 0
	m.lastHit = ""
	return nil
}

func (m Model) shown() sim.Frame {
	if m.playHead >= 0 && m.playHead < len(m.history) {
		return m.history[m.playHead]
	}
	return m.frame
}

// View renders the lane and the stats panel.
func (m Model) View() string {
	f := m.shown()

	m.canvas.Clear()
	m.lane.Draw(m.canvas, f)
	laneColor := CurrentTheme.Lane
	if m.flash > 0 {
		laneColor = CurrentTheme.Hit
	}
	canvasView := lipgloss.NewStyle().Padding(1, 2).Foreground(laneColor).Render(m.canvas.String())

	var s strings.Builder
	s.WriteString(headerStyle.Foreground(CurrentTheme.Header).Render(strings.ToUpper(m.cfg.Name)) + "\n")

	status := StatusRunning.Render("RUNNING")
	switch {
	case m.finished:
		status = StatusPaused.Render("FINISHED")
	case m.playHead != -1:
		status = StatusPaused.Render(fmt.Sprintf("REPLAY (%.1fs)", f.Time-m.frame.Time))
	case !m.running:
		status = StatusPaused.Render("PAUSED")
	}
	s.WriteString(status + "\n\n")

	if len(m.speedHistory) > 1 {
		chart := asciigraph.Plot(m.speedHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("ball speed"))
		s.WriteString(graphStyle.Render(chart) + "\n\n")
	}

	s.WriteString(MetricLabel.Render("Time") + MetricValue.Render(fmt.Sprintf("%.2fs", f.Time)) + "\n")
	s.WriteString(ProgressBar(f.Time/m.cfg.Duration, 30) + "\n")
	s.WriteString(MetricLabel.Render("Ball") + MetricValue.Render(fmt.Sprintf("%.2f / %.0f", f.Ball.Speed(), f.Ball.MaxSpeed)) + "\n")

	ends := m.game.World().EndHits()
	s.WriteString(MetricLabel.Render("Score") + MetricValue.Render(fmt.Sprintf("you %d : %d cpu", ends[1], ends[0])) + "\n")

	for _, e := range m.game.Entities() {
		style := lipgloss.NewStyle().Foreground(CurrentTheme.Enemy)
		if e.Name == sim.PlayerName {
			style = lipgloss.NewStyle().Foreground(CurrentTheme.Player)
		}
		s.WriteString(MetricLabel.Render(e.Name) + style.Render(fmt.Sprintf("kicks %d  hits %d", e.Kicks(), e.Hits())) + "\n")
	}

	if m.lastHit != "" {
		s.WriteString(MetricLabel.Render("Last") + lipgloss.NewStyle().Foreground(CurrentTheme.Hit).Render(m.lastHit) + "\n")
	}

	if stick := m.game.Joystick(); stick != nil {
		sm := stick.Model()
		state := "idle"
		if sm.Active {
			state = fmt.Sprintf("%.2f @ (%.2f, %.2f)", sm.Magnitude, sm.Direction.X(), sm.Direction.Y())
		} else if sm.Dragging {
			state = "held"
		}
		s.WriteString(MetricLabel.Render("Stick") + MetricValue.Render(state) + "\n")
	}

	s.WriteString("\n" + SparklineChart(m.speedHistory, 30) + "\n")
	s.WriteString(helpStyle.Render("\n" + Separator(30) + "\nDRAG:Move  RELEASE:Kick\nSP:Pause R:Restart Q:Quit\nT:Theme  ?:Help  [ ]:Replay"))
	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Drag     - Move the player          ║
║  Release  - Kick when in range       ║
║  Space    - Pause/Resume             ║
║  R        - Restart the round        ║
║  Q        - Quit                     ║
║  [        - Rewind (time travel)     ║
║  ]        - Forward (time travel)    ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// RunLive opens a full-screen game with mouse drag input.
func RunLive(cfg *config.Config, fps int) error {
	m, err := NewModel(cfg, fps)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
