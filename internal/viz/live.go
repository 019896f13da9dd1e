package viz

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/pixelviz/internal/anim"
	"github.com/san-kum/pixelviz/internal/export"
	"github.com/san-kum/pixelviz/internal/render"
	"github.com/san-kum/pixelviz/internal/storage"
)

const (
	historyCapacity = 120
	recordLimit     = 600
	recordScale     = 4
)

var canvasStyle = lipgloss.NewStyle().Padding(1, 2)

type TickMsg time.Time

// Options configures a live view.
type Options struct {
	RuleName string
	// Store receives recordings. Recording is disabled when nil.
	Store *storage.Store
	// Meta is copied into every saved recording.
	Meta   storage.Recording
	Logger *log.Logger
}

// Model ticks a driver whose surface is the given screen.
type Model struct {
	driver     *anim.Driver
	screen     *Screen
	opts       Options
	running    bool
	showHelp   bool
	recorder   *export.Recorder
	lumHistory []float64
	coverage   float64
	status     string
	lastErr    error
}

func NewModel(d *anim.Driver, screen *Screen, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return Model{
		driver:     d,
		screen:     screen,
		opts:       opts,
		running:    true,
		lumHistory: make([]float64, 0, historyCapacity),
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.driver.Interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input and advances the animation one step per TickMsg.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "t":
			m.status = "theme " + NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		case "g":
			m.toggleRecording()
		case "r":
			m.driver.RestartCycle()
			m.status = "cycle restarted"
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	if err := m.driver.Tick(); err != nil {
		m.lastErr = err
		m.opts.Logger.Warn("present failed", "err", err)
		return
	}
	m.lastErr = nil

	stats := render.Measure(m.driver.Frame())
	m.coverage = stats.Coverage
	m.lumHistory = append(m.lumHistory, stats.MeanLuminance)
	if len(m.lumHistory) > historyCapacity {
		m.lumHistory = m.lumHistory[1:]
	}

	if m.recorder != nil {
		if err := m.recorder.Present(m.driver.Frame()); err != nil {
			m.opts.Logger.Warn("record failed", "err", err)
		}
	}
}

func (m *Model) toggleRecording() {
	if m.opts.Store == nil {
		m.status = "recording disabled"
		return
	}
	if m.recorder == nil {
		w, h := m.screen.Size()
		m.recorder = export.NewRecorder(w, h, recordLimit)
		m.status = "recording"
		return
	}

	frames := m.recorder.Frames()
	m.recorder = nil
	if len(frames) == 0 {
		m.status = "nothing recorded"
		return
	}
	id, err := m.opts.Store.Save(m.opts.Meta, frames, recordScale)
	if err != nil {
		m.status = "save failed"
		m.opts.Logger.Error("save recording", "err", err)
		return
	}
	m.status = "saved " + id
	m.opts.Logger.Info("recording saved", "id", id, "frames", len(frames))
}

// Recording reports whether frames are being captured.
func (m Model) Recording() bool { return m.recorder != nil }

func (m Model) Running() bool { return m.running }

// Status is the last one-line message shown in the panel.
func (m Model) Status() string { return m.status }

func (m Model) View() string {
	st := stylesFor(CurrentTheme)

	var s strings.Builder
	s.WriteString(st.header.Render(strings.ToUpper(m.opts.RuleName)) + "\n")

	switch {
	case m.recorder != nil:
		s.WriteString(st.recording.Render(fmt.Sprintf("● REC %d", m.recorder.Len())))
	case m.running:
		s.WriteString(st.running.Render("RUNNING"))
	default:
		s.WriteString(st.paused.Render("PAUSED"))
	}
	s.WriteString("\n\n")

	if len(m.lumHistory) > 1 {
		chart := asciigraph.Plot(m.lumHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("Luminance"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	phase := m.driver.Phase()
	s.WriteString(st.label.Render("Phase") + st.value.Render(fmt.Sprintf("%s %.2f", ProgressBar(phase, 10), phase)) + "\n")
	s.WriteString(st.label.Render("Step") + st.value.Render(fmt.Sprintf("%.3f of %d", m.driver.Step(), m.driver.Variations())) + "\n")
	s.WriteString(st.label.Render("Tick") + st.value.Render(fmt.Sprintf("%d", m.driver.Ticks())) + "\n")
	s.WriteString(st.label.Render("Interval") + st.value.Render(m.driver.Interval().String()) + "\n")
	s.WriteString(st.label.Render("Policy") + st.value.Render(m.driver.ChannelPolicy().String()) + "\n")
	s.WriteString(st.label.Render("Lit") + st.value.Render(fmt.Sprintf("%.1f%%", m.coverage*100)) + "\n")
	w, h := m.screen.Size()
	s.WriteString(st.label.Render("Canvas") + st.value.Render(fmt.Sprintf("%dx%d", w, h)) + "\n")
	if m.lastErr != nil {
		s.WriteString(st.recording.Render(m.lastErr.Error()) + "\n")
	}
	if m.status != "" {
		s.WriteString("\n" + st.value.Render(m.status) + "\n")
	}
	s.WriteString(st.help.Render("─────────────────────\nSP:Pause T:Theme G:Record\nR:Restart ?:Help Q:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(m.screen.String()), st.panel.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  T        - Cycle themes             ║
║  G        - Toggle recording         ║
║  R        - Restart phase cycle      ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run starts the live view in the alternate screen and blocks until quit.
func Run(d *anim.Driver, screen *Screen, opts Options) error {
	_, err := tea.NewProgram(NewModel(d, screen, opts), tea.WithAltScreen()).Run()
	return err
}
