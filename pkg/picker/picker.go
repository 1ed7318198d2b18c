// Package picker implements the interactive mode: a detail-level chooser
// followed by a spinner while the probes run. It owns the terminal for the
// duration; the caller renders the returned snapshot afterwards.
package picker

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HFerrahoglu/llm-neofetch-plus/pkg/hwinfo"
)

// DefaultDetail is used when the chooser is dismissed without a selection.
const DefaultDetail = 2

type phase int

const (
	phaseChoose phase = iota
	phaseCollect
	phaseDone
)

type levelOption struct {
	level int
	name  string
	blurb string
}

var levelOptions = []levelOption{
	{1, "Minimal", "Quick overview"},
	{2, "Normal", "Balanced (default)"},
	{3, "Detailed", "Full information"},
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	levelBadgeStyles = map[int]lipgloss.Style{
		1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")),
		3: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
)

// Result is the outcome of an interactive run.
type Result struct {
	Detail   int
	Snapshot *hwinfo.Snapshot
}

type collectDoneMsg struct {
	snap *hwinfo.Snapshot
}

// Model is the Bubble Tea model for the interactive flow.
type Model struct {
	phase    phase
	cursor   int
	selected int

	spin spinner.Model
	snap *hwinfo.Snapshot

	ctx    context.Context
	cancel context.CancelFunc
	opts   hwinfo.Options
}

// NewModel builds the model. The context bounds the collection phase.
func NewModel(ctx context.Context, opts hwinfo.Options) Model {
	collectCtx, cancel := context.WithCancel(ctx)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))

	return Model{
		phase:    phaseChoose,
		cursor:   DefaultDetail - 1,
		selected: DefaultDetail,
		spin:     s,
		ctx:      collectCtx,
		cancel:   cancel,
		opts:     opts,
	}
}

// Init starts with no work; collection begins once a level is chosen.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.phase != phaseCollect {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case collectDoneMsg:
		m.snap = msg.snap
		m.phase = phaseDone
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.phase == phaseCollect {
		// Collection is already running; ctrl+c cuts it short and the
		// partial snapshot still comes back through collectDoneMsg.
		if msg.Type == tea.KeyCtrlC {
			m.cancel()
		}
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(levelOptions)-1 {
			m.cursor++
		}
		return m, nil
	case "1", "2", "3":
		m.cursor = int(msg.String()[0] - '1')
		return m.startCollect(levelOptions[m.cursor].level)
	case "enter":
		return m.startCollect(levelOptions[m.cursor].level)
	case "q", "esc", "ctrl+c":
		// Dismissing the chooser means "just use the default".
		return m.startCollect(DefaultDetail)
	}

	return m, nil
}

func (m Model) startCollect(level int) (tea.Model, tea.Cmd) {
	m.selected = level
	m.phase = phaseCollect
	return m, tea.Batch(m.spin.Tick, m.collectCmd())
}

func (m Model) collectCmd() tea.Cmd {
	return func() tea.Msg {
		return collectDoneMsg{snap: hwinfo.Collect(m.ctx, m.opts)}
	}
}

// View renders the chooser or the collection spinner.
func (m Model) View() string {
	switch m.phase {
	case phaseChoose:
		return m.chooserView()
	case phaseCollect:
		return fmt.Sprintf("\n %s Collecting system information...\n", m.spin.View())
	default:
		return ""
	}
}

func (m Model) chooserView() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Select detail level:"))
	b.WriteString("\n\n")

	for i, opt := range levelOptions {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("▸") + " "
		}
		badge := levelBadgeStyles[opt.level].Render(fmt.Sprintf("[%d]", opt.level))
		fmt.Fprintf(&b, "%s%s %-8s - %s\n", cursor, badge, opt.name, opt.blurb)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move • enter select • q default"))
	b.WriteString("\n")

	return b.String()
}

// Detail returns the chosen detail level.
func (m Model) Detail() int {
	return m.selected
}

// Snapshot returns the collected snapshot, nil until collection finishes.
func (m Model) Snapshot() *hwinfo.Snapshot {
	return m.snap
}

// Run drives the interactive flow on the calling terminal and returns the
// chosen level plus the snapshot collected under it.
func Run(ctx context.Context, opts hwinfo.Options) (*Result, error) {
	model := NewModel(ctx, opts)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	if m.Snapshot() == nil {
		// The program ended before collection finished; collect here so
		// the caller always gets a snapshot.
		return &Result{Detail: m.Detail(), Snapshot: hwinfo.Collect(ctx, opts)}, nil
	}
	return &Result{Detail: m.Detail(), Snapshot: m.Snapshot()}, nil
}
