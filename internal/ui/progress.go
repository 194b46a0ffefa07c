package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"nyanfmt/internal/driver"
)

// fileState is what the list shows next to a path.
type fileState uint8

const (
	stateQueued fileState = iota
	stateReading
	stateLexing
	stateParsing
	statePrinting
	stateWriting
	stateUnchanged
	stateChanged
	stateCached
	stateFailed
)

// stateInfo: подпись, цвет (ANSI) и вклад в общую полосу прогресса.
var stateInfo = [...]struct {
	label  string
	color  string
	weight float64
}{
	stateQueued:    {"queued", "7", 0},
	stateReading:   {"reading", "6", 0.1},
	stateLexing:    {"lexing", "6", 0.3},
	stateParsing:   {"parsing", "6", 0.5},
	statePrinting:  {"printing", "6", 0.8},
	stateWriting:   {"writing", "6", 0.9},
	stateUnchanged: {"done", "2", 1},
	stateChanged:   {"changed", "3", 1},
	stateCached:    {"cached", "2", 1},
	stateFailed:    {"error", "1", 1},
}

func (s fileState) String() string { return stateInfo[s].label }

func (s fileState) final() bool { return s >= stateUnchanged }

var stageStates = map[driver.Stage]fileState{
	driver.StageRead:  stateReading,
	driver.StageLex:   stateLexing,
	driver.StageParse: stateParsing,
	driver.StagePrint: statePrinting,
	driver.StageWrite: stateWriting,
}

// stateFor maps a driver event to the state it leaves the file in.
func stateFor(ev driver.Event) (fileState, bool) {
	switch ev.Status {
	case driver.StatusQueued:
		return stateQueued, true
	case driver.StatusWorking:
		s, ok := stageStates[ev.Stage]
		return s, ok
	case driver.StatusError:
		return stateFailed, true
	case driver.StatusDone:
		switch {
		case ev.Err != nil:
			return stateFailed, true
		case ev.Cached:
			return stateCached, true
		case ev.Changed:
			return stateChanged, true
		}
		return stateUnchanged, true
	}
	return 0, false
}

type progressModel struct {
	title    string
	events   <-chan driver.Event
	spinner  spinner.Model
	bar      progress.Model
	paths    []string
	states   []fileState
	index    map[string]int
	width    int
	finished int
	done     bool
}

type eventMsg driver.Event
type doneMsg struct{}

// NewProgressModel renders one line per file plus an overall bar. It quits
// once events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     progress.New(progress.WithGradient("#ff87d7", "#af87ff")),
		paths:   files,
		states:  make([]fileState, len(files)),
		index:   make(map[string]int, len(files)),
		width:   80,
	}
	m.bar.Width = m.width - 4
	for i, f := range files {
		m.index[f] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.applyEvent(driver.Event(msg)), m.next())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// next waits for one driver event.
func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return doneMsg{}
	}
}

func (m *progressModel) applyEvent(ev driver.Event) tea.Cmd {
	i, known := m.index[ev.File]
	state, ok := stateFor(ev)
	if !known || !ok {
		return nil
	}
	if state.final() && !m.states[i].final() {
		m.finished++
	}
	m.states[i] = state
	return m.bar.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.states) == 0 {
		return 0
	}
	var sum float64
	for _, s := range m.states {
		sum += stateInfo[s].weight
	}
	return sum / float64(len(m.states))
}

func (m *progressModel) View() string {
	if len(m.paths) == 0 {
		return ""
	}
	header := fmt.Sprintf("%s [%d/%d]", m.title, m.finished, len(m.paths))
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	b.WriteString("\n\n")

	nameWidth := max(m.width-16, 20)
	for i, path := range m.paths {
		s := m.states[i]
		status := lipgloss.NewStyle().Foreground(lipgloss.Color(stateInfo[s].color)).Render(fmt.Sprintf("%10s", s))
		fmt.Fprintf(&b, "  %s  %s\n", status, truncate(path, nameWidth))
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.bar.ViewAs(1))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

// truncate cuts value to width terminal cells, ending in "...".
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}
