package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/0xlemi/tunechord/internal/analysis"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// How long to keep showing the last chord after the input goes quiet
const holdDuration = 500 * time.Millisecond

var (
	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			PaddingLeft(2).
			PaddingRight(2).
			MarginBottom(1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCCCCC"))

	// Note colors
	noteColors = map[string]string{
		"C": "#E8D6B0", // Beige
		"D": "#A020F0", // Purple
		"E": "#FFFF00", // Yellow
		"F": "#FFA500", // Orange
		"G": "#00FF00", // Green
		"A": "#FF0000", // Red
		"B": "#0000FF", // Blue
	}
)

// noteColor returns the color of a note or chord by its letter
func noteColor(name string) lipgloss.Color {
	if name == "" {
		return lipgloss.Color("#333333")
	}
	if c, ok := noteColors[name[:1]]; ok {
		return lipgloss.Color(c)
	}
	return lipgloss.Color("#333333")
}

func chordStyle(name string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1A1A1A")).
		Background(noteColor(name)).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#333333")).
		Padding(1, 3).
		MarginRight(1)
}

func noteStyle(name string) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(noteColor(name)).
		PaddingRight(1)
}

// Model represents the UI state
type Model struct {
	title      string
	result     *analysis.Result
	resultTime time.Time
	rms        float64
	db         float64
	now        time.Time
	width      int
	height     int
}

// NewModel creates a new UI model
func NewModel(title string) Model {
	return Model{
		title: title,
		db:    -100,
		now:   time.Now(),
	}
}

// TickMsg represents a timer tick
type TickMsg time.Time

// UpdateResultMsg carries a fresh analysis result
type UpdateResultMsg analysis.Result

// ClearMsg signals silence or a failed analysis
type ClearMsg struct{}

// UpdateAudioLevelMsg carries the input level
type UpdateAudioLevelMsg struct {
	RMS float64
	DB  float64
}

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init initializes the UI model
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update updates the UI model based on messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TickMsg:
		m.now = time.Time(msg)
		if m.result != nil && m.now.Sub(m.resultTime) > holdDuration {
			m.result = nil
		}
		return m, tick()

	case UpdateResultMsg:
		res := analysis.Result(msg)
		if res.Empty() {
			// keep the last chord on screen until it expires
			return m, nil
		}
		m.result = &res
		m.resultTime = time.Now()

	case ClearMsg:
		m.result = nil

	case UpdateAudioLevelMsg:
		m.rms = msg.RMS
		m.db = msg.DB
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	s := titleStyle.Render(m.title)
	s += "\n"

	if m.result != nil {
		var chords []string
		for _, name := range m.result.Chords {
			chords = append(chords, chordStyle(name).Render(name))
		}
		if len(chords) > 0 {
			s += lipgloss.JoinHorizontal(lipgloss.Top, chords...)
		} else {
			s += infoStyle.Render("No matching chord")
		}
		s += "\n"

		var notes strings.Builder
		for _, class := range m.result.PitchClasses {
			notes.WriteString(noteStyle(class).Render(class))
		}
		s += infoStyle.Render("Notes: ") + notes.String()
	} else {
		s += infoStyle.Render("Listening for audio...")
	}

	s += "\n\n"
	s += infoStyle.Render(fmt.Sprintf("Level: %.4f RMS | %.1f dB", m.rms, m.db))
	s += "\n"
	s += infoStyle.Render("Press q to quit")

	return s
}
