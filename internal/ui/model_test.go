package ui

import (
	"testing"
	"time"

	"github.com/0xlemi/tunechord/internal/analysis"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestModelShowsResult(t *testing.T) {
	m := NewModel("TuneChord")
	assert.Contains(t, m.View(), "Listening for audio...")

	m = update(t, m, UpdateResultMsg(analysis.Result{
		PitchClasses: []string{"A", "C", "E", "G"},
		Chords:       []string{"Am7", "C6"},
	}))

	view := m.View()
	assert.Contains(t, view, "TuneChord")
	assert.Contains(t, view, "Am7")
	assert.Contains(t, view, "C6")
	assert.Contains(t, view, "Notes:")
	assert.NotContains(t, view, "Listening for audio...")
}

func TestModelKeepsLastChordOnEmptyResult(t *testing.T) {
	m := NewModel("TuneChord")
	m = update(t, m, UpdateResultMsg(analysis.Result{PitchClasses: []string{"E"}, Chords: []string{"E"}}))
	m = update(t, m, UpdateResultMsg(analysis.Result{}))
	assert.NotNil(t, m.result)

	// expires after the hold period
	m = update(t, m, TickMsg(time.Now().Add(time.Second)))
	assert.Nil(t, m.result)
}

func TestModelClear(t *testing.T) {
	m := NewModel("TuneChord")
	m = update(t, m, UpdateResultMsg(analysis.Result{PitchClasses: []string{"E"}}))
	assert.Contains(t, m.View(), "No matching chord")

	m = update(t, m, ClearMsg{})
	assert.Contains(t, m.View(), "Listening for audio...")
}

func TestModelAudioLevel(t *testing.T) {
	m := NewModel("TuneChord")
	m = update(t, m, UpdateAudioLevelMsg{RMS: 0.5, DB: -6.02})
	assert.Contains(t, m.View(), "-6.0 dB")
}

func TestModelQuit(t *testing.T) {
	m := NewModel("TuneChord")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
