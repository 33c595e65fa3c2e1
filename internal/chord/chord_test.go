package chord

import (
	"testing"

	"github.com/0xlemi/tunechord/internal/pitch"
	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	c := FromName("Dmaj7", Standard())
	assert.Equal(t, "Dmaj7", c.Name)
	assert.Equal(t, []pitch.Note{
		pitch.ParseNote("D4"),
		pitch.ParseNote("F♯4"),
		pitch.ParseNote("A4"),
		pitch.ParseNote("C♯4"),
	}, c.Notes)
	assert.Equal(t, "Dmaj7: D4, F♯4, A4, C♯4", c.String())
}

func TestFromNameUnknown(t *testing.T) {
	c := FromName("Hsus4", Standard())
	assert.Equal(t, "Hsus4", c.Name)
	assert.Empty(t, c.Notes)
}

func TestContainsNotes(t *testing.T) {
	c := FromName("C", Standard())

	e, err := pitch.FromHz(329.63)
	assert.NoError(t, err)

	notes := []pitch.Note{pitch.ParseNote("C4"), e, pitch.ParseNote("A4"), pitch.ParseNote("G3")}
	assert.Equal(t, 2, c.ContainsNotes(notes))
	assert.Equal(t, 0, c.ContainsNotes(nil))
}

func TestChordHumanReadable(t *testing.T) {
	assert.Equal(t, "До мажор: До 4, Ми 4, Соль 4", FromName("C", Standard()).HumanReadable(pitch.Russian))
	assert.Equal(t, "Фа диез минор: Фа диез 4, Ля 4, До диез 4", FromName("F♯m", Standard()).HumanReadable(pitch.Russian))
	assert.Equal(t, "A minor seventh: A 4, C 4, E 4, G 4", FromName("Am7", Standard()).HumanReadable(pitch.English))
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		name    string
		root    string
		quality Quality
	}{
		{"C", "C", Major},
		{"C♯m7", "C♯", Minor7},
		{"Bbmaj7", "Bb", Major7},
		{"Gdim", "G", Diminished},
		{"", "", Major},
	}

	for _, c := range cases {
		root, quality := SplitName(c.name)
		assert.Equal(t, c.root, root, c.name)
		assert.Equal(t, c.quality, quality, c.name)
	}
}
