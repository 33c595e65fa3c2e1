package chord

import (
	"testing"

	"github.com/0xlemi/tunechord/internal/pitch"
	"github.com/stretchr/testify/assert"
)

func TestBestChordsMajorTriad(t *testing.T) {
	detected := pitch.NewPitchClassSet("C", "E", "G")

	// every chord holding all of C, E and G ties at three
	assert.Equal(t, []string{"C", "C7", "Cmaj7", "C6", "C9", "Am7"}, BestChords(detected, Standard()))
	assert.Equal(t, []string{"C"}, BestChords(detected, Triads()))
}

func TestBestChordsEmpty(t *testing.T) {
	assert.Empty(t, BestChords(pitch.NewPitchClassSet(), Standard()))
	assert.NotNil(t, BestChords(pitch.NewPitchClassSet(), Standard()))
	assert.Empty(t, BestChords(pitch.NewPitchClassSet("H", "X"), Standard()))
}

func TestBestChordsReportsAllTies(t *testing.T) {
	detected := pitch.NewPitchClassSet("E", "G")

	assert.Equal(t, []string{"C", "Em"}, BestChords(detected, Triads()))

	best := BestChords(detected, Standard())
	assert.Contains(t, best, "C")
	assert.Contains(t, best, "Em")
	assert.Contains(t, best, "Am7")
}

func TestBestChordsDoesNotNormalizeBySize(t *testing.T) {
	// C7 has four notes and only three are present, it still ties with C
	detected := pitch.NewPitchClassSet("C", "E", "G")
	best := BestChords(detected, Standard())
	assert.Contains(t, best, "C")
	assert.Contains(t, best, "C7")
}

func TestBestChordsPrefersLargerOverlap(t *testing.T) {
	detected := pitch.NewPitchClassSet("G", "B", "D", "F")
	assert.Equal(t, []string{"G7", "G9"}, BestChords(detected, Standard()))
}

func TestScore(t *testing.T) {
	detected := pitch.NewPitchClassSet("C", "E")
	table := Triads()

	matches := Score(detected, table)
	for _, m := range matches {
		assert.Greater(t, m.Count, 0)
	}
	assert.Equal(t, Match{Name: "C", Count: 2}, matches[0])
	assert.Contains(t, matches, Match{Name: "Am", Count: 2})
	assert.Contains(t, matches, Match{Name: "Em", Count: 1})
	assert.NotContains(t, matches, Match{Name: "D", Count: 0})
}
