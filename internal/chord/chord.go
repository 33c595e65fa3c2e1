package chord

import (
	"strings"

	"github.com/0xlemi/tunechord/internal/pitch"
)

// Chord is a named chord resolved to notes at the default octave
type Chord struct {
	Name  string
	Notes []pitch.Note
}

var qualityNames = map[pitch.Locale]map[Quality]string{
	pitch.Russian: {
		Major:      "мажор",
		Minor:      "минор",
		Dominant7:  "септаккорд",
		Minor7:     "минорный септаккорд",
		Major7:     "большой мажорный септаккорд",
		Diminished: "уменьшённый",
		Augmented:  "увеличенный",
		Sixth:      "секстаккорд",
		Ninth:      "нон-аккорд",
	},
	pitch.English: {
		Major:      "major",
		Minor:      "minor",
		Dominant7:  "seventh",
		Minor7:     "minor seventh",
		Major7:     "major seventh",
		Diminished: "diminished",
		Augmented:  "augmented",
		Sixth:      "sixth",
		Ninth:      "ninth",
	},
}

// FromName builds the chord with the given name from table. An unknown name
// yields a chord without notes.
func FromName(name string, table Table) Chord {
	fp, _ := table.Lookup(name)
	notes := make([]pitch.Note, 0, len(fp.PitchClasses))
	for _, class := range fp.PitchClasses {
		notes = append(notes, pitch.ParseNote(class))
	}
	return Chord{Name: name, Notes: notes}
}

// ContainsNotes counts how many of notes are members of the chord
func (c Chord) ContainsNotes(notes []pitch.Note) int {
	count := 0
	for _, n := range notes {
		for _, member := range c.Notes {
			if n == member {
				count++
				break
			}
		}
	}
	return count
}

func (c Chord) String() string {
	notes := make([]string, len(c.Notes))
	for i, n := range c.Notes {
		notes[i] = n.String()
	}
	return c.Name + ": " + strings.Join(notes, ", ")
}

// HumanReadable renders the chord with localized names,
// e.g. "До мажор: До 4, Ми 4, Соль 4"
func (c Chord) HumanReadable(locale pitch.Locale) string {
	root, quality := SplitName(c.Name)

	words, ok := qualityNames[locale]
	if !ok {
		words = qualityNames[pitch.DefaultLocale]
	}
	suffix, ok := words[quality]
	if !ok {
		suffix = string(quality)
	}

	notes := make([]string, len(c.Notes))
	for i, n := range c.Notes {
		notes[i] = n.HumanReadable(locale)
	}

	head := strings.TrimSpace(locale.PitchClassName(root) + " " + suffix)
	return head + ": " + strings.Join(notes, ", ")
}

// SplitName splits a chord name into its root and quality suffix,
// e.g. "C♯m7" -> ("C♯", "m7")
func SplitName(name string) (string, Quality) {
	runes := []rune(name)
	if len(runes) == 0 {
		return "", Major
	}
	n := 1
	if len(runes) > 1 && (runes[1] == '♯' || runes[1] == '#' || runes[1] == 'b') {
		n = 2
	}
	return string(runes[:n]), Quality(runes[n:])
}
