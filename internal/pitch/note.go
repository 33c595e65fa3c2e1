package pitch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Reference tuning: A4 = 440Hz, equal temperament
const (
	ReferenceFrequency = 440.0
	ReferenceOctave    = 4
	DefaultOctave      = Octave(4)

	// A4 is 9 semitones above C4
	referenceIndex = 9
)

// Alteration symbols
const (
	Natural = ""
	Sharp   = "♯"
	Flat    = "b"
)

// PitchClasses lists the 12 canonical pitch-class symbols in chromatic order
var PitchClasses = []string{"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B"}

// letterIndex is the semitone offset of each natural letter above C
var letterIndex = map[string]int{
	"C": 0,
	"D": 2,
	"E": 4,
	"F": 5,
	"G": 7,
	"A": 9,
	"B": 11,
}

// Octave is a scientific pitch notation octave number
type Octave int

// ParseOctave parses an octave number. Anything that is not a valid integer
// yields DefaultOctave.
func ParseOctave(s string) Octave {
	n, err := strconv.Atoi(s)
	if err != nil {
		return DefaultOctave
	}
	return Octave(n)
}

func (o Octave) String() string {
	return strconv.Itoa(int(o))
}

// Note represents a musical note
type Note struct {
	Name       string // natural letter, e.g. "C"
	Octave     Octave // e.g. 4 for middle C (C4)
	Alteration string // Natural, Sharp or Flat
}

// NewNote creates a note from its parts
func NewNote(name string, octave Octave, alteration string) Note {
	return Note{Name: name, Octave: octave, Alteration: alteration}
}

// ParseNote parses "<Letter>[<Accidental>][<Octave>]", e.g. "C♯4", "Bb" or "A".
// Trailing digits are the octave; when absent, or not a valid number, the
// octave defaults to 4. ASCII '#' is accepted for '♯'.
func ParseNote(notation string) Note {
	base := strings.TrimRight(notation, "0123456789")
	octave := DefaultOctave
	if octavePart := notation[len(base):]; octavePart != "" {
		octave = ParseOctave(octavePart)
	}

	runes := []rune(base)
	if len(runes) > 1 {
		switch runes[1] {
		case '♯', '#':
			return Note{Name: string(runes[0]), Octave: octave, Alteration: Sharp}
		case 'b':
			return Note{Name: string(runes[0]), Octave: octave, Alteration: Flat}
		}
	}

	return Note{Name: base, Octave: octave, Alteration: Natural}
}

// FromHz converts a frequency to the nearest equal-tempered note.
//
// The semitone offset from A4 is rounded half to even (math.RoundToEven), so a
// frequency exactly between two semitone centers resolves to the even offset.
// Sharps are returned as a letter with the Sharp alteration.
func FromHz(frequency float64) (Note, error) {
	if frequency <= 0 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return Note{}, fmt.Errorf("%w: %v", ErrInvalidFrequency, frequency)
	}

	semitones := math.RoundToEven(12 * math.Log2(frequency/ReferenceFrequency))

	index := int(math.Mod(semitones+referenceIndex, 12))
	if index < 0 {
		index += 12
	}
	octave := ReferenceOctave + int(math.Floor((semitones+referenceIndex)/12))

	class := PitchClasses[index]
	note := Note{Name: class[:1], Octave: Octave(octave), Alteration: Natural}
	if len(class) > 1 {
		note.Alteration = Sharp
	}
	return note, nil
}

// PitchClassOf returns the pitch class nearest to frequency, ignoring octave
func PitchClassOf(frequency float64) (string, error) {
	note, err := FromHz(frequency)
	if err != nil {
		return "", err
	}
	return note.PitchClass(), nil
}

// semitone returns the note's offset in semitones from C of its octave,
// before wrapping, and whether the name is a known letter
func (n Note) semitone() (int, bool) {
	index, ok := letterIndex[n.Name]
	if !ok {
		return 0, false
	}
	switch n.Alteration {
	case Sharp:
		index++
	case Flat:
		index--
	}
	return index, true
}

// PitchClass returns the canonical octave-independent symbol. Flats are
// respelled as their enharmonic sharp ("Bb" -> "A♯").
func (n Note) PitchClass() string {
	index, ok := n.semitone()
	if !ok {
		return n.Name + n.Alteration
	}
	return PitchClasses[(index+12)%12]
}

// Frequency returns the equal-tempered center frequency of the note in Hz.
// Notes with an unknown name return 0.
func (n Note) Frequency() float64 {
	index, ok := n.semitone()
	if !ok {
		return 0
	}
	semitones := (int(n.Octave)-ReferenceOctave)*12 + index - referenceIndex
	return ReferenceFrequency * math.Pow(2, float64(semitones)/12)
}

// Notation returns the machine notation, e.g. "C♯4"
func (n Note) Notation() string {
	return n.Name + n.Alteration + n.Octave.String()
}

func (n Note) String() string {
	return n.Notation()
}

// HumanReadable renders the note with localized names, e.g. "Ля диез 4"
func (n Note) HumanReadable(locale Locale) string {
	names := locale.names()
	parts := []string{names.letter(n.Name)}
	if word := names.alteration(n.Alteration); word != "" {
		parts = append(parts, word)
	}
	parts = append(parts, n.Octave.String())
	return strings.Join(parts, " ")
}
