package pitch

import (
	"errors"
	"sort"
)

// Errors
var (
	ErrInvalidFrequency = errors.New("frequency must be greater than zero")
)

// Detector defines the interface for pitch-class detection
type Detector interface {
	// DetectPitchClasses analyzes mono samples and returns the pitch classes present
	DetectPitchClasses(samples []float64, sampleRate float64) PitchClassSet
}

// PitchClassSet is a deduplicated set of octave-independent note names ("C", "C♯", ...)
type PitchClassSet map[string]struct{}

// NewPitchClassSet creates a set from the given pitch classes
func NewPitchClassSet(classes ...string) PitchClassSet {
	set := make(PitchClassSet, len(classes))
	for _, c := range classes {
		set.Add(c)
	}
	return set
}

// Add inserts a pitch class into the set
func (s PitchClassSet) Add(class string) {
	s[class] = struct{}{}
}

// Contains reports whether the pitch class is in the set
func (s PitchClassSet) Contains(class string) bool {
	_, ok := s[class]
	return ok
}

// Len returns the number of pitch classes in the set
func (s PitchClassSet) Len() int {
	return len(s)
}

// Sorted returns the pitch classes in chromatic order starting from C.
// Entries that are not one of the 12 canonical symbols sort last, alphabetically.
func (s PitchClassSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := chromaticIndex(out[i]), chromaticIndex(out[j])
		if a != b {
			return a < b
		}
		return out[i] < out[j]
	})
	return out
}

func chromaticIndex(class string) int {
	for i, name := range PitchClasses {
		if name == class {
			return i
		}
	}
	return len(PitchClasses)
}
