package chord

import (
	"github.com/0xlemi/tunechord/internal/pitch"
)

// Match is a chord with the number of its pitch classes that were detected
type Match struct {
	Name  string
	Count int
}

// Score counts, for every chord in table, how many of its pitch classes are
// in detected. Chords with no overlap are dropped; table order is kept.
func Score(detected pitch.PitchClassSet, table Table) []Match {
	var matches []Match
	for _, fp := range table {
		count := 0
		for _, class := range fp.PitchClasses {
			if detected.Contains(class) {
				count++
			}
		}
		if count > 0 {
			matches = append(matches, Match{Name: fp.Name, Count: count})
		}
	}
	return matches
}

// BestChords returns every chord sharing the highest overlap count with
// detected, in table order. Counts are not normalized by chord size, so a
// full triad ties with a seventh chord missing one note. The result is empty
// when nothing overlaps.
func BestChords(detected pitch.PitchClassSet, table Table) []string {
	matches := Score(detected, table)

	best := 0
	for _, m := range matches {
		if m.Count > best {
			best = m.Count
		}
	}

	names := []string{}
	for _, m := range matches {
		if m.Count == best {
			names = append(names, m.Name)
		}
	}
	return names
}
