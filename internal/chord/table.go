package chord

import (
	"github.com/0xlemi/tunechord/internal/pitch"
)

// Quality is a chord-quality suffix appended to the root name
type Quality string

// Chord qualities, in table declaration order
const (
	Major      Quality = ""
	Minor      Quality = "m"
	Dominant7  Quality = "7"
	Minor7     Quality = "m7"
	Major7     Quality = "maj7"
	Diminished Quality = "dim"
	Augmented  Quality = "aug"
	Sixth      Quality = "6"
	Ninth      Quality = "9"
)

// Qualities lists every quality of the standard table in declaration order
var Qualities = []Quality{Major, Minor, Dominant7, Minor7, Major7, Diminished, Augmented, Sixth, Ninth}

// intervals are semitone offsets from the root, in fingerprint order
var intervals = map[Quality][]int{
	Major:      {0, 4, 7},
	Minor:      {0, 3, 7},
	Dominant7:  {0, 4, 7, 10},
	Minor7:     {0, 3, 7, 10},
	Major7:     {0, 4, 7, 11},
	Diminished: {0, 3, 6},
	Augmented:  {0, 4, 8},
	Sixth:      {0, 4, 7, 9},
	Ninth:      {0, 4, 7, 10, 2},
}

// Fingerprint is the set of pitch classes that defines a chord
type Fingerprint struct {
	Name         string
	Root         string
	Quality      Quality
	PitchClasses []string
}

// Table is an ordered chord dictionary. Its order is the tie-breaking order
// of the matcher. Tables are shared and must not be modified.
type Table []Fingerprint

// Lookup returns the fingerprint with the given chord name
func (t Table) Lookup(name string) (Fingerprint, bool) {
	for _, fp := range t {
		if fp.Name == name {
			return fp, true
		}
	}
	return Fingerprint{}, false
}

// Names returns the chord names in table order
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, fp := range t {
		names[i] = fp.Name
	}
	return names
}

var (
	standardTable = buildTable(Qualities)
	triadTable    = buildTable([]Quality{Major, Minor})
)

// Standard returns the full table: 12 roots by 9 qualities
func Standard() Table {
	return standardTable
}

// Triads returns the major and minor triads of all 12 roots
func Triads() Table {
	return triadTable
}

// ByName returns the named table ("full" or "triads")
func ByName(name string) (Table, bool) {
	switch name {
	case "full", "":
		return Standard(), true
	case "triads":
		return Triads(), true
	}
	return nil, false
}

func buildTable(qualities []Quality) Table {
	table := make(Table, 0, len(pitch.PitchClasses)*len(qualities))
	for root := range pitch.PitchClasses {
		for _, q := range qualities {
			classes := make([]string, len(intervals[q]))
			for i, interval := range intervals[q] {
				classes[i] = pitch.PitchClasses[(root+interval)%12]
			}
			table = append(table, Fingerprint{
				Name:         pitch.PitchClasses[root] + string(q),
				Root:         pitch.PitchClasses[root],
				Quality:      q,
				PitchClasses: classes,
			})
		}
	}
	return table
}
