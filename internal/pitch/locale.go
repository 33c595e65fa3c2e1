package pitch

import "strings"

// Locale selects the language used for human-readable rendering
type Locale string

const (
	Russian Locale = "ru"
	English Locale = "en"

	DefaultLocale = Russian
)

type localeNames struct {
	letters     map[string]string
	alterations map[string]string
}

var locales = map[Locale]localeNames{
	Russian: {
		letters: map[string]string{
			"C": "До",
			"D": "Ре",
			"E": "Ми",
			"F": "Фа",
			"G": "Соль",
			"A": "Ля",
			"B": "Си",
		},
		alterations: map[string]string{
			Sharp:   "диез",
			Flat:    "бемоль",
			Natural: "",
		},
	},
	English: {
		letters: map[string]string{
			"C": "C",
			"D": "D",
			"E": "E",
			"F": "F",
			"G": "G",
			"A": "A",
			"B": "B",
		},
		alterations: map[string]string{
			Sharp:   "sharp",
			Flat:    "flat",
			Natural: "",
		},
	},
}

// ParseLocale returns the locale for a language code, falling back to DefaultLocale
func ParseLocale(code string) Locale {
	l := Locale(strings.ToLower(strings.TrimSpace(code)))
	if _, ok := locales[l]; ok {
		return l
	}
	return DefaultLocale
}

func (l Locale) names() localeNames {
	if names, ok := locales[l]; ok {
		return names
	}
	return locales[DefaultLocale]
}

// letter returns the localized letter name, or the letter itself when unknown
func (n localeNames) letter(name string) string {
	if s, ok := n.letters[name]; ok {
		return s
	}
	return name
}

func (n localeNames) alteration(alteration string) string {
	if s, ok := n.alterations[alteration]; ok {
		return s
	}
	return alteration
}

// PitchClassName renders a pitch-class symbol without octave, e.g. "C♯" -> "До диез"
func (l Locale) PitchClassName(class string) string {
	note := ParseNote(class)
	names := l.names()
	if word := names.alteration(note.Alteration); word != "" {
		return names.letter(note.Name) + " " + word
	}
	return names.letter(note.Name)
}
