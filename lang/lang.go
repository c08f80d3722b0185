// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package lang provides weekday and month names for rendering frames.
package lang

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	// NumWeekdays is the number of weekday names per language
	NumWeekdays = 7

	// NumMonths is the number of month names per language
	NumMonths = 12

	// numCharsPrefix is the shortest accepted abbreviation
	numCharsPrefix = 3
)

// Language is a set of calendar names
type Language struct {
	tag      language.Tag
	name     string
	nameEn   string
	weekdays [NumWeekdays]string
	months   [NumMonths]string
	layout   string
}

var (
	// languages contains all supported languages. English is first.
	languages = []*Language{english, german}

	matcher = language.NewMatcher([]language.Tag{english.tag, german.tag})
)

var english = &Language{
	tag:      language.English,
	name:     "English",
	nameEn:   "English",
	weekdays: [NumWeekdays]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	months: [NumMonths]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	layout: "%[1]s, %[3]s %[2]d, %[4]d %02[5]d:%02[6]d %[7]s",
}

var german = &Language{
	tag:      language.German,
	name:     "Deutsch",
	nameEn:   "German",
	weekdays: [NumWeekdays]string{"Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag", "Sonntag"},
	months: [NumMonths]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
		"Juli", "August", "September", "Oktober", "November", "Dezember"},
	layout: "%[1]s, %[2]d. %[3]s %[4]d %02[5]d:%02[6]d %[7]s",
}

// GetNumLangs returns the number of supported languages
func GetNumLangs() int {
	return len(languages)
}

// GetLang returns a language by its index
func GetLang(i int) *Language {
	if i < 0 || i >= len(languages) {
		return nil
	}
	return languages[i]
}

// Match returns the supported language closest to the preferred tags
func Match(tags ...language.Tag) *Language {
	_, i, _ := matcher.Match(tags...)
	return languages[i]
}

// Parse returns the language closest to a BCP 47 tag or name such as
// "de" or "en-GB"
func Parse(s string) (*Language, error) {
	tags, _, err := language.ParseAcceptLanguage(s)
	if err != nil {
		return nil, err
	}
	return Match(tags...), nil
}

// GetLangName returns the native name of a language
func (l *Language) GetLangName() string {
	return l.name
}

// GetLangNameEn returns the English name of a language
func (l *Language) GetLangNameEn() string {
	return l.nameEn
}

// Tag returns the BCP 47 tag of a language
func (l *Language) Tag() language.Tag {
	return l.tag
}

// Weekday returns the name of weekday n, Monday = 1 through Sunday = 7
func (l *Language) Weekday(n int) string {
	if n < 1 || n > NumWeekdays {
		return "?"
	}
	return l.weekdays[n-1]
}

// Month returns the name of month n, January = 1
func (l *Language) Month(n int) string {
	if n < 1 || n > NumMonths {
		return "?"
	}
	return l.months[n-1]
}

// removeAccents strips combining marks from a decomposed string
func removeAccents(s string) string {
	var result strings.Builder
	for _, r := range norm.NFKD.String(s) {
		if !unicode.Is(unicode.Mn, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// fold normalizes a name for comparison
func fold(s string) string {
	return strings.ToLower(removeAccents(strings.TrimSpace(s)))
}

// search finds a name, accepting accent-free spellings and abbreviations
// of at least numCharsPrefix characters
func search(names []string, word string) int {
	key := fold(word)
	if len([]rune(key)) == 0 {
		return -1
	}
	for i, name := range names {
		if fold(name) == key {
			return i
		}
	}
	if len([]rune(key)) < numCharsPrefix {
		return -1
	}
	found := -1
	for i, name := range names {
		if strings.HasPrefix(fold(name), key) {
			if found >= 0 {
				return -1
			}
			found = i
		}
	}
	return found
}

// FindWeekday returns the weekday number (Monday = 1) of a name, or 0
func (l *Language) FindWeekday(name string) int {
	return search(l.weekdays[:], name) + 1
}

// FindMonth returns the month number (January = 1) of a name, or 0
func (l *Language) FindMonth(name string) int {
	return search(l.months[:], name) + 1
}

// Format renders a date and time in the language's customary order
func (l *Language) Format(year, month, day, weekday, hour, minute int, zone string) string {
	s := fmt.Sprintf(l.layout, l.Weekday(weekday), day, l.Month(month), year, hour, minute, zone)
	return norm.NFC.String(s)
}
