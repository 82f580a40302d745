package domain

import (
	"regexp"
	"strings"
	"time"
)

// DateLayout is the calendar date format stored with every entry
const DateLayout = "2006-01-02"

// MaxWordLength bounds saved words so they fit in Telegram callback data
const MaxWordLength = 45

var englishWordRx = regexp.MustCompile(`^[a-zA-Z]+$`)

// WordEntry represents a saved word
type WordEntry struct {
	ID       string `json:"id"`
	Word     string `json:"word"`
	Date     string `json:"date"`
	Reviewed bool   `json:"reviewed"`
}

// NewWordEntry creates an unreviewed entry dated on the calendar day of now
func NewWordEntry(id, word string, now time.Time) WordEntry {
	return WordEntry{
		ID:   id,
		Word: word,
		Date: now.Format(DateLayout),
	}
}

// Day parses the entry date as midnight in loc
func (e WordEntry) Day(loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, e.Date, loc)
}

// Matches reports whether the entry holds word, ignoring case
func (e WordEntry) Matches(word string) bool {
	return strings.EqualFold(e.Word, word)
}

// Vocabulary is the user's word list in insertion order
type Vocabulary []WordEntry

// Contains checks membership case-insensitively
func (v Vocabulary) Contains(word string) bool {
	return v.IndexOfWord(word) != -1
}

// IndexOfWord returns the position of the first case-insensitive match or -1
func (v Vocabulary) IndexOfWord(word string) int {
	for i, e := range v {
		if e.Matches(word) {
			return i
		}
	}
	return -1
}

// IndexOfID returns the position of the entry with id or -1
func (v Vocabulary) IndexOfID(id string) int {
	for i, e := range v {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Without returns a copy of the vocabulary with position i removed
func (v Vocabulary) Without(i int) Vocabulary {
	out := make(Vocabulary, 0, len(v)-1)
	out = append(out, v[:i]...)
	return append(out, v[i+1:]...)
}

// Words returns the bare words in insertion order
func (v Vocabulary) Words() []string {
	words := make([]string, len(v))
	for i, e := range v {
		words[i] = e.Word
	}
	return words
}

// IsEnglishWord reports whether s is a single word of latin letters no longer
// than MaxWordLength
func IsEnglishWord(s string) bool {
	return len(s) <= MaxWordLength && englishWordRx.MatchString(s)
}
