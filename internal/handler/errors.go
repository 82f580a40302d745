package handler

import (
	"errors"
	"fmt"

	"wordsaver/internal/domain"
)

var userMessages = []struct {
	err error
	msg string
}{
	{domain.ErrDuplicateWord, "This word is already in your list"},
	{domain.ErrEntryNotFound, "This word is not in your list"},
	{domain.ErrInvalidWord, fmt.Sprintf("Send one English word: letters only, at most %d", domain.MaxWordLength)},
	{domain.ErrEmptyVocabulary, "You have no saved words yet"},
	{domain.ErrTranslation, "Translation failed, try again"},
	{domain.ErrUnsupportedCapability, "Speech is not available on this server"},
}

// isUserError reports whether err is an expected outcome shown to the user
func isUserError(err error) bool {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return true
		}
	}
	return false
}

// userMessage returns the text shown for err
func userMessage(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return msgGenericError
}
