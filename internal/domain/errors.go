package domain

import "errors"

var (
	// ErrDuplicateWord is returned when the word is already saved
	ErrDuplicateWord = errors.New("word already exists")
	// ErrEntryNotFound is returned when a referenced entry no longer exists
	ErrEntryNotFound = errors.New("word entry not found")
	// ErrInvalidWord is returned for input that is not a single English word
	ErrInvalidWord = errors.New("not an English word")
	// ErrEmptyVocabulary is returned when there is nothing to export
	ErrEmptyVocabulary = errors.New("vocabulary is empty")
	// ErrTranslation wraps every translation failure
	ErrTranslation = errors.New("translation failed")
	// ErrUnsupportedCapability is returned when speech synthesis is unavailable
	ErrUnsupportedCapability = errors.New("capability not supported")
)
