// Package speech pronounces words through a local text-to-speech engine
package speech

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"wordsaver/internal/domain"
)

// Synthesizer turns text into audio
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// ESpeakConfig holds configuration for espeak-ng audio generation
type ESpeakConfig struct {
	Binary string // Executable name or path (default: espeak-ng)
	Voice  string // Voice variant (default: en-us)
	Speed  int    // Speech speed in words per minute (default: 155)
	Pitch  int    // Pitch adjustment, 0 to 99 (default: 50)
}

// DefaultConfig returns the default configuration for an English voice
func DefaultConfig() ESpeakConfig {
	return ESpeakConfig{
		Binary: "espeak-ng",
		Voice:  "en-us",
		Speed:  155,
		Pitch:  50,
	}
}

// ESpeak synthesizes WAV audio with espeak-ng
type ESpeak struct {
	config ESpeakConfig
}

// NewESpeak creates a synthesizer, filling unset fields from DefaultConfig
func NewESpeak(config ESpeakConfig) *ESpeak {
	def := DefaultConfig()
	if config.Binary == "" {
		config.Binary = def.Binary
	}
	if config.Voice == "" {
		config.Voice = def.Voice
	}
	if config.Speed <= 0 {
		config.Speed = def.Speed
	}
	if config.Pitch < 0 || config.Pitch > 99 {
		config.Pitch = def.Pitch
	}
	return &ESpeak{config: config}
}

// Available reports ErrUnsupportedCapability when the engine isn't installed
func (e *ESpeak) Available() error {
	if _, err := exec.LookPath(e.config.Binary); err != nil {
		return fmt.Errorf("%w: %s not found", domain.ErrUnsupportedCapability, e.config.Binary)
	}
	return nil
}

// Synthesize returns WAV audio of text
func (e *ESpeak) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}
	if err := e.Available(); err != nil {
		return nil, err
	}

	args := []string{
		"-v", e.config.Voice,
		"-s", strconv.Itoa(e.config.Speed),
		"-p", strconv.Itoa(e.config.Pitch),
		"--stdout",
		text,
	}

	out, err := exec.CommandContext(ctx, e.config.Binary, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("%s failed: %w", e.config.Binary, err)
	}
	return out, nil
}
