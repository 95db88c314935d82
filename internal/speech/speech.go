package speech

import (
	"errors"
	"fmt"
)

// Common errors for the speech system.
var (
	// ErrEngineNotAvailable means no usable speech engine exists on this
	// system (missing binary, COM object, or platform support).
	ErrEngineNotAvailable = errors.New("speech engine is not available")

	// ErrInvalidConfig means the voice configuration failed validation.
	ErrInvalidConfig = errors.New("invalid voice configuration")
)

// DefaultRate is the default speech rate in words per minute.
const DefaultRate = 175

// VoiceConfig configures the synthesizer's voice. It is applied once at
// construction and never changed mid-utterance.
type VoiceConfig struct {
	Rate    int     // words per minute
	Volume  float64 // 0.0 – 1.0
	VoiceID string  // platform voice identifier, "" for the default voice
}

// DefaultVoiceConfig returns the standard voice settings.
func DefaultVoiceConfig() VoiceConfig {
	return VoiceConfig{
		Rate:   DefaultRate,
		Volume: 1.0,
	}
}

// Validate checks the configuration.
func (c VoiceConfig) Validate() error {
	if c.Rate <= 0 {
		return fmt.Errorf("%w: rate must be positive, got %d", ErrInvalidConfig, c.Rate)
	}
	if c.Volume < 0.0 || c.Volume > 1.0 {
		return fmt.Errorf("%w: volume must be between 0.0 and 1.0, got %f", ErrInvalidConfig, c.Volume)
	}
	return nil
}

// Voice describes an installed system voice.
type Voice struct {
	ID       string // identifier usable as VoiceConfig.VoiceID
	Name     string // human-readable name
	Language string // BCP 47 language tag when the platform reports one
}

// Synthesizer speaks text aloud.
type Synthesizer interface {
	// Speak blocks until the utterance completes. Blank or whitespace-only
	// text is a no-op. A Speak interrupted by Stop returns nil.
	Speak(text string) error

	// Stop requests the in-flight utterance halt as soon as feasible.
	// Safe to call when idle, and from another goroutine.
	Stop()

	// Voices lists the voices installed on this system.
	Voices() ([]Voice, error)
}

// New returns the platform synthesizer configured with cfg.
func New(cfg VoiceConfig) (Synthesizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newPlatformSynthesizer(cfg)
}
