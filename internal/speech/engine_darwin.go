//go:build darwin

package speech

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// sayEngine speaks through the macOS `say` command.
type sayEngine struct {
	cfg     VoiceConfig
	speaker subprocessSpeaker
}

func newPlatformSynthesizer(cfg VoiceConfig) (Synthesizer, error) {
	if _, err := exec.LookPath("say"); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineNotAvailable, err)
	}
	return &sayEngine{cfg: cfg}, nil
}

func (e *sayEngine) Speak(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	// say has no volume flag; volume rides along as an inline speech
	// command.
	if e.cfg.Volume < 1.0 {
		text = fmt.Sprintf("[[volm %.2f]] %s", e.cfg.Volume, text)
	}

	args := []string{"-r", strconv.Itoa(e.cfg.Rate)}
	if e.cfg.VoiceID != "" {
		args = append(args, "-v", e.cfg.VoiceID)
	}
	args = append(args, text)

	return e.speaker.run("say", args)
}

func (e *sayEngine) Stop() {
	e.speaker.stop()
}

func (e *sayEngine) Voices() ([]Voice, error) {
	out, err := exec.Command("say", "-v", "?").Output()
	if err != nil {
		return nil, fmt.Errorf("unable to list voices: %w", err)
	}
	return parseSayVoices(string(out)), nil
}
