//go:build !windows && !darwin

package speech

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// espeakEngine speaks through espeak-ng, falling back to classic espeak.
type espeakEngine struct {
	binary  string
	cfg     VoiceConfig
	speaker subprocessSpeaker
}

func newPlatformSynthesizer(cfg VoiceConfig) (Synthesizer, error) {
	binary, err := exec.LookPath("espeak-ng")
	if err != nil {
		binary, err = exec.LookPath("espeak")
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineNotAvailable, err)
	}
	return &espeakEngine{binary: binary, cfg: cfg}, nil
}

func (e *espeakEngine) Speak(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	args := []string{
		"-s", strconv.Itoa(e.cfg.Rate),
		"-a", strconv.Itoa(espeakAmplitude(e.cfg.Volume)),
	}
	if e.cfg.VoiceID != "" {
		args = append(args, "-v", e.cfg.VoiceID)
	}
	args = append(args, text)

	return e.speaker.run(e.binary, args)
}

func (e *espeakEngine) Stop() {
	e.speaker.stop()
}

func (e *espeakEngine) Voices() ([]Voice, error) {
	out, err := exec.Command(e.binary, "--voices").Output()
	if err != nil {
		return nil, fmt.Errorf("unable to list voices: %w", err)
	}
	return parseEspeakVoices(string(out)), nil
}
