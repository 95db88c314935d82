package speech

import (
	"strings"
	"sync"
)

// MockSynthesizer is an in-memory Synthesizer for tests. It records every
// spoken utterance and can be scripted to fail or to run a hook per call.
type MockSynthesizer struct {
	mu sync.Mutex

	spoken    []string
	stopCalls int

	// SpeakErr, when set, is returned by every Speak call.
	SpeakErr error

	// OnSpeak, when set, runs before each utterance is recorded. Useful
	// for triggering stops mid-playback.
	OnSpeak func(text string)

	// VoiceList is returned by Voices.
	VoiceList []Voice
}

// NewMock creates a mock synthesizer.
func NewMock() *MockSynthesizer {
	return &MockSynthesizer{
		VoiceList: []Voice{{ID: "mock-voice-1", Name: "Mock Voice", Language: "en-US"}},
	}
}

// Speak implements Synthesizer. Blank text is a no-op and is not recorded.
func (m *MockSynthesizer) Speak(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if m.OnSpeak != nil {
		m.OnSpeak(text)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SpeakErr != nil {
		return m.SpeakErr
	}
	m.spoken = append(m.spoken, text)
	return nil
}

// Stop implements Synthesizer.
func (m *MockSynthesizer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopCalls++
}

// Voices implements Synthesizer.
func (m *MockSynthesizer) Voices() ([]Voice, error) {
	return m.VoiceList, nil
}

// Spoken returns the recorded utterances in order.
func (m *MockSynthesizer) Spoken() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.spoken...)
}

// StopCalls returns how many times Stop was called.
func (m *MockSynthesizer) StopCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopCalls
}
