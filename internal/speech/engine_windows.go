//go:build windows

package speech

import (
	"fmt"
	"strings"
	"sync"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

// SAPI SpeechVoiceSpeakFlags.
const (
	svsfDefault          = 0
	svsfAsync            = 1
	svsfPurgeBeforeSpeak = 2
)

// sapiEngine speaks through the SAPI SpVoice COM automation object.
type sapiEngine struct {
	cfg     VoiceConfig
	unknown *ole.IUnknown
	voice   *ole.IDispatch
	mu      sync.Mutex
}

func newPlatformSynthesizer(cfg VoiceConfig) (Synthesizer, error) {
	// CoInitialize fails harmlessly when COM is already initialized on
	// this thread.
	_ = ole.CoInitialize(0)

	unknown, err := oleutil.CreateObject("SAPI.SpVoice")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEngineNotAvailable, err)
	}
	voice, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		unknown.Release()
		return nil, fmt.Errorf("%w: %v", ErrEngineNotAvailable, err)
	}

	e := &sapiEngine{cfg: cfg, unknown: unknown, voice: voice}
	if err := e.applyConfig(); err != nil {
		e.release()
		return nil, err
	}
	return e, nil
}

func (e *sapiEngine) applyConfig() error {
	if _, err := oleutil.PutProperty(e.voice, "Rate", wpmToSAPIRate(e.cfg.Rate)); err != nil {
		return fmt.Errorf("unable to set rate: %w", err)
	}
	if _, err := oleutil.PutProperty(e.voice, "Volume", int(e.cfg.Volume*100)); err != nil {
		return fmt.Errorf("unable to set volume: %w", err)
	}
	if e.cfg.VoiceID != "" {
		if err := e.selectVoice(e.cfg.VoiceID); err != nil {
			return err
		}
	}
	return nil
}

func (e *sapiEngine) selectVoice(id string) error {
	tokens, err := e.voiceTokens()
	if err != nil {
		return err
	}
	defer tokens.Release()

	count, err := oleutil.GetProperty(tokens, "Count")
	if err != nil {
		return fmt.Errorf("unable to count voices: %w", err)
	}
	for i := 0; i < int(count.Val); i++ {
		item, err := oleutil.CallMethod(tokens, "Item", i)
		if err != nil {
			continue
		}
		token := item.ToIDispatch()
		tokenID, err := oleutil.GetProperty(token, "Id")
		if err != nil {
			token.Release()
			continue
		}
		if strings.EqualFold(tokenID.ToString(), id) {
			_, err := oleutil.PutPropertyRef(e.voice, "Voice", token)
			token.Release()
			if err != nil {
				return fmt.Errorf("unable to select voice: %w", err)
			}
			return nil
		}
		token.Release()
	}
	return fmt.Errorf("voice %q not found", id)
}

func (e *sapiEngine) Speak(text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := oleutil.CallMethod(e.voice, "Speak", text, svsfDefault); err != nil {
		return fmt.Errorf("speak failed: %w", err)
	}
	return nil
}

func (e *sapiEngine) Stop() {
	// An empty asynchronous utterance with the purge flag flushes whatever
	// is currently being spoken.
	_, _ = oleutil.CallMethod(e.voice, "Speak", "", svsfAsync|svsfPurgeBeforeSpeak)
}

func (e *sapiEngine) Voices() ([]Voice, error) {
	tokens, err := e.voiceTokens()
	if err != nil {
		return nil, err
	}
	defer tokens.Release()

	count, err := oleutil.GetProperty(tokens, "Count")
	if err != nil {
		return nil, fmt.Errorf("unable to count voices: %w", err)
	}

	voices := make([]Voice, 0, count.Val)
	for i := 0; i < int(count.Val); i++ {
		item, err := oleutil.CallMethod(tokens, "Item", i)
		if err != nil {
			continue
		}
		token := item.ToIDispatch()

		voice := Voice{}
		if id, err := oleutil.GetProperty(token, "Id"); err == nil {
			voice.ID = id.ToString()
		}
		if desc, err := oleutil.CallMethod(token, "GetDescription"); err == nil {
			voice.Name = desc.ToString()
		}
		if attrs, err := oleutil.CallMethod(token, "GetAttribute", "Language"); err == nil {
			voice.Language = attrs.ToString()
		}
		token.Release()
		voices = append(voices, voice)
	}
	return voices, nil
}

func (e *sapiEngine) voiceTokens() (*ole.IDispatch, error) {
	result, err := oleutil.CallMethod(e.voice, "GetVoices")
	if err != nil {
		return nil, fmt.Errorf("unable to list voices: %w", err)
	}
	return result.ToIDispatch(), nil
}

func (e *sapiEngine) release() {
	if e.voice != nil {
		e.voice.Release()
	}
	if e.unknown != nil {
		e.unknown.Release()
	}
}
