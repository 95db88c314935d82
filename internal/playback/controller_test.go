package playback

import (
	"archive/zip"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/dgnsrekt/decktalk/internal/speech"
)

// writeDeck builds a minimal .pptx fixture with one slide per title.
func writeDeck(t *testing.T, titles ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.pptx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	w := zip.NewWriter(f)

	for i, title := range titles {
		entry, err := w.Create("ppt/slides/slide" + strconv.Itoa(i+1) + ".xml")
		if err != nil {
			t.Fatal(err)
		}
		content := `<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
			`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
			`<p:cSld><p:spTree><p:sp><p:nvSpPr><p:nvPr><p:ph type="title"/></p:nvPr></p:nvSpPr>` +
			`<p:txBody><a:p><a:r><a:t>` + title + `</a:t></a:r></a:p></p:txBody></p:sp>` +
			`</p:spTree></p:cSld></p:sld>`
		if _, err := entry.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestPlayReadsDeckAndRemarks(t *testing.T) {
	path := writeDeck(t, "First", "Second")
	synth := speech.NewMock()
	ctrl := New(synth, Options{SlideDelay: time.Millisecond, Remarks: true})

	if err := ctrl.Play(path); err != nil {
		t.Fatalf("Play: %v", err)
	}

	spoken := synth.Spoken()
	if len(spoken) != 3 {
		t.Fatalf("spoke %d utterances, want 2 slides + 1 remark: %v", len(spoken), spoken)
	}
	if spoken[0] != "First" || spoken[1] != "Second" {
		t.Errorf("slides spoken out of order: %v", spoken[:2])
	}
	if spoken[2] != closingRemarks[0] {
		t.Errorf("remark = %q, want the first pool entry", spoken[2])
	}
}

func TestPlayWithoutRemarks(t *testing.T) {
	path := writeDeck(t, "Only slide")
	synth := speech.NewMock()
	ctrl := New(synth, Options{SlideDelay: time.Millisecond})

	if err := ctrl.Play(path); err != nil {
		t.Fatal(err)
	}
	if spoken := synth.Spoken(); len(spoken) != 1 || spoken[0] != "Only slide" {
		t.Errorf("spoken = %v, want just the slide", spoken)
	}
}

func TestPlayStopsBetweenSlides(t *testing.T) {
	path := writeDeck(t, "One", "Two", "Three")
	synth := speech.NewMock()
	ctrl := New(synth, Options{SlideDelay: time.Millisecond, Remarks: true})

	synth.OnSpeak = func(text string) {
		if text == "One" {
			ctrl.Stop()
		}
	}

	if err := ctrl.Play(path); err != nil {
		t.Fatal(err)
	}

	spoken := synth.Spoken()
	if len(spoken) != 1 || spoken[0] != "One" {
		t.Errorf("spoken = %v, want playback to halt after the first slide", spoken)
	}
	if synth.StopCalls() == 0 {
		t.Error("Stop never reached the synthesizer")
	}
}

func TestPlayMissingFile(t *testing.T) {
	synth := speech.NewMock()
	ctrl := New(synth, Options{SlideDelay: time.Millisecond})

	err := ctrl.Play(filepath.Join(t.TempDir(), "gone.pptx"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Play on a missing file = %v, want fs.ErrNotExist", err)
	}
	if len(synth.Spoken()) != 0 {
		t.Error("spoke despite extraction failure")
	}
}

func TestPlayEmptyDeck(t *testing.T) {
	path := writeDeck(t)
	synth := speech.NewMock()
	ctrl := New(synth, Options{SlideDelay: time.Millisecond, Remarks: true})

	if err := ctrl.Play(path); err != nil {
		t.Fatalf("Play on an empty deck: %v", err)
	}
	if len(synth.Spoken()) != 0 {
		t.Errorf("spoke on an empty deck: %v", synth.Spoken())
	}
}

func TestFinishInterruptsThenRemarks(t *testing.T) {
	synth := speech.NewMock()
	ctrl := New(synth, Options{SlideDelay: time.Millisecond, Remarks: true})

	ctrl.Finish()

	if synth.StopCalls() != 1 {
		t.Errorf("StopCalls = %d, want 1", synth.StopCalls())
	}
	spoken := synth.Spoken()
	if len(spoken) != 1 || spoken[0] != closingRemarks[0] {
		t.Errorf("spoken = %v, want one closing remark", spoken)
	}
}

func TestFinishWithoutRemarksStaysSilent(t *testing.T) {
	synth := speech.NewMock()
	ctrl := New(synth, Options{SlideDelay: time.Millisecond})

	ctrl.Finish()

	if synth.StopCalls() != 1 {
		t.Errorf("StopCalls = %d, want 1", synth.StopCalls())
	}
	if len(synth.Spoken()) != 0 {
		t.Errorf("spoken = %v, want silence", synth.Spoken())
	}
}

func TestSynthesisErrorsDoNotAbortPlayback(t *testing.T) {
	path := writeDeck(t, "One", "Two")
	synth := speech.NewMock()
	synth.SpeakErr = errors.New("audio device on fire")
	ctrl := New(synth, Options{SlideDelay: time.Millisecond})

	if err := ctrl.Play(path); err != nil {
		t.Errorf("Play returned %v, want synthesis failures swallowed", err)
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("x", 100)
	if got := truncate("short", 80); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate(long, 80); !strings.HasPrefix(got, strings.Repeat("x", 80)) || !strings.HasSuffix(got, "…") {
		t.Errorf("truncate(long) = %q", got)
	}
}
