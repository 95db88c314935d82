package playback

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/dgnsrekt/decktalk/internal/deck"
	"github.com/dgnsrekt/decktalk/internal/speech"
)

// DefaultSlideDelay is the pause between slides.
const DefaultSlideDelay = 1500 * time.Millisecond

// interruptPause is the breath taken between an interrupted utterance and
// the closing remark.
const interruptPause = time.Second

// Options configures a Controller.
type Options struct {
	// SlideDelay is the pause after each slide. Zero or negative values
	// fall back to DefaultSlideDelay.
	SlideDelay time.Duration

	// Remarks enables a closing remark at the end of a deck.
	Remarks bool

	// RemarkStrategy selects the rotation behavior of the remark pool.
	RemarkStrategy RemarkStrategy
}

// Controller reads an entire presentation aloud, slide by slide.
type Controller struct {
	synth      speech.Synthesizer
	slideDelay time.Duration
	remarks    *RemarkPool

	stopped atomic.Bool
}

// New creates a playback controller speaking through synth.
func New(synth speech.Synthesizer, opts Options) *Controller {
	delay := opts.SlideDelay
	if delay <= 0 {
		delay = DefaultSlideDelay
	}

	c := &Controller{
		synth:      synth,
		slideDelay: delay,
	}
	if opts.Remarks {
		c.remarks = NewRemarkPool(opts.RemarkStrategy)
	}
	return c
}

// Play extracts the deck at path and reads it aloud sequentially. It
// returns extraction errors to the caller; synthesis errors are logged and
// playback moves on to the next slide.
func (c *Controller) Play(path string) error {
	c.stopped.Store(false)

	slides, err := deck.Extract(path)
	if err != nil {
		return fmt.Errorf("unable to read deck: %w", err)
	}
	if len(slides) == 0 {
		log.Warn("No slides found", "file", path)
		return nil
	}

	fields := []any{"file", path, "slides", len(slides)}
	if info, statErr := os.Stat(path); statErr == nil {
		fields = append(fields, "size", humanize.Bytes(uint64(info.Size())))
	}
	log.Info("Starting presentation", fields...)

	start := time.Now()
	for _, slide := range slides {
		if c.stopped.Load() {
			log.Info("Playback stopped")
			return nil
		}
		c.readSlide(slide)
	}

	if !c.stopped.Load() {
		c.deliverRemark()
	}
	log.Info("Presentation complete", "elapsed", time.Since(start).Round(time.Second))
	return nil
}

// Finish interrupts any in-flight speech and, after a short pause,
// delivers a closing remark. This is the path taken when the slideshow
// ends while slides are still being read.
func (c *Controller) Finish() {
	c.stopped.Store(true)
	c.synth.Stop()

	if c.remarks == nil {
		return
	}
	time.Sleep(interruptPause)
	c.deliverRemark()
}

// Stop signals playback to halt after the current utterance. Safe to call
// from a signal handler goroutine.
func (c *Controller) Stop() {
	c.stopped.Store(true)
	c.synth.Stop()
}

func (c *Controller) readSlide(slide deck.Slide) {
	text := slide.FullText()
	if text == "" {
		log.Debug("Skipping empty slide", "slide", slide.Number)
		return
	}

	log.Info("Reading slide", "slide", slide.Number, "text", truncate(text, 80))
	if err := c.synth.Speak(text); err != nil {
		log.Error("Speech failed", "slide", slide.Number, "err", err)
	}

	if !c.stopped.Load() {
		time.Sleep(c.slideDelay)
	}
}

func (c *Controller) deliverRemark() {
	if c.remarks == nil {
		return
	}
	remark := c.remarks.Next()
	log.Info("Closing remark", "text", truncate(remark, 80))
	if err := c.synth.Speak(remark); err != nil {
		log.Error("Closing remark failed", "err", err)
	}
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "…"
}
