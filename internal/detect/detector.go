package detect

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultPollInterval is the wall-clock cadence of the detection loop.
const DefaultPollInterval = 3 * time.Second

// State is the detector's position in the session lifecycle.
type State int

const (
	// StateIdle means no slideshow session is in progress.
	StateIdle State = iota
	// StateActive means a slideshow session is in progress.
	StateActive
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	default:
		return "unknown"
	}
}

// Options configures a Detector.
type Options struct {
	// PollInterval is the time between poll cycles. Zero or negative
	// values fall back to DefaultPollInterval.
	PollInterval time.Duration
}

// Detector polls a ProcessInspector and a PresenceProbe on a fixed cadence
// and fires edge-triggered callbacks when a slideshow starts or ends.
//
// Exactly one session can be active at a time, and the current file is set
// if and only if the state is active. Callback counts obey the guarantee
// that started calls equal ended calls, or exceed them by exactly one when
// the loop is stopped mid-session; no synthetic ended call is forced on
// shutdown.
type Detector struct {
	inspector ProcessInspector
	probe     PresenceProbe
	interval  time.Duration

	state       State
	currentFile string

	running  atomic.Bool
	stopCh   chan struct{}
	stopOnce sync.Once
}

// New creates a Detector over the given inspector and probe.
func New(inspector ProcessInspector, probe PresenceProbe, opts Options) *Detector {
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Detector{
		inspector: inspector,
		probe:     probe,
		interval:  interval,
		state:     StateIdle,
		stopCh:    make(chan struct{}),
	}
}

// State returns the detector's current state.
func (d *Detector) State() State {
	return d.state
}

// CurrentFile returns the active session's file path, or "" when idle.
func (d *Detector) CurrentFile() string {
	return d.currentFile
}

// Watch blocks and polls until Stop is called. onStarted fires once per
// rising edge with the detected file path; onEnded fires once per falling
// edge. While a callback runs no further polling takes place, so a long
// callback delays the next cycle rather than overlapping it.
func (d *Detector) Watch(onStarted func(path string), onEnded func()) {
	d.running.Store(true)
	log.Info("Watching for slideshow activity", "interval", d.interval)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for d.running.Load() {
		d.poll(onStarted, onEnded)

		select {
		case <-ticker.C:
		case <-d.stopCh:
			return
		}
	}
}

// Stop signals the watch loop to exit. It does not interrupt a callback in
// flight; the loop observes the flag at its next suspension point. Safe to
// call from another goroutine, and more than once.
func (d *Detector) Stop() {
	d.running.Store(false)
	d.stopOnce.Do(func() { close(d.stopCh) })
}

// poll performs one detection cycle: exactly one inspector query, one probe
// query, then the transition table.
func (d *Detector) poll(onStarted func(path string), onEnded func()) {
	file := d.inspector.DetectFile(PresentationProcesses)
	presenting := d.probe.Presenting()

	switch d.state {
	case StateIdle:
		// A file open in the editor without a slideshow running must not
		// start a session.
		if file == "" || !presenting {
			return
		}
		d.state = StateActive
		d.currentFile = file
		log.Info("Slideshow started", "file", file)
		onStarted(file)

	case StateActive:
		// The file may still be open in the editor after the slideshow
		// ends; only the presence signal decides the falling edge.
		if presenting {
			return
		}
		d.state = StateIdle
		d.currentFile = ""
		log.Info("Slideshow ended")
		onEnded()
	}
}
