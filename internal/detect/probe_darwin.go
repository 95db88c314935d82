//go:build darwin

package detect

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

const (
	powerPointAppName = "Microsoft PowerPoint"
	osascriptTimeout  = 5 * time.Second
)

// AppleScript snippets used to ask PowerPoint about its slideshow state.
// The process check goes through System Events first so that asking the
// application directly never launches it.
const (
	scriptPowerPointRunning = `tell application "System Events" to (name of processes) contains "` + powerPointAppName + `"`
	scriptSlideshowRunning  = `tell application "` + powerPointAppName + `" to get (count of slide show windows) > 0`
)

type darwinProbe struct {
	inspector ProcessInspector
	timeout   time.Duration

	// scriptWarn keeps a flaky or missing scripting bridge from flooding
	// the log on every poll cycle.
	scriptWarn rate.Sometimes
}

// NewPresenceProbe returns the macOS presence probe: an osascript query of
// PowerPoint's slideshow windows, with the Impress file-open proxy as
// fallback. Any scripting failure counts as not presenting.
func NewPresenceProbe(inspector ProcessInspector) PresenceProbe {
	return &darwinProbe{
		inspector:  inspector,
		timeout:    osascriptTimeout,
		scriptWarn: rate.Sometimes{First: 1, Interval: time.Minute},
	}
}

func (p *darwinProbe) Presenting() bool {
	if p.powerPointPresenting() {
		return true
	}
	return impressOpen(p.inspector)
}

func (p *darwinProbe) powerPointPresenting() bool {
	running, err := p.runScript(scriptPowerPointRunning)
	if err != nil {
		p.warnScript(err)
		return false
	}
	if running != "true" {
		return false
	}

	presenting, err := p.runScript(scriptSlideshowRunning)
	if err != nil {
		p.warnScript(err)
		return false
	}
	return presenting == "true"
}

func (p *darwinProbe) runScript(script string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "osascript", "-e", script).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (p *darwinProbe) warnScript(err error) {
	p.scriptWarn.Do(func() {
		log.Warn("Slideshow scripting query failed, treating as not presenting", "err", err)
	})
}
