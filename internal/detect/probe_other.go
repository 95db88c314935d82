//go:build !windows && !darwin

package detect

import (
	"sync"

	"github.com/charmbracelet/log"
)

type fallbackProbe struct {
	inspector ProcessInspector
	note      sync.Once
}

// NewPresenceProbe returns the probe for platforms without GUI
// introspection. Presenting is defined purely as "Impress has a
// presentation file open".
func NewPresenceProbe(inspector ProcessInspector) PresenceProbe {
	return &fallbackProbe{inspector: inspector}
}

func (p *fallbackProbe) Presenting() bool {
	p.note.Do(func() {
		log.Debug("No native slideshow signal on this platform, using the file-open heuristic")
	})
	return impressOpen(p.inspector)
}
