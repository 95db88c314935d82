//go:build windows

package detect

import (
	"unsafe"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/windows"
)

// slideshowWindowClass is the window class PowerPoint registers for its
// full-screen slideshow surface. It is used by nothing else, so its mere
// existence means a slideshow is on screen.
const slideshowWindowClass = "screenClass"

var (
	user32          = windows.NewLazySystemDLL("user32.dll")
	procFindWindowW = user32.NewProc("FindWindowW")
)

type windowsProbe struct {
	inspector ProcessInspector
}

// NewPresenceProbe returns the Windows presence probe: a window-class
// lookup for PowerPoint, with the Impress file-open proxy as fallback.
func NewPresenceProbe(inspector ProcessInspector) PresenceProbe {
	return &windowsProbe{inspector: inspector}
}

func (p *windowsProbe) Presenting() bool {
	if slideshowWindowPresent() {
		return true
	}
	return impressOpen(p.inspector)
}

func slideshowWindowPresent() bool {
	cls, err := windows.UTF16PtrFromString(slideshowWindowClass)
	if err != nil {
		log.Debug("Could not encode window class name", "err", err)
		return false
	}
	handle, _, _ := procFindWindowW.Call(uintptr(unsafe.Pointer(cls)), 0)
	return handle != 0
}
