package detect

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shirou/gopsutil/v4/process"
)

// deckExtension is the only presentation package format we read.
const deckExtension = ".pptx"

// NameSet is a case-normalized set of process names.
type NameSet map[string]struct{}

// NewNameSet builds a NameSet from the given names, lowercasing each one.
func NewNameSet(names ...string) NameSet {
	set := make(NameSet, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}

// Contains reports whether name is in the set. Matching is exact after
// lowercasing; partial matches would catch unrelated processes.
func (s NameSet) Contains(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Union returns a new set holding the members of s and others.
func (s NameSet) Union(others ...NameSet) NameSet {
	merged := make(NameSet, len(s))
	for name := range s {
		merged[name] = struct{}{}
	}
	for _, other := range others {
		for name := range other {
			merged[name] = struct{}{}
		}
	}
	return merged
}

// Process name allow-lists for the supported presentation applications.
var (
	// PowerPointProcesses matches Microsoft PowerPoint.
	PowerPointProcesses = NewNameSet("powerpnt.exe", "powerpnt")

	// ImpressProcesses matches LibreOffice Impress across launcher variants.
	ImpressProcesses = NewNameSet("soffice.bin", "soffice", "libreoffice", "impress")

	// PresentationProcesses matches any supported presentation application.
	PresentationProcesses = PowerPointProcesses.Union(ImpressProcesses)
)

// ProcessInspector answers questions about the live process table.
// Implementations must never fail a whole query because a single process
// vanished or denied access; such processes are skipped.
type ProcessInspector interface {
	// Running reports whether any process with a name in names is running.
	Running(names NameSet) bool

	// DetectFile returns the first presentation file path found among the
	// command-line arguments of processes matching names, or "" when none.
	// A path only qualifies if it has the presentation extension and exists
	// as a regular file at the moment of inspection.
	DetectFile(names NameSet) string
}

// SystemInspector is the production ProcessInspector. Every call freshly
// enumerates the process table; any caching happens above it.
type SystemInspector struct{}

// NewSystemInspector returns a ProcessInspector backed by the OS process table.
func NewSystemInspector() *SystemInspector {
	return &SystemInspector{}
}

// Running implements ProcessInspector.
func (*SystemInspector) Running(names NameSet) bool {
	procs, err := process.Processes()
	if err != nil {
		log.Warn("Could not enumerate processes", "err", err)
		return false
	}
	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			// Process vanished or access denied; skip it.
			continue
		}
		if names.Contains(name) {
			return true
		}
	}
	return false
}

// DetectFile implements ProcessInspector.
func (*SystemInspector) DetectFile(names NameSet) string {
	procs, err := process.Processes()
	if err != nil {
		log.Warn("Could not enumerate processes", "err", err)
		return ""
	}
	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			continue
		}
		if !names.Contains(name) {
			continue
		}
		args, err := proc.CmdlineSlice()
		if err != nil {
			continue
		}
		if path := firstDeckArg(args, isRegularFile); path != "" {
			return path
		}
	}
	return ""
}

// firstDeckArg scans command-line arguments for a presentation file path.
// The existence check guards against stale or unrelated arguments that
// merely end with the right extension.
func firstDeckArg(args []string, exists func(string) bool) string {
	for _, arg := range args {
		if strings.HasSuffix(strings.ToLower(arg), deckExtension) && exists(arg) {
			return arg
		}
	}
	return ""
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
