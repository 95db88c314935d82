package detect

// PresenceProbe answers "is a slideshow actively running right now" using
// whatever signal the platform offers. Implementations degrade to false on
// any failure; a broken probe must never take down the poll loop.
type PresenceProbe interface {
	Presenting() bool
}

// impressOpen reports whether LibreOffice Impress currently has a
// presentation file open. Impress exposes no slideshow window signal we can
// read from outside the process, so file-open serves as the presenting
// proxy on every platform.
func impressOpen(inspector ProcessInspector) bool {
	return inspector.DetectFile(ImpressProcesses) != ""
}
