package speech

import (
	"fmt"
	"os/exec"
	"sync"
)

// subprocessSpeaker runs one speech subprocess at a time and supports
// killing it from another goroutine. The say and espeak engines both speak
// this way; only their argument lists differ.
type subprocessSpeaker struct {
	mu      sync.Mutex
	current *exec.Cmd
	stopped bool
}

// run executes the command and blocks until it exits. When the process was
// killed by Stop the interruption is not an error.
func (s *subprocessSpeaker) run(binary string, args []string) error {
	cmd := exec.Command(binary, args...)

	s.mu.Lock()
	s.stopped = false
	s.current = cmd
	s.mu.Unlock()

	err := cmd.Run()

	s.mu.Lock()
	wasStopped := s.stopped
	s.current = nil
	s.mu.Unlock()

	if err != nil && !wasStopped {
		return fmt.Errorf("%s failed: %w", binary, err)
	}
	return nil
}

// stop kills the in-flight subprocess, if any.
func (s *subprocessSpeaker) stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil && s.current.Process != nil {
		s.stopped = true
		_ = s.current.Process.Kill()
	}
}
