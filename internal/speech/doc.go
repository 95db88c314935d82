// Package speech wraps the operating system's offline text-to-speech
// facilities behind a single Synthesizer interface. Speech is synchronous;
// Speak blocks until the utterance completes, and Stop interrupts the
// in-flight utterance as soon as the engine allows.
package speech
