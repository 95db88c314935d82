// Package detect watches the operating system for a presentation
// application entering slideshow mode. It combines a process-table scan
// with a platform presence check and turns the result into edge-triggered
// started/ended callbacks.
package detect
