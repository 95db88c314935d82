package deck

import "strings"

// Slide is the text content extracted from a single slide.
type Slide struct {
	Number int      // 1-based position in the deck
	Title  string   // first title-placeholder text, "" when absent
	Body   []string // remaining text shapes in encounter order
}

// FullText returns the slide as one readable string: the title followed by
// each non-blank body line, joined by ". ". A blank title is omitted.
func (s Slide) FullText() string {
	parts := make([]string, 0, len(s.Body)+1)
	if s.Title != "" {
		parts = append(parts, s.Title)
	}
	for _, line := range s.Body {
		if strings.TrimSpace(line) != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, ". ")
}
