package deck

import "testing"

func TestSlideFullText(t *testing.T) {
	tests := []struct {
		name     string
		slide    Slide
		expected string
	}{
		{
			name:     "title and body",
			slide:    Slide{Title: "Title", Body: []string{"Line 1", "Line 2"}},
			expected: "Title. Line 1. Line 2",
		},
		{
			name:     "body only",
			slide:    Slide{Title: "", Body: []string{"Only body"}},
			expected: "Only body",
		},
		{
			name:     "empty slide",
			slide:    Slide{Title: "", Body: nil},
			expected: "",
		},
		{
			name:     "title only",
			slide:    Slide{Title: "Just a title"},
			expected: "Just a title",
		},
		{
			name:     "blank body lines are skipped",
			slide:    Slide{Title: "Title", Body: []string{"", "  ", "Real line", "\t"}},
			expected: "Title. Real line",
		},
		{
			name:     "all blank body without title",
			slide:    Slide{Body: []string{"   ", ""}},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.slide.FullText(); got != tt.expected {
				t.Errorf("FullText() = %q, want %q", got, tt.expected)
			}
		})
	}
}
