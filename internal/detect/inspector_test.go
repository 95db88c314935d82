package detect

import "testing"

func TestNameSetContains(t *testing.T) {
	set := NewNameSet("POWERPNT.EXE", "soffice.bin")

	tests := []struct {
		name     string
		expected bool
	}{
		{"powerpnt.exe", true},
		{"POWERPNT.EXE", true},
		{"PowerPnt.exe", true},
		{"soffice.bin", true},
		{"soffice", false},
		{"powerpnt", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := set.Contains(tt.name); got != tt.expected {
				t.Errorf("Contains(%q) = %v, want %v", tt.name, got, tt.expected)
			}
		})
	}
}

func TestNameSetUnion(t *testing.T) {
	union := PowerPointProcesses.Union(ImpressProcesses)
	for _, name := range []string{"powerpnt.exe", "powerpnt", "soffice.bin", "soffice", "libreoffice", "impress"} {
		if !union.Contains(name) {
			t.Errorf("union missing %q", name)
		}
	}
	if union.Contains("explorer.exe") {
		t.Error("union matched an unrelated process")
	}

	// Union must not mutate its receiver.
	if PowerPointProcesses.Contains("soffice") {
		t.Error("Union mutated the receiver set")
	}
}

func TestFirstDeckArg(t *testing.T) {
	always := func(string) bool { return true }
	never := func(string) bool { return false }

	tests := []struct {
		name     string
		args     []string
		exists   func(string) bool
		expected string
	}{
		{
			name:     "finds the deck argument",
			args:     []string{"powerpnt.exe", "/s", `C:\talks\q3.pptx`},
			exists:   always,
			expected: `C:\talks\q3.pptx`,
		},
		{
			name:     "extension match is case insensitive",
			args:     []string{"/home/u/Deck.PPTX"},
			exists:   always,
			expected: "/home/u/Deck.PPTX",
		},
		{
			name:     "missing file disqualifies the argument",
			args:     []string{"/tmp/gone.pptx"},
			exists:   never,
			expected: "",
		},
		{
			name:     "other extensions are ignored",
			args:     []string{"notes.txt", "deck.ppt", "deck.odp"},
			exists:   always,
			expected: "",
		},
		{
			name:     "first qualifying argument wins",
			args:     []string{"a.pptx", "b.pptx"},
			exists:   always,
			expected: "a.pptx",
		},
		{
			name:     "no arguments",
			args:     nil,
			exists:   always,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstDeckArg(tt.args, tt.exists); got != tt.expected {
				t.Errorf("firstDeckArg(%v) = %q, want %q", tt.args, got, tt.expected)
			}
		})
	}
}

func TestImpressOpenProxy(t *testing.T) {
	if impressOpen(&fakeInspector{file: ""}) {
		t.Error("impressOpen = true with no detected file")
	}
	if !impressOpen(&fakeInspector{file: "slides.pptx"}) {
		t.Error("impressOpen = false with a detected file")
	}
}
