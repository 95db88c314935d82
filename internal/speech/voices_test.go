package speech

import "testing"

func TestParseSayVoices(t *testing.T) {
	output := `Alex                en_US    # Most people recognize me by my voice.
Bad News            en_US    # The light you see at the end of the tunnel is the headlamp of a fast approaching train.
Amélie              fr_CA    # Bonjour, je m'appelle Amélie.

`
	voices := parseSayVoices(output)
	if len(voices) != 3 {
		t.Fatalf("got %d voices, want 3", len(voices))
	}

	if voices[0].ID != "Alex" || voices[0].Language != "en-US" {
		t.Errorf("voices[0] = %+v", voices[0])
	}
	// Voice names may contain spaces; the locale is the last column.
	if voices[1].Name != "Bad News" || voices[1].Language != "en-US" {
		t.Errorf("voices[1] = %+v", voices[1])
	}
	if voices[2].Name != "Amélie" || voices[2].Language != "fr-CA" {
		t.Errorf("voices[2] = %+v", voices[2])
	}
}

func TestParseEspeakVoices(t *testing.T) {
	output := `Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  en-US           M  english-us           other/en-us
 5  fr              M  french               fr
`
	voices := parseEspeakVoices(output)
	if len(voices) != 2 {
		t.Fatalf("got %d voices, want 2", len(voices))
	}
	if voices[0].ID != "english-us" || voices[0].Language != "en-US" {
		t.Errorf("voices[0] = %+v", voices[0])
	}
	if voices[1].ID != "french" || voices[1].Language != "fr" {
		t.Errorf("voices[1] = %+v", voices[1])
	}
}

func TestParseVoicesEmptyOutput(t *testing.T) {
	if got := parseSayVoices(""); len(got) != 0 {
		t.Errorf("parseSayVoices(\"\") = %v", got)
	}
	if got := parseEspeakVoices(""); len(got) != 0 {
		t.Errorf("parseEspeakVoices(\"\") = %v", got)
	}
}

func TestWPMToSAPIRate(t *testing.T) {
	tests := []struct {
		wpm      int
		expected int
	}{
		{157, 0},
		{175, 1},
		{120, -3},
		{400, 9},
		{10000, 10}, // clamped high
		{1, -10},    // clamped low
		{0, 0},      // guarded
	}

	for _, tt := range tests {
		if got := wpmToSAPIRate(tt.wpm); got != tt.expected {
			t.Errorf("wpmToSAPIRate(%d) = %d, want %d", tt.wpm, got, tt.expected)
		}
	}
}

func TestEspeakAmplitude(t *testing.T) {
	tests := []struct {
		volume   float64
		expected int
	}{
		{1.0, 100},
		{0.5, 50},
		{0.0, 0},
		{-1.0, 0},
		{3.0, 200},
	}

	for _, tt := range tests {
		if got := espeakAmplitude(tt.volume); got != tt.expected {
			t.Errorf("espeakAmplitude(%f) = %d, want %d", tt.volume, got, tt.expected)
		}
	}
}
