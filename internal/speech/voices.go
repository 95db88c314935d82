package speech

import (
	"math"
	"strings"
)

// parseSayVoices parses the output of `say -v ?`. Each line holds a voice
// name (which may contain spaces), a locale, and a sample sentence after a
// `#` marker:
//
//	Alex                en_US    # Most people recognize me by my voice.
func parseSayVoices(output string) []Voice {
	var voices []Voice
	for _, line := range strings.Split(output, "\n") {
		entry, _, _ := strings.Cut(line, "#")
		fields := strings.Fields(entry)
		if len(fields) < 2 {
			continue
		}
		locale := fields[len(fields)-1]
		name := strings.Join(fields[:len(fields)-1], " ")
		voices = append(voices, Voice{
			ID:       name,
			Name:     name,
			Language: strings.ReplaceAll(locale, "_", "-"),
		})
	}
	return voices
}

// parseEspeakVoices parses the output of `espeak-ng --voices`:
//
//	Pty Language       Age/Gender VoiceName          File                 Other Languages
//	 5  en-US           M  english-us           other/en-us
func parseEspeakVoices(output string) []Voice {
	lines := strings.Split(output, "\n")
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[0]), "Pty") {
		lines = lines[1:]
	}

	var voices []Voice
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		voices = append(voices, Voice{
			ID:       fields[3],
			Name:     fields[3],
			Language: fields[1],
		})
	}
	return voices
}

// wpmToSAPIRate maps words per minute onto SAPI's -10..10 rate scale. The
// scale is logarithmic: zero sits near 157 wpm and each step multiplies
// the speed by 1.11.
func wpmToSAPIRate(wpm int) int {
	if wpm <= 0 {
		return 0
	}
	rate := int(math.Round(math.Log(float64(wpm)/156.63) / math.Log(1.11)))
	if rate < -10 {
		return -10
	}
	if rate > 10 {
		return 10
	}
	return rate
}

// espeakAmplitude maps volume in [0,1] onto espeak's 0–200 amplitude
// scale, where 100 is normal loudness.
func espeakAmplitude(volume float64) int {
	amp := int(math.Round(volume * 100))
	if amp < 0 {
		return 0
	}
	if amp > 200 {
		return 200
	}
	return amp
}
