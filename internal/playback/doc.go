// Package playback drives extracted slide text into the speech
// synthesizer, one slide at a time, with a cooperative stop flag and an
// optional closing remark at the end of the deck.
package playback
