package services

import "strings"

// Speech capture and playback both live in the client: the browser
// transcribes the user's voice into the message text, and reads the reply
// aloud via its own synthesis engine. These ports keep that boundary
// explicit so the core never depends on either implementation.

// SpeechTranscriber is the inbound port. It yields the question text the
// capture mechanism produced from the user's input.
type SpeechTranscriber interface {
	TranscribeText(raw string) string
}

// SpeechSynthesizer is the outbound port. It turns a reply into the text
// handed to the playback mechanism.
type SpeechSynthesizer interface {
	SpeakText(reply string) string
}

// BrowserTranscriber trusts the client's transcript: the browser already
// turned the voice input into the message text, so the server only trims it.
type BrowserTranscriber struct{}

func (BrowserTranscriber) TranscribeText(raw string) string {
	return strings.TrimSpace(raw)
}

// BrowserSynthesizer defers playback to the client. Quotes and newlines are
// stripped because they break the utterance the browser builds from the
// speak field.
type BrowserSynthesizer struct{}

var speakSanitizer = strings.NewReplacer("\"", "", "'", "", "\n", " ")

func (BrowserSynthesizer) SpeakText(reply string) string {
	return speakSanitizer.Replace(reply)
}
