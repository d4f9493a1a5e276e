package services

import "testing"

func TestBrowserSynthesizerSanitizes(t *testing.T) {
	s := BrowserSynthesizer{}

	got := s.SpeakText("Try a \"cream\" blush.\nIt's gentler.")
	want := "Try a cream blush. Its gentler."
	if got != want {
		t.Errorf("SpeakText = %q, want %q", got, want)
	}
}

func TestBrowserTranscriberTrims(t *testing.T) {
	tr := BrowserTranscriber{}
	if got := tr.TranscribeText("  what blush suits dry skin?  "); got != "what blush suits dry skin?" {
		t.Errorf("TranscribeText = %q, want trimmed text", got)
	}
	if got := tr.TranscribeText("   "); got != "" {
		t.Errorf("TranscribeText = %q, want empty for blank input", got)
	}
}

func TestBrowserSynthesizerPassThrough(t *testing.T) {
	s := BrowserSynthesizer{}
	if got := s.SpeakText("plain reply"); got != "plain reply" {
		t.Errorf("SpeakText = %q, want unchanged text", got)
	}
}
