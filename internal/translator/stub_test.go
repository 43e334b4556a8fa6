package translator

import (
	"errors"
	"testing"
)

func TestStub_Translate(t *testing.T) {
	s := NewStub()

	tests := []struct {
		name    string
		text    string
		lang    string
		want    string
		wantErr error
	}{
		{"dutch", "Hello", "nl", "[DUTCH] Hello", nil},
		{"bulgarian", "Hello", "bg", "[BULGARIAN] Hello", nil},
		{"preserves casing", "HeLLo World", "nl", "[DUTCH] HeLLo World", nil},
		{"empty text", "", "bg", "[BULGARIAN] ", nil},
		{"unsupported language", "Hello", "fr", "", ErrUnsupportedLanguage},
		{"upper-case code is unsupported", "Hello", "NL", "", ErrUnsupportedLanguage},
		{"empty language", "Hello", "", "", ErrUnsupportedLanguage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Translate(tt.text, tt.lang)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestStub_Translate_Deterministic(t *testing.T) {
	s := NewStub()

	first, err := s.Translate("Good morning", "nl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := s.Translate("Good morning", "nl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first != second {
		t.Errorf("expected deterministic output, got %q then %q", first, second)
	}
}

func TestStub_SupportedLanguages(t *testing.T) {
	s := NewStub()

	langs := s.SupportedLanguages()
	if len(langs) != 2 {
		t.Fatalf("expected 2 supported languages, got %d", len(langs))
	}

	seen := make(map[string]bool, len(langs))
	for _, l := range langs {
		seen[l] = true
	}
	if !seen["nl"] || !seen["bg"] {
		t.Errorf("expected nl and bg, got %v", langs)
	}
}
