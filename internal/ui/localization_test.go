package ui

import "testing"

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyAppTitle); got != "Resource Browser" {
		t.Errorf("Expected English title, got %s", got)
	}

	l.SetLanguage("pt")
	if got := l.GetText(KeyRefresh); got != "Atualizar" {
		t.Errorf("Expected Portuguese text, got %s", got)
	}

	// unknown languages are ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected language to stay pt, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to map to en, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %s", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		if len(l.texts[lang]) != len(l.texts["en"]) {
			t.Errorf("Language %s has %d texts, expected %d", lang, len(l.texts[lang]), len(l.texts["en"]))
		}
	}
}
