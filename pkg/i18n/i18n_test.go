package i18n

import (
	"testing"
)

func TestPassthrough(t *testing.T) {
	tr := Passthrough()

	text := "Select the type of change you are committing"
	for _, language := range []string{"", "en", "de", "xx"} {
		if got := tr.Translate(text, language, "prefix"); got != text {
			t.Errorf("Translate(%q, %q) = %q; want unchanged", text, language, got)
		}
	}
}

func TestBuiltin(t *testing.T) {
	tr := Builtin()

	text := "Select the type of change you are committing"

	if got := tr.Translate(text, "de", "prefix"); got == text {
		t.Error("Translate should localize known language and key")
	}

	// unknown language falls back to English
	if got := tr.Translate(text, "fr", "prefix"); got != text {
		t.Errorf("Translate with unknown language = %q; want English text", got)
	}

	// unknown key falls back to English
	if got := tr.Translate(text, "de", "missing-key"); got != text {
		t.Errorf("Translate with unknown key = %q; want English text", got)
	}
}
