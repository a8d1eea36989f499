package i18n

import "testing"

func TestAllKeysHaveBothLanguages(t *testing.T) {
	for _, k := range Keys() {
		for _, lang := range Languages {
			if _, ok := dict[k][lang]; !ok {
				t.Errorf("key %q missing %q translation", k, lang)
			}
			if dict[k][lang] == "" {
				t.Errorf("key %q has empty %q translation", k, lang)
			}
		}
	}
}

func TestFallbacks(t *testing.T) {
	if got := T(French, "tab.mixture"); got != "Mélange" {
		t.Errorf("T(fr, tab.mixture) = %q", got)
	}
	// unknown language falls back to English
	if got := T(Lang("de"), "tab.mixture"); got != "Mixture" {
		t.Errorf("T(de, tab.mixture) = %q", got)
	}
	// unknown key falls back to the key itself
	if got := T(English, "nope.missing"); got != "nope.missing" {
		t.Errorf("T(en, nope.missing) = %q", got)
	}
}

func TestParseLang(t *testing.T) {
	if ParseLang("fr") != French {
		t.Error("fr not recognized")
	}
	for _, raw := range []string{"", "en", "xx"} {
		if ParseLang(raw) != English {
			t.Errorf("ParseLang(%q) should default to English", raw)
		}
	}
}
