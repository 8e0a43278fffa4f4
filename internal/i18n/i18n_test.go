package i18n

import (
	"testing"

	"github.com/abhisek/errormind/internal/catalog"
)

func TestT_KnownKeys(t *testing.T) {
	tests := []struct {
		lang catalog.Language
		key  Key
		want string
	}{
		{catalog.LangEN, Dashboard, "Mission Control"},
		{catalog.LangRU, Dashboard, "Центр Управления"},
		{catalog.LangKK, Dashboard, "Басқару Орталығы"},
		{catalog.LangRU, Back, "Назад"},
	}
	for _, tt := range tests {
		if got := T(tt.lang, tt.key); got != tt.want {
			t.Errorf("T(%s, %s) = %q, want %q", tt.lang, tt.key, got, tt.want)
		}
	}
}

func TestT_FallsBackToEnglish(t *testing.T) {
	if got := T(catalog.Language("de"), Dashboard); got != "Mission Control" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestT_UnknownKeyReturnsKeyName(t *testing.T) {
	if got := T(catalog.LangEN, Key("nonexistent")); got != "nonexistent" {
		t.Fatalf("expected key name, got %q", got)
	}
}

func TestT_EveryLanguageCoversEveryEnglishKey(t *testing.T) {
	for lang, table := range translations {
		if lang == catalog.LangEN {
			continue
		}
		for key := range translations[catalog.LangEN] {
			if _, ok := table[key]; !ok {
				t.Errorf("language %s missing key %s", lang, key)
			}
		}
	}
}
