package platform

import (
	"errors"
	"testing"
)

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"en-US", "en"},
		{"ru_RU.UTF-8", "ru"},
		{"pt-BR", "pt"},
		{"pt", "pt"},
		{"de_DE@euro", "de"},
		{"C", FallbackLanguage},
		{"POSIX", FallbackLanguage},
		{"", FallbackLanguage},
		{"not a locale!", FallbackLanguage},
	}

	for _, test := range tests {
		result := NormalizeLanguage(test.raw)
		if result != test.expected {
			t.Errorf("NormalizeLanguage(%q) = %q, expected %q", test.raw, result, test.expected)
		}
	}
}

func TestSystemLanguage(t *testing.T) {
	original := systemLocale
	defer func() { systemLocale = original }()

	systemLocale = func() (string, error) { return "ru-RU", nil }
	if lang := SystemLanguage(); lang != "ru" {
		t.Errorf("Expected 'ru', got %q", lang)
	}

	systemLocale = func() (string, error) { return "", errors.New("no locale") }
	if lang := SystemLanguage(); lang != FallbackLanguage {
		t.Errorf("Expected fallback %q, got %q", FallbackLanguage, lang)
	}
}
