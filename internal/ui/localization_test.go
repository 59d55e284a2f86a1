package ui

import (
	"strings"
	"testing"

	"github.com/ytget/checkup/internal/model"
)

func TestLocalization_DefaultsToEnglish(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language 'en', got %q", l.GetCurrentLanguage())
	}
	if text := l.GetText(KeyBMIInvalid); text != "Please enter valid weight and height." {
		t.Errorf("Unexpected validation message %q", text)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Fatalf("Expected language 'ru', got %q", l.GetCurrentLanguage())
	}
	if text := l.GetText(KeyDelete); text != "Удалить" {
		t.Errorf("Expected Russian delete label, got %q", text)
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unsupported language must keep 'ru', got %q", l.GetCurrentLanguage())
	}
}

func TestLocalization_Format(t *testing.T) {
	l := NewLocalization()

	text := l.Format(KeyBMIResult, map[string]any{"Value": "24.22", "Category": "Healthy Weight"})
	expected := "Your BMI is: 24.22\nBMI Category: Healthy Weight"
	if text != expected {
		t.Errorf("Format() = %q, expected %q", text, expected)
	}

	summary := l.Format(KeyTasksSummary, map[string]any{"Checked": 1, "Total": 3})
	if summary != "1 of 3 checked" {
		t.Errorf("Unexpected summary %q", summary)
	}
}

func TestLocalization_MissingKeyFallsBackToKey(t *testing.T) {
	l := NewLocalization()

	if text := l.GetText("no_such_key"); text != "no_such_key" {
		t.Errorf("Expected key fallback, got %q", text)
	}
}

func TestLocalization_CatalogsHaveSameKeys(t *testing.T) {
	l := NewLocalization()
	keys := []string{
		KeyAppTitle, KeyTabTasks, KeyTabBMI, KeyTabNotes, KeyCheck, KeyDelete,
		KeyCalculate, KeyBMIInvalid, KeyNotePlaceholder, KeyConfirmDeleteTitle,
	}

	for _, lang := range l.SortedLanguageCodes() {
		l.SetLanguage(lang)
		for _, key := range keys {
			if text := l.GetText(key); text == key || strings.TrimSpace(text) == "" {
				t.Errorf("Language %s: missing text for %q", lang, key)
			}
		}
	}
}

func TestLocalization_CategoryLabel(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		category model.BMICategory
		expected string
	}{
		{model.BMIUnderweight, "Underweight"},
		{model.BMIHealthyWeight, "Healthy Weight"},
		{model.BMIOverweight, "Overweight"},
		{model.BMIObese, "Obese"},
	}

	for _, test := range tests {
		if label := l.CategoryLabel(test.category); label != test.expected {
			t.Errorf("CategoryLabel(%s) = %q, expected %q", test.category, label, test.expected)
		}
	}
}
