package platform

import (
	"log"
	"strings"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// FallbackLanguage is used when the system locale cannot be determined
const FallbackLanguage = "en"

// systemLocale is replaced in tests
var systemLocale = locale.GetLocale

// SystemLanguage returns the base language of the OS locale, e.g. "pt" for "pt-BR"
func SystemLanguage() string {
	raw, err := systemLocale()
	if err != nil {
		log.Printf("Failed to detect system locale: %v", err)
		return FallbackLanguage
	}
	return NormalizeLanguage(raw)
}

// NormalizeLanguage reduces a locale string such as "ru_RU.UTF-8" to its
// base language code. Unparseable input yields FallbackLanguage.
func NormalizeLanguage(raw string) string {
	raw = strings.TrimSpace(raw)
	if idx := strings.IndexAny(raw, ".@"); idx >= 0 {
		raw = raw[:idx]
	}
	raw = strings.ReplaceAll(raw, "_", "-")
	if raw == "" || raw == "C" || raw == "POSIX" {
		return FallbackLanguage
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return FallbackLanguage
	}
	base, confidence := tag.Base()
	if confidence == language.No {
		return FallbackLanguage
	}
	return base.String()
}
