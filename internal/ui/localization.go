package ui

import (
	"embed"
	"log"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/ytget/checkup/internal/model"
	"github.com/ytget/checkup/internal/platform"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Text keys for localization
const (
	KeyAppTitle             = "app_title"
	KeyTabTasks             = "tab_tasks"
	KeyTabBMI               = "tab_bmi"
	KeyTabNotes             = "tab_notes"
	KeyFile                 = "file"
	KeySettings             = "settings"
	KeyLanguage             = "language"
	KeySave                 = "save"
	KeyCancel               = "cancel"
	KeySettingsSaved        = "settings_saved"
	KeyInterfaceSettings    = "interface_settings"
	KeyTaskSettings         = "task_settings"
	KeyStartTab             = "start_tab"
	KeyConfirmDeleteSetting = "confirm_delete_setting"
	KeyTimestampLayout      = "timestamp_layout"

	KeyTaskPlaceholder      = "task_placeholder"
	KeyAdd                  = "add"
	KeyCheck                = "check"
	KeyUncheck              = "uncheck"
	KeyDelete               = "delete"
	KeyColumnOrdinal        = "column_ordinal"
	KeyColumnDate           = "column_date"
	KeyColumnTask           = "column_task"
	KeyColumnActions        = "column_actions"
	KeyFilterAll            = "filter_all"
	KeyFilterOpen           = "filter_open"
	KeyFilterChecked        = "filter_checked"
	KeyTasksSummary         = "tasks_summary"
	KeyConfirmDeleteTitle   = "confirm_delete_title"
	KeyConfirmDeleteMessage = "confirm_delete_message"

	KeyHeightPlaceholder = "height_placeholder"
	KeyWeightPlaceholder = "weight_placeholder"
	KeyCalculate         = "calculate"
	KeyBMIInvalid        = "bmi_invalid"
	KeyBMIResult         = "bmi_result"

	KeyNotePlaceholder = "note_placeholder"
	KeyClear           = "clear"
)

// supportedLanguages lists the catalogs embedded under locales/
var supportedLanguages = []string{"en", "ru", "pt"}

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	bundle          *i18n.Bundle
	localizer       *i18n.Localizer
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range supportedLanguages {
		path := "locales/active." + lang + ".toml"
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			log.Printf("Failed to load message file %s: %v", path, err)
		}
	}

	l := &Localization{bundle: bundle}
	l.use("en")
	return l
}

// SetLanguage sets the current language. "system" resolves to the OS
// language; unsupported languages leave the current one unchanged.
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = platform.SystemLanguage()
	}

	if !l.isSupported(lang) {
		log.Printf("Language %q is not supported, keeping %q", lang, l.currentLanguage)
		return
	}
	l.use(lang)
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	return l.Format(key, nil)
}

// Format returns localized text for the given key rendered with data
func (l *Localization) Format(key string, data map[string]any) string {
	text, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if text != "" {
		return text
	}
	if err != nil {
		log.Printf("Missing translation for %q: %v", key, err)
	}

	// Final fallback - return key itself
	return key
}

// CategoryLabel returns the localized label of a BMI band
func (l *Localization) CategoryLabel(category model.BMICategory) string {
	switch category {
	case model.BMIUnderweight:
		return l.GetText("bmi_category_underweight")
	case model.BMIHealthyWeight:
		return l.GetText("bmi_category_healthy_weight")
	case model.BMIOverweight:
		return l.GetText("bmi_category_overweight")
	case model.BMIObese:
		return l.GetText("bmi_category_obese")
	default:
		return category.String()
	}
}

// FilterLabel returns the localized label of a task filter
func (l *Localization) FilterLabel(filter model.TaskFilter) string {
	switch filter {
	case model.TaskFilterOpen:
		return l.GetText(KeyFilterOpen)
	case model.TaskFilterChecked:
		return l.GetText(KeyFilterChecked)
	default:
		return l.GetText(KeyFilterAll)
	}
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// SortedLanguageCodes returns the available language codes in a stable order
func (l *Localization) SortedLanguageCodes() []string {
	codes := make([]string, 0, len(supportedLanguages))
	codes = append(codes, supportedLanguages...)
	sort.Strings(codes)
	return codes
}

func (l *Localization) use(lang string) {
	l.currentLanguage = lang
	l.localizer = i18n.NewLocalizer(l.bundle, lang, "en")
}

func (l *Localization) isSupported(lang string) bool {
	for _, supported := range supportedLanguages {
		if supported == lang {
			return true
		}
	}
	return false
}
