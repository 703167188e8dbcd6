package domains

import (
	"github.com/MKhiriev/go-study-sync/internal/logger"
	"k8s.io/utils/clock"
)

// Remote ids of the built-in domains.
const (
	DomainStats    = "stats"
	DomainEnglish  = "english"
	DomainWordlist = "wordlist"
	DomainTheme    = "theme"
	DomainSettings = "settings"
	DomainExam     = "exam"

	// LegacyDomainWords is the id older clients stored the word list under.
	LegacyDomainWords = "words"
)

// Local keys read and written by the built-in domains.
const (
	KeyStats    = "stats"
	KeyEnglish  = "english.progress"
	KeyWordlist = "wordlist"
	KeyTheme    = "theme"

	KeySettingsSound     = "settings.sound"
	KeySettingsHaptics   = "settings.haptics"
	KeySettingsDailyGoal = "settings.daily_goal"

	KeyExamTargetDate = "exam.target_date"
	KeyExamTargetDays = "exam.target_days"
	KeyExamTitle      = "exam.title"
)

// NewBuiltinRegistry returns the registry of the study app in sync order.
func NewBuiltinRegistry(store LocalStore, clk clock.PassiveClock, log *logger.Logger) *Registry {
	registry, err := NewRegistry(
		newBlobDomain(DomainStats, KeyStats, kindObject, nil, store, log),
		newBlobDomain(DomainEnglish, KeyEnglish, kindObject, nil, store, log),
		newBlobDomain(DomainWordlist, KeyWordlist, kindArray, []string{LegacyDomainWords}, store, log),
		newThemeDomain(store, log),
		newSettingsDomain(store, log),
		newExamDomain(store, clk, log),
	)
	if err != nil {
		// ids above are constants
		panic(err)
	}

	return registry
}

// LocalKeys returns every local key owned by the built-in domains. The
// shared store watcher only imports these.
func LocalKeys() []string {
	return []string{
		KeyStats, KeyEnglish, KeyWordlist, KeyTheme,
		KeySettingsSound, KeySettingsHaptics, KeySettingsDailyGoal,
		KeyExamTargetDate, KeyExamTargetDays, KeyExamTitle,
	}
}
