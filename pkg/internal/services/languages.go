package services

import (
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	languageDetector     lingua.LanguageDetector
	languageDetectorOnce sync.Once
)

// DetectLanguage guesses the ISO 639-1 code of a post body. An empty or
// undecidable body yields an empty code.
func DetectLanguage(content string) string {
	if len(content) == 0 {
		return ""
	}

	languageDetectorOnce.Do(func() {
		languageDetector = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build()
	})

	if language, ok := languageDetector.DetectLanguageOf(content); ok {
		return language.IsoCode639_1().String()
	}

	return ""
}
