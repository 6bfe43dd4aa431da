package langdetect

import (
	"strings"
	"sync"
	"unicode"

	lingua "github.com/pemistahl/lingua-go"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// Undetermined is the ISO 639-2 tag for text the detector cannot
// call. The tag is informational; nothing in the pipeline gates on it.
const Undetermined = "und"

// DetectISO6391 tags the language of article text as an ISO 639-1
// code. Tracked coverage is Korean and English; Japanese and Chinese
// stay in the model so other CJK text is not misread as Korean.
// Returns Undetermined when the sample is too short to call.
func DetectISO6391(text string) string {
	sample := strings.TrimSpace(text)
	if sample == "" {
		return Undetermined
	}

	letterCount := 0
	for _, r := range sample {
		if unicode.IsLetter(r) {
			letterCount++
		}
	}
	if letterCount < 6 {
		return Undetermined
	}

	language, exists := getDetector().DetectLanguageOf(sample)
	if !exists {
		return Undetermined
	}

	code := strings.ToLower(language.IsoCode639_1().String())
	if len(code) != 2 {
		return Undetermined
	}
	return code
}

func getDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.Korean, lingua.English, lingua.Japanese, lingua.Chinese).
			WithPreloadedLanguageModels().
			Build()
	})
	return detector
}
