// Package language selects the prompt template language for a run.
package language

import (
	"strings"

	"github.com/abadojack/whatlanggo"
)

// Supported languages. Anything that does not detect as Spanish falls
// back to English.
const (
	English = "en"
	Spanish = "es"
)

// Detect returns the language code for a prompt. A non-empty forced
// value wins over detection when it names a supported language.
func Detect(text, forced string) string {
	switch strings.ToLower(forced) {
	case English:
		return English
	case Spanish:
		return Spanish
	}
	info := whatlanggo.Detect(text)
	if whatlanggo.LangToString(info.Lang) == "spa" {
		return Spanish
	}
	return English
}
