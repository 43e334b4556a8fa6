// Package translator defines the translation backend interface and the
// built-in stub implementation.
package translator

import "errors"

// ErrUnsupportedLanguage indicates the requested target language has no backend.
var ErrUnsupportedLanguage = errors.New("unsupported target language")

// Translator turns English source text into the target language.
// Implementations must be deterministic for identical inputs: cached
// results are served as if freshly translated.
type Translator interface {
	Translate(text, targetLang string) (string, error)
}
