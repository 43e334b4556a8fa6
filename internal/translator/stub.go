package translator

// languageTags maps supported target language codes to output tags.
var languageTags = map[string]string{
	"nl": "[DUTCH] ",
	"bg": "[BULGARIAN] ",
}

// Stub is a deterministic placeholder translator. It echoes the input
// prefixed with a language tag and stands in for a real model backend.
type Stub struct{}

// NewStub creates a new stub translator.
func NewStub() *Stub {
	return &Stub{}
}

// Translate returns a tagged echo of text for supported languages.
// Returns ErrUnsupportedLanguage for any other target language.
func (s *Stub) Translate(text, targetLang string) (string, error) {
	tag, ok := languageTags[targetLang]
	if !ok {
		return "", ErrUnsupportedLanguage
	}
	return tag + text, nil
}

// SupportedLanguages returns the target language codes the stub handles.
func (s *Stub) SupportedLanguages() []string {
	langs := make([]string, 0, len(languageTags))
	for lang := range languageTags {
		langs = append(langs, lang)
	}
	return langs
}

var _ Translator = (*Stub)(nil)
