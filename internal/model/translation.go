package model

import "time"

// SourceLang is the only supported source language.
const SourceLang = "en"

// TranslationRecord is one completed translation owned by a user.
// Records are append-only; CreatedAt is the ordering key for history.
type TranslationRecord struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	SourceText     string    `json:"source_text"`
	TranslatedText string    `json:"translated_text"`
	SourceLang     string    `json:"source_lang"`
	TargetLang     string    `json:"target_lang"`
	CreatedAt      time.Time `json:"created_at"`
}
