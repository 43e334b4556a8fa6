package dto

import (
	"time"

	"github.com/translata/translata/internal/model"
)

// TranslateRequest is the body of POST /api/translate.
type TranslateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

// TranslationResponse is a single translation in API responses.
// POST /api/translate returns one; GET /api/history returns an array
// of them, newest first.
type TranslationResponse struct {
	ID             string    `json:"id"`
	SourceText     string    `json:"source_text"`
	TranslatedText string    `json:"translated_text"`
	SourceLang     string    `json:"source_lang"`
	TargetLang     string    `json:"target_lang"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToTranslationResponse converts a record to a response.
func ToTranslationResponse(rec *model.TranslationRecord) TranslationResponse {
	return TranslationResponse{
		ID:             rec.ID,
		SourceText:     rec.SourceText,
		TranslatedText: rec.TranslatedText,
		SourceLang:     rec.SourceLang,
		TargetLang:     rec.TargetLang,
		CreatedAt:      rec.CreatedAt,
	}
}

// ToHistoryResponse converts records to responses, preserving the
// order the store returned them in.
func ToHistoryResponse(records []*model.TranslationRecord) []TranslationResponse {
	items := make([]TranslationResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, ToTranslationResponse(rec))
	}
	return items
}
