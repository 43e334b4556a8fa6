package repository

import (
	"context"
	"fmt"

	"github.com/translata/translata/internal/model"
)

// AppendTranslation persists a new translation record.
// Records are append-only; nothing ever updates or deletes them.
func (r *Repository) AppendTranslation(ctx context.Context, rec *model.TranslationRecord) error {
	query := `
		INSERT INTO translations (id, user_id, source_text, translated_text, source_lang, target_lang, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		rec.ID,
		rec.UserID,
		rec.SourceText,
		rec.TranslatedText,
		rec.SourceLang,
		rec.TargetLang,
		rec.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to append translation: %w", err)
	}

	return nil
}

// ListTranslationsByUser returns the full translation history for a user,
// newest first. The record ID breaks ties within the same timestamp.
func (r *Repository) ListTranslationsByUser(ctx context.Context, userID string) ([]*model.TranslationRecord, error) {
	query := `
		SELECT id, user_id, source_text, translated_text, source_lang, target_lang, created_at
		FROM translations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}
	defer rows.Close()

	records := make([]*model.TranslationRecord, 0)
	for rows.Next() {
		var rec model.TranslationRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.SourceText,
			&rec.TranslatedText,
			&rec.SourceLang,
			&rec.TargetLang,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan translation: %w", err)
		}
		records = append(records, &rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read translations: %w", err)
	}

	return records, nil
}
