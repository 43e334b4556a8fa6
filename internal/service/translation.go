package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/translata/translata/internal/cache"
	"github.com/translata/translata/internal/metrics"
	"github.com/translata/translata/internal/model"
	"github.com/translata/translata/internal/translator"
)

// Translation service errors.
var (
	ErrEmptyText       = errors.New("text must not be empty")
	ErrEmptyTargetLang = errors.New("target language must not be empty")
)

// HistoryStore is the persistence surface TranslationService needs.
// *repository.Repository satisfies this.
type HistoryStore interface {
	AppendTranslation(ctx context.Context, rec *model.TranslationRecord) error
	ListTranslationsByUser(ctx context.Context, userID string) ([]*model.TranslationRecord, error)
}

// TranslationCache stores computed translations keyed by request fingerprint.
// *cache.Cache satisfies this.
type TranslationCache interface {
	GetTranslation(ctx context.Context, key string) (*model.TranslationRecord, error)
	SetTranslation(ctx context.Context, key string, rec *model.TranslationRecord, ttl time.Duration) error
}

// TranslationService runs the translate pipeline: cache lookup, stub
// translation on a miss, then history and cache writes.
type TranslationService struct {
	history    HistoryStore
	cache      TranslationCache
	translator translator.Translator
	cacheTTL   time.Duration
	logger     *slog.Logger
	metrics    metrics.Recorder
}

// NewTranslationService creates a new TranslationService.
func NewTranslationService(
	history HistoryStore,
	translationCache TranslationCache,
	tr translator.Translator,
	cacheTTL time.Duration,
	logger *slog.Logger,
	recorder metrics.Recorder,
) *TranslationService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	if cacheTTL <= 0 {
		cacheTTL = cache.DefaultTranslationTTL
	}
	return &TranslationService{
		history:    history,
		cache:      translationCache,
		translator: tr,
		cacheTTL:   cacheTTL,
		logger:     logger,
		metrics:    recorder,
	}
}

// Translate returns the translation record for (user, text, targetLang).
// The second return value reports whether the record came from cache.
//
// A cache hit short-circuits the pipeline and performs no writes. On a
// miss the stub translates, the record is appended to history (failures
// here fail the request), and the cache is updated (failures here are
// logged and swallowed; a request never fails because of the cache).
func (s *TranslationService) Translate(ctx context.Context, userID, text, targetLang string) (*model.TranslationRecord, bool, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveTranslateDuration(time.Since(start))
	}()

	if strings.TrimSpace(text) == "" {
		return nil, false, ErrEmptyText
	}
	if targetLang == "" {
		return nil, false, ErrEmptyTargetLang
	}

	key := cache.TranslationKey(userID, text, targetLang)

	cached, err := s.cache.GetTranslation(ctx, key)
	if err == nil {
		s.metrics.IncTranslationCacheHit()
		return cached, true, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		// A broken cache degrades to a miss.
		s.logger.Warn("cache lookup failed",
			slog.String("error", err.Error()),
		)
	}
	s.metrics.IncTranslationCacheMiss()

	translated, err := s.translator.Translate(text, targetLang)
	if err != nil {
		return nil, false, err
	}

	rec := &model.TranslationRecord{
		ID:             ulid.Make().String(),
		UserID:         userID,
		SourceText:     text,
		TranslatedText: translated,
		SourceLang:     model.SourceLang,
		TargetLang:     targetLang,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.history.AppendTranslation(ctx, rec); err != nil {
		return nil, false, fmt.Errorf("failed to persist translation: %w", err)
	}

	if err := s.cache.SetTranslation(ctx, key, rec, s.cacheTTL); err != nil {
		s.logger.Warn("cache write failed",
			slog.String("error", err.Error()),
		)
	}

	s.metrics.IncTranslationPerformed()

	return rec, false, nil
}

// History returns the user's full translation history, newest first.
func (s *TranslationService) History(ctx context.Context, userID string) ([]*model.TranslationRecord, error) {
	records, err := s.history.ListTranslationsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return records, nil
}
