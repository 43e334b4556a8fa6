package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/translata/translata/internal/model"
)

// Cache key prefix and default TTL.
const (
	translationKeyPrefix = "translation:"

	// DefaultTranslationTTL is the fallback expiry for cached translations.
	DefaultTranslationTTL = time.Hour
)

// Common cache errors.
var (
	ErrCacheMiss = errors.New("cache miss")
)

// TranslationKey derives a deterministic cache key from the requesting
// user and the normalized translation inputs. Scoping by user id keeps
// one user's cache entries invisible to every other user. The text is
// lower-cased and trimmed so trivially different spellings of the same
// request share an entry.
func TranslationKey(userID, text, targetLang string) string {
	normalized := userID + "\x1f" +
		strings.ToLower(strings.TrimSpace(text)) + "\x1f" +
		strings.ToLower(targetLang)
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

// GetTranslation retrieves a cached translation record by key.
// Returns ErrCacheMiss if absent or expired (Redis evicts on TTL).
func (c *Cache) GetTranslation(ctx context.Context, key string) (*model.TranslationRecord, error) {
	raw, err := c.client.Get(ctx, translationKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var rec model.TranslationRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		// A corrupt entry is indistinguishable from no entry.
		return nil, ErrCacheMiss
	}

	return &rec, nil
}

// SetTranslation stores a translation record under key with the given TTL.
// Overwrites any existing entry for the key.
func (c *Cache) SetTranslation(ctx context.Context, key string, rec *model.TranslationRecord, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTranslationTTL
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode translation: %w", err)
	}

	if err := c.client.SetEx(ctx, translationKeyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache translation: %w", err)
	}

	return nil
}
