package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/translata/translata/internal/auth"
	"github.com/translata/translata/internal/handler/dto"
	"github.com/translata/translata/internal/middleware"
	"github.com/translata/translata/internal/service"
	"github.com/translata/translata/internal/translator"
)

// TranslationHandler handles HTTP requests for translations.
type TranslationHandler struct {
	svc    *service.TranslationService
	logger *slog.Logger
}

// NewTranslationHandler creates a new TranslationHandler.
func NewTranslationHandler(svc *service.TranslationService, logger *slog.Logger) *TranslationHandler {
	return &TranslationHandler{
		svc:    svc,
		logger: logger,
	}
}

// Translate handles POST /api/translate.
func (h *TranslationHandler) Translate(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		// Only reachable if the route is wired without the auth middleware.
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired credentials")
		return
	}

	var req dto.TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	rec, cached, err := h.svc.Translate(r.Context(), identity.UserID, req.Text, req.TargetLang)
	if err != nil {
		h.handleTranslationError(w, r, err)
		return
	}

	h.logger.Info("translation_served",
		"user_id", identity.UserID,
		"target_lang", rec.TargetLang,
		"cached", cached,
		"request_id", middleware.GetRequestID(r.Context()),
	)

	writeJSON(w, http.StatusOK, dto.ToTranslationResponse(rec))
}

// History handles GET /api/history.
func (h *TranslationHandler) History(w http.ResponseWriter, r *http.Request) {
	identity := auth.IdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired credentials")
		return
	}

	records, err := h.svc.History(r.Context(), identity.UserID)
	if err != nil {
		h.handleTranslationError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToHistoryResponse(records))
}

// handleTranslationError maps translation service errors to HTTP responses.
func (h *TranslationHandler) handleTranslationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyText):
		writeError(w, http.StatusBadRequest, "EMPTY_TEXT", "Text is required")
	case errors.Is(err, service.ErrEmptyTargetLang):
		writeError(w, http.StatusBadRequest, "MISSING_TARGET_LANG", "Target language is required")
	case errors.Is(err, translator.ErrUnsupportedLanguage):
		writeError(w, http.StatusBadRequest, "UNSUPPORTED_LANGUAGE", "Unsupported target language")
	default:
		h.logger.Error("internal_error",
			"error", err,
			"request_id", middleware.GetRequestID(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
