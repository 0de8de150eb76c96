package question

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// EditorGuard decides who may create or delete questions.
type EditorGuard interface {
	Allowed(r *http.Request) bool
	Require(next http.Handler) http.Handler
}

type openGuard struct{}

func (openGuard) Allowed(*http.Request) bool               { return true }
func (openGuard) Require(next http.Handler) http.Handler { return next }

// HTTPHandler exposes the trivia REST endpoints.
type HTTPHandler struct {
	svc    *Service
	guard  EditorGuard
	logger zerolog.Logger
}

// NewHTTPHandler builds the handler; a nil guard leaves write endpoints open.
func NewHTTPHandler(svc *Service, guard EditorGuard, logger zerolog.Logger) *HTTPHandler {
	if guard == nil {
		guard = openGuard{}
	}
	return &HTTPHandler{
		svc:    svc,
		guard:  guard,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// Register mounts the trivia routes on r.
func (h *HTTPHandler) Register(r chi.Router) {
	r.Get("/categories", h.GetCategories)
	r.Get("/categories/{id}/questions", h.GetCategoryQuestions)
	r.Get("/questions", h.GetQuestions)
	r.Post("/questions", h.PostQuestions)
	r.With(h.guard.Require).Delete("/questions/{id}", h.DeleteQuestion)
	r.Post("/quizzes", h.PostQuizzes)
}

// GetCategories handles GET /categories
func (h *HTTPHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.Categories(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	if len(categories) == 0 {
		httperrors.RespondNotFound(w)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": CategoryMap(categories),
		"success":    true,
	})
}

// GetQuestions handles GET /questions?page=N
func (h *HTTPHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListQuestions(r.Context(), pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions":       page.Questions,
		"total_questions": page.TotalQuestions,
		"categories":      page.Categories,
		"success":         true,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	deleted, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"deleted_question_id": deleted.ID,
		"total_questions":     deleted.TotalQuestions,
		"success":             true,
	})
}

type questionsPayload struct {
	NewQuestion
	SearchTerm string `json:"searchTerm"`
}

// PostQuestions handles POST /questions. A non-empty searchTerm turns the call into
// a search; anything else is a create.
func (h *HTTPHandler) PostQuestions(w http.ResponseWriter, r *http.Request) {
	var payload questionsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		logging.FromContext(r.Context()).Debug().Err(err).Msg("invalid questions payload")
		httperrors.RespondBadRequest(w)
		return
	}

	if payload.SearchTerm != "" {
		h.search(w, r, payload.SearchTerm)
		return
	}

	if !h.guard.Allowed(r) {
		httperrors.RespondUnauthorized(w)
		return
	}
	created, err := h.svc.Create(r.Context(), payload.NewQuestion, pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"new question id": created.ID,
		"success":         true,
		"questions":       created.Questions,
		"total_questions": created.TotalQuestions,
	})
}

func (h *HTTPHandler) search(w http.ResponseWriter, r *http.Request, term string) {
	page, err := h.svc.Search(r.Context(), term, pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"questions":       page.Questions,
		"total_questions": page.TotalQuestions,
		"success":         true,
	})
}

// GetCategoryQuestions handles GET /categories/{id}/questions?page=N
func (h *HTTPHandler) GetCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	page, err := h.svc.QuestionsByCategory(r.Context(), id, pageParam(r))
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"current_category":   page.CurrentCategory,
		"questions":          page.Questions,
		"total_questions":    page.TotalQuestions,
		"category_questions": page.CategoryQuestions,
		"success":            true,
	})
}

// PostQuizzes handles POST /quizzes
func (h *HTTPHandler) PostQuizzes(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logging.FromContext(r.Context()).Debug().Err(err).Msg("invalid quiz payload")
		httperrors.RespondBadRequest(w)
		return
	}
	q, err := h.svc.NextQuizQuestion(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]interface{}{
		"question": q,
		"success":  true,
	})
}

func (h *HTTPHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w)
	case errors.Is(err, ErrIncomplete):
		httperrors.RespondUnprocessable(w)
	case errors.Is(err, ErrUnknownCategory), errors.Is(err, ErrCreateFailed), errors.Is(err, ErrMissingCategory):
		logging.FromContext(r.Context()).Warn().Err(err).Msg("rejected request")
		httperrors.RespondBadRequest(w)
	default:
		h.logger.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		httperrors.RespondInternalError(w)
	}
}

func (h *HTTPHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn().Err(err).Msg("encode response failed")
	}
}

func pageParam(r *http.Request) int {
	return ParsePage(r.URL.Query().Get("page"))
}

func idParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}
