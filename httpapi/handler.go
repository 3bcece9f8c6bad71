package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/poiesic/faqit"
	"github.com/poiesic/faqit/core"
)

// Engine is the subset of *faqit.Engine the handlers need.
type Engine interface {
	AnswerQuestion(ctx context.Context, question string) core.AnswerResult
	Entries() []core.FAQEntry
	EntryByID(id int64) (core.FAQEntry, bool)
	Count() int
	State() faqit.State
}

// AnswerRequest is the body of POST /api/v1/faq/answer.
type AnswerRequest struct {
	Question string `json:"question"`
}

// AnswerResponse mirrors core.AnswerResult for the wire.
type AnswerResponse struct {
	Answer        string            `json:"answer"`
	MatchedFAQs   []core.MatchedFAQ `json:"matched_faqs"`
	Confidence    core.Confidence   `json:"confidence"`
	TopSimilarity float64           `json:"top_similarity"`
}

// NewAnswerResponse converts a result to its wire form.
func NewAnswerResponse(r core.AnswerResult) AnswerResponse {
	return AnswerResponse{
		Answer:        r.Answer,
		MatchedFAQs:   r.MatchedFAQs(),
		Confidence:    r.Confidence,
		TopSimilarity: r.TopSimilarity,
	}
}

// Handler serves the FAQ endpoints.
type Handler struct {
	engine Engine
	logger *slog.Logger
}

// NewHandler creates a handler over engine.
func NewHandler(engine Engine, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{engine: engine, logger: logger.With("component", "httpapi")}
}

// Answer answers one question.
func (h *Handler) Answer(c *gin.Context) {
	var req AnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "question cannot be empty", nil))
		return
	}

	result := h.engine.AnswerQuestion(c.Request.Context(), req.Question)
	c.JSON(http.StatusOK, NewAnswerResponse(result))
}

// List returns every entry.
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"faqs":  h.engine.Entries(),
		"count": h.engine.Count(),
	})
}

// Get returns one entry by id.
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "id must be an integer", err))
		return
	}
	entry, ok := h.engine.EntryByID(id)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusNotFound, "not_found", "faq entry not found", nil))
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Health reports the engine state.
func (h *Handler) Health(c *gin.Context) {
	state := h.engine.State()
	status := http.StatusOK
	if state != faqit.StateReady {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"state":   state,
		"entries": h.engine.Count(),
	})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
