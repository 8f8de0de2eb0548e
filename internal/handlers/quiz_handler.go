package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alicia-green/storefront/internal/models"
	"github.com/alicia-green/storefront/internal/service"
)

// QuizHandler serves product recommendations from quiz answers
type QuizHandler struct {
	service *service.QuizService
	log     *slog.Logger
}

func NewQuizHandler(svc *service.QuizService, log *slog.Logger) *QuizHandler {
	return &QuizHandler{service: svc, log: log}
}

// Recommend handles POST /api/quiz
func (h *QuizHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var answers models.QuizAnswers
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		h.log.Warn("failed to decode quiz answers", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	rec, err := h.service.Recommend(answers)
	if err != nil {
		h.log.Info("rejected quiz answers", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid quiz answers", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, rec, h.log)
}
