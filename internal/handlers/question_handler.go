package handlers

import (
	"context"
	"net/http"

	"interview-service/internal/middleware"
	"interview-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	Service *service.QuestionService
}

func NewQuestionHandler(s *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{Service: s}
}

// SaveAnswer persists a user's answer for one question. Safe to call
// repeatedly before finalization; rejected afterwards.
func (h *QuestionHandler) SaveAnswer(c *gin.Context) {
	var req struct {
		UserAnswer string `json:"user_answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	question, err := h.Service.SaveAnswer(context.Background(), c.Param("id"), req.UserAnswer)
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, question)
}

func (h *QuestionHandler) TogglePin(c *gin.Context) {
	question, err := h.Service.TogglePin(context.Background(), c.Param("id"))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, question)
}

func (h *QuestionHandler) UpdateNote(c *gin.Context) {
	var req struct {
		Note string `json:"note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	question, err := h.Service.UpdateNote(context.Background(), c.Param("id"), req.Note)
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, question)
}

func (h *QuestionHandler) AddToSession(c *gin.Context) {
	var req struct {
		SessionID string                  `json:"session_id"`
		Questions []service.QuestionInput `json:"questions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	questions, err := h.Service.AddToSession(context.Background(), req.SessionID, c.GetString(middleware.UserIDKey), req.Questions)
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, questions)
}
