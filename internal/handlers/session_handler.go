package handlers

import (
	"context"
	"net/http"
	"time"

	"interview-service/internal/middleware"
	"interview-service/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves one session kind; main wires an instance per
// collection (practice sessions and actual tests).
type SessionHandler struct {
	Kind    string
	Service *service.SessionService
	Submit  *service.SubmitService
}

func NewSessionHandler(kind string, s *service.SessionService, submit *service.SubmitService) *SessionHandler {
	return &SessionHandler{Kind: kind, Service: s, Submit: submit}
}

func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	session, err := h.Service.Create(context.Background(), c.GetString(middleware.UserIDKey), req)
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, session)
}

func (h *SessionHandler) CreateActualSession(c *gin.Context) {
	var req service.CreateActualRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	session, err := h.Service.CreateActual(context.Background(), c.GetString(middleware.UserIDKey), req)
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, session)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	session, err := h.Service.Get(context.Background(), h.Kind, c.Param("id"))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, session)
}

func (h *SessionHandler) GetMySessions(c *gin.Context) {
	sessions, err := h.Service.List(context.Background(), h.Kind, c.GetString(middleware.UserIDKey))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, sessions)
}

func (h *SessionHandler) DeleteSession(c *gin.Context) {
	err := h.Service.Delete(context.Background(), h.Kind, c.Param("id"), c.GetString(middleware.UserIDKey))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Session deleted successfully"})
}

// SubmitSession runs the scoring and feedback workflow. The answers map may
// be empty or partial; persisted per-question answers take precedence.
func (h *SessionHandler) SubmitSession(c *gin.Context) {
	var req struct {
		Answers map[string]string `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	result, err := h.Submit.Submit(context.Background(), h.Kind, c.Param("id"), req.Answers, c.GetString(middleware.UserIDKey))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, result)
}

func (h *SessionHandler) SetUserFeedback(c *gin.Context) {
	var req struct {
		Feedback string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	err := h.Service.SetUserFeedback(context.Background(), h.Kind, c.Param("id"), c.GetString(middleware.UserIDKey), req.Feedback)
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Feedback saved"})
}

// GetRemainingTime reports the timer state for a running session.
func (h *SessionHandler) GetRemainingTime(c *gin.Context) {
	session, err := h.Service.Get(context.Background(), h.Kind, c.Param("id"))
	if err != nil {
		ServiceError(c, err)
		return
	}
	remaining := service.RemainingTime(session.TimerStartTime, session.TimerDuration, time.Now())
	SuccessResponse(c, http.StatusOK, gin.H{
		"remaining_seconds":  remaining,
		"expired":            remaining <= 0,
		"is_final_submitted": session.IsFinalSubmitted,
	})
}

func (h *SessionHandler) GetAvailableTopics(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, gin.H{"topics": service.AvailableTopics()})
}
