package handlers

import (
	"context"
	"net/http"

	"interview-service/internal/middleware"
	"interview-service/internal/models"
	"interview-service/internal/service"

	"github.com/gin-gonic/gin"
)

type FeedbackHandler struct {
	Service *service.FeedbackService
}

func NewFeedbackHandler(s *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{Service: s}
}

func (h *FeedbackHandler) StoreFeedback(c *gin.Context) {
	var record models.FeedbackRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.Service.Store(context.Background(), c.GetString(middleware.UserIDKey), &record); err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusCreated, record)
}

func (h *FeedbackHandler) GetFeedbackBySession(c *gin.Context) {
	record, err := h.Service.GetBySession(context.Background(), c.Param("sessionId"), c.Param("sessionType"))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, record)
}

func (h *FeedbackHandler) GetUserFeedback(c *gin.Context) {
	records, err := h.Service.ListByUser(context.Background(), c.GetString(middleware.UserIDKey))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, records)
}

func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	err := h.Service.Delete(context.Background(), c.Param("id"), c.GetString(middleware.UserIDKey))
	if err != nil {
		ServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"message": "Feedback deleted"})
}
