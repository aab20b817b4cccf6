package service

import (
	"context"

	"interview-service/internal/models"
)

// FeedbackService exposes the stored per-session feedback records.
type FeedbackService struct {
	Feedback FeedbackStore
}

func NewFeedbackService(feedback FeedbackStore) *FeedbackService {
	return &FeedbackService{Feedback: feedback}
}

func (s *FeedbackService) Store(ctx context.Context, userID string, record *models.FeedbackRecord) error {
	if record.SessionID == "" || record.SessionKind == "" {
		return ErrValidation
	}
	record.UserID = userID
	return s.Feedback.Store(ctx, record)
}

func (s *FeedbackService) GetBySession(ctx context.Context, sessionID, kind string) (*models.FeedbackRecord, error) {
	record, err := s.Feedback.FindBySession(ctx, sessionID, kind)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return record, nil
}

func (s *FeedbackService) ListByUser(ctx context.Context, userID string) ([]models.FeedbackRecord, error) {
	records, err := s.Feedback.FindByUser(ctx, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return records, nil
}

func (s *FeedbackService) Delete(ctx context.Context, id, userID string) error {
	return mapStoreErr(s.Feedback.Delete(ctx, id, userID))
}
