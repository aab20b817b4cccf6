package service

import (
	"context"

	"interview-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Store interfaces decouple the workflow from the mongo repositories so the
// reconciliation logic can be exercised with in-memory doubles. The concrete
// implementations live in internal/repository.

type SessionStore interface {
	Create(ctx context.Context, session *models.InterviewSession) error
	FindByID(ctx context.Context, id string) (*models.InterviewSession, error)
	FindByUser(ctx context.Context, userID string) ([]models.InterviewSession, error)
	FindUnsubmitted(ctx context.Context) ([]models.InterviewSession, error)
	Update(ctx context.Context, id string, update bson.M) error
	FinalizeOnce(ctx context.Context, id string, update bson.M) (bool, error)
	Delete(ctx context.Context, id string) error
}

type QuestionStore interface {
	Create(ctx context.Context, question *models.Question) error
	FindByID(ctx context.Context, id string) (*models.Question, error)
	FindByIDs(ctx context.Context, ids []string) ([]models.Question, error)
	Update(ctx context.Context, id string, update bson.M) error
	DeleteBySession(ctx context.Context, sessionID string) error
	DeleteByIDs(ctx context.Context, ids []string) error
}

type FeedbackStore interface {
	Store(ctx context.Context, record *models.FeedbackRecord) error
	FindBySession(ctx context.Context, sessionID, kind string) (*models.FeedbackRecord, error)
	FindByUser(ctx context.Context, userID string) ([]models.FeedbackRecord, error)
	Delete(ctx context.Context, id, userID string) error
}
