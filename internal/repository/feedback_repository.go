package repository

import (
	"context"
	"time"

	"interview-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FeedbackRepository struct {
	Col *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{Col: db.Collection("feedback")}
}

// Store upserts the feedback for a session; finalization runs once, so a
// repeat write only happens when a client re-stores explicitly.
func (r *FeedbackRepository) Store(ctx context.Context, record *models.FeedbackRecord) error {
	record.CreatedAt = time.Now()
	opts := options.Replace().SetUpsert(true)
	_, err := r.Col.ReplaceOne(ctx,
		bson.M{"session_id": record.SessionID, "session_kind": record.SessionKind},
		record, opts,
	)
	return err
}

func (r *FeedbackRepository) FindBySession(ctx context.Context, sessionID, kind string) (*models.FeedbackRecord, error) {
	var record models.FeedbackRecord
	err := r.Col.FindOne(ctx, bson.M{"session_id": sessionID, "session_kind": kind}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *FeedbackRepository) FindByUser(ctx context.Context, userID string) ([]models.FeedbackRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.FeedbackRecord
	for cur.Next(ctx) {
		var rec models.FeedbackRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Delete is scoped to the owner so one user cannot remove another's record.
func (r *FeedbackRepository) Delete(ctx context.Context, id, userID string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": objID, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
