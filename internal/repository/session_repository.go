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

// SessionRepository serves both the "sessions" and "actuals" collections;
// the two record kinds share one shape.
type SessionRepository struct {
	Col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database, collection string) *SessionRepository {
	return &SessionRepository{Col: db.Collection(collection)}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.InterviewSession) error {
	session.CreatedAt = time.Now()
	session.UpdatedAt = session.CreatedAt
	res, err := r.Col.InsertOne(ctx, session)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		session.ID = oid.Hex()
	}
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.InterviewSession, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never match a stored record.
		return nil, mongo.ErrNoDocuments
	}
	var session models.InterviewSession
	err = r.Col.FindOne(ctx, bson.M{"_id": objID}).Decode(&session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) FindByUser(ctx context.Context, userID string) ([]models.InterviewSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sessions []models.InterviewSession
	for cur.Next(ctx) {
		var s models.InterviewSession
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (r *SessionRepository) Update(ctx context.Context, id string, update bson.M) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	update["updated_at"] = time.Now()
	_, err = r.Col.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	return err
}

// FinalizeOnce applies the finalization update only if the session is still
// unsubmitted. Returns false when another submission already won the
// transition, so concurrent submits cannot both finalize.
func (r *SessionRepository) FinalizeOnce(ctx context.Context, id string, update bson.M) (bool, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, mongo.ErrNoDocuments
	}
	update["is_final_submitted"] = true
	update["updated_at"] = time.Now()
	res, err := r.Col.UpdateOne(ctx,
		bson.M{"_id": objID, "is_final_submitted": false},
		bson.M{"$set": update},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *SessionRepository) FindUnsubmitted(ctx context.Context) ([]models.InterviewSession, error) {
	cur, err := r.Col.Find(ctx, bson.M{"is_final_submitted": false})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var sessions []models.InterviewSession
	for cur.Next(ctx) {
		var s models.InterviewSession
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	_, err = r.Col.DeleteOne(ctx, bson.M{"_id": objID})
	return err
}
