package service

import (
	"context"
	"fmt"
	"sync"

	"interview-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory store doubles. They interpret the same update documents the
// mongo repositories receive, so the services under test stay unchanged.

type memSessionStore struct {
	mu       sync.Mutex
	seq      int
	sessions map[string]*models.InterviewSession
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*models.InterviewSession)}
}

func (m *memSessionStore) Create(ctx context.Context, session *models.InterviewSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	session.ID = fmt.Sprintf("s%d", m.seq)
	copied := *session
	m.sessions[session.ID] = &copied
	return nil
}

func (m *memSessionStore) FindByID(ctx context.Context, id string) (*models.InterviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *session
	return &copied, nil
}

func (m *memSessionStore) FindByUser(ctx context.Context, userID string) ([]models.InterviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.InterviewSession
	for _, session := range m.sessions {
		if session.UserID == userID {
			out = append(out, *session)
		}
	}
	return out, nil
}

func (m *memSessionStore) FindUnsubmitted(ctx context.Context) ([]models.InterviewSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.InterviewSession
	for _, session := range m.sessions {
		if !session.IsFinalSubmitted {
			out = append(out, *session)
		}
	}
	return out, nil
}

func applySessionUpdate(session *models.InterviewSession, update bson.M) {
	if v, ok := update["question_ids"].([]string); ok {
		session.QuestionIDs = v
	}
	if v, ok := update["user_feedback"].(string); ok {
		session.UserFeedback = v
	}
	if v, ok := update["submission_time"].(int); ok {
		session.SubmissionTime = v
	}
	if v, ok := update["feedback"].(*models.Feedback); ok {
		session.Feedback = v
	}
}

func (m *memSessionStore) Update(ctx context.Context, id string, update bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	applySessionUpdate(session, update)
	return nil
}

func (m *memSessionStore) FinalizeOnce(ctx context.Context, id string, update bson.M) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[id]
	if !ok || session.IsFinalSubmitted {
		return false, nil
	}
	session.IsFinalSubmitted = true
	applySessionUpdate(session, update)
	return true, nil
}

func (m *memSessionStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.sessions, id)
	return nil
}

type memQuestionStore struct {
	mu        sync.Mutex
	seq       int
	questions map[string]*models.Question
}

func newMemQuestionStore() *memQuestionStore {
	return &memQuestionStore{questions: make(map[string]*models.Question)}
}

func (m *memQuestionStore) Create(ctx context.Context, question *models.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	question.ID = fmt.Sprintf("q%d", m.seq)
	copied := *question
	m.questions[question.ID] = &copied
	return nil
}

func (m *memQuestionStore) FindByID(ctx context.Context, id string) (*models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	question, ok := m.questions[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *question
	return &copied, nil
}

func (m *memQuestionStore) FindByIDs(ctx context.Context, ids []string) ([]models.Question, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Question, 0, len(ids))
	for _, id := range ids {
		if question, ok := m.questions[id]; ok {
			out = append(out, *question)
		}
	}
	return out, nil
}

func (m *memQuestionStore) Update(ctx context.Context, id string, update bson.M) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	question, ok := m.questions[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if v, ok := update["user_answer"].(string); ok {
		question.UserAnswer = v
	}
	if v, ok := update["is_correct"].(bool); ok {
		question.IsCorrect = &v
	}
	if v, ok := update["is_pinned"].(bool); ok {
		question.IsPinned = v
	}
	if v, ok := update["note"].(string); ok {
		question.Note = v
	}
	return nil
}

func (m *memQuestionStore) DeleteBySession(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, question := range m.questions {
		if question.SessionID == sessionID {
			delete(m.questions, id)
		}
	}
	return nil
}

func (m *memQuestionStore) DeleteByIDs(ctx context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		delete(m.questions, id)
	}
	return nil
}

type memFeedbackStore struct {
	mu      sync.Mutex
	seq     int
	records map[string]*models.FeedbackRecord
}

func newMemFeedbackStore() *memFeedbackStore {
	return &memFeedbackStore{records: make(map[string]*models.FeedbackRecord)}
}

func (m *memFeedbackStore) Store(ctx context.Context, record *models.FeedbackRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.records {
		if existing.SessionID == record.SessionID && existing.SessionKind == record.SessionKind {
			record.ID = existing.ID
			copied := *record
			m.records[existing.ID] = &copied
			return nil
		}
	}
	m.seq++
	record.ID = fmt.Sprintf("f%d", m.seq)
	copied := *record
	m.records[record.ID] = &copied
	return nil
}

func (m *memFeedbackStore) FindBySession(ctx context.Context, sessionID, kind string) (*models.FeedbackRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, record := range m.records {
		if record.SessionID == sessionID && record.SessionKind == kind {
			copied := *record
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memFeedbackStore) FindByUser(ctx context.Context, userID string) ([]models.FeedbackRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.FeedbackRecord
	for _, record := range m.records {
		if record.UserID == userID {
			out = append(out, *record)
		}
	}
	return out, nil
}

func (m *memFeedbackStore) Delete(ctx context.Context, id, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[id]
	if !ok || record.UserID != userID {
		return mongo.ErrNoDocuments
	}
	delete(m.records, id)
	return nil
}

// fakeGenerator routes every prompt through a single function.
type fakeGenerator struct {
	fn func(ctx context.Context, prompt string) (string, error)
}

func (g *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.fn(ctx, prompt)
}
