package service

import (
	"context"
	"strings"
	"time"

	"interview-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type SessionService struct {
	Sessions  map[string]SessionStore
	Questions QuestionStore
	// TimerDuration applies to every new session, in seconds.
	TimerDuration int
	Now           func() time.Time
}

func NewSessionService(sessions, actuals SessionStore, questions QuestionStore, timerDuration int) *SessionService {
	return &SessionService{
		Sessions: map[string]SessionStore{
			models.KindSession: sessions,
			models.KindActual:  actuals,
		},
		Questions:     questions,
		TimerDuration: timerDuration,
		Now:           time.Now,
	}
}

type QuestionInput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Type     string `json:"type"`
}

type CreateSessionRequest struct {
	Role          string          `json:"role"`
	Experience    string          `json:"experience"`
	TopicsToFocus string          `json:"topics_to_focus"`
	Description   string          `json:"description"`
	Questions     []QuestionInput `json:"questions"`
}

type SessionWithQuestions struct {
	models.InterviewSession
	Questions []models.Question `json:"questions"`
}

// Create makes a practice session with caller-supplied (typically
// AI-generated) questions linked to it.
func (s *SessionService) Create(ctx context.Context, userID string, req CreateSessionRequest) (*models.InterviewSession, error) {
	if req.Role == "" || req.Experience == "" || req.TopicsToFocus == "" {
		return nil, ErrValidation
	}

	session := &models.InterviewSession{
		UserID:         userID,
		Role:           req.Role,
		Experience:     req.Experience,
		TopicsToFocus:  req.TopicsToFocus,
		Description:    req.Description,
		QuestionIDs:    []string{},
		TimerStartTime: s.Now(),
		TimerDuration:  s.TimerDuration,
	}
	store := s.Sessions[models.KindSession]
	if err := store.Create(ctx, session); err != nil {
		return nil, err
	}

	ids, err := s.createQuestions(ctx, session.ID, req.Questions)
	if err != nil {
		return nil, err
	}
	session.QuestionIDs = ids
	if err := store.Update(ctx, session.ID, bson.M{"question_ids": ids}); err != nil {
		return nil, mapStoreErr(err)
	}
	return session, nil
}

type CreateActualRequest struct {
	Role          string `json:"role"`
	Experience    string `json:"experience"`
	TopicsToFocus string `json:"topics_to_focus"`
	Description   string `json:"description"`
}

// CreateActual makes an actual-test session with questions sampled from the
// embedded role datasets. The questions carry no parent reference; the
// session's question-id list is the only link.
func (s *SessionService) CreateActual(ctx context.Context, userID string, req CreateActualRequest) (*models.InterviewSession, error) {
	if req.Role == "" || req.Experience == "" || req.TopicsToFocus == "" {
		return nil, ErrValidation
	}

	topics := splitTopics(req.TopicsToFocus)
	sampled := sampleDatasetQuestions(req.Role, topics, actualQuestionCount)

	ids, err := s.createQuestions(ctx, "", sampled)
	if err != nil {
		return nil, err
	}

	session := &models.InterviewSession{
		UserID:         userID,
		Role:           req.Role,
		Experience:     req.Experience,
		TopicsToFocus:  req.TopicsToFocus,
		Description:    req.Description,
		QuestionIDs:    ids,
		TimerStartTime: s.Now(),
		TimerDuration:  s.TimerDuration,
	}
	if err := s.Sessions[models.KindActual].Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) createQuestions(ctx context.Context, sessionID string, inputs []QuestionInput) ([]string, error) {
	ids := make([]string, 0, len(inputs))
	for _, in := range inputs {
		questionType := in.Type
		if questionType == "" {
			questionType = models.QuestionTypeTechnical
		}
		q := &models.Question{
			SessionID: sessionID,
			Question:  in.Question,
			Answer:    in.Answer,
			Type:      questionType,
		}
		if err := s.Questions.Create(ctx, q); err != nil {
			return nil, err
		}
		ids = append(ids, q.ID)
	}
	return ids, nil
}

// Get returns a session with its questions joined, in list order.
func (s *SessionService) Get(ctx context.Context, kind, id string) (*SessionWithQuestions, error) {
	store, ok := s.Sessions[kind]
	if !ok {
		return nil, ErrNotFound
	}
	session, err := store.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	questions, err := s.Questions.FindByIDs(ctx, session.QuestionIDs)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return &SessionWithQuestions{InterviewSession: *session, Questions: questions}, nil
}

// List returns the caller's sessions, newest first, questions joined.
func (s *SessionService) List(ctx context.Context, kind, userID string) ([]SessionWithQuestions, error) {
	store, ok := s.Sessions[kind]
	if !ok {
		return nil, ErrNotFound
	}
	sessions, err := store.FindByUser(ctx, userID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	result := make([]SessionWithQuestions, 0, len(sessions))
	for _, session := range sessions {
		questions, err := s.Questions.FindByIDs(ctx, session.QuestionIDs)
		if err != nil {
			return nil, mapStoreErr(err)
		}
		result = append(result, SessionWithQuestions{InterviewSession: session, Questions: questions})
	}
	return result, nil
}

// Delete removes a session and cascades to its questions.
func (s *SessionService) Delete(ctx context.Context, kind, id, callerID string) error {
	store, ok := s.Sessions[kind]
	if !ok {
		return ErrNotFound
	}
	session, err := store.FindByID(ctx, id)
	if err != nil {
		return mapStoreErr(err)
	}
	if session.UserID != callerID {
		return ErrForbidden
	}

	if kind == models.KindSession {
		if err := s.Questions.DeleteBySession(ctx, id); err != nil {
			return mapStoreErr(err)
		}
	} else {
		if err := s.Questions.DeleteByIDs(ctx, session.QuestionIDs); err != nil {
			return mapStoreErr(err)
		}
	}
	return mapStoreErr(store.Delete(ctx, id))
}

// SetUserFeedback records the user's own feedback text, once, after
// finalization. The system never overwrites it.
func (s *SessionService) SetUserFeedback(ctx context.Context, kind, id, callerID, text string) error {
	store, ok := s.Sessions[kind]
	if !ok {
		return ErrNotFound
	}
	if strings.TrimSpace(text) == "" {
		return ErrValidation
	}
	session, err := store.FindByID(ctx, id)
	if err != nil {
		return mapStoreErr(err)
	}
	if session.UserID != callerID {
		return ErrForbidden
	}
	if !session.IsFinalSubmitted {
		return ErrValidation
	}
	if session.UserFeedback != "" {
		return ErrValidation
	}
	return mapStoreErr(store.Update(ctx, id, bson.M{"user_feedback": text}))
}

func splitTopics(topicsToFocus string) []string {
	parts := strings.Split(topicsToFocus, ",")
	topics := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}
