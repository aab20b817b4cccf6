package service

import (
	"context"

	"interview-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

type QuestionService struct {
	Questions QuestionStore
	Sessions  SessionStore
}

func NewQuestionService(questions QuestionStore, sessions SessionStore) *QuestionService {
	return &QuestionService{Questions: questions, Sessions: sessions}
}

// SaveAnswer writes the user's answer, last write wins. Once the parent
// session is finalized the write is rejected; answers are frozen. Questions
// without a parent reference (actual-test questions) are only guarded at
// finalization itself.
func (s *QuestionService) SaveAnswer(ctx context.Context, questionID, answer string) (*models.Question, error) {
	question, err := s.Questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if question.SessionID != "" {
		session, err := s.Sessions.FindByID(ctx, question.SessionID)
		if err == nil && session.IsFinalSubmitted {
			return nil, ErrAlreadySubmitted
		}
	}
	if err := s.Questions.Update(ctx, questionID, bson.M{"user_answer": answer}); err != nil {
		return nil, mapStoreErr(err)
	}
	question.UserAnswer = answer
	return question, nil
}

func (s *QuestionService) TogglePin(ctx context.Context, questionID string) (*models.Question, error) {
	question, err := s.Questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	question.IsPinned = !question.IsPinned
	if err := s.Questions.Update(ctx, questionID, bson.M{"is_pinned": question.IsPinned}); err != nil {
		return nil, mapStoreErr(err)
	}
	return question, nil
}

func (s *QuestionService) UpdateNote(ctx context.Context, questionID, note string) (*models.Question, error) {
	question, err := s.Questions.FindByID(ctx, questionID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if err := s.Questions.Update(ctx, questionID, bson.M{"note": note}); err != nil {
		return nil, mapStoreErr(err)
	}
	question.Note = note
	return question, nil
}

// AddToSession appends extra questions to an existing practice session.
func (s *QuestionService) AddToSession(ctx context.Context, sessionID, callerID string, inputs []QuestionInput) ([]models.Question, error) {
	if len(inputs) == 0 {
		return nil, ErrValidation
	}
	session, err := s.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if session.UserID != callerID {
		return nil, ErrForbidden
	}
	if session.IsFinalSubmitted {
		return nil, ErrAlreadySubmitted
	}

	created := make([]models.Question, 0, len(inputs))
	ids := append([]string(nil), session.QuestionIDs...)
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
		created = append(created, *q)
	}
	if err := s.Sessions.Update(ctx, sessionID, bson.M{"question_ids": ids}); err != nil {
		return nil, mapStoreErr(err)
	}
	return created, nil
}
