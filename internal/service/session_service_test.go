package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"interview-service/internal/models"
)

func newSessionFixture() (*SessionService, *memSessionStore, *memSessionStore, *memQuestionStore) {
	sessions := newMemSessionStore()
	actuals := newMemSessionStore()
	questions := newMemQuestionStore()
	svc := NewSessionService(sessions, actuals, questions, 1800)
	svc.Now = func() time.Time { return time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC) }
	return svc, sessions, actuals, questions
}

func TestCreateSessionLinksQuestions(t *testing.T) {
	svc, sessions, _, questions := newSessionFixture()
	ctx := context.Background()

	session, err := svc.Create(ctx, "u1", CreateSessionRequest{
		Role:          "Backend Developer",
		Experience:    "2",
		TopicsToFocus: "Go, SQL",
		Questions: []QuestionInput{
			{Question: "What is a goroutine?", Answer: "A lightweight thread."},
			{Question: "Write a SQL join.", Answer: "```sql\nSELECT ...\n```", Type: models.QuestionTypeCoding},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(session.QuestionIDs) != 2 {
		t.Fatalf("question ids = %d, want 2", len(session.QuestionIDs))
	}
	if session.TimerDuration != 1800 {
		t.Errorf("timer duration = %d, want 1800", session.TimerDuration)
	}

	stored, err := sessions.FindByID(ctx, session.ID)
	if err != nil {
		t.Fatalf("find session: %v", err)
	}
	if len(stored.QuestionIDs) != 2 {
		t.Errorf("stored question ids = %d, want 2", len(stored.QuestionIDs))
	}

	linked, _ := questions.FindByIDs(ctx, session.QuestionIDs)
	if len(linked) != 2 {
		t.Fatalf("linked questions = %d, want 2", len(linked))
	}
	if linked[0].SessionID != session.ID {
		t.Error("question should reference its parent session")
	}
	if linked[0].Type != models.QuestionTypeTechnical {
		t.Errorf("default type = %q, want technical", linked[0].Type)
	}
	if linked[1].Type != models.QuestionTypeCoding {
		t.Errorf("explicit type = %q, want coding", linked[1].Type)
	}
}

func TestCreateSessionValidation(t *testing.T) {
	svc, _, _, _ := newSessionFixture()
	_, err := svc.Create(context.Background(), "u1", CreateSessionRequest{Role: "Backend Developer"})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestCreateActualSamplesQuestions(t *testing.T) {
	svc, _, actuals, questions := newSessionFixture()
	ctx := context.Background()

	session, err := svc.CreateActual(ctx, "u1", CreateActualRequest{
		Role:          "Frontend Developer",
		Experience:    "1",
		TopicsToFocus: "React, CSS",
	})
	if err != nil {
		t.Fatalf("create actual: %v", err)
	}
	if len(session.QuestionIDs) != actualQuestionCount {
		t.Fatalf("question ids = %d, want %d", len(session.QuestionIDs), actualQuestionCount)
	}
	if _, err := actuals.FindByID(ctx, session.ID); err != nil {
		t.Fatalf("actual session not stored: %v", err)
	}
	sampled, _ := questions.FindByIDs(ctx, session.QuestionIDs)
	for _, q := range sampled {
		if q.SessionID != "" {
			t.Error("actual-test questions carry no parent reference")
		}
		if q.Answer == "" {
			t.Error("dataset questions must carry a reference answer")
		}
	}
}

func TestGetJoinsQuestionsInOrder(t *testing.T) {
	svc, _, _, _ := newSessionFixture()
	ctx := context.Background()
	session, err := svc.Create(ctx, "u1", CreateSessionRequest{
		Role: "Backend Developer", Experience: "2", TopicsToFocus: "Go",
		Questions: []QuestionInput{
			{Question: "First?", Answer: "a"},
			{Question: "Second?", Answer: "b"},
			{Question: "Third?", Answer: "c"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	got, err := svc.Get(ctx, models.KindSession, session.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(got.Questions))
	}
	for i, want := range []string{"First?", "Second?", "Third?"} {
		if got.Questions[i].Question != want {
			t.Errorf("question[%d] = %q, want %q", i, got.Questions[i].Question, want)
		}
	}
}

func TestDeleteCascades(t *testing.T) {
	svc, sessions, _, questions := newSessionFixture()
	ctx := context.Background()
	session, _ := svc.Create(ctx, "u1", CreateSessionRequest{
		Role: "Backend Developer", Experience: "2", TopicsToFocus: "Go",
		Questions: []QuestionInput{{Question: "Q?", Answer: "A"}},
	})

	if err := svc.Delete(ctx, models.KindSession, session.ID, "other"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(ctx, models.KindSession, session.ID, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := sessions.FindByID(ctx, session.ID); !errors.Is(mapStoreErr(err), ErrNotFound) {
		t.Error("session should be gone")
	}
	left, _ := questions.FindByIDs(ctx, session.QuestionIDs)
	if len(left) != 0 {
		t.Errorf("questions left = %d, want 0", len(left))
	}
}

func TestDeleteActualCascadesByIDs(t *testing.T) {
	svc, _, _, questions := newSessionFixture()
	ctx := context.Background()
	session, err := svc.CreateActual(ctx, "u1", CreateActualRequest{
		Role: "Backend Developer", Experience: "2", TopicsToFocus: "SQL",
	})
	if err != nil {
		t.Fatalf("create actual: %v", err)
	}
	if err := svc.Delete(ctx, models.KindActual, session.ID, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	left, _ := questions.FindByIDs(ctx, session.QuestionIDs)
	if len(left) != 0 {
		t.Errorf("questions left = %d, want 0", len(left))
	}
}

func TestSetUserFeedbackRules(t *testing.T) {
	svc, sessions, _, _ := newSessionFixture()
	ctx := context.Background()
	session, _ := svc.Create(ctx, "u1", CreateSessionRequest{
		Role: "Backend Developer", Experience: "2", TopicsToFocus: "Go",
	})

	if err := svc.SetUserFeedback(ctx, models.KindSession, session.ID, "u1", "   "); !errors.Is(err, ErrValidation) {
		t.Errorf("blank text: err = %v, want ErrValidation", err)
	}
	if err := svc.SetUserFeedback(ctx, models.KindSession, session.ID, "u1", "Great questions"); !errors.Is(err, ErrValidation) {
		t.Errorf("before finalization: err = %v, want ErrValidation", err)
	}

	if _, err := sessions.FinalizeOnce(ctx, session.ID, nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if err := svc.SetUserFeedback(ctx, models.KindSession, session.ID, "other", "nope"); !errors.Is(err, ErrForbidden) {
		t.Errorf("wrong user: err = %v, want ErrForbidden", err)
	}
	if err := svc.SetUserFeedback(ctx, models.KindSession, session.ID, "u1", "Great questions"); err != nil {
		t.Fatalf("set feedback: %v", err)
	}
	if err := svc.SetUserFeedback(ctx, models.KindSession, session.ID, "u1", "Changed my mind"); !errors.Is(err, ErrValidation) {
		t.Errorf("second write: err = %v, want ErrValidation", err)
	}

	stored, _ := sessions.FindByID(ctx, session.ID)
	if stored.UserFeedback != "Great questions" {
		t.Errorf("user feedback = %q, want the first write", stored.UserFeedback)
	}
}

func TestSplitTopics(t *testing.T) {
	got := splitTopics(" React,  CSS ,, Node ")
	want := []string{"React", "CSS", "Node"}
	if len(got) != len(want) {
		t.Fatalf("topics = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("topic[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
