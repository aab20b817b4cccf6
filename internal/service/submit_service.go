package service

import (
	"context"
	"encoding/json"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"interview-service/internal/llm"
	"interview-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SubmitService runs the scoring and feedback-reconciliation workflow. One
// parameterized implementation serves the practice-session path, the
// actual-test path, and the timer-driven auto-submit path.
type SubmitService struct {
	Sessions  map[string]SessionStore
	Questions QuestionStore
	Feedback  FeedbackStore
	Generator llm.Generator
	Now       func() time.Time
}

func NewSubmitService(sessions, actuals SessionStore, questions QuestionStore, feedback FeedbackStore, generator llm.Generator) *SubmitService {
	return &SubmitService{
		Sessions: map[string]SessionStore{
			models.KindSession: sessions,
			models.KindActual:  actuals,
		},
		Questions: questions,
		Feedback:  feedback,
		Generator: generator,
		Now:       time.Now,
	}
}

type SubmitResult struct {
	PercentageScore int              `json:"percentage_score"`
	Feedback        *models.Feedback `json:"feedback"`
}

// Submit finalizes a session on behalf of a caller. Ownership is enforced.
func (s *SubmitService) Submit(ctx context.Context, kind, sessionID string, answers map[string]string, callerID string) (*SubmitResult, error) {
	return s.submit(ctx, kind, sessionID, answers, callerID, true)
}

// AutoSubmit finalizes an expired session with system privilege, relying
// entirely on the answers already persisted on the questions.
func (s *SubmitService) AutoSubmit(ctx context.Context, kind, sessionID string) (*SubmitResult, error) {
	return s.submit(ctx, kind, sessionID, nil, "", false)
}

func (s *SubmitService) submit(ctx context.Context, kind, sessionID string, answers map[string]string, callerID string, enforceOwner bool) (*SubmitResult, error) {
	store, ok := s.Sessions[kind]
	if !ok {
		return nil, ErrNotFound
	}
	session, err := store.FindByID(ctx, sessionID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if session.IsFinalSubmitted {
		return nil, ErrAlreadySubmitted
	}
	if enforceOwner && session.UserID != callerID {
		return nil, ErrForbidden
	}

	questions, err := s.Questions.FindByIDs(ctx, session.QuestionIDs)
	if err != nil {
		return nil, mapStoreErr(err)
	}

	// Effective answer: persisted value if non-blank, else the incoming
	// value from the submit call, else empty.
	effective := make([]string, len(questions))
	for i, q := range questions {
		if strings.TrimSpace(q.UserAnswer) != "" {
			effective[i] = q.UserAnswer
		} else {
			effective[i] = answers[q.ID]
		}
	}

	// Relevance checks fan out concurrently across all answered questions.
	// A failed call degrades only that question to the local heuristic.
	marks := make([]bool, len(questions))
	var wg sync.WaitGroup
	for i := range questions {
		if strings.TrimSpace(effective[i]) == "" {
			continue
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			marks[i] = s.checkRelevance(ctx, questions[i], effective[i])
		}(i)
	}
	wg.Wait()

	totalCount := len(questions)
	answeredCount := 0
	correctCount := 0
	for i := range questions {
		if strings.TrimSpace(effective[i]) == "" {
			continue
		}
		answeredCount++
		if marks[i] {
			correctCount++
		}
	}

	percentage := 0
	if totalCount > 0 {
		percentage = int(math.Round(100 * float64(correctCount) / float64(totalCount)))
	}
	submissionTime := int(s.Now().Sub(session.TimerStartTime).Seconds())

	feedback := s.buildFeedback(ctx, session, questions, effective, percentage, totalCount, answeredCount, submissionTime)

	// Atomic transition: only one submission path can flip the flag. The
	// loser of a concurrent race gets AlreadySubmitted, not a reprocess.
	won, err := store.FinalizeOnce(ctx, sessionID, bson.M{
		"submission_time": submissionTime,
		"feedback":        feedback,
	})
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if !won {
		return nil, ErrAlreadySubmitted
	}

	// Question writes are best effort; the store offers no multi-document
	// transaction.
	for i, q := range questions {
		update := bson.M{"user_answer": effective[i]}
		if strings.TrimSpace(effective[i]) != "" {
			update["is_correct"] = marks[i]
		}
		if err := s.Questions.Update(ctx, q.ID, update); err != nil {
			log.Printf("Failed to persist answer for question %s: %v", q.ID, err)
		}
	}

	if err := s.Feedback.Store(ctx, &models.FeedbackRecord{
		SessionID:   sessionID,
		SessionKind: kind,
		UserID:      session.UserID,
		Feedback:    *feedback,
	}); err != nil {
		log.Printf("Failed to store feedback record for %s %s: %v", kind, sessionID, err)
	}

	return &SubmitResult{PercentageScore: percentage, Feedback: feedback}, nil
}

// checkRelevance asks the generative service whether the answer is relevant
// and correct; any failure falls back to the local heuristic.
func (s *SubmitService) checkRelevance(ctx context.Context, question models.Question, answer string) bool {
	prompt := llm.CheckAnswerPrompt(question.Question, answer, question.Answer)
	raw, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("Relevance check failed for question %s, using heuristic: %v", question.ID, err)
		return heuristicCorrect(answer)
	}
	var verdict struct {
		IsRelevant bool `json:"isRelevant"`
	}
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &verdict); err != nil {
		log.Printf("Relevance check returned unparsable output for question %s, using heuristic", question.ID)
		return heuristicCorrect(answer)
	}
	return verdict.IsRelevant
}

// buildFeedback produces the final feedback object. The narrative comes from
// the generative service when usable; skill scores always come from the
// tally, and the all-blank session shape overrides everything.
func (s *SubmitService) buildFeedback(ctx context.Context, session *models.InterviewSession, questions []models.Question, effective []string, percentage, totalCount, answeredCount, submissionTime int) *models.Feedback {
	feedback := s.generateFeedback(ctx, session, questions, effective, submissionTime)
	if feedback == nil {
		feedback = synthesizeFeedback(percentage, totalCount, submissionTime, true)
	}
	feedback.SkillsBreakdown = buildSkillsBreakdown(percentage, totalCount)
	if answeredCount == 0 {
		applyNoAnswerOverride(feedback)
	}
	return feedback
}

// generateFeedback returns nil whenever the service call fails or its output
// is unusable; the caller synthesizes a fallback.
func (s *SubmitService) generateFeedback(ctx context.Context, session *models.InterviewSession, questions []models.Question, effective []string, submissionTime int) *models.Feedback {
	payload := make([]llm.FeedbackQuestion, len(questions))
	for i, q := range questions {
		payload[i] = llm.FeedbackQuestion{
			Question:   q.Question,
			Answer:     q.Answer,
			UserAnswer: effective[i],
		}
	}
	prompt := llm.FeedbackPrompt(session.Role, session.Experience, session.TopicsToFocus, payload, submissionTime)

	raw, err := s.Generator.Generate(ctx, prompt)
	if err != nil {
		log.Printf("Feedback generation failed for session %s: %v", session.ID, err)
		return nil
	}
	var feedback models.Feedback
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &feedback); err != nil {
		log.Printf("Feedback generation returned unparsable output for session %s", session.ID)
		return nil
	}
	if feedback.Summary == "" && len(feedback.SkillsBreakdown) == 0 {
		return nil
	}
	return &feedback
}
