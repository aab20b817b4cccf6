package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"interview-service/internal/llm"
	"interview-service/internal/models"
	"interview-service/internal/service"

	"github.com/gin-gonic/gin"
)

// AIHandler serves the direct generative endpoints: question generation,
// concept explanation, answer checking, and ad-hoc feedback. These surface
// upstream failures to the client, unlike the submission workflow which
// always recovers locally.
type AIHandler struct {
	Generator llm.Generator
}

func NewAIHandler(generator llm.Generator) *AIHandler {
	return &AIHandler{Generator: generator}
}

func (h *AIHandler) GenerateQuestions(c *gin.Context) {
	var req struct {
		Role              string `json:"role"`
		Experience        string `json:"experience"`
		TopicsToFocus     string `json:"topics_to_focus"`
		NumberOfQuestions int    `json:"number_of_questions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Role == "" || req.Experience == "" || req.TopicsToFocus == "" {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}
	if req.NumberOfQuestions <= 0 {
		req.NumberOfQuestions = 5
	}

	prompt := llm.QuestionGenerationPrompt(req.Role, req.Experience, req.TopicsToFocus, req.NumberOfQuestions)
	raw, err := h.Generator.Generate(context.Background(), prompt)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to generate questions")
		return
	}

	var questions []service.QuestionInput
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &questions); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to generate questions")
		return
	}
	// The model sometimes omits the type field; classify by code fence.
	for i := range questions {
		if questions[i].Type == "" {
			if strings.Contains(questions[i].Answer, "```") {
				questions[i].Type = models.QuestionTypeCoding
			} else {
				questions[i].Type = models.QuestionTypeTechnical
			}
		}
	}
	SuccessResponse(c, http.StatusOK, questions)
}

func (h *AIHandler) GenerateExplanation(c *gin.Context) {
	var req struct {
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	raw, err := h.Generator.Generate(context.Background(), llm.ConceptExplainPrompt(req.Question))
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to generate explanation")
		return
	}
	var explanation struct {
		Title       string `json:"title"`
		Explanation string `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &explanation); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to generate explanation")
		return
	}
	SuccessResponse(c, http.StatusOK, explanation)
}

func (h *AIHandler) CheckAnswer(c *gin.Context) {
	var req struct {
		Question      string `json:"question"`
		UserAnswer    string `json:"user_answer"`
		CorrectAnswer string `json:"correct_answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Question == "" || req.UserAnswer == "" || req.CorrectAnswer == "" {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	raw, err := h.Generator.Generate(context.Background(), llm.CheckAnswerPrompt(req.Question, req.UserAnswer, req.CorrectAnswer))
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to check answer")
		return
	}
	var verdict struct {
		IsRelevant    bool   `json:"isRelevant"`
		Feedback      string `json:"feedback"`
		CorrectAnswer string `json:"correctAnswer"`
	}
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &verdict); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to check answer")
		return
	}
	SuccessResponse(c, http.StatusOK, verdict)
}

func (h *AIHandler) GenerateFeedback(c *gin.Context) {
	var req struct {
		Role           string                 `json:"role"`
		Experience     string                 `json:"experience"`
		TopicsToFocus  string                 `json:"topics_to_focus"`
		Questions      []llm.FeedbackQuestion `json:"questions"`
		SubmissionTime int                    `json:"submission_time"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Role == "" || req.Experience == "" || req.TopicsToFocus == "" || len(req.Questions) == 0 {
		ErrorResponse(c, http.StatusBadRequest, "Missing required fields")
		return
	}

	prompt := llm.FeedbackPrompt(req.Role, req.Experience, req.TopicsToFocus, req.Questions, req.SubmissionTime)
	raw, err := h.Generator.Generate(context.Background(), prompt)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to generate feedback")
		return
	}
	var feedback models.Feedback
	if err := json.Unmarshal([]byte(llm.ExtractJSON(raw)), &feedback); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to generate feedback")
		return
	}
	SuccessResponse(c, http.StatusOK, feedback)
}
