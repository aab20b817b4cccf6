package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Prompt builders for the four generative tasks. Each asks for a pure JSON
// response; the model does not always comply, so every call site runs the
// output through ExtractJSON and falls back on parse failure.

func QuestionGenerationPrompt(role, experience, topicsToFocus string, numberOfQuestions int) string {
	return fmt.Sprintf(`You are an AI trained to generate technical interview questions and answers.

Task:
- Role: %s
- Candidate Experience: %s years
- Focus Topics: %s
- Write %d interview questions.
- The questions must be balanced: 2/3 should be technical and knowledge questions (type: 'technical'), and 1/3 should be coding questions (type: 'coding').
- Distribute the questions evenly across all the provided topics; do NOT focus only on one topic.
- For each question, add a 'type' field: 'technical' or 'coding'.
- For each question, generate a detailed but beginner-friendly answer.
- If the answer needs a code example, add a small code block inside.
- Return a pure JSON array like:
[
  {"question": "Question here?", "answer": "Answer here.", "type": "technical"}
]
Important: Do NOT add any extra text. Only return valid JSON.`,
		role, experience, topicsToFocus, numberOfQuestions)
}

func ConceptExplainPrompt(question string) string {
	return fmt.Sprintf(`You are an AI trained to generate explanations for a given interview question.

Task:
- Explain the following interview question and its concept in depth as if you're teaching a beginner developer.
- Question: %q
- After the explanation, provide a short and clear title that summarizes the concept.
- If the explanation includes a code example, provide a small code block.
- Return the result as a valid JSON object in the following format:
{"title": "Short title here?", "explanation": "Explanation here."}
Important: Do NOT add any extra text outside the JSON format. Only return valid JSON.`,
		question)
}

// FeedbackQuestion is the per-question payload interpolated into the
// feedback prompt.
type FeedbackQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	UserAnswer string `json:"userAnswer"`
}

func FeedbackPrompt(role, experience, topicsToFocus string, questions []FeedbackQuestion, submissionTime int) string {
	// Marshalling the Q&A list keeps user-supplied text from breaking the
	// instructional framing.
	qaJSON, _ := json.Marshal(questions)

	var b strings.Builder
	fmt.Fprintf(&b, `You are an AI interview coach. Analyze the following interview session for a candidate:
- Role: %s
- Experience: %s years
- Focus Topics: %s
- Questions and Answers: %s
`, role, experience, topicsToFocus, string(qaJSON))
	if submissionTime > 0 {
		fmt.Fprintf(&b, "- Submission Time: %d seconds (%d minutes %d seconds)\n",
			submissionTime, submissionTime/60, submissionTime%60)
	}
	b.WriteString(`
CRITICAL RULES:
1. If all userAnswer fields are empty, null, or whitespace, then ALL scores must be 0.
2. If even one question has a non-empty answer, evaluate only that question and score others as 0.

Task:
1. Count how many questions have actual (non-empty) answers.
2. Provide a breakdown of skills with appropriate scores.
3. Mention the submission time in the summary if provided.
4. Return the result as a valid JSON object in the following format:
{
  "skillsBreakdown": [{"skill": "Technical Knowledge", "score": 0}],
  "strengths": [],
  "areasForImprovement": [],
  "summary": ""
}
Important: Only return valid JSON. Do NOT add any extra text outside the JSON format.`)
	return b.String()
}

func CheckAnswerPrompt(question, userAnswer, correctAnswer string) string {
	return fmt.Sprintf(`You are an AI assistant for interview preparation.
Task:
1. Given the following question and a user's answer, determine if the user's answer is semantically relevant and correct for the question, even if the wording, punctuation, or case is different.
2. Ignore minor differences in phrasing, synonyms, punctuation, and case. Focus on the meaning and correctness of the answer.
3. If the answer is relevant and correct, reply with isRelevant: true and a short feedback message.
4. If the answer is not relevant or incorrect, reply with isRelevant: false, a short feedback message, and the correct answer.
5. Return the result as a valid JSON object in the following format:
{"isRelevant": true, "feedback": "Short feedback message", "correctAnswer": "The correct answer here"}
Question: %q
UserAnswer: %q
CorrectAnswer: %q
Important: Only return valid JSON. Do NOT add any extra text outside the JSON format.`,
		question, userAnswer, correctAnswer)
}
