package service

import (
	"fmt"
	"math"

	"interview-service/internal/models"
)

// The fixed skill list every feedback object reports on.
var skillNames = []string{
	"Technical Knowledge",
	"Problem Solving",
	"Communication",
	"Code Quality",
	"System Design",
}

const (
	noAnswerSummary = "No answers were provided for this session. Please complete all questions to receive proper feedback."
)

var noAnswerImprovements = []string{
	"No answers were provided",
	"Complete all questions to get meaningful feedback",
}

// skillScore derives the shared per-skill score from the percentage:
// round(pct/100 * total), capped at total.
func skillScore(percentage, total int) int {
	if total <= 0 {
		return 0
	}
	score := int(math.Round(float64(percentage) / 100 * float64(total)))
	if score > total {
		score = total
	}
	return score
}

func buildSkillsBreakdown(percentage, total int) []models.SkillScore {
	score := skillScore(percentage, total)
	breakdown := make([]models.SkillScore, 0, len(skillNames))
	for _, name := range skillNames {
		breakdown = append(breakdown, models.SkillScore{Skill: name, Score: score, Total: total})
	}
	return breakdown
}

// synthesizeFeedback builds a complete feedback object from the score alone,
// used when the generative service fails or returns unusable output. The
// caller must never end a successful finalization without a feedback object.
func synthesizeFeedback(percentage, total, submissionTime int, generationFailed bool) *models.Feedback {
	fb := &models.Feedback{
		SkillsBreakdown: buildSkillsBreakdown(percentage, total),
	}

	timeNote := fmt.Sprintf("Session completed in %d minutes %d seconds.", submissionTime/60, submissionTime%60)

	switch {
	case percentage >= 80:
		fb.Strengths = []string{
			"Strong grasp of the core concepts",
			"Answers were relevant and well structured",
		}
		fb.AreasForImprovement = []string{
			"Keep practicing advanced topics to stay sharp",
		}
		fb.Summary = fmt.Sprintf("Excellent performance with a score of %d%%. %s", percentage, timeNote)
	case percentage >= 60:
		fb.Strengths = []string{
			"Good understanding of most topics",
		}
		fb.AreasForImprovement = []string{
			"Review the questions answered incorrectly",
			"Add more detail and examples to your answers",
		}
		fb.Summary = fmt.Sprintf("Good performance with a score of %d%%. %s", percentage, timeNote)
	case percentage >= 40:
		fb.Strengths = []string{
			"Attempted a fair share of the questions",
		}
		fb.AreasForImprovement = []string{
			"Revisit the fundamentals of the focus topics",
			"Practice explaining concepts in your own words",
		}
		fb.Summary = fmt.Sprintf("Fair performance with a score of %d%%. %s", percentage, timeNote)
	default:
		fb.Strengths = []string{}
		fb.AreasForImprovement = []string{
			"Significant gaps in the focus topics",
			"Work through the provided answers and retry",
		}
		fb.Summary = fmt.Sprintf("Performance needs improvement with a score of %d%%. %s", percentage, timeNote)
	}

	if generationFailed {
		fb.Summary += " Automated feedback generation was unavailable; this summary was derived from your score."
	}
	return fb
}

// applyNoAnswerOverride forces the all-blank-session shape onto a feedback
// object, regardless of what the generative service returned.
func applyNoAnswerOverride(fb *models.Feedback) {
	for i := range fb.SkillsBreakdown {
		fb.SkillsBreakdown[i].Score = 0
	}
	fb.Strengths = []string{}
	fb.AreasForImprovement = append([]string(nil), noAnswerImprovements...)
	fb.Summary = noAnswerSummary
}
