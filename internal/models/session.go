package models

import "time"

// Session kinds. Practice sessions hold AI-generated questions, actual-test
// sessions hold dataset-sourced questions. Both share one record shape and
// are stored in separate collections.
const (
	KindSession = "session"
	KindActual  = "actual"
)

type InterviewSession struct {
	ID               string    `bson:"_id,omitempty" json:"id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	Role             string    `bson:"role" json:"role"`
	Experience       string    `bson:"experience" json:"experience"`
	TopicsToFocus    string    `bson:"topics_to_focus" json:"topics_to_focus"`
	Description      string    `bson:"description,omitempty" json:"description,omitempty"`
	QuestionIDs      []string  `bson:"question_ids" json:"question_ids"`
	IsFinalSubmitted bool      `bson:"is_final_submitted" json:"is_final_submitted"`
	SubmissionTime   int       `bson:"submission_time,omitempty" json:"submission_time,omitempty"`
	TimerStartTime   time.Time `bson:"timer_start_time" json:"timer_start_time"`
	TimerDuration    int       `bson:"timer_duration" json:"timer_duration"`
	Feedback         *Feedback `bson:"feedback,omitempty" json:"feedback,omitempty"`
	UserFeedback     string    `bson:"user_feedback,omitempty" json:"user_feedback,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt        time.Time `bson:"updated_at" json:"updated_at"`
}
