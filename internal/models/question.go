package models

import "time"

const (
	QuestionTypeTechnical = "technical"
	QuestionTypeCoding    = "coding"
)

type Question struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	SessionID string `bson:"session_id,omitempty" json:"session_id,omitempty"`
	Question  string `bson:"question" json:"question"`
	Answer    string `bson:"answer" json:"answer"`
	Type      string `bson:"type" json:"type"`
	Note      string `bson:"note,omitempty" json:"note,omitempty"`
	IsPinned  bool   `bson:"is_pinned" json:"is_pinned"`
	// UserAnswer is mutable until the parent session is finalized, then frozen.
	UserAnswer string     `bson:"user_answer" json:"user_answer"`
	IsCorrect  *bool      `bson:"is_correct,omitempty" json:"is_correct,omitempty"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updated_at"`
}
