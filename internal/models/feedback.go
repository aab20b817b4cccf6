package models

import "time"

// Feedback JSON field names follow the generative service's output contract,
// so an AI response parses straight into this struct.
type SkillScore struct {
	Skill string `bson:"skill" json:"skill"`
	Score int    `bson:"score" json:"score"`
	Total int    `bson:"total,omitempty" json:"total,omitempty"`
}

type Feedback struct {
	SkillsBreakdown     []SkillScore `bson:"skills_breakdown" json:"skillsBreakdown"`
	Strengths           []string     `bson:"strengths" json:"strengths"`
	AreasForImprovement []string     `bson:"areas_for_improvement" json:"areasForImprovement"`
	Summary             string       `bson:"summary" json:"summary"`
}

// FeedbackRecord is the addressable copy of a session's feedback kept in its
// own collection for the feedback query API.
type FeedbackRecord struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	SessionID   string    `bson:"session_id" json:"session_id"`
	SessionKind string    `bson:"session_kind" json:"session_kind"`
	UserID      string    `bson:"user_id" json:"user_id"`
	Feedback    Feedback  `bson:"feedback" json:"feedback"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
