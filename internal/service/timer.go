package service

import (
	"context"
	"errors"
	"log"
	"time"
)

// RemainingTime reports how many seconds a session has left, never negative.
func RemainingTime(startTime time.Time, durationSeconds int, now time.Time) int {
	elapsed := int(now.Sub(startTime).Seconds())
	remaining := durationSeconds - elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

func IsTimerExpired(startTime time.Time, durationSeconds int, now time.Time) bool {
	return RemainingTime(startTime, durationSeconds, now) <= 0
}

// Sweeper periodically pushes expired, unsubmitted sessions of both kinds
// through the submission workflow with system privilege.
type Sweeper struct {
	Submit   *SubmitService
	Interval time.Duration
	Now      func() time.Time
	// OnAutoSubmit, when set, is called after each successful auto-submit.
	OnAutoSubmit func(kind, sessionID string)
}

func NewSweeper(submit *SubmitService, interval time.Duration) *Sweeper {
	return &Sweeper{Submit: submit, Interval: interval, Now: time.Now}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce scans every unsubmitted session and auto-submits the expired
// ones. Results are only logged; scoring relies on the answers already
// persisted per question.
func (s *Sweeper) SweepOnce(ctx context.Context) {
	for kind, store := range s.Submit.Sessions {
		sessions, err := store.FindUnsubmitted(ctx)
		if err != nil {
			log.Printf("Sweep failed to list %s sessions: %v", kind, err)
			continue
		}
		for _, session := range sessions {
			if !IsTimerExpired(session.TimerStartTime, session.TimerDuration, s.Now()) {
				continue
			}
			if _, err := s.Submit.AutoSubmit(ctx, kind, session.ID); err != nil {
				// An explicit submit can race the sweep; the loser is expected.
				if errors.Is(err, ErrAlreadySubmitted) {
					continue
				}
				log.Printf("Failed to auto-submit %s session %s: %v", kind, session.ID, err)
				continue
			}
			log.Printf("Auto-submitted expired %s session %s", kind, session.ID)
			if s.OnAutoSubmit != nil {
				s.OnAutoSubmit(kind, session.ID)
			}
		}
	}
}
