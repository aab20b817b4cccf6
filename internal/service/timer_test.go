package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"interview-service/internal/models"
)

func TestRemainingTime(t *testing.T) {
	start := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		name     string
		duration int
		now      time.Time
		want     int
	}{
		{"just started", 1800, start, 1800},
		{"halfway", 1800, start.Add(15 * time.Minute), 900},
		{"exactly expired", 1800, start.Add(30 * time.Minute), 0},
		{"long expired clamps to zero", 1800, start.Add(2 * time.Hour), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RemainingTime(start, tc.duration, tc.now); got != tc.want {
				t.Errorf("RemainingTime = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestIsTimerExpired(t *testing.T) {
	start := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	if IsTimerExpired(start, 1800, start.Add(29*time.Minute)) {
		t.Error("timer should still be running")
	}
	if !IsTimerExpired(start, 1800, start.Add(30*time.Minute)) {
		t.Error("timer should be expired at the boundary")
	}
}

func TestSweepOnceAutoSubmitsExpiredOnly(t *testing.T) {
	f := newSubmitFixture(failingGenerator)
	ctx := context.Background()

	expired := f.seedSession(t, models.KindSession, 1, []string{"an answer with several words here"})
	fresh := f.seedSession(t, models.KindActual, 1, []string{""})

	f.sessions.mu.Lock()
	f.sessions.sessions[expired.ID].TimerStartTime = time.Now().Add(-time.Hour)
	f.sessions.mu.Unlock()
	f.actuals.mu.Lock()
	f.actuals.sessions[fresh.ID].TimerStartTime = time.Now()
	f.actuals.sessions[fresh.ID].TimerDuration = 3600
	f.actuals.mu.Unlock()

	var swept []string
	sweeper := NewSweeper(f.submit, time.Minute)
	sweeper.OnAutoSubmit = func(kind, sessionID string) {
		swept = append(swept, kind+"/"+sessionID)
	}
	sweeper.SweepOnce(ctx)

	stored, _ := f.sessions.FindByID(ctx, expired.ID)
	if !stored.IsFinalSubmitted {
		t.Error("expired session should be auto-submitted")
	}
	untouched, _ := f.actuals.FindByID(ctx, fresh.ID)
	if untouched.IsFinalSubmitted {
		t.Error("running session must not be auto-submitted")
	}
	if len(swept) != 1 || swept[0] != models.KindSession+"/"+expired.ID {
		t.Errorf("swept = %v, want exactly the expired session", swept)
	}
}

func TestSweepOnceToleratesSubmitRace(t *testing.T) {
	f := newSubmitFixture(failingGenerator)
	ctx := context.Background()
	session := f.seedSession(t, models.KindSession, 1, []string{"answer text with enough words"})

	if _, err := f.submit.Submit(ctx, models.KindSession, session.ID, nil, "u1"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	// A second sweep pass over the now-submitted session must be silent.
	sweeper := NewSweeper(f.submit, time.Minute)
	sweeper.OnAutoSubmit = func(kind, sessionID string) {
		t.Errorf("unexpected auto-submit of %s/%s", kind, sessionID)
	}
	sweeper.SweepOnce(ctx)

	if _, err := f.submit.AutoSubmit(ctx, models.KindSession, session.ID); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("err = %v, want ErrAlreadySubmitted", err)
	}
}
