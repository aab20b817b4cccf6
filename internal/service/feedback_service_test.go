package service

import (
	"context"
	"errors"
	"testing"

	"interview-service/internal/models"
)

func TestFeedbackServiceStoreAndQuery(t *testing.T) {
	ctx := context.Background()
	store := newMemFeedbackStore()
	svc := NewFeedbackService(store)

	if err := svc.Store(ctx, "u1", &models.FeedbackRecord{SessionID: "s1"}); !errors.Is(err, ErrValidation) {
		t.Errorf("missing kind: err = %v, want ErrValidation", err)
	}

	record := &models.FeedbackRecord{
		SessionID:   "s1",
		SessionKind: models.KindSession,
		Feedback:    models.Feedback{Summary: "fine"},
	}
	if err := svc.Store(ctx, "u1", record); err != nil {
		t.Fatalf("store: %v", err)
	}
	if record.UserID != "u1" {
		t.Errorf("user id = %q, want the caller's", record.UserID)
	}

	got, err := svc.GetBySession(ctx, "s1", models.KindSession)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Feedback.Summary != "fine" {
		t.Errorf("summary = %q", got.Feedback.Summary)
	}
	if _, err := svc.GetBySession(ctx, "s1", models.KindActual); !errors.Is(err, ErrNotFound) {
		t.Errorf("other kind: err = %v, want ErrNotFound", err)
	}

	// Storing again for the same session replaces, not duplicates.
	record2 := &models.FeedbackRecord{
		SessionID:   "s1",
		SessionKind: models.KindSession,
		Feedback:    models.Feedback{Summary: "updated"},
	}
	if err := svc.Store(ctx, "u1", record2); err != nil {
		t.Fatalf("restore: %v", err)
	}
	records, err := svc.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Feedback.Summary != "updated" {
		t.Errorf("summary = %q, want the replacement", records[0].Feedback.Summary)
	}
}

func TestFeedbackServiceDeleteScopedToOwner(t *testing.T) {
	ctx := context.Background()
	store := newMemFeedbackStore()
	svc := NewFeedbackService(store)

	record := &models.FeedbackRecord{SessionID: "s1", SessionKind: models.KindSession}
	if err := svc.Store(ctx, "u1", record); err != nil {
		t.Fatalf("store: %v", err)
	}
	if err := svc.Delete(ctx, record.ID, "intruder"); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign delete: err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, record.ID, "u1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(ctx, record.ID, "u1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}
