package engine

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestOpenLetterLocksTheOthers(t *testing.T) {
	svc, _, now := newTestService(t)
	ctx := context.Background()
	lockFor := svc.Balance().LetterLock()

	res, err := svc.OpenLetter(ctx, "sad")
	if err != nil {
		t.Fatalf("open sad: %v", err)
	}
	if res.Text == "" {
		t.Fatalf("empty variant text")
	}

	// Another letter is locked out...
	var locked LetterLockedError
	if _, err := svc.OpenLetter(ctx, "miss"); !errors.As(err, &locked) {
		t.Fatalf("open miss err=%v, want LetterLockedError", err)
	}
	if locked.AllowedID != "sad" {
		t.Fatalf("allowed id=%q, want sad", locked.AllowedID)
	}

	// ...but the just-opened one stays readable.
	if _, err := svc.OpenLetter(ctx, "sad"); err != nil {
		t.Fatalf("reopen sad: %v", err)
	}

	// After the lock expires any letter opens again.
	*now = now.Add(lockFor + time.Second)
	if _, err := svc.OpenLetter(ctx, "miss"); err != nil {
		t.Fatalf("open miss after expiry: %v", err)
	}
}

func TestOpenLetterVariantNeverRepeatsBackToBack(t *testing.T) {
	svc, _, now := newTestService(t)
	ctx := context.Background()
	lockFor := svc.Balance().LetterLock()

	last := -1
	for i := 0; i < 50; i++ {
		res, err := svc.OpenLetter(ctx, "happy")
		if err != nil {
			t.Fatalf("open #%d: %v", i, err)
		}
		if res.Variant == last {
			t.Fatalf("open #%d repeated variant %d", i, res.Variant)
		}
		last = res.Variant
		*now = now.Add(lockFor + time.Second)
	}
}

func TestOpenUnknownLetter(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.OpenLetter(context.Background(), "angry"); !errors.Is(err, ErrUnknownLetter) {
		t.Fatalf("err=%v, want ErrUnknownLetter", err)
	}
}

func TestOpenedLettersJournal(t *testing.T) {
	svc, _, now := newTestService(t)
	ctx := context.Background()

	if _, err := svc.OpenLetter(ctx, "rainy"); err != nil {
		t.Fatalf("open: %v", err)
	}
	*now = now.Add(svc.Balance().LetterLock() + time.Second)
	if _, err := svc.OpenLetter(ctx, "happy"); err != nil {
		t.Fatalf("open: %v", err)
	}

	journal, err := svc.OpenedLetters(ctx)
	if err != nil {
		t.Fatalf("journal: %v", err)
	}
	if len(journal) != 2 || journal[0].LetterID != "rainy" || journal[1].LetterID != "happy" {
		t.Fatalf("journal=%+v", journal)
	}
}

func TestLetterLockStatus(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	status, err := svc.LetterLockStatus(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status != nil {
		t.Fatalf("unexpected lock before any open: %+v", status)
	}

	if _, err := svc.OpenLetter(ctx, "sad"); err != nil {
		t.Fatalf("open: %v", err)
	}
	status, err = svc.LetterLockStatus(ctx)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status == nil || status.AllowedID != "sad" {
		t.Fatalf("lock=%+v, want allowed id sad", status)
	}
}
