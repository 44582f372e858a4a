package storage

import (
	"context"
	"database/sql"
	"errors"
)

const (
	letterLockKey    = "open_when_lock_v1"
	openedLettersKey = "open_when_opened_v1"
)

type LetterRepo struct {
	db *sql.DB
}

func NewLetterRepo(db *sql.DB) *LetterRepo {
	return &LetterRepo{db: db}
}

// Lock returns the current lock record, or nil when none is set.
// Expired locks are the caller's concern.
func (r *LetterRepo) Lock(ctx context.Context) (*LetterLock, error) {
	var l LetterLock
	ok, err := getRecord(ctx, r.db, letterLockKey, &l)
	if err != nil {
		if errors.Is(err, errMalformed) {
			return nil, nil
		}
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *LetterRepo) SetLock(ctx context.Context, l LetterLock) error {
	return putRecord(ctx, r.db, letterLockKey, l)
}

// Opened returns the opened-letters journal, oldest first.
func (r *LetterRepo) Opened(ctx context.Context) ([]OpenedLetter, error) {
	var list []OpenedLetter
	if _, err := getRecord(ctx, r.db, openedLettersKey, &list); err != nil {
		if errors.Is(err, errMalformed) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (r *LetterRepo) AppendOpened(ctx context.Context, entry OpenedLetter) error {
	list, err := r.Opened(ctx)
	if err != nil {
		return err
	}
	return putRecord(ctx, r.db, openedLettersKey, append(list, entry))
}
