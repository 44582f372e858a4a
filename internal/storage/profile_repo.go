package storage

import (
	"context"
	"database/sql"
	"errors"
)

// ProfileKey is the versioned key for the singleton player record.
// Bumping the suffix abandons old records rather than migrating them.
const ProfileKey = "arcadia_profile_v1"

type ProfileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// Get returns the stored profile, or nil when none exists yet. A record
// that no longer decodes also reads as absent.
func (r *ProfileRepo) Get(ctx context.Context) (*Profile, error) {
	var p Profile
	ok, err := getRecord(ctx, r.db, ProfileKey, &p)
	if err != nil {
		if errors.Is(err, errMalformed) {
			return nil, nil
		}
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// Put replaces the entire stored record.
func (r *ProfileRepo) Put(ctx context.Context, p *Profile) error {
	return putRecord(ctx, r.db, ProfileKey, p)
}
