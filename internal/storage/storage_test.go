package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestProfileRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	repo := NewProfileRepo(db)

	// Absent until written.
	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	want := &Profile{
		ID:           "p-1",
		Name:         "Hero",
		Avatar:       "🐮",
		Level:        3,
		Exp:          40,
		ExpToNext:    200,
		Shards:       1200,
		Inventory:    map[string]int{"itm_potion_heal": 2, "wp_sar21": 1},
		Equipped:     map[string]string{"weapon": "wp_sar21"},
		ArcadeKeys:   2,
		ArcadeClears: []string{"reaction", "aim"},
		Wheel:        WheelState{NextAt: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)},
		CreatedAt:    time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Put(ctx, want))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("profile round trip mismatch (-want +got):\n%s", diff)
	}

	// Put replaces the whole record.
	want.Shards = 0
	want.Inventory = map[string]int{}
	require.NoError(t, repo.Put(ctx, want))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, got.Shards)
	require.Empty(t, got.Inventory)
}

func TestProfileMalformedRecordReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.ExecContext(ctx,
		`INSERT INTO records (key, value) VALUES (?, ?)`, ProfileKey, `{not json`)
	require.NoError(t, err)

	got, err := NewProfileRepo(db).Get(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestLetterLockRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	repo := NewLetterRepo(db)

	lock, err := repo.Lock(ctx)
	require.NoError(t, err)
	require.Nil(t, lock)

	want := LetterLock{
		Until:     time.Date(2025, 6, 1, 12, 5, 0, 0, time.UTC),
		AllowedID: "sad",
	}
	require.NoError(t, repo.SetLock(ctx, want))

	lock, err = repo.Lock(ctx)
	require.NoError(t, err)
	require.NotNil(t, lock)
	require.Equal(t, want, *lock)
}

func TestOpenedLettersJournalAppends(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	require.NoError(t, err)
	defer db.Close()

	repo := NewLetterRepo(db)

	list, err := repo.Opened(ctx)
	require.NoError(t, err)
	require.Empty(t, list)

	first := OpenedLetter{LetterID: "sad", Variant: 1, OpenedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	second := OpenedLetter{LetterID: "happy", Variant: 0, OpenedAt: time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)}
	require.NoError(t, repo.AppendOpened(ctx, first))
	require.NoError(t, repo.AppendOpened(ctx, second))

	list, err = repo.Opened(ctx)
	require.NoError(t, err)
	require.Equal(t, []OpenedLetter{first, second}, list)
}

func TestProfileCloneIsDeep(t *testing.T) {
	p := &Profile{
		Inventory:    map[string]int{"wp_sar21": 1},
		Equipped:     map[string]string{"weapon": "wp_sar21"},
		ArcadeClears: []string{"reaction"},
	}
	cp := p.Clone()
	cp.Inventory["wp_sar21"] = 99
	cp.Equipped["weapon"] = "wp_hellblade"
	cp.ArcadeClears[0] = "aim"

	require.Equal(t, 1, p.Inventory["wp_sar21"])
	require.Equal(t, "wp_sar21", p.Equipped["weapon"])
	require.Equal(t, "reaction", p.ArcadeClears[0])
}
