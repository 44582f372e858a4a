package engine

import "arcadia/internal/storage"

const (
	// LevelCap is the maximum player level. At the cap the EXP bar is
	// pinned at 0/0 and further experience is discarded.
	LevelCap = 10

	// The per-level requirement is ExpBase + ExpStep*(level-1).
	ExpBase = 100
	ExpStep = 50
)

// ExpToNext returns the experience required to advance from the given
// level. Levels at or above the cap return 0.
func ExpToNext(level int) int {
	if level >= LevelCap {
		return 0
	}
	if level < 1 {
		level = 1
	}
	return ExpBase + ExpStep*(level-1)
}

// ApplyExp adds experience and resolves level-ups in place, returning the
// number of levels gained. Exactly filling the bar levels up; a single
// grant can cross several levels; overflow past the cap is discarded.
func ApplyExp(p *storage.Profile, amount int) int {
	if amount <= 0 || p.Level >= LevelCap {
		return 0
	}
	gained := 0
	p.Exp += amount
	for p.Level < LevelCap && p.Exp >= p.ExpToNext {
		p.Exp -= p.ExpToNext
		p.Level++
		p.ExpToNext = ExpToNext(p.Level)
		gained++
	}
	if p.Level >= LevelCap {
		p.Exp = 0
		p.ExpToNext = 0
	}
	return gained
}
