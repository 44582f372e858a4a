package engine

import "arcadia/internal/storage"

// DefaultAvatar is used when a stored record carries none.
const DefaultAvatar = "🙂"

// Normalize repairs a freshly decoded record in place. Hand-edited or
// corrupted values are clamped or defaulted, never rejected: a profile
// that decodes at all stays usable.
func Normalize(p *storage.Profile) *storage.Profile {
	if p.Avatar == "" {
		p.Avatar = DefaultAvatar
	}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.Level > LevelCap {
		p.Level = LevelCap
	}
	p.ExpToNext = ExpToNext(p.Level)
	if p.Exp < 0 {
		p.Exp = 0
	}
	if p.Level >= LevelCap {
		p.Exp = 0
	} else if p.Exp >= p.ExpToNext {
		// Keep the invariant exp < expToNext; a clamped bar never
		// levels up on its own.
		p.Exp = p.ExpToNext - 1
	}
	if p.Shards < 0 {
		p.Shards = 0
	}
	if p.ArcadeKeys < 0 {
		p.ArcadeKeys = 0
	}
	if p.Inventory == nil {
		p.Inventory = map[string]int{}
	} else {
		for id, qty := range p.Inventory {
			if qty <= 0 {
				delete(p.Inventory, id)
			}
		}
	}
	if p.Equipped == nil {
		p.Equipped = map[string]string{}
	} else {
		for slot, id := range p.Equipped {
			if id == "" {
				delete(p.Equipped, slot)
			}
		}
	}
	return p
}
