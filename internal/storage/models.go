package storage

import "time"

// Profile is the persisted player record: one JSON document under a
// versioned key. Maps may be nil on a freshly decoded record; the engine
// normalizes before use.
type Profile struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Avatar       string            `json:"avatar"`
	Level        int               `json:"level"`
	Exp          int               `json:"exp"`
	ExpToNext    int               `json:"exp_to_next"`
	Shards       int               `json:"shards"`
	Inventory    map[string]int    `json:"inventory,omitempty"`
	Equipped     map[string]string `json:"equipped,omitempty"`
	ArcadeKeys   int               `json:"arcade_keys"`
	ArcadeClears []string          `json:"arcade_clears,omitempty"`
	Wheel        WheelState        `json:"wheel"`
	CreatedAt    time.Time         `json:"created_at"`
}

// WheelState gates the prize wheel. A zero NextAt means spinnable now.
type WheelState struct {
	NextAt time.Time `json:"next_at"`
}

// Qty returns the owned quantity for an item id (0 when absent).
func (p *Profile) Qty(itemID string) int {
	return p.Inventory[itemID]
}

// HasCleared reports whether the game has been completed at least once.
func (p *Profile) HasCleared(gameID string) bool {
	for _, id := range p.ArcadeClears {
		if id == gameID {
			return true
		}
	}
	return false
}

// MarkCleared records a first completion. The clears list only grows.
func (p *Profile) MarkCleared(gameID string) {
	if !p.HasCleared(gameID) {
		p.ArcadeClears = append(p.ArcadeClears, gameID)
	}
}

// Clone returns a deep copy so callers cannot mutate the live record.
func (p *Profile) Clone() *Profile {
	cp := *p
	if p.Inventory != nil {
		cp.Inventory = make(map[string]int, len(p.Inventory))
		for k, v := range p.Inventory {
			cp.Inventory[k] = v
		}
	}
	if p.Equipped != nil {
		cp.Equipped = make(map[string]string, len(p.Equipped))
		for k, v := range p.Equipped {
			cp.Equipped[k] = v
		}
	}
	if p.ArcadeClears != nil {
		cp.ArcadeClears = append([]string(nil), p.ArcadeClears...)
	}
	return &cp
}

// LetterLock blocks the other letters for a short window after one is
// opened. AllowedID keeps the just-opened letter readable.
type LetterLock struct {
	Until     time.Time `json:"until"`
	AllowedID string    `json:"allowed_id,omitempty"`
}

// OpenedLetter is one entry in the opened-letters journal.
type OpenedLetter struct {
	LetterID string    `json:"letter_id"`
	Variant  int       `json:"variant"`
	OpenedAt time.Time `json:"opened_at"`
}
