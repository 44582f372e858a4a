package engine

import (
	"context"
	"math/rand"
	"time"

	"arcadia/internal/storage"
)

// Segment is one slice of the Wheel of Fortune. Exactly one of Shards,
// ItemID, or Message is set; weights are relative, not percentages.
type Segment struct {
	ID      string
	Label   string
	Weight  int
	Shards  int
	ItemID  string
	Message string
}

var wheelSegments = []Segment{
	{ID: "ms_1500", Label: "+1500 MS", Weight: 5, Shards: 1500},
	{ID: "ms_500", Label: "+500 MS", Weight: 5, Shards: 500},
	{ID: "potion_heal", Label: "Potion of Healing", Weight: 5, ItemID: "itm_potion_heal"},
	{ID: "potion_weak", Label: "Potion of Weakness", Weight: 5, ItemID: "itm_potion_weak"},
	{ID: "ms_5000", Label: "+5000 MS", Weight: 3, Shards: 5000},
	{ID: "hellblade", Label: "Hellblade", Weight: 3, ItemID: "wp_hellblade"},
	{ID: "necklace", Label: "Necklace of Endurance", Weight: 3, ItemID: "itm_necklace_endurance"},
	{ID: "revive", Label: "Revive Stone", Weight: 3, ItemID: "itm_revive_stone"},
	{ID: "treat", Label: "A treat from me", Weight: 1, Message: "A treat from me: You are amazing! 💜"},
	{ID: "gift", Label: "A gift from me", Weight: 1, Message: "A gift from me: A big virtual hug! 🤗"},
}

// WheelSegments returns the wheel layout in draw order.
func WheelSegments() []Segment {
	out := make([]Segment, len(wheelSegments))
	copy(out, wheelSegments)
	return out
}

func wheelTotalWeight() int {
	total := 0
	for _, seg := range wheelSegments {
		total += seg.Weight
	}
	return total
}

// pickSegment draws an index proportional to segment weight.
func pickSegment(rng *rand.Rand) int {
	roll := rng.Intn(wheelTotalWeight())
	current := 0
	for i, seg := range wheelSegments {
		current += seg.Weight
		if roll < current {
			return i
		}
	}
	return len(wheelSegments) - 1
}

// SpinResult reports one resolved spin.
type SpinResult struct {
	Segment Segment
	Shards  int
	NextAt  time.Time
}

// Spin runs one draw: cooldown check, debit, weighted pick, reward,
// then re-arm the cooldown. The whole sequence holds the service lock,
// so a second caller cannot slip in between debit and re-arm.
func (s *Service) Spin(ctx context.Context) (*SpinResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if now.Before(p.Wheel.NextAt) {
		return nil, CooldownError{Remaining: p.Wheel.NextAt.Sub(now)}
	}
	if p.Shards < s.bal.WheelSpinCost {
		return nil, ErrInsufficientFunds
	}

	// Debit first; the draw never refunds.
	p.Shards -= s.bal.WheelSpinCost

	seg := wheelSegments[pickSegment(s.rng)]
	switch {
	case seg.Shards > 0:
		p.Shards += seg.Shards
	case seg.ItemID != "":
		p.Inventory[seg.ItemID]++
	}

	p.Wheel.NextAt = now.Add(s.bal.WheelCooldown())
	s.persist(ctx)
	return &SpinResult{Segment: seg, Shards: p.Shards, NextAt: p.Wheel.NextAt}, nil
}

// ResetWheel buys the cooldown away. Allowed at any time, even when the
// wheel is already spinnable.
func (s *Service) ResetWheel(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	if p.Shards < s.bal.WheelResetCost {
		return p.Shards, ErrInsufficientFunds
	}
	p.Shards -= s.bal.WheelResetCost
	p.Wheel.NextAt = time.Time{}
	s.persist(ctx)
	return p.Shards, nil
}

// WheelRemaining returns the time left on the cooldown, 0 when spinnable.
func (s *Service) WheelRemaining(p *storage.Profile) time.Duration {
	if rem := p.Wheel.NextAt.Sub(s.now()); rem > 0 {
		return rem
	}
	return 0
}
