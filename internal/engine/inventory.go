package engine

import (
	"context"

	"arcadia/internal/catalog"
	"arcadia/internal/storage"
)

// PurchaseResult reports a successful shop transaction.
type PurchaseResult struct {
	Item   catalog.Item
	Shards int
	Qty    int
}

// AddItem credits qty of an item, creating the entry when absent.
// Items are additive only; there is no consumption path.
func (s *Service) AddItem(ctx context.Context, itemID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(ctx)
	if err != nil {
		return err
	}
	if qty <= 0 {
		return nil
	}
	p.Inventory[itemID] += qty
	s.persist(ctx)
	return nil
}

// Purchase debits the catalog price and credits one unit, atomically:
// either both happen or neither.
func (s *Service) Purchase(ctx context.Context, itemID string) (*PurchaseResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	item, ok := catalog.Lookup(itemID)
	if !ok {
		return nil, ErrUnknownItem
	}
	if p.Shards < item.Price {
		return nil, ErrInsufficientFunds
	}
	p.Shards -= item.Price
	p.Inventory[itemID]++
	s.persist(ctx)
	return &PurchaseResult{Item: item, Shards: p.Shards, Qty: p.Inventory[itemID]}, nil
}

// Equip places an owned item into a slot, replacing whatever was there.
// The item's own catalog slot is not checked; the equipment screen
// filters by slot before calling.
func (s *Service) Equip(ctx context.Context, slot catalog.Slot, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(ctx)
	if err != nil {
		return err
	}
	if !slot.IsValid() {
		return ErrUnknownSlot
	}
	if p.Qty(itemID) < 1 {
		return ErrNotOwned
	}
	p.Equipped[string(slot)] = itemID
	s.persist(ctx)
	return nil
}

// Unequip clears a slot. Clearing an empty slot is a no-op.
func (s *Service) Unequip(ctx context.Context, slot catalog.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(ctx)
	if err != nil {
		return err
	}
	if !slot.IsValid() {
		return ErrUnknownSlot
	}
	delete(p.Equipped, string(slot))
	s.persist(ctx)
	return nil
}

// EquippedItem returns the item currently in a slot, if any.
func EquippedItem(p *storage.Profile, slot catalog.Slot) (catalog.Item, bool) {
	id, ok := p.Equipped[string(slot)]
	if !ok || id == "" {
		return catalog.Item{}, false
	}
	it, known := catalog.Lookup(id)
	if !known {
		it = catalog.Item{ID: id, Name: id, Slot: slot}
	}
	return it, true
}
