package engine

import "context"

// ExpResult reports the outcome of an experience grant.
type ExpResult struct {
	Granted     int
	LevelBefore int
	LevelAfter  int
	Exp         int
	ExpToNext   int
	LevelUp     bool
}

// AddShards credits Memory Shards and returns the new balance.
// Non-positive amounts are a silent no-op.
func (s *Service) AddShards(ctx context.Context, amount int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	if amount <= 0 {
		return p.Shards, nil
	}
	p.Shards += amount
	s.persist(ctx)
	return p.Shards, nil
}

// SpendShards debits the balance, or fails with ErrInsufficientFunds
// leaving it untouched. Balances are rejected into the red, never clamped.
func (s *Service) SpendShards(ctx context.Context, cost int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	if cost <= 0 {
		return p.Shards, nil
	}
	if p.Shards < cost {
		return p.Shards, ErrInsufficientFunds
	}
	p.Shards -= cost
	s.persist(ctx)
	return p.Shards, nil
}

// AddExp grants experience, resolving any level-ups. At the level cap
// this is a no-op.
func (s *Service) AddExp(ctx context.Context, amount int) (*ExpResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	before := p.Level
	ApplyExp(p, amount)
	if p.Level != before || amount > 0 {
		s.persist(ctx)
	}
	return &ExpResult{
		Granted:     amount,
		LevelBefore: before,
		LevelAfter:  p.Level,
		Exp:         p.Exp,
		ExpToNext:   p.ExpToNext,
		LevelUp:     p.Level > before,
	}, nil
}
