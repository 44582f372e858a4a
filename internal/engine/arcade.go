package engine

import (
	"context"

	"arcadia/internal/storage"
)

// Game is one rung of the arcade ladder. RequiredKeys gates entry; keys
// are granted from outside (quests), never by the arcade itself.
type Game struct {
	ID           string
	Title        string
	Subtitle     string
	RequiredKeys int
}

var arcadeGames = []Game{
	{ID: "reaction", Title: "Reaction Time", Subtitle: "Click when it turns green", RequiredKeys: 0},
	{ID: "aim", Title: "Aim Trainer", Subtitle: "Click the moving target", RequiredKeys: 1},
	{ID: "memory", Title: "Memory Match", Subtitle: "Match all pairs", RequiredKeys: 2},
	{ID: "rocks", Title: "Falling Rocks", Subtitle: "Dodge the rockfall", RequiredKeys: 3},
	{ID: "flight", Title: "Night Flight", Subtitle: "Thread the gaps", RequiredKeys: 4},
	{ID: "rhythm", Title: "Rhythm Tap", Subtitle: "Hit the beat", RequiredKeys: 5},
}

// Games returns the ladder in unlock order.
func Games() []Game {
	out := make([]Game, len(arcadeGames))
	copy(out, arcadeGames)
	return out
}

func FindGame(id string) (Game, bool) {
	for _, g := range arcadeGames {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// Locked reports whether the game is still key-gated for the profile.
// Pure predicate; it never mutates.
func Locked(p *storage.Profile, g Game) bool {
	return p.ArcadeKeys < g.RequiredKeys
}

// ClearResult reports a recorded game completion and its payout.
type ClearResult struct {
	Game          Game
	FirstClear    bool
	ShardsAwarded int
	ExpAwarded    int
	Shards        int
	LevelAfter    int
	LevelUp       bool
}

// ClearGame records a completion. The first clear of each game pays the
// full reward; repeats pay the smaller one. Clears are never forgotten.
func (s *Service) ClearGame(ctx context.Context, gameID string) (*ClearResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	g, ok := FindGame(gameID)
	if !ok {
		return nil, ErrUnknownGame
	}
	if Locked(p, g) {
		return nil, ArcadeLockedError{GameID: g.ID, RequiredKeys: g.RequiredKeys, HeldKeys: p.ArcadeKeys}
	}

	first := !p.HasCleared(g.ID)
	shards, exp := s.bal.ArcadeRepeatShards, s.bal.ArcadeRepeatExp
	if first {
		shards, exp = s.bal.ArcadeFirstClearShards, s.bal.ArcadeFirstClearExp
	}

	levelBefore := p.Level
	p.Shards += shards
	ApplyExp(p, exp)
	p.MarkCleared(g.ID)
	s.persist(ctx)

	return &ClearResult{
		Game:          g,
		FirstClear:    first,
		ShardsAwarded: shards,
		ExpAwarded:    exp,
		Shards:        p.Shards,
		LevelAfter:    p.Level,
		LevelUp:       p.Level > levelBefore,
	}, nil
}

// GrantArcadeKeys credits unlock keys and returns the new count.
// Non-positive grants are a silent no-op.
func (s *Service) GrantArcadeKeys(ctx context.Context, n int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return p.ArcadeKeys, nil
	}
	p.ArcadeKeys += n
	s.persist(ctx)
	return p.ArcadeKeys, nil
}
