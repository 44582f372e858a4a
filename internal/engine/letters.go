package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"arcadia/internal/storage"
)

// Letter is an "open when..." note with a few interchangeable variants.
// One variant is chosen per opening, avoiding an immediate repeat.
type Letter struct {
	ID       string
	Title    string
	Hint     string
	Variants []string
}

var letterList = []Letter{
	{
		ID:    "sad",
		Title: "Open when you're sad",
		Hint:  "A warm hug in words",
		Variants: []string{
			"Hey you,\n\nHeavy days happen. Breathe with me: in for four, hold for four, out for four. Do it a few times. This moment will pass, and you have made it through every one before it.",
			"Unclench your jaw and drop your shoulders. You do not have to carry all of it today. One small step is plenty.",
			"You are stronger than this hour. Put on something soft, drink some water, stretch. I'm with you.",
		},
	},
	{
		ID:    "miss",
		Title: "Open when you miss me",
		Hint:  "A little reminder of us",
		Variants: []string{
			"Together soon — promise.",
			"Close your eyes and count to five with me. I'm right there, hand in yours.",
			"Scroll to our favorite photo and look how far we've come.",
		},
	},
	{
		ID:    "happy",
		Title: "Open when you're happy",
		Hint:  "Celebrate this moment!",
		Variants: []string{
			"Yes! Tell me everything that made today great. I'm cheering with you! 🥳",
			"Bottle this feeling — future-you will want it later. Proud of you.",
			"Do a tiny dance. Right now. You deserve the joy.",
		},
	},
	{
		ID:    "rainy",
		Title: "Open on a rainy day",
		Hint:  "Cozy vibes only",
		Variants: []string{
			"Tea. Blanket. Playlist. Let the rain slow everything down. 🌧️",
			"Light a candle and read a few soft pages. I'm beside you.",
			"Watch the raindrops race down the window and make up their stories.",
		},
	},
}

// Letters returns all letters in display order.
func Letters() []Letter {
	out := make([]Letter, len(letterList))
	copy(out, letterList)
	return out
}

func FindLetter(id string) (Letter, bool) {
	for _, l := range letterList {
		if l.ID == id {
			return l, true
		}
	}
	return Letter{}, false
}

// OpenLetterResult is one opened letter.
type OpenLetterResult struct {
	Letter      Letter
	Variant     int
	Text        string
	LockedUntil time.Time
}

// LetterLockStatus returns the active lock, or nil when letters are open.
func (s *Service) LetterLockStatus(ctx context.Context) (*storage.LetterLock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLetterLock(ctx)
}

// activeLetterLock ignores expired locks. Callers must hold s.mu.
func (s *Service) activeLetterLock(ctx context.Context) (*storage.LetterLock, error) {
	l, err := s.letters.Lock(ctx)
	if err != nil {
		return nil, err
	}
	if l == nil || !s.now().Before(l.Until) {
		return nil, nil
	}
	return l, nil
}

// OpenLetter reveals one variant and re-arms the lock. The just-opened
// letter stays readable while the others rest; rereading it refreshes
// the lock window.
func (s *Service) OpenLetter(ctx context.Context, letterID string) (*OpenLetterResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	letter, ok := FindLetter(letterID)
	if !ok {
		return nil, ErrUnknownLetter
	}
	lock, err := s.activeLetterLock(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if lock != nil && lock.AllowedID != letterID {
		return nil, LetterLockedError{Remaining: lock.Until.Sub(now), AllowedID: lock.AllowedID}
	}

	idx := s.pickVariant(letter)
	s.lastVariant[letter.ID] = idx

	until := now.Add(s.bal.LetterLock())
	// Lock and journal writes are best-effort, like all persistence here.
	if err := s.letters.SetLock(ctx, storage.LetterLock{Until: until, AllowedID: letter.ID}); err != nil {
		s.log.Warn("letter lock write failed", zap.Error(err))
	}
	if err := s.letters.AppendOpened(ctx, storage.OpenedLetter{LetterID: letter.ID, Variant: idx, OpenedAt: now.UTC()}); err != nil {
		s.log.Warn("letter journal write failed", zap.Error(err))
	}

	return &OpenLetterResult{Letter: letter, Variant: idx, Text: letter.Variants[idx], LockedUntil: until}, nil
}

// pickVariant draws a random variant, stepping past the previous one so
// two consecutive openings never show the same text.
func (s *Service) pickVariant(l Letter) int {
	n := len(l.Variants)
	if n <= 1 {
		return 0
	}
	idx := s.rng.Intn(n)
	if last, seen := s.lastVariant[l.ID]; seen && idx == last {
		idx = (idx + 1) % n
	}
	return idx
}

// OpenedLetters returns the journal, oldest first.
func (s *Service) OpenedLetters(ctx context.Context) ([]storage.OpenedLetter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.letters.Opened(ctx)
}
