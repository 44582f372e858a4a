package engine

import (
	"errors"
	"fmt"
	"time"
)

// Failure results, not exceptions: every mutation returns one of these
// and leaves the profile untouched.
var (
	ErrNoProfile         = errors.New("no profile yet; run 'arc init' first")
	ErrProfileExists     = errors.New("a profile already exists")
	ErrInsufficientFunds = errors.New("not enough Memory Shards")
	ErrNotOwned          = errors.New("item not owned")
	ErrUnknownItem       = errors.New("unknown item")
	ErrUnknownSlot       = errors.New("unknown equipment slot")
	ErrUnknownGame       = errors.New("unknown game")
	ErrUnknownLetter     = errors.New("unknown letter")
)

// CooldownError indicates the wheel cannot spin yet.
type CooldownError struct {
	Remaining time.Duration
}

func (e CooldownError) Error() string {
	return fmt.Sprintf("wheel on cooldown: %s left", e.Remaining.Round(time.Second))
}

// ArcadeLockedError indicates a game is still key-gated.
type ArcadeLockedError struct {
	GameID       string
	RequiredKeys int
	HeldKeys     int
}

func (e ArcadeLockedError) Error() string {
	return fmt.Sprintf("game '%s' needs %d arcade keys (you have %d)", e.GameID, e.RequiredKeys, e.HeldKeys)
}

// LetterLockedError indicates the letters are resting after one was opened.
type LetterLockedError struct {
	Remaining time.Duration
	AllowedID string
}

func (e LetterLockedError) Error() string {
	return fmt.Sprintf("letters are locked for %s", e.Remaining.Round(time.Second))
}
