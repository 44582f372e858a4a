package engine

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"arcadia/internal/config"
	"arcadia/internal/storage"
)

// ProfileStore is the persistence boundary for the player record.
// Get returns nil when no profile exists yet.
type ProfileStore interface {
	Get(ctx context.Context) (*storage.Profile, error)
	Put(ctx context.Context, p *storage.Profile) error
}

// LetterStore persists the letters lock and the opened-letters journal.
type LetterStore interface {
	Lock(ctx context.Context) (*storage.LetterLock, error)
	SetLock(ctx context.Context, l storage.LetterLock) error
	Opened(ctx context.Context) ([]storage.OpenedLetter, error)
	AppendOpened(ctx context.Context, entry storage.OpenedLetter) error
}

// Service owns the live player record. Every mutation runs as a single
// read-modify-write under one mutex, so debit/draw/cooldown sequences
// cannot interleave. Store writes are best-effort: a failed write keeps
// the session state and logs a warning.
type Service struct {
	mu       sync.Mutex
	profiles ProfileStore
	letters  LetterStore
	bal      config.Balance
	log      *zap.Logger

	now func() time.Time
	rng *rand.Rand

	cur         *storage.Profile
	lastVariant map[string]int
}

func NewService(db *sql.DB, bal config.Balance, log *zap.Logger) *Service {
	return NewServiceWith(storage.NewProfileRepo(db), storage.NewLetterRepo(db), bal, log)
}

// NewServiceWith wires explicit stores; tests substitute in-memory ones.
func NewServiceWith(profiles ProfileStore, letters LetterStore, bal config.Balance, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		profiles:    profiles,
		letters:     letters,
		bal:         bal,
		log:         log,
		now:         time.Now,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
		lastVariant: map[string]int{},
	}
}

func (s *Service) Balance() config.Balance { return s.bal }

// load returns the live record, reading and normalizing it on first use.
// Callers must hold s.mu.
func (s *Service) load(ctx context.Context) (*storage.Profile, error) {
	if s.cur != nil {
		return s.cur, nil
	}
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoProfile
	}
	s.cur = Normalize(p)
	return s.cur, nil
}

// persist writes the live record back, swallowing failures. The session
// keeps the in-memory state either way; it just may not survive a restart.
func (s *Service) persist(ctx context.Context) {
	if err := s.profiles.Put(ctx, s.cur); err != nil {
		s.log.Warn("profile write failed", zap.Error(err))
	}
}

// Profile returns a copy of the current (normalized) player record.
func (s *Service) Profile(ctx context.Context) (*storage.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return p.Clone(), nil
}

// Create runs onboarding: it builds the singleton profile. Identity is
// immutable afterwards.
func (s *Service) Create(ctx context.Context, name, avatar string) (*storage.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	existing, err := s.profiles.Get(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProfileExists
	}
	if avatar == "" {
		avatar = DefaultAvatar
	}

	s.cur = &storage.Profile{
		ID:        uuid.NewString(),
		Name:      name,
		Avatar:    avatar,
		Level:     1,
		Exp:       0,
		ExpToNext: ExpToNext(1),
		Inventory: map[string]int{},
		Equipped:  map[string]string{},
		CreatedAt: s.now().UTC(),
	}
	s.persist(ctx)
	s.log.Info("profile created", zap.String("name", name))
	return s.cur.Clone(), nil
}
