package service

import (
	"context"
	"crypto/md5"
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/dom/prodle/internal/domain"
	"github.com/dom/prodle/internal/repository"
	"github.com/rs/zerolog"
)

// DateLayout is the calendar date format fed into the daily seed
const DateLayout = "2006-01-02"

// DailyService decides which player is today's answer. The pick is a pure
// function of the local date until someone rerolls, after which the override
// holds until the next reroll or a restart.
type DailyService struct {
	playerRepo repository.PlayerRepository
	logger     zerolog.Logger
	location   *time.Location
	now        func() time.Time
	intN       func(n int) int

	mu       sync.RWMutex
	override *domain.Player
}

type DailyOption func(*DailyService)

// WithClock replaces time.Now, mostly for tests
func WithClock(now func() time.Time) DailyOption {
	return func(s *DailyService) { s.now = now }
}

// WithRandom replaces the source used by Reroll
func WithRandom(intN func(n int) int) DailyOption {
	return func(s *DailyService) { s.intN = intN }
}

func NewDailyService(playerRepo repository.PlayerRepository, location *time.Location, logger zerolog.Logger, opts ...DailyOption) *DailyService {
	if location == nil {
		location = time.Local
	}

	s := &DailyService{
		playerRepo: playerRepo,
		logger:     logger,
		location:   location,
		now:        time.Now,
		intN:       rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today returns the override if one is set, otherwise the date-seeded pick
func (s *DailyService) Today(ctx context.Context) (*domain.Player, error) {
	s.mu.RLock()
	override := s.override
	s.mu.RUnlock()

	if override != nil {
		return override, nil
	}

	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, domain.ErrEmptyRoster
	}

	return players[DailyIndex(s.Date(), len(players))], nil
}

// Reroll picks a uniformly random player and makes it the answer until the
// next reroll.
func (s *DailyService) Reroll(ctx context.Context) (*domain.Player, error) {
	players, err := s.playerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(players) == 0 {
		return nil, domain.ErrEmptyRoster
	}

	picked := players[s.intN(len(players))]

	s.mu.Lock()
	s.override = picked
	s.mu.Unlock()

	zerolog.Ctx(ctx).Info().Str("player", picked.Username).Msg("daily player rerolled")
	s.logger.Debug().Str("player", picked.Username).Str("date", s.Date()).Msg("override set")

	return picked, nil
}

// Overridden reports whether a reroll replaced the date-seeded pick
func (s *DailyService) Overridden() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.override != nil
}

func (s *DailyService) RosterSize() int {
	return s.playerRepo.Count()
}

// Date is today's puzzle date in the configured location
func (s *DailyService) Date() string {
	return s.now().In(s.location).Format(DateLayout)
}

// NextReset is the next local midnight
func (s *DailyService) NextReset() time.Time {
	now := s.now().In(s.location)
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, s.location)
}

// UntilReset is the time left before the date-seeded pick changes
func (s *DailyService) UntilReset() time.Duration {
	return s.NextReset().Sub(s.now())
}

// DailyIndex maps a date string onto [0, n). The MD5 digest of the date
// seeds a PCG generator and a single draw is taken, so every process
// agrees on the same index for the same date and roster size.
func DailyIndex(date string, n int) int {
	sum := md5.Sum([]byte(date))
	seed1 := binary.BigEndian.Uint64(sum[:8])
	seed2 := binary.BigEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(seed1, seed2)).IntN(n)
}
