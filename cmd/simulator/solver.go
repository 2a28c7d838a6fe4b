package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/dom/prodle/internal/domain"
	"github.com/dom/prodle/internal/repository/memory"
	"github.com/dom/prodle/internal/service"
)

var errNoCandidates = errors.New("no candidate matches every answer so far")

// Guesser is the part of the API the solver needs
type Guesser interface {
	Guess(ctx context.Context, username string) (*domain.GuessResult, error)
}

// Solver narrows a local copy of the roster using the server's verdicts.
// After every guess only players that would have produced exactly the same
// verdicts and hints stay in the pool.
type Solver struct {
	game       *service.GameService
	candidates []*domain.Player
	maxGuesses int
}

// Step records one guess of a run
type Step struct {
	Username  string
	Remaining int
	Correct   bool
}

func NewSolver(players []*domain.Player, ratioTolerance float64, maxGuesses int) (*Solver, error) {
	repos, err := memory.NewRepositories(players, nil)
	if err != nil {
		return nil, err
	}

	return &Solver{
		game:       service.NewGameService(repos.Player, repos.TeamImage, nil, ratioTolerance),
		candidates: append([]*domain.Player(nil), players...),
		maxGuesses: maxGuesses,
	}, nil
}

// Remaining is the current candidate count
func (s *Solver) Remaining() int {
	return len(s.candidates)
}

// Solve keeps guessing until the server reports a correct answer
func (s *Solver) Solve(ctx context.Context, api Guesser, onStep func(Step)) ([]Step, error) {
	var steps []Step

	for len(steps) < s.maxGuesses {
		if len(s.candidates) == 0 {
			return steps, errNoCandidates
		}

		pick := s.candidates[0]
		result, err := api.Guess(ctx, pick.Username)
		if err != nil {
			return steps, fmt.Errorf("guess %q: %w", pick.Username, err)
		}

		if !result.IsCorrect {
			s.Filter(ctx, pick, result)
		}

		step := Step{Username: pick.Username, Remaining: len(s.candidates), Correct: result.IsCorrect}
		steps = append(steps, step)
		if onStep != nil {
			onStep(step)
		}

		if result.IsCorrect {
			return steps, nil
		}
	}

	return steps, fmt.Errorf("gave up after %d guesses", s.maxGuesses)
}

// Filter drops every candidate inconsistent with result, including the
// guessed player itself.
func (s *Solver) Filter(ctx context.Context, guess *domain.Player, result *domain.GuessResult) {
	want := signature(result)

	kept := s.candidates[:0]
	for _, c := range s.candidates {
		if c.Username == guess.Username {
			continue
		}
		if signature(s.game.Compare(ctx, guess, c)) == want {
			kept = append(kept, c)
		}
	}
	s.candidates = kept
}

type verdictSignature struct {
	team, league, age, role, country, kda, champion, clubs domain.Verdict
	ageDir, kdaDir, clubsDir                               domain.Direction
}

func signature(r *domain.GuessResult) verdictSignature {
	return verdictSignature{
		team:     r.Team.Status,
		league:   r.League.Status,
		age:      r.Age.Status,
		role:     r.Role.Status,
		country:  r.Country.Status,
		kda:      r.KDA.Status,
		champion: r.Champion.Status,
		clubs:    r.Clubs.Status,
		ageDir:   r.Age.Direction,
		kdaDir:   r.KDA.Direction,
		clubsDir: r.Clubs.Direction,
	}
}
