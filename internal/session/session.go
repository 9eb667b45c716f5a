// Package session holds the host side of an Axolotl Dash run: lives, shield,
// score, and the one-shot hand-off of the final score to the leaderboard.
package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/axolotl-dash/internal/highscore"
)

// Run rules.
const (
	StartingLives      = 3
	PointsPerStarfruit = 1
)

// Saver persists a ranking. *highscore.Ledger satisfies it.
type Saver interface {
	Save(r highscore.Ranking) error
}

// Run is the per-game state. It is reset on restart.
type Run struct {
	Score     int
	Lives     int
	Shield    bool
	GameOver  bool
	Submitted bool // Score already handed to the ledger
	NewHigh   bool // Score made the board
	Rank      int  // Position on the board, 0 if it did not place
}

// Session owns the in-memory ranking for the process lifetime and the
// current run. It is not safe for concurrent use.
type Session struct {
	saver   Saver
	ranking highscore.Ranking
	run     Run
	logger  *log.Logger
}

// New starts a session with a ranking loaded at startup.
// A nil logger disables logging.
func New(saver Saver, ranking highscore.Ranking, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		saver:   saver,
		ranking: ranking.Clone(),
		run:     freshRun(),
		logger:  logger,
	}
}

func freshRun() Run {
	return Run{Lives: StartingLives}
}

// Run returns a snapshot of the current run.
func (s *Session) Run() Run {
	return s.run
}

// Ranking returns a copy of the session's leaderboard.
func (s *Session) Ranking() highscore.Ranking {
	return s.ranking.Clone()
}

// Collect scores a starfruit pickup.
func (s *Session) Collect() {
	if s.run.GameOver {
		return
	}
	s.run.Score += PointsPerStarfruit
}

// PickShield arms the turtle shield. Shields do not stack.
func (s *Session) PickShield() {
	if s.run.GameOver {
		return
	}
	s.run.Shield = true
}

// Sting applies a jellyfish hit. The shield absorbs one hit; otherwise a life
// is lost, and losing the last life ends the run.
func (s *Session) Sting() {
	if s.run.GameOver {
		return
	}
	if s.run.Shield {
		s.run.Shield = false
		return
	}
	s.run.Lives--
	if s.run.Lives <= 0 {
		s.end()
	}
}

// Quit ends the run early, still recording the score.
func (s *Session) Quit() {
	if s.run.GameOver {
		return
	}
	s.end()
}

// end marks the run over and records the score exactly once.
func (s *Session) end() {
	s.run.GameOver = true
	if s.run.Submitted {
		return
	}

	sub := highscore.Submit(s.ranking, s.run.Score)
	s.ranking = sub.Ranking
	s.run.Submitted = true
	s.run.NewHigh = sub.Qualifies
	s.run.Rank = sub.Rank

	if err := s.saver.Save(s.ranking); err != nil {
		s.logger.Warn("could not save high scores", "error", err)
	}
	s.logger.Debug("run recorded", "score", s.run.Score, "rank", s.run.Rank)
}

// Restart begins a new run after game over. The ranking carries over.
func (s *Session) Restart() error {
	if !s.run.GameOver {
		return fmt.Errorf("session: run still in progress")
	}
	s.run = freshRun()
	return nil
}

// Highlight reports whether the board row at position (1-based) holding
// score is this run's entry.
func (s *Session) Highlight(position, score int) bool {
	return s.run.Submitted && score == s.run.Score && position == s.run.Rank
}
