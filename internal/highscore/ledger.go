package highscore

import (
	"errors"
	"fmt"
	"io/fs"
)

// Store is the durable resource that holds one serialized ranking.
// Read reports a missing ranking with an error wrapping fs.ErrNotExist.
type Store interface {
	Read() ([]byte, error)
	Write(data []byte) error
}

// Ledger loads and saves rankings through a Store.
// A Ledger is meant to be used from a single goroutine.
type Ledger struct {
	store Store
}

// NewLedger creates a ledger backed by store.
func NewLedger(store Store) *Ledger {
	return &Ledger{store: store}
}

// Load reads the stored ranking.
//
// The returned Ranking is always usable: any failure yields an empty ranking
// so a lost or corrupted board never blocks a game from starting. The error
// only explains why stored history was discarded and is nil when the store
// simply has nothing yet.
func (l *Ledger) Load() (Ranking, error) {
	data, err := l.store.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Ranking{}, nil
		}
		return Ranking{}, fmt.Errorf("highscore: cannot read ranking: %w", err)
	}

	r, err := Decode(data)
	if err != nil {
		return Ranking{}, err
	}
	return r, nil
}

// Save overwrites the stored ranking with r.
//
// Save is best-effort: the returned error is for logging only and the
// caller's ranking stays valid either way. The ranking is written as given,
// without validation.
func (l *Ledger) Save(r Ranking) error {
	data, err := Encode(r)
	if err != nil {
		return err
	}
	if err := l.store.Write(data); err != nil {
		return fmt.Errorf("highscore: cannot write ranking: %w", err)
	}
	return nil
}

// Record submits score against r and saves the updated board.
// The Submission is returned even when saving fails.
func (l *Ledger) Record(r Ranking, score int) (Submission, error) {
	sub := Submit(r, score)
	return sub, l.Save(sub.Ranking)
}
