package session

import (
	"fmt"
	"unicode"
)

// Event codes accepted by Replay.
const (
	EventStarfruit = 'f'
	EventShield    = 't'
	EventJelly     = 'j'
)

// Replay feeds a recorded event string into the current run, one rune per
// event, then ends the run if the events ran out first. Whitespace is
// skipped and case is ignored. An unknown event rejects the whole string
// before anything is applied.
func (s *Session) Replay(events string) error {
	for i, ev := range events {
		if unicode.IsSpace(ev) {
			continue
		}
		switch unicode.ToLower(ev) {
		case EventStarfruit, EventShield, EventJelly:
		default:
			return fmt.Errorf("session: unknown event %q at offset %d", ev, i)
		}
	}

	for _, ev := range events {
		switch unicode.ToLower(ev) {
		case EventStarfruit:
			s.Collect()
		case EventShield:
			s.PickShield()
		case EventJelly:
			s.Sting()
		}
	}
	s.Quit()
	return nil
}
