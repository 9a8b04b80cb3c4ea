package scoring

import (
	"fmt"
	"time"
)

// Outcome is how a run ended.
type Outcome string

const (
	OutcomeFell      Outcome = "fell"
	OutcomeOvershoot Outcome = "overshoot"
)

// Scoring keeps the run history for every road length and persists it
// through a ScoreStorage.
type Scoring struct {
	storage ScoreStorage
	entries []ScoreHistoryEntry
	now     func() time.Time
}

// InitScoring loads all recorded runs from storage.
func InitScoring(storage ScoreStorage) (*Scoring, error) {
	s := &Scoring{
		storage: storage,
		now:     time.Now,
	}

	allEntries, err := s.storage.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("could not load score history: %w", err)
	}
	s.entries = allEntries
	return s, nil
}

// Record appends a finished run and saves the full history.
func (s *Scoring) Record(length, steps int, outcome Outcome) error {
	if steps < 0 {
		steps = 0
	}
	s.entries = append(s.entries, ScoreHistoryEntry{
		Length:    length,
		Steps:     steps,
		Outcome:   outcome,
		Timestamp: s.now().Format(time.RFC3339),
	})
	if err := s.storage.SaveAll(s.entries); err != nil {
		return fmt.Errorf("could not save score history: %w", err)
	}
	return nil
}

// History returns the runs recorded for the given road length.
func (s *Scoring) History(length int) ScoreHistory {
	h := ScoreHistory{Length: length}
	for _, entry := range s.entries {
		if entry.Length == length {
			h.Entries = append(h.Entries, entry)
		}
	}
	h.Attempts = len(h.Entries)
	if len(h.Entries) > 0 {
		sorted := h.GetNScoreEntries(1)
		h.HighScoreEntry = &sorted[0]
	}
	return h
}

// Best returns the furthest run for the given length, or nil.
func (s *Scoring) Best(length int) *ScoreHistoryEntry {
	return s.History(length).GetHighScoreEntry()
}

// Lengths lists every road length with at least one run, in first-seen order.
func (s *Scoring) Lengths() []int {
	seen := map[int]bool{}
	var out []int
	for _, entry := range s.entries {
		if !seen[entry.Length] {
			seen[entry.Length] = true
			out = append(out, entry.Length)
		}
	}
	return out
}
