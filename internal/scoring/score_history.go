package scoring

import (
	"sort"
)

// ScoreHistory holds the finished runs recorded for one road length.
type ScoreHistory struct {
	Length         int
	Entries        []ScoreHistoryEntry
	HighScoreEntry *ScoreHistoryEntry
	Attempts       int
}

// ScoreHistoryEntry is one finished run.
type ScoreHistoryEntry struct {
	Length    int     `json:"length"`
	Steps     int     `json:"steps"`
	Outcome   Outcome `json:"outcome"`
	Timestamp string  `json:"timestamp"`
}

// GetHighScoreEntry returns the run that got furthest, or nil when there are no runs.
func (sh ScoreHistory) GetHighScoreEntry() *ScoreHistoryEntry {
	return sh.HighScoreEntry
}

// GetNScoreEntries returns the top N runs by steps. A negative n yields none.
func (sh ScoreHistory) GetNScoreEntries(n int) []ScoreHistoryEntry {
	if n < 0 {
		n = 0
	}
	entriesCopy := make([]ScoreHistoryEntry, len(sh.Entries))
	copy(entriesCopy, sh.Entries)

	sortBySteps(entriesCopy)

	if len(entriesCopy) < n {
		return entriesCopy
	}
	return entriesCopy[:n]
}

// sortBySteps orders runs by steps, newest first on ties.
func sortBySteps(entries []ScoreHistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Steps != entries[j].Steps {
			return entries[i].Steps > entries[j].Steps
		}
		return entries[i].Timestamp > entries[j].Timestamp
	})
}
