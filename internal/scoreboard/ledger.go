package scoreboard

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/scoremate/scoremate/internal/gameconfig"
)

// Ledger tracks one game: the active configuration, the current team list,
// the append-only round history, and the derived game-over alert.
//
// The history is the source of truth. Every mutating operation appends (or,
// for the retroactive edit, truncates and replays) full snapshots; the live
// team list always equals the last entry's snapshot, or is empty when the
// history is empty.
//
// A Ledger has exactly one logical writer at a time. Callers that share one
// across goroutines must serialize access themselves.
type Ledger struct {
	config  gameconfig.GameConfig
	teams   []Team
	history []HistoryEntry
	alert   *GameAlert
}

// New creates a Ledger for the given configuration with no teams or history.
func New(cfg gameconfig.GameConfig) *Ledger {
	return &Ledger{config: cfg}
}

// Config returns the active game configuration.
func (l *Ledger) Config() gameconfig.GameConfig {
	return l.config
}

// Teams returns a copy of the current team list.
func (l *Ledger) Teams() []Team {
	return copyTeams(l.teams)
}

// History returns a deep copy of the round history.
func (l *Ledger) History() []HistoryEntry {
	out := make([]HistoryEntry, len(l.history))
	for i, entry := range l.history {
		out[i] = entry.clone()
	}
	return out
}

// Alert returns the current game-over alert, or nil when no team has
// reached the maximum score.
func (l *Ledger) Alert() *GameAlert {
	if l.alert == nil {
		return nil
	}
	a := *l.alert
	return &a
}

// SelectConfig switches the ledger to a different game configuration.
// All progress is discarded: team limits and the winning score are
// configuration-specific, so history recorded under another configuration
// has no meaning here.
func (l *Ledger) SelectConfig(cfg gameconfig.GameConfig) {
	l.config = cfg
	l.teams = nil
	l.history = nil
	l.alert = nil
}

// AddTeam registers a new team with a zero score and records the expanded
// team list as a structural history entry.
func (l *Ledger) AddTeam(name string) (Team, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Team{}, ErrEmptyTeamName
	}
	if len(l.teams) >= l.config.MaxTeams {
		return Team{}, ErrCapacityExceeded
	}

	team := Team{ID: uuid.New(), Name: trimmed}
	l.teams = append(copyTeams(l.teams), team)
	l.history = append(l.history, HistoryEntry{Snapshot: copyTeams(l.teams)})
	return team, nil
}

// AddScore applies a signed point delta to the team at teamIndex, clamps
// the result to [0, MaxScore], and records the new snapshot.
//
// An index that does not resolve to a team is a silent no-op, not an error:
// the caller may hold a stale reference to a team that was just removed,
// and the ledger tolerates that without recording anything.
func (l *Ledger) AddScore(teamIndex, points int) {
	if teamIndex < 0 || teamIndex >= len(l.teams) {
		return
	}

	updated := copyTeams(l.teams)
	updated[teamIndex].Score = clampScore(updated[teamIndex].Score+points, l.config.MaxScore)

	l.teams = updated
	l.history = append(l.history, HistoryEntry{
		Snapshot:         copyTeams(updated),
		ChangedTeamIndex: intPtr(teamIndex),
	})
	l.refreshAlert(intPtr(teamIndex))
}

// EditScoreInHistory rewrites the score of one team in one past round and
// replays every later round on top of the edited baseline.
//
// Replay reapplies each later round's original delta, not its original
// absolute score: an edit shifts the trajectory forward while every
// subsequent round still contributes the points it originally represented.
// Structural entries are carried forward with their phase identifiers
// intact. Replayed scores are clamped to [0, MaxScore].
//
// The new history is computed aside and swapped in only on success; invalid
// indices return ErrInvalidReference with the ledger untouched.
func (l *Ledger) EditScoreInHistory(historyIndex, teamIndex, newScore int) error {
	if historyIndex < 0 || historyIndex >= len(l.history) {
		return ErrInvalidReference
	}
	if teamIndex < 0 || teamIndex >= len(l.history[historyIndex].Snapshot) {
		return ErrInvalidReference
	}

	clamped := clampScore(newScore, l.config.MaxScore)

	newHistory := make([]HistoryEntry, 0, len(l.history))
	for _, entry := range l.history[:historyIndex+1] {
		newHistory = append(newHistory, entry.clone())
	}

	edited := &newHistory[historyIndex]
	edited.Snapshot[teamIndex].Score = clamped
	edited.ChangedTeamIndex = intPtr(teamIndex)

	current := copyTeams(edited.Snapshot)
	for i := historyIndex + 1; i < len(l.history); i++ {
		original := l.history[i]
		next := copyTeams(current)

		if original.ChangedTeamIndex != nil {
			t := *original.ChangedTeamIndex
			delta := scoreAt(original.Snapshot, t) - scoreAt(l.history[i-1].Snapshot, t)
			if t < len(next) {
				next[t].Score = clampScore(scoreAt(newHistory[i-1].Snapshot, t)+delta, l.config.MaxScore)
			}
		} else if len(original.Snapshot) > len(next) {
			// Team-add marker: keep the teams the round introduced so the
			// snapshot length still matches the timeline's team count.
			for _, extra := range original.Snapshot[len(next):] {
				extra.Score = clampScore(extra.Score, l.config.MaxScore)
				next = append(next, extra)
			}
		}

		newHistory = append(newHistory, HistoryEntry{
			Snapshot:         next,
			ChangedTeamIndex: copyIndex(original.ChangedTeamIndex),
			PhaseIdentifier:  original.PhaseIdentifier,
		})
		current = copyTeams(next)
	}

	l.history = newHistory
	l.teams = current
	l.refreshAlert(nil)
	return nil
}

// RemoveTeam drops the team at teamIndex from the live list and from every
// historical snapshot. ChangedTeamIndex values above the removed index
// shift down by one; entries that recorded a change for the removed team
// become structural. Entries left with no teams are dropped unless they
// carry a phase identifier. Re-indexing any pending per-team input the
// caller holds is the caller's responsibility.
func (l *Ledger) RemoveTeam(teamIndex int) error {
	if teamIndex < 0 || teamIndex >= len(l.teams) {
		return ErrInvalidReference
	}

	updated := make([]Team, 0, len(l.teams)-1)
	for i, t := range l.teams {
		if i != teamIndex {
			updated = append(updated, t)
		}
	}

	newHistory := make([]HistoryEntry, 0, len(l.history))
	for _, entry := range l.history {
		snapshot := make([]Team, 0, len(entry.Snapshot))
		for i, t := range entry.Snapshot {
			if i != teamIndex {
				snapshot = append(snapshot, t)
			}
		}

		idx := copyIndex(entry.ChangedTeamIndex)
		if idx != nil {
			switch {
			case *idx == teamIndex:
				idx = nil
			case *idx > teamIndex:
				idx = intPtr(*idx - 1)
			}
		}

		if len(snapshot) == 0 && entry.PhaseIdentifier == "" {
			continue
		}
		newHistory = append(newHistory, HistoryEntry{
			Snapshot:         snapshot,
			ChangedTeamIndex: idx,
			PhaseIdentifier:  entry.PhaseIdentifier,
		})
	}

	l.teams = updated
	l.history = newHistory
	l.refreshAlert(nil)
	return nil
}

// RestartGame zeroes every team's score while keeping names and IDs. The
// reset is recorded as a structural history entry, so the audit trail of
// earlier rounds survives the restart.
func (l *Ledger) RestartGame() {
	updated := copyTeams(l.teams)
	for i := range updated {
		updated[i].Score = 0
	}
	l.teams = updated
	l.alert = nil
	if len(updated) > 0 {
		l.history = append(l.history, HistoryEntry{Snapshot: copyTeams(updated)})
	}
}

// NewGame clears teams, history, and alert. The configuration is retained.
func (l *Ledger) NewGame() {
	l.teams = nil
	l.history = nil
	l.alert = nil
}

// SetPhaseIdentifier labels one history entry with a phase name. A blank
// name clears the label.
func (l *Ledger) SetPhaseIdentifier(historyIndex int, name string) error {
	if historyIndex < 0 || historyIndex >= len(l.history) {
		return ErrInvalidReference
	}
	l.history[historyIndex].PhaseIdentifier = strings.TrimSpace(name)
	return nil
}

// refreshAlert scans every team for a score at or above MaxScore and sets
// or clears the game-over alert. When preferred is non-nil and that team
// qualifies, it wins; otherwise the first qualifying team in list order
// does.
func (l *Ledger) refreshAlert(preferred *int) {
	var winner *Team
	if preferred != nil && *preferred < len(l.teams) && l.teams[*preferred].Score >= l.config.MaxScore {
		winner = &l.teams[*preferred]
	} else {
		for i := range l.teams {
			if l.teams[i].Score >= l.config.MaxScore {
				winner = &l.teams[i]
				break
			}
		}
	}

	if winner == nil {
		l.alert = nil
		return
	}
	l.alert = &GameAlert{
		Title:           "GAME OVER!",
		Description:     fmt.Sprintf("%s has reached the maximum score of %d.", winner.Name, l.config.MaxScore),
		Variant:         "destructive",
		WinningTeamName: winner.Name,
	}
}

// scoreAt reads a team score from a snapshot, treating a team that did not
// exist yet as having zero points.
func scoreAt(snapshot []Team, teamIndex int) int {
	if teamIndex < 0 || teamIndex >= len(snapshot) {
		return 0
	}
	return snapshot[teamIndex].Score
}

func clampScore(score, maxScore int) int {
	if score > maxScore {
		return maxScore
	}
	if score < 0 {
		return 0
	}
	return score
}
