package scoreboard

import "github.com/google/uuid"

// Team is one scoring side in a game. The ID is stable across renames and
// restarts; operations still address teams by their position in the list.
type Team struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Score int       `json:"score"`
}

// HistoryEntry is one recorded round: a full copy of every team's score at
// that point, plus which team's score changed to produce it. A nil
// ChangedTeamIndex marks a structural entry (team added, game restarted).
type HistoryEntry struct {
	Snapshot         []Team `json:"snapshot"`
	ChangedTeamIndex *int   `json:"changedTeamIndex"`
	PhaseIdentifier  string `json:"phaseIdentifier,omitempty"`
}

// GameAlert is the derived game-over notice. It is recomputed after every
// mutating operation and never stored in history.
type GameAlert struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Variant         string `json:"variant"`
	WinningTeamName string `json:"winningTeamName,omitempty"`
}

// copyTeams returns an independent copy of a team list.
func copyTeams(teams []Team) []Team {
	out := make([]Team, len(teams))
	copy(out, teams)
	return out
}

// clone returns a deep copy of the entry. Snapshots must never be aliased
// across history entries.
func (e HistoryEntry) clone() HistoryEntry {
	return HistoryEntry{
		Snapshot:         copyTeams(e.Snapshot),
		ChangedTeamIndex: copyIndex(e.ChangedTeamIndex),
		PhaseIdentifier:  e.PhaseIdentifier,
	}
}

func copyIndex(i *int) *int {
	if i == nil {
		return nil
	}
	v := *i
	return &v
}

func intPtr(i int) *int {
	return &i
}
