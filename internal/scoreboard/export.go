package scoreboard

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/scoremate/scoremate/internal/gameconfig"
)

// GameVersion is the format version stamped on exported games.
const GameVersion = "1.0"

// ExportedGame is the transportable projection of a ledger. Its JSON shape
// is the interchange format; field names are part of the contract.
type ExportedGame struct {
	GameConfigValue string         `json:"gameConfigValue"`
	Teams           []Team         `json:"teams"`
	History         []HistoryEntry `json:"history"`
	GameVersion     string         `json:"gameVersion"`
}

// Export returns a snapshot of the ledger suitable for transport. The
// ledger is not modified.
func (l *Ledger) Export() ExportedGame {
	return ExportedGame{
		GameConfigValue: l.config.Value,
		Teams:           l.Teams(),
		History:         l.History(),
		GameVersion:     GameVersion,
	}
}

// Import replaces the ledger's configuration, teams, and history with the
// imported data. The alert is cleared. Validation happens before any
// mutation: a failed import leaves the ledger exactly as it was.
//
// An unrecognized game version is logged as a warning but accepted; an
// unknown configuration value fails with gameconfig.ErrConfigNotFound, and
// structural problems fail with MalformedImportError.
func (l *Ledger) Import(data ExportedGame, registry gameconfig.Registry) error {
	if data.GameConfigValue == "" {
		return &MalformedImportError{Reason: "gameConfigValue is required"}
	}
	if data.Teams == nil {
		return &MalformedImportError{Reason: "teams is required and must be an array"}
	}
	if data.History == nil {
		return &MalformedImportError{Reason: "history is required and must be an array"}
	}

	cfg, err := registry.FindByValue(data.GameConfigValue)
	if err != nil {
		return fmt.Errorf("game configuration %q: %w", data.GameConfigValue, err)
	}

	if data.GameVersion != GameVersion {
		slog.Warn("importing game data from a different format version",
			"got", data.GameVersion, "want", GameVersion)
	}

	for i, t := range data.Teams {
		if t.Name == "" {
			return &MalformedImportError{Reason: fmt.Sprintf("team %d has no name", i)}
		}
	}
	for i, entry := range data.History {
		if entry.Snapshot == nil {
			return &MalformedImportError{Reason: fmt.Sprintf("history entry %d has no snapshot", i)}
		}
		if entry.ChangedTeamIndex != nil {
			idx := *entry.ChangedTeamIndex
			if idx < 0 || idx >= len(entry.Snapshot) {
				return &MalformedImportError{Reason: fmt.Sprintf("history entry %d has changedTeamIndex %d outside its snapshot", i, idx)}
			}
		}
	}

	teams := copyTeams(data.Teams)
	for i := range teams {
		if teams[i].ID == uuid.Nil {
			teams[i].ID = uuid.New()
		}
	}
	history := make([]HistoryEntry, len(data.History))
	for i, entry := range data.History {
		history[i] = entry.clone()
	}

	l.config = cfg
	l.teams = teams
	l.history = history
	l.alert = nil
	return nil
}
