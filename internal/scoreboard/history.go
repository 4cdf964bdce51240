package scoreboard

// ScoreDiff returns the signed points one round contributed to one team.
// For the first round this is the absolute score; afterwards it is the
// difference against the previous round's snapshot. A team missing from the
// previous snapshot (it was added by this round) counts from zero.
func ScoreDiff(history []HistoryEntry, historyIndex, teamIndex int) (int, error) {
	if historyIndex < 0 || historyIndex >= len(history) {
		return 0, ErrIndexOutOfRange
	}
	if teamIndex < 0 || teamIndex >= len(history[historyIndex].Snapshot) {
		return 0, ErrIndexOutOfRange
	}

	current := history[historyIndex].Snapshot[teamIndex].Score
	if historyIndex == 0 {
		return current, nil
	}
	return current - scoreAt(history[historyIndex-1].Snapshot, teamIndex), nil
}

// TeamTotals returns each team's cumulative score. Snapshots already store
// running totals, so this is the score column of the last entry; an empty
// history yields all zeros.
func TeamTotals(history []HistoryEntry, teamCount int) []int {
	totals := make([]int, teamCount)
	if len(history) == 0 {
		return totals
	}
	last := history[len(history)-1].Snapshot
	for i := 0; i < teamCount && i < len(last); i++ {
		totals[i] = last[i].Score
	}
	return totals
}
