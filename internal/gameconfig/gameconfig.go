package gameconfig

// GameConfig describes the rules of one supported game type.
// Configurations are immutable; selecting a different one starts a fresh game.
type GameConfig struct {
	Value    string `json:"value"`
	Name     string `json:"name"`
	MaxTeams int    `json:"maxTeams"`
	MaxScore int    `json:"maxScore"`
}
