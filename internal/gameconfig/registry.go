package gameconfig

import "errors"

// ErrConfigNotFound is returned when no configuration matches the given value.
var ErrConfigNotFound = errors.New("game configuration not found")

// Registry provides lookup over the catalog of game configurations.
type Registry interface {
	List() []GameConfig
	FindByValue(value string) (GameConfig, error)
}

// builtinConfigs is the static catalog of supported games.
var builtinConfigs = []GameConfig{
	{Value: "domino", Name: "Dómino", MaxTeams: 2, MaxScore: 200},
	{Value: "pantano", Name: "Pantano", MaxTeams: 2, MaxScore: 500},
	{Value: "pocker", Name: "Póker", MaxTeams: 6, MaxScore: 200},
}

type builtinRegistry struct {
	configs []GameConfig
}

// NewBuiltinRegistry creates a Registry backed by the static catalog.
func NewBuiltinRegistry() Registry {
	return &builtinRegistry{configs: builtinConfigs}
}

// List returns the catalog in declaration order.
func (r *builtinRegistry) List() []GameConfig {
	out := make([]GameConfig, len(r.configs))
	copy(out, r.configs)
	return out
}

// FindByValue looks up a configuration by its value key.
func (r *builtinRegistry) FindByValue(value string) (GameConfig, error) {
	for _, cfg := range r.configs {
		if cfg.Value == value {
			return cfg, nil
		}
	}
	return GameConfig{}, ErrConfigNotFound
}
