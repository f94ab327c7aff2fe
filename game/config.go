package game

import (
	"github.com/joeshaw/envdecode"

	"github.com/axelbellec/revolution/roles"
)

// GameConfig holds the recognised game options. The three timeout fields are
// inert data: enforcement (clock-driven expiry, disconnect handling) belongs
// to the layer driving this core.
type GameConfig struct {
	MinPlayers        int  `env:"REVOLUTION_MIN_PLAYERS,default=3"`
	MaxPlayers        int  `env:"REVOLUTION_MAX_PLAYERS,default=6"`
	IncludeJokers     bool `env:"REVOLUTION_INCLUDE_JOKERS,default=false"` // declared, not yet used
	RevolutionEnabled bool `env:"REVOLUTION_ENABLED,default=true"`
	TwosClearPile     bool `env:"REVOLUTION_TWOS_CLEAR_PILE,default=true"`
	RoundsToPlay      int  `env:"REVOLUTION_ROUNDS_TO_PLAY,default=0"` // 0 = no cap

	ExchangeTimeoutMS       int `env:"REVOLUTION_EXCHANGE_TIMEOUT_MS,default=30000"`
	DisconnectGracePeriodMS int `env:"REVOLUTION_DISCONNECT_GRACE_MS,default=60000"`
	TurnTimeoutMS           int `env:"REVOLUTION_TURN_TIMEOUT_MS,default=20000"`

	RoleTheme        roles.Theme `env:"REVOLUTION_ROLE_THEME,default=classic"`
	CustomRoleLabels map[roles.Tier]string
}

// DefaultConfig returns the standard game options.
func DefaultConfig() GameConfig {
	return GameConfig{
		MinPlayers:              3,
		MaxPlayers:              6,
		RevolutionEnabled:       true,
		TwosClearPile:           true,
		ExchangeTimeoutMS:       30000,
		DisconnectGracePeriodMS: 60000,
		TurnTimeoutMS:           20000,
		RoleTheme:               roles.ThemeClassic,
	}
}

// ConfigFromEnv builds a GameConfig from the environment, falling back to
// the defaults above for unset variables.
func ConfigFromEnv() (GameConfig, error) {
	var cfg GameConfig
	if err := envdecode.Decode(&cfg); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}
