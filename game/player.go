package game

import (
	"github.com/axelbellec/revolution/deck"
	"github.com/axelbellec/revolution/roles"
)

// ConnectionState tracks a player's connection. The core records it but
// never acts on it; disconnect handling belongs to the session layer.
type ConnectionState int

const (
	Connected ConnectionState = iota
	// Disconnected means the player is inside the grace period.
	Disconnected
	Removed
)

var connectionNames = []string{"Connected", "Disconnected", "Removed"}

func (c ConnectionState) String() string {
	return connectionNames[c]
}

// Player holds one seat's state. Players are owned by the game aggregate and
// mutated only through engine transitions; every transition yields new
// player values.
type Player struct {
	ID               PlayerID
	Name             string
	Hand             []deck.Card
	Role             *roles.Tier
	FinishedPosition int // 0 while still holding cards
	Connection       ConnectionState
	HasPassed        bool
}

// Finished reports whether the player has emptied their hand this round.
func (p Player) Finished() bool {
	return p.FinishedPosition > 0
}

func (p Player) clone() Player {
	p.Hand = append([]deck.Card{}, p.Hand...)
	if p.Role != nil {
		role := *p.Role
		p.Role = &role
	}
	return p
}
