package game

import (
	"fmt"
	"time"

	"github.com/axelbellec/revolution/deck"
	"github.com/axelbellec/revolution/roles"
	"github.com/axelbellec/revolution/rules"
)

// Play records a single accepted play.
type Play struct {
	PlayerID    PlayerID
	Cards       []deck.Card
	ClearedPile bool
	PlayedAt    time.Time
}

// PendingExchange is one directed card transfer of the post-round exchange.
// Losers owe their best cards; winners return any cards of their choosing.
type PendingExchange struct {
	From      PlayerID
	To        PlayerID
	Count     int
	Quality   rules.ExchangeQuality
	Completed bool
}

// GameState is the aggregate root. Transitions never mutate a state in
// place: each one returns a fresh snapshot, leaving the previous value
// intact for audit and replay.
type GameState struct {
	ID     GameID
	Config GameConfig

	// Players in seating order; the order fixes turn rotation.
	Players          []Player
	Phase            GamePhase
	CurrentPlayerIdx int

	// Pile holds the current trick; Cleared collects the cards removed by
	// pile clears so the full deal stays accounted for.
	Pile    []deck.Card
	Cleared []deck.Card

	// History keeps every accepted play, most recent first.
	History  []Play
	LastPlay *Play

	RevolutionActive bool
	Round            int
	Scores           map[PlayerID]int

	// FinishingOrder is set while the phase is RoundOver.
	FinishingOrder []PlayerID
	// Exchanges is set while the phase is CardExchange.
	Exchanges []PendingExchange

	// DealtCount is how many cards the last deal put into play.
	DealtCount int

	CreatedAt time.Time
	HostID    PlayerID

	// Sequence counts successful transitions, so outer layers can order
	// snapshots and detect stale commands. Core logic never reads it.
	Sequence uint64
}

func (g *GameState) clone() *GameState {
	next := *g
	next.Sequence = g.Sequence + 1
	next.Players = make([]Player, len(g.Players))
	for i, p := range g.Players {
		next.Players[i] = p.clone()
	}
	next.Pile = append([]deck.Card{}, g.Pile...)
	next.Cleared = append([]deck.Card{}, g.Cleared...)
	next.History = append([]Play{}, g.History...)
	if g.LastPlay != nil {
		lp := *g.LastPlay
		lp.Cards = append([]deck.Card{}, lp.Cards...)
		next.LastPlay = &lp
	}
	next.Scores = make(map[PlayerID]int, len(g.Scores))
	for id, score := range g.Scores {
		next.Scores[id] = score
	}
	next.FinishingOrder = append([]PlayerID{}, g.FinishingOrder...)
	next.Exchanges = append([]PendingExchange{}, g.Exchanges...)
	return &next
}

// CurrentPlayer returns the player whose seat is up.
func (g *GameState) CurrentPlayer() Player {
	return g.Players[g.CurrentPlayerIdx]
}

// FindPlayer looks a player up by id.
func (g *GameState) FindPlayer(id PlayerID) (Player, error) {
	for _, p := range g.Players {
		if p.ID == id {
			return p, nil
		}
	}
	return Player{}, PlayerNotFoundError{ID: id}
}

func (g *GameState) playerIndex(id PlayerID) (int, error) {
	for i, p := range g.Players {
		if p.ID == id {
			return i, nil
		}
	}
	return -1, PlayerNotFoundError{ID: id}
}

func (g *GameState) playerWithRole(t roles.Tier) (PlayerID, bool) {
	for _, p := range g.Players {
		if p.Role != nil && *p.Role == t {
			return p.ID, true
		}
	}
	return "", false
}

func (g *GameState) unfinishedCount() int {
	n := 0
	for _, p := range g.Players {
		if !p.Finished() {
			n++
		}
	}
	return n
}

func (g *GameState) unpassedCount() int {
	n := 0
	for _, p := range g.Players {
		if !p.HasPassed {
			n++
		}
	}
	return n
}

// ValidateCardConservation checks that every dealt card is still accounted
// for across hands, the pile and the cleared cards. Exposed for callers and
// tests; transitions never invoke it themselves.
func (g *GameState) ValidateCardConservation() error {
	if g.DealtCount == 0 {
		return nil
	}
	total := len(g.Pile) + len(g.Cleared)
	for _, p := range g.Players {
		total += len(p.Hand)
	}
	if total != g.DealtCount {
		return fmt.Errorf("card conservation violated: %d cards accounted for, %d dealt", total, g.DealtCount)
	}
	return nil
}
