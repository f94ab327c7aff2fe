// Package game implements the Revolution rules engine: a synchronous state
// machine over an immutable game aggregate. Every operation is total and
// atomic; all checks complete before any state is built, so a failed
// transition leaves the previous snapshot untouched.
package game

import (
	"fmt"
	"time"

	"github.com/axelbellec/revolution/deck"
	"github.com/axelbellec/revolution/roles"
	"github.com/axelbellec/revolution/rules"
)

// NewGame builds a fresh aggregate waiting for players.
func NewGame(id GameID, host PlayerID, cfg GameConfig, now time.Time) *GameState {
	return &GameState{
		ID:        id,
		Config:    cfg,
		HostID:    host,
		Phase:     WaitingForPlayers,
		Players:   []Player{},
		Pile:      []deck.Card{},
		Cleared:   []deck.Card{},
		History:   []Play{},
		Scores:    map[PlayerID]int{},
		CreatedAt: now,
	}
}

// AddPlayer seats a new player. Join order fixes turn rotation.
func (g *GameState) AddPlayer(id PlayerID, name string) (*GameState, error) {
	if g.Phase != WaitingForPlayers {
		return nil, WrongPhaseError{Expected: WaitingForPlayers, Actual: g.Phase}
	}
	if len(g.Players) >= g.Config.MaxPlayers {
		return nil, GameFullError{}
	}
	next := g.clone()
	next.Players = append(next.Players, Player{
		ID:         id,
		Name:       name,
		Hand:       []deck.Card{},
		Connection: Connected,
	})
	return next, nil
}

// StartGame shuffles with the given seed, deals, and opens round 1 with
// seat 0 leading.
func (g *GameState) StartGame(seed int64) (*GameState, error) {
	if g.Phase != WaitingForPlayers {
		return nil, WrongPhaseError{Expected: WaitingForPlayers, Actual: g.Phase}
	}
	if len(g.Players) < g.Config.MinPlayers {
		return nil, InvalidPlayError{Reason: fmt.Sprintf("need at least %d players to start", g.Config.MinPlayers)}
	}
	next := g.clone()
	next.dealNewHands(seed)
	next.Phase = Playing
	next.Round = 1
	next.CurrentPlayerIdx = 0
	return next, nil
}

// PlayCards applies the current player's play. On success the cards leave
// the hand, the play is recorded, the pile clears or accumulates, the
// revolution flag toggles when a qualifying quad is played, and either the
// turn advances or the round ends.
func (g *GameState) PlayCards(player PlayerID, cards []deck.Card, now time.Time) (*GameState, error) {
	if g.Phase != Playing {
		return nil, WrongPhaseError{Expected: Playing, Actual: g.Phase}
	}
	idx, err := g.playerIndex(player)
	if err != nil {
		return nil, err
	}
	if idx != g.CurrentPlayerIdx {
		return nil, NotYourTurnError{}
	}
	if !deck.Contains(g.Players[idx].Hand, cards) {
		return nil, CardsNotInHandError{Count: len(cards)}
	}
	var last []deck.Card
	if g.LastPlay != nil {
		last = g.LastPlay.Cards
	}
	if err := rules.ValidatePlay(cards, last, g.RevolutionActive); err != nil {
		return nil, InvalidPlayError{Reason: err.Error()}
	}

	next := g.clone()
	seat := &next.Players[idx]
	seat.Hand = deck.Remove(seat.Hand, cards)
	seat.HasPassed = false

	cleared := rules.ClearsPile(cards)
	play := Play{
		PlayerID:    player,
		Cards:       append([]deck.Card{}, cards...),
		ClearedPile: cleared,
		PlayedAt:    now,
	}
	next.History = append([]Play{play}, next.History...)

	if cleared {
		next.Cleared = append(next.Cleared, next.Pile...)
		next.Cleared = append(next.Cleared, play.Cards...)
		next.Pile = []deck.Card{}
		next.LastPlay = nil
		for i := range next.Players {
			next.Players[i].HasPassed = false
		}
	} else {
		next.Pile = append(next.Pile, play.Cards...)
		next.LastPlay = &play
	}

	if rules.TriggersRevolution(cards) && next.Config.RevolutionEnabled {
		next.RevolutionActive = !next.RevolutionActive
	}

	if len(seat.Hand) == 0 {
		next.assignNextFinish(idx)
		if next.unfinishedCount() <= 1 {
			// the lone holdout finishes without an explicit action
			for i := range next.Players {
				if !next.Players[i].Finished() {
					next.assignNextFinish(i)
				}
			}
			next.FinishingOrder = next.computeFinishingOrder()
			next.awardScores()
			next.Phase = RoundOver
			return next, nil
		}
	}

	next.advanceTurn()
	return next, nil
}

// PassTurn marks the current player as passed. When every other seat has
// passed, the trick is won: the pile clears, the pass flags reset, and the
// seat that made the last accepted play leads the next trick.
func (g *GameState) PassTurn(player PlayerID) (*GameState, error) {
	if g.Phase != Playing {
		return nil, WrongPhaseError{Expected: Playing, Actual: g.Phase}
	}
	idx, err := g.playerIndex(player)
	if err != nil {
		return nil, err
	}
	if idx != g.CurrentPlayerIdx {
		return nil, NotYourTurnError{}
	}
	if !rules.CanPass(g.LastPlay == nil) {
		return nil, CannotPassNowError{}
	}

	next := g.clone()
	next.Players[idx].HasPassed = true

	if next.unpassedCount() <= 1 {
		winnerIdx, _ := next.playerIndex(next.LastPlay.PlayerID)
		next.Cleared = append(next.Cleared, next.Pile...)
		next.Pile = []deck.Card{}
		next.LastPlay = nil
		for i := range next.Players {
			next.Players[i].HasPassed = false
		}
		if next.Players[winnerIdx].Finished() {
			winnerIdx = next.nextUnfinishedAfter(winnerIdx)
		}
		next.CurrentPlayerIdx = winnerIdx
		return next, nil
	}

	next.advanceTurn()
	return next, nil
}

// StartNextRound assigns roles from the finishing order, redeals with the
// given seed, and either enters the exchange phase (5+ players) or starts
// play directly with the Top role leading.
func (g *GameState) StartNextRound(seed int64) (*GameState, error) {
	if g.Phase != RoundOver {
		return nil, WrongPhaseError{Expected: RoundOver, Actual: g.Phase}
	}
	next := g.clone()

	tiers := roles.Assign(len(next.Players))
	for pos, id := range next.FinishingOrder {
		idx, err := next.playerIndex(id)
		if err != nil {
			return nil, err
		}
		if tiers != nil {
			tier := tiers[pos]
			next.Players[idx].Role = &tier
		}
	}

	next.dealNewHands(seed)
	next.Round++
	next.FinishingOrder = nil
	next.CurrentPlayerIdx = 0
	if topID, ok := next.playerWithRole(roles.Top); ok {
		idx, _ := next.playerIndex(topID)
		next.CurrentPlayerIdx = idx
	}

	if roles.HasViceRoles(len(next.Players)) {
		next.Exchanges = next.buildPendingExchanges()
		next.Phase = CardExchange
	} else {
		next.Exchanges = nil
		next.Phase = Playing
	}
	return next, nil
}

// SubmitExchange completes the caller's outstanding exchange transfer. Once
// every transfer is complete the game enters Playing.
func (g *GameState) SubmitExchange(player PlayerID, cards []deck.Card) (*GameState, error) {
	if g.Phase != CardExchange {
		return nil, WrongPhaseError{Expected: CardExchange, Actual: g.Phase}
	}
	idx, err := g.playerIndex(player)
	if err != nil {
		return nil, err
	}
	ei := -1
	for i, ex := range g.Exchanges {
		if ex.From == player && !ex.Completed {
			ei = i
			break
		}
	}
	if ei < 0 {
		return nil, InvalidExchangeError{Reason: "no outstanding exchange for player"}
	}
	ex := g.Exchanges[ei]
	if len(cards) != ex.Count {
		return nil, InvalidCardCountError{Expected: ex.Count, Actual: len(cards)}
	}
	if err := rules.ValidateExchange(cards, ex.Quality, g.Players[idx].Hand, g.RevolutionActive); err != nil {
		return nil, InvalidExchangeError{Reason: err.Error()}
	}

	next := g.clone()
	toIdx, err := next.playerIndex(ex.To)
	if err != nil {
		return nil, err
	}
	next.Players[idx].Hand = deck.Remove(next.Players[idx].Hand, cards)
	next.Players[toIdx].Hand = append(next.Players[toIdx].Hand, cards...)
	next.Exchanges[ei].Completed = true

	done := true
	for _, e := range next.Exchanges {
		if !e.Completed {
			done = false
			break
		}
	}
	if done {
		next.Phase = Playing
	}
	return next, nil
}

// dealNewHands resets the table for a fresh round on the receiver, which
// must already be a private copy.
func (g *GameState) dealNewHands(seed int64) {
	shuffled := NewShuffler(seed).Shuffle(deck.New())
	hands := deck.Deal(shuffled, len(g.Players))
	dealt := 0
	for i := range g.Players {
		g.Players[i].Hand = hands[i]
		g.Players[i].HasPassed = false
		g.Players[i].FinishedPosition = 0
		dealt += len(hands[i])
	}
	g.DealtCount = dealt
	g.Pile = []deck.Card{}
	g.Cleared = []deck.Card{}
	g.History = []Play{}
	g.LastPlay = nil
	g.RevolutionActive = false
}

// NewShuffler is the shuffle used for dealing. A variable so deployments
// can swap in deck.CryptoShuffler without touching validation logic.
var NewShuffler = func(seed int64) deck.Shuffler {
	return deck.NewSeededShuffler(seed)
}

// advanceTurn moves to the next seat. Finished seats stay in rotation, but
// a fresh trick skips them: its leader must be able to play.
func (g *GameState) advanceTurn() {
	idx := (g.CurrentPlayerIdx + 1) % len(g.Players)
	if g.LastPlay == nil {
		for g.Players[idx].Finished() {
			idx = (idx + 1) % len(g.Players)
		}
	}
	g.CurrentPlayerIdx = idx
}

func (g *GameState) nextUnfinishedAfter(idx int) int {
	next := (idx + 1) % len(g.Players)
	for g.Players[next].Finished() {
		next = (next + 1) % len(g.Players)
	}
	return next
}

// assignNextFinish gives the seat the next sequential finishing position.
func (g *GameState) assignNextFinish(idx int) {
	finished := 0
	for _, p := range g.Players {
		if p.Finished() {
			finished++
		}
	}
	g.Players[idx].FinishedPosition = finished + 1
}

func (g *GameState) computeFinishingOrder() []PlayerID {
	order := make([]PlayerID, len(g.Players))
	for _, p := range g.Players {
		order[p.FinishedPosition-1] = p.ID
	}
	return order
}

// awardScores grants positional points for the round: first place earns
// n-1, last place 0.
func (g *GameState) awardScores() {
	n := len(g.Players)
	for _, p := range g.Players {
		g.Scores[p.ID] += n - p.FinishedPosition
	}
}

// buildPendingExchanges creates the directed transfers for the two exchange
// pairs: losers owe their best cards, winners return cards of their choice.
func (g *GameState) buildPendingExchanges() []PendingExchange {
	pairs := []struct {
		low, high roles.Tier
	}{
		{roles.Bottom, roles.Top},
		{roles.Fourth, roles.Second},
	}
	exchanges := []PendingExchange{}
	for _, pair := range pairs {
		lowID, okLow := g.playerWithRole(pair.low)
		highID, okHigh := g.playerWithRole(pair.high)
		if !okLow || !okHigh {
			continue
		}
		count := roles.ExchangeCount(pair.low)
		exchanges = append(exchanges,
			PendingExchange{From: lowID, To: highID, Count: count, Quality: rules.QualityBest},
			PendingExchange{From: highID, To: lowID, Count: count, Quality: rules.QualityAny},
		)
	}
	return exchanges
}
