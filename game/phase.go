package game

// GamePhase represents the lifecycle stage of a game.
//
// WaitingForPlayers -> Playing -> RoundOver -> {CardExchange -> Playing}
// or RoundOver -> Playing directly. GameOver is declared for the outer
// layer's benefit; no core transition produces it.
type GamePhase int

const (
	WaitingForPlayers GamePhase = iota
	Playing
	RoundOver
	CardExchange
	GameOver
)

var phaseNames = []string{"WaitingForPlayers", "Playing", "RoundOver", "CardExchange", "GameOver"}

func (p GamePhase) String() string {
	return phaseNames[p]
}
