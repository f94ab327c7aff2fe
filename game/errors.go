package game

import "fmt"

// Severity tells the caller how to recover from a core error. The core only
// classifies; applying the recovery action is the caller's job.
type Severity int

const (
	// Recoverable errors may simply be retried by the client.
	Recoverable Severity = iota
	// GameEnding errors end the offending player's participation; the game
	// itself continues.
	GameEnding
	// Fatal errors mean the surrounding game room must be torn down.
	Fatal
)

var severityNames = []string{"Recoverable", "GameEnding", "Fatal"}

func (s Severity) String() string {
	return severityNames[s]
}

// InvalidPlayError rejects an illegal play.
type InvalidPlayError struct {
	Reason string
}

func (e InvalidPlayError) Error() string {
	return fmt.Sprintf("invalid play: %s", e.Reason)
}

// NotYourTurnError rejects an action from a seat that isn't the current one.
type NotYourTurnError struct{}

func (e NotYourTurnError) Error() string {
	return "not your turn"
}

// WrongPhaseError rejects an operation issued in the wrong game phase.
type WrongPhaseError struct {
	Expected, Actual GamePhase
}

func (e WrongPhaseError) Error() string {
	return fmt.Sprintf("wrong phase: expected %s, got %s", e.Expected, e.Actual)
}

// PlayerNotFoundError rejects an action from an unknown player.
type PlayerNotFoundError struct {
	ID PlayerID
}

func (e PlayerNotFoundError) Error() string {
	return fmt.Sprintf("player %s not found", e.ID)
}

// InvalidCardCountError rejects a card set of the wrong size.
type InvalidCardCountError struct {
	Expected, Actual int
}

func (e InvalidCardCountError) Error() string {
	return fmt.Sprintf("expected %d cards, got %d", e.Expected, e.Actual)
}

// CardsNotInHandError rejects a play of cards the player doesn't hold.
type CardsNotInHandError struct {
	Count int
}

func (e CardsNotInHandError) Error() string {
	return fmt.Sprintf("%d of the played cards are not in hand", e.Count)
}

// CannotPassNowError rejects a pass from the player leading a trick.
type CannotPassNowError struct{}

func (e CannotPassNowError) Error() string {
	return "cannot pass when leading a trick"
}

// GameFullError rejects a join once all seats are taken.
type GameFullError struct{}

func (e GameFullError) Error() string {
	return "game is full"
}

// GameNotStartedError rejects play before the game has started.
type GameNotStartedError struct{}

func (e GameNotStartedError) Error() string {
	return "game has not started"
}

// InvalidExchangeError rejects an illegal exchange transfer.
type InvalidExchangeError struct {
	Reason string
}

func (e InvalidExchangeError) Error() string {
	return fmt.Sprintf("invalid exchange: %s", e.Reason)
}

// InvalidSequenceError rejects an action with an out-of-order sequence
// number. Produced by the layer driving this core, never internally.
type InvalidSequenceError struct {
	Expected, Actual uint64
}

func (e InvalidSequenceError) Error() string {
	return fmt.Sprintf("invalid sequence: expected %d, got %d", e.Expected, e.Actual)
}

// DuplicateActionError rejects a replayed action. Produced by the layer
// driving this core, never internally.
type DuplicateActionError struct {
	Key string
}

func (e DuplicateActionError) Error() string {
	return fmt.Sprintf("duplicate action %q", e.Key)
}

// SessionExpiredError ends a stale session. Produced by the session layer.
type SessionExpiredError struct{}

func (e SessionExpiredError) Error() string {
	return "session expired"
}

// InvalidSessionTokenError rejects a bad session token. Produced by the
// session layer.
type InvalidSessionTokenError struct{}

func (e InvalidSessionTokenError) Error() string {
	return "invalid session token"
}

// RateLimitExceededError throttles an over-active client. Produced by the
// session layer.
type RateLimitExceededError struct{}

func (e RateLimitExceededError) Error() string {
	return "rate limit exceeded"
}

// ClassifySeverity maps every member of the error taxonomy to exactly one
// severity. Errors from outside the taxonomy are treated as fatal.
func ClassifySeverity(err error) Severity {
	switch err.(type) {
	case InvalidPlayError, NotYourTurnError, WrongPhaseError, InvalidCardCountError,
		CardsNotInHandError, CannotPassNowError, InvalidExchangeError, DuplicateActionError:
		return Recoverable
	case PlayerNotFoundError, SessionExpiredError, InvalidSessionTokenError, RateLimitExceededError:
		return GameEnding
	case GameFullError, GameNotStartedError, InvalidSequenceError:
		return Fatal
	}
	return Fatal
}
