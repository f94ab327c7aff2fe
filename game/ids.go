package game

import uuid "github.com/satori/go.uuid"

// PlayerID identifies a player. The id types are deliberately distinct so a
// player id can never stand in for a game or session id.
type PlayerID string

// GameID identifies a game.
type GameID string

// SessionID identifies a client session.
type SessionID string

// NewPlayerID constructs a fresh player id.
func NewPlayerID() PlayerID {
	return PlayerID(uuid.NewV4().String())
}

// NewGameID constructs a fresh game id.
func NewGameID() GameID {
	return GameID(uuid.NewV4().String())
}

// NewSessionID constructs a fresh session id.
func NewSessionID() SessionID {
	return SessionID(uuid.NewV4().String())
}
